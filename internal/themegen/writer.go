package themegen

import (
	"bytes"
	"os"
	"path/filepath"
)

// WriteOptions configures one generation run.
type WriteOptions struct {
	OutputPath string  // "theme.css"
	TokensDir  string  // "design-tokens"
	RootSize   float64 // 0 means DefaultRootSize
}

// WriteResult describes one generation run.
type WriteResult struct {
	Written    bool   // False when the file already had this content
	OutputPath string // Where the theme lives
	Content    string // The composed CSS
	Previous   string // On-disk content before the run ("" when missing)
	Theme      *Theme
}

// WriteThemeToFile regenerates the theme from every token file and writes it
// only when the content differs from what is on disk. Skipping identical
// writes keeps file watchers from re-triggering on their own output.
func WriteThemeToFile(opts WriteOptions) (*WriteResult, error) {
	tokens, err := LoadAllTokens(opts.TokensDir)
	if err != nil {
		return nil, err
	}

	theme, err := ComposeTheme(tokens, opts.RootSize)
	if err != nil {
		return nil, err
	}

	result := &WriteResult{
		OutputPath: opts.OutputPath,
		Content:    theme.String(),
		Theme:      theme,
	}

	// A missing or unreadable file counts as different
	// #nosec G304 - output path comes from trusted configuration
	if existing, err := os.ReadFile(opts.OutputPath); err == nil {
		result.Previous = string(existing)
		if bytes.Equal(existing, []byte(result.Content)) {
			return result, nil
		}
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &WriteError{Path: opts.OutputPath, Cause: err}
		}
	}

	// #nosec G306 - generated CSS is meant to be world-readable
	if err := os.WriteFile(opts.OutputPath, []byte(result.Content), 0o644); err != nil {
		return nil, &WriteError{Path: opts.OutputPath, Cause: err}
	}

	result.Written = true
	return result, nil
}
