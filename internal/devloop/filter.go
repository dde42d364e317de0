package devloop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// EventFilter decides which file events should regenerate the theme.
type EventFilter struct {
	tokensDir  string
	outputPath string
	glob       string
	ignore     *ignore.GitIgnore
}

// NewEventFilter builds a filter for tokensDir. glob is matched against the
// slash-separated path relative to tokensDir ("" matches everything).
// ignoreFile is an optional gitignore-style file; a missing file is fine.
func NewEventFilter(tokensDir, outputPath, glob, ignoreFile string) (*EventFilter, error) {
	absTokens, err := filepath.Abs(tokensDir)
	if err != nil {
		return nil, fmt.Errorf("resolve tokens dir: %w", err)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}
	if glob != "" && !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid watch glob %q", glob)
	}

	f := &EventFilter{
		tokensDir:  absTokens,
		outputPath: absOutput,
		glob:       glob,
	}

	if ignoreFile != "" {
		if _, err := os.Stat(ignoreFile); err == nil {
			gi, err := ignore.CompileIgnoreFile(ignoreFile)
			if err != nil {
				return nil, fmt.Errorf("compile ignore file %s: %w", ignoreFile, err)
			}
			f.ignore = gi
		}
	}

	return f, nil
}

// Relevant reports whether an event on path should trigger regeneration.
func (f *EventFilter) Relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	// Our own output never triggers a run
	if abs == f.outputPath {
		return false
	}

	rel, err := filepath.Rel(f.tokensDir, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	if !strings.HasSuffix(abs, ".json") {
		return false
	}

	rel = filepath.ToSlash(rel)
	if f.glob != "" {
		if matched, _ := doublestar.Match(f.glob, rel); !matched {
			return false
		}
	}
	if f.ignore != nil && f.ignore.MatchesPath(rel) {
		return false
	}

	return true
}

// TokenFiles lists the files under the tokens dir that the filter accepts.
func (f *EventFilter) TokenFiles() ([]string, error) {
	pattern := f.glob
	if pattern == "" {
		pattern = "**/*.json"
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(f.tokensDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if f.Relevant(m) {
			files = append(files, m)
		}
	}
	return files, nil
}
