// Package themegen generates a CSS @theme block from JSON design tokens.
//
// Token files (colors, fonts, spacing, text sizes, weights, line heights and
// viewports) are validated, spacing and text sizes are converted to fluid
// clamp() values, and every token becomes a CSS custom property.
//
// # Generation
//
//	result, err := themegen.Generate(themegen.Config{
//		TokensDir:  "design-tokens",
//		OutputPath: "theme.css",
//	})
//	if err != nil {
//		var schemaErr *themegen.SchemaError
//		if errors.As(err, &schemaErr) {
//			// schemaErr.Error() lists every violation and a fix
//		}
//	}
//	fmt.Println(result.Written) // false when theme.css was already current
//
// # CLI Tool
//
//	go install github.com/yacobolo/themegen/cmd/themegen@latest
//	themegen --output dist/theme.css
//	themegen watch
package themegen

import (
	core "github.com/yacobolo/themegen/internal/themegen"
)

// Config holds generator configuration
type Config struct {
	TokensDir  string  // "design-tokens"
	OutputPath string  // "theme.css"
	RootSize   float64 // px per rem, 0 means 16
}

// GenerateResult describes one generation run.
type GenerateResult = core.WriteResult

// Error types returned by Generate and CreateTheme.
type (
	LoadError         = core.LoadError
	SchemaError       = core.SchemaError
	DuplicateKeyError = core.DuplicateKeyError
	EmptySlugError    = core.EmptySlugError
	WriteError        = core.WriteError
)

// Error classes for errors.Is.
var (
	ErrLoad         = core.ErrLoad
	ErrSchema       = core.ErrSchema
	ErrDuplicateKey = core.ErrDuplicateKey
	ErrWrite        = core.ErrWrite

	ErrInvalidRootSize = core.ErrInvalidRootSize
)

// Generate is the main entry point: it regenerates the theme file and only
// writes it when its content changed.
func Generate(config Config) (*GenerateResult, error) {
	return core.WriteThemeToFile(core.WriteOptions{
		OutputPath: config.OutputPath,
		TokensDir:  config.TokensDir,
		RootSize:   config.RootSize,
	})
}

// CreateTheme returns the theme CSS for tokensDir without touching disk.
func CreateTheme(tokensDir string, rootSize float64) (string, error) {
	tokens, err := core.LoadAllTokens(tokensDir)
	if err != nil {
		return "", err
	}
	return core.CreateTheme(tokens, rootSize)
}
