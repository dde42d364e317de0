package themegen

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultRootSize is the root font size in pixels used for px → rem conversion.
const DefaultRootSize = 16

// Token is a named design value. The concrete types below are the only
// implementations; callers switch over them exhaustively.
type Token interface {
	TokenName() string
	isToken()
}

// ValueToken holds a single string value (colors).
type ValueToken struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ListToken holds a list of strings (font family stacks).
type ListToken struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Value       []string `json:"value"`
}

// NumericToken holds a plain number (weights, line heights).
type NumericToken struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RangeToken holds a pixel range. Min == Max means a fixed size.
type RangeToken struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// ClampResultToken is a RangeToken converted to a CSS length or clamp() expression.
type ClampResultToken struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (t ValueToken) TokenName() string       { return t.Name }
func (t ListToken) TokenName() string        { return t.Name }
func (t NumericToken) TokenName() string     { return t.Name }
func (t RangeToken) TokenName() string       { return t.Name }
func (t ClampResultToken) TokenName() string { return t.Name }

func (ValueToken) isToken()       {}
func (ListToken) isToken()        {}
func (NumericToken) isToken()     {}
func (RangeToken) isToken()       {}
func (ClampResultToken) isToken() {}

// TokenDocument is one token file. Items order drives output order.
type TokenDocument[T Token] struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Meta        json.RawMessage `json:"meta,omitempty"`
	Items       []T             `json:"items"`
}

// ViewportTokens are the three breakpoints in pixels (Min < Mid < Max).
type ViewportTokens struct {
	Min float64 `json:"min"`
	Mid float64 `json:"mid"`
	Max float64 `json:"max"`
}

// AllTokens is every token category loaded for one generation run.
type AllTokens struct {
	Colors    TokenDocument[ValueToken]
	Fonts     TokenDocument[ListToken]
	Spacing   TokenDocument[RangeToken]
	Leading   TokenDocument[NumericToken]
	Sizes     TokenDocument[RangeToken]
	Weights   TokenDocument[NumericToken]
	Viewports ViewportTokens
}

// FlattenedTokenMap maps CSS-safe slugs to values in insertion order.
type FlattenedTokenMap = orderedmap.OrderedMap[string, string]

// Category identifies a token file and selects error-message phrasing.
type Category string

// Token categories, one per token file
const (
	CategoryColors    Category = "colors"
	CategoryFonts     Category = "fonts"
	CategorySpacing   Category = "spacing"
	CategoryLeading   Category = "leading"
	CategorySizes     Category = "sizes"
	CategoryWeights   Category = "weights"
	CategoryViewports Category = "viewports"
)

// Token file names, relative to the tokens directory
const (
	FileColors    = "colors.json"
	FileFonts     = "fonts.json"
	FileSpacing   = "spacing.json"
	FileLeading   = "text-leading.json"
	FileSizes     = "text-sizes.json"
	FileWeights   = "text-weights.json"
	FileViewports = "viewports.json"
)

var fileCategories = map[string]Category{
	FileColors:    CategoryColors,
	FileFonts:     CategoryFonts,
	FileSpacing:   CategorySpacing,
	FileLeading:   CategoryLeading,
	FileSizes:     CategorySizes,
	FileWeights:   CategoryWeights,
	FileViewports: CategoryViewports,
}

// CategoryForFile returns the category for a token file name.
// Unknown names get generic error phrasing.
func CategoryForFile(fileName string) (Category, bool) {
	c, ok := fileCategories[fileName]
	return c, ok
}
