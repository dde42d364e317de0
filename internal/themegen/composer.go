package themegen

import (
	"fmt"
	"strings"
)

// Declaration is one CSS custom property.
type Declaration struct {
	Name  string // "--color-brand-blue"
	Value string // "#1034A6"
}

// Section groups declarations under one theme namespace.
type Section struct {
	Namespace    string // "color"
	Declarations []Declaration
}

// Theme is the composed @theme block before rendering.
type Theme struct {
	Sections []Section
}

// Namespace prefixes, in output order.
const (
	NamespaceBreakpoint = "breakpoint"
	NamespaceSpacing    = "spacing"
	NamespaceColor      = "color"
	NamespaceFont       = "font"
	NamespaceFontWeight = "font-weight"
	NamespaceText       = "text"
	NamespaceLeading    = "leading"
)

// namespaceOrder is the section order of every composed theme.
var namespaceOrder = []string{
	NamespaceBreakpoint,
	NamespaceSpacing,
	NamespaceColor,
	NamespaceFont,
	NamespaceFontWeight,
	NamespaceText,
	NamespaceLeading,
}

// spacingKeywords are appended to every spacing section, keyed by slug.
var spacingKeywords = []struct{ key, value string }{
	{"0", "0"},
	{"auto", "auto"},
	{"full", "100%"},
}

// ComposeTheme converts all token categories into theme sections.
// A zero rootSize means DefaultRootSize.
func ComposeTheme(tokens *AllTokens, rootSize float64) (*Theme, error) {
	if rootSize == 0 {
		rootSize = DefaultRootSize
	}
	if rootSize < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRootSize, formatNumber(rootSize))
	}

	spacing, err := TokensToCSSMap(CategorySpacing, ClampGenerator(tokens.Spacing.Items, tokens.Viewports, rootSize))
	if err != nil {
		return nil, err
	}
	colors, err := TokensToCSSMap(CategoryColors, tokens.Colors.Items)
	if err != nil {
		return nil, err
	}
	fontFamily, err := TokensToCSSMap(CategoryFonts, tokens.Fonts.Items)
	if err != nil {
		return nil, err
	}
	fontWeight, err := TokensToCSSMap(CategoryWeights, tokens.Weights.Items)
	if err != nil {
		return nil, err
	}
	fontSize, err := TokensToCSSMap(CategorySizes, ClampGenerator(tokens.Sizes.Items, tokens.Viewports, rootSize))
	if err != nil {
		return nil, err
	}
	lineHeight, err := TokensToCSSMap(CategoryLeading, tokens.Leading.Items)
	if err != nil {
		return nil, err
	}

	if err := addSpacingKeywords(spacing, tokens.Spacing.Items); err != nil {
		return nil, err
	}

	return &Theme{Sections: []Section{
		{
			Namespace: NamespaceBreakpoint,
			Declarations: []Declaration{
				{Name: "--breakpoint-sm", Value: formatNumber(tokens.Viewports.Min/rootSize) + "rem"},
				{Name: "--breakpoint-md", Value: formatNumber(tokens.Viewports.Mid/rootSize) + "rem"},
				{Name: "--breakpoint-lg", Value: formatNumber(tokens.Viewports.Max/rootSize) + "rem"},
			},
		},
		section(NamespaceSpacing, spacing),
		section(NamespaceColor, colors),
		section(NamespaceFont, fontFamily),
		section(NamespaceFontWeight, fontWeight),
		section(NamespaceText, fontSize),
		section(NamespaceLeading, lineHeight),
	}}, nil
}

// addSpacingKeywords appends the keyword spacings. A token that already
// claims a keyword slug is a duplicate.
func addSpacingKeywords(spacing *FlattenedTokenMap, items []RangeToken) error {
	for _, kw := range spacingKeywords {
		if _, exists := spacing.Get(kw.key); exists {
			return &DuplicateKeyError{
				Category: CategorySpacing,
				Key:      kw.key,
				First:    spacingTokenName(items, kw.key),
				Second:   "built-in " + kw.key,
			}
		}
		spacing.Set(kw.key, kw.value)
	}
	return nil
}

func spacingTokenName(items []RangeToken, key string) string {
	for _, item := range items {
		if Slugify(item.Name) == key {
			return item.Name
		}
	}
	return key
}

func section(namespace string, values *FlattenedTokenMap) Section {
	s := Section{Namespace: namespace, Declarations: make([]Declaration, 0, values.Len())}
	for pair := values.Oldest(); pair != nil; pair = pair.Next() {
		s.Declarations = append(s.Declarations, Declaration{
			Name:  "--" + namespace + "-" + pair.Key,
			Value: pair.Value,
		})
	}
	return s
}

// Count returns the number of declarations in the namespace.
func (t *Theme) Count(namespace string) int {
	for _, s := range t.Sections {
		if s.Namespace == namespace {
			return len(s.Declarations)
		}
	}
	return 0
}

// String renders the theme as a CSS @theme block.
func (t *Theme) String() string {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, s := range t.Sections {
		for _, d := range s.Declarations {
			fmt.Fprintf(&b, "\t%s: %s;\n", d.Name, d.Value)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// CreateTheme composes the theme and renders it as CSS text. Identical
// tokens and rootSize always produce identical output.
func CreateTheme(tokens *AllTokens, rootSize float64) (string, error) {
	theme, err := ComposeTheme(tokens, rootSize)
	if err != nil {
		return "", err
	}
	return theme.String(), nil
}
