package themegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ParseFile loads fileName from tokensDir and validates it against schema.
//
// Read and JSON syntax failures return a *LoadError. Shape failures return a
// *SchemaError whose message lists every violation and, for the first
// violation inside items, the offending item and a fix suggestion.
func ParseFile[T any](schema Schema[T], tokensDir, fileName string) (T, error) {
	var zero T

	// #nosec G304 - tokensDir comes from trusted configuration
	data, err := os.ReadFile(filepath.Join(tokensDir, fileName))
	if err != nil {
		return zero, &LoadError{File: fileName, Cause: err}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, &LoadError{File: fileName, Cause: err}
	}

	category, _ := CategoryForFile(fileName)
	root := gjson.ParseBytes(data)

	if violations := schema.validate(root, category); len(violations) > 0 {
		return zero, newSchemaError(fileName, category, root, violations)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		// Valid JSON the schema walk accepted but the token types cannot hold
		return zero, newSchemaError(fileName, category, root, []Violation{{
			Path:     "(root)",
			Item:     -1,
			Code:     ViolationType,
			Expected: schema.name,
			Received: jsonType(root),
			Message:  fmt.Sprintf("File does not match the %s token shape: %v.", schema.name, err),
		}})
	}

	if schema.check != nil {
		if violations := schema.check(out); len(violations) > 0 {
			return zero, newSchemaError(fileName, category, root, violations)
		}
	}

	return out, nil
}

// LoadAllTokens reads and validates every token file in tokensDir.
// The first failing file aborts the load.
func LoadAllTokens(tokensDir string) (*AllTokens, error) {
	var (
		all AllTokens
		err error
	)

	if all.Colors, err = ParseFile(ColorsSchema, tokensDir, FileColors); err != nil {
		return nil, err
	}
	if all.Fonts, err = ParseFile(FontsSchema, tokensDir, FileFonts); err != nil {
		return nil, err
	}
	if all.Spacing, err = ParseFile(SpacingSchema, tokensDir, FileSpacing); err != nil {
		return nil, err
	}
	if all.Leading, err = ParseFile(LeadingSchema, tokensDir, FileLeading); err != nil {
		return nil, err
	}
	if all.Sizes, err = ParseFile(SizesSchema, tokensDir, FileSizes); err != nil {
		return nil, err
	}
	if all.Weights, err = ParseFile(WeightsSchema, tokensDir, FileWeights); err != nil {
		return nil, err
	}
	if all.Viewports, err = ParseFile(ViewportsSchema, tokensDir, FileViewports); err != nil {
		return nil, err
	}

	return &all, nil
}

func newSchemaError(fileName string, category Category, root gjson.Result, violations []Violation) *SchemaError {
	e := &SchemaError{
		File:       fileName,
		Category:   category,
		Violations: violations,
		ItemIndex:  -1,
	}

	for _, v := range violations {
		if v.Item < 0 {
			continue
		}
		item := root.Get(fmt.Sprintf("items.%d", v.Item))
		e.ItemIndex = v.Item
		if name := item.Get("name"); name.Type == gjson.String {
			e.ItemName = name.Str
		}
		e.ItemDump = dumpItem(item)
		e.Fix = fixSuggestion(category, v, item)
		break
	}

	return e
}

// dumpItem pretty-prints an item in its source key order.
func dumpItem(item gjson.Result) string {
	out := pretty.PrettyOptions([]byte(item.Raw), &pretty.Options{Width: 80, Indent: "  "})
	return strings.TrimRight(string(out), "\n")
}

func categoryLabel(category Category) string {
	if category == "" {
		return "token"
	}
	return string(category)
}

func missingMessage(category Category, field string) string {
	if field == "name" {
		return fmt.Sprintf("Missing required property 'name'. Every %s item needs a string 'name'.", categoryLabel(category))
	}

	switch category {
	case CategorySizes, CategorySpacing:
		return fmt.Sprintf("Missing required property '%s'. All %s items must have both 'min' and 'max' properties.", field, category)
	case CategoryColors:
		return fmt.Sprintf("Missing required property '%s'. All colors items must have a 'value' property (a color string).", field)
	case CategoryFonts:
		return fmt.Sprintf("Missing required property '%s'. All fonts items must have a 'value' property (an array of font family strings).", field)
	case CategoryLeading, CategoryWeights:
		return fmt.Sprintf("Missing required property '%s'. All %s items must have a 'value' property (a number).", field, category)
	}
	return fmt.Sprintf("Missing required property '%s'.", field)
}

func typeMessage(category Category, field, received string) string {
	switch {
	case field == "min" || field == "max" || field == "mid":
		return fmt.Sprintf("Property '%s' must be a number, received %s.", field, received)
	case field == "name":
		return fmt.Sprintf("Property 'name' must be a string, received %s.", received)
	case field == "value" && category == CategoryColors:
		return fmt.Sprintf("Property 'value' must be a string (color value), received %s.", received)
	case field == "value" && category == CategoryFonts:
		return fmt.Sprintf("Property 'value' must be an array of strings (font family names), received %s.", received)
	case field == "value" && (category == CategoryLeading || category == CategoryWeights):
		return fmt.Sprintf("Property 'value' must be a number, received %s.", received)
	}
	return fmt.Sprintf("Property '%s' has the wrong type, received %s.", field, received)
}

func fixSuggestion(category Category, v Violation, item gjson.Result) string {
	name := "Item"
	if n := item.Get("name"); n.Type == gjson.String && n.Str != "" {
		name = n.Str
	}
	minPx := numberOr(item.Get("min"), 0)
	maxPx := numberOr(item.Get("max"), 0)

	switch v.Code {
	case ViolationMissing:
		switch v.Field {
		case "max":
			suggested := 20.0
			if minPx != 0 {
				suggested = minPx * 1.2
			}
			return fmt.Sprintf("Add a 'max' property with a number value, e.g.:\n  {\n    \"name\": %q,\n    \"min\": %s,\n    \"max\": %s\n  }",
				name, formatNumber(minPx), formatNumber(suggested))
		case "min":
			suggested := 20.0
			if maxPx != 0 {
				suggested = maxPx
			}
			return fmt.Sprintf("Add a 'min' property with a number value, e.g.:\n  {\n    \"name\": %q,\n    \"min\": 16,\n    \"max\": %s\n  }",
				name, formatNumber(suggested))
		case "value":
			return fmt.Sprintf("Add a 'value' property with %s, e.g.:\n  {\n    \"name\": %q,\n    \"value\": %s\n  }",
				valueShape(category), name, valueExample(category))
		case "name":
			return "Add a 'name' property with a string value, e.g.: \"name\": \"primary\""
		}

	case ViolationType:
		switch v.Field {
		case "min", "max":
			return fmt.Sprintf("Change '%s' to a number value, e.g.: %s: 16", v.Field, v.Field)
		case "value":
			return fmt.Sprintf("Change 'value' to %s, e.g.: \"value\": %s", valueShape(category), valueExample(category))
		case "name":
			return "Change 'name' to a string, e.g.: \"name\": \"primary\""
		}
		if v.Expected == "object" {
			return fmt.Sprintf("Replace the item with an object, e.g.: {\"name\": \"primary\", \"value\": %s}", valueExample(category))
		}

	case ViolationValue:
		switch v.Expected {
		case "finite number":
			return fmt.Sprintf("Use a finite number for '%s', e.g.: %s: 16", v.Field, v.Field)
		case "non-empty array":
			return fmt.Sprintf("List at least one entry in '%s', e.g.: \"%s\": %s", v.Field, v.Field, valueExample(category))
		}
		return fmt.Sprintf("Use a single CSS value in '%s' without ';', '{' or '}'.", v.Field)

	case ViolationKey:
		return fmt.Sprintf("Rename '%s' to '%s' or remove it.", v.Field, v.Expected)
	}

	return "Check the schema requirements for this token type."
}

func valueShape(category Category) string {
	switch category {
	case CategoryColors:
		return "a string value"
	case CategoryFonts:
		return "an array of strings"
	case CategoryLeading, CategoryWeights:
		return "a number value"
	}
	return "the correct type (string for colors, number for weights/leading, array for fonts)"
}

func valueExample(category Category) string {
	switch category {
	case CategoryFonts:
		return `["Inter", "sans-serif"]`
	case CategoryLeading:
		return "1.5"
	case CategoryWeights:
		return "400"
	}
	return `"#000000"`
}

func numberOr(r gjson.Result, fallback float64) float64 {
	if r.Type == gjson.Number {
		return r.Num
	}
	return fallback
}
