package themegen

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// FieldType is the JSON type a schema field must have.
type FieldType int

// Field types
const (
	FieldString FieldType = iota
	FieldStringList
	FieldNumber
)

func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldStringList:
		return "array"
	case FieldNumber:
		return "number"
	}
	return "unknown"
}

// Field is one required property of a token object.
type Field struct {
	Name string
	Type FieldType
	// CSSValue marks string values emitted verbatim into the theme.
	CSSValue bool
}

// Schema describes the shape of one token file and the Go type it decodes to.
type Schema[T any] struct {
	name     string
	document bool    // {title?, description?, meta?, items: [...]} wrapper
	fields   []Field // item fields for documents, top-level fields otherwise
	check    func(T) []Violation
}

var (
	nameField = Field{Name: "name", Type: FieldString}

	namedValueFields      = []Field{nameField, {Name: "value", Type: FieldString, CSSValue: true}}
	namedStringListFields = []Field{nameField, {Name: "value", Type: FieldStringList, CSSValue: true}}
	rangeFields           = []Field{nameField, {Name: "min", Type: FieldNumber}, {Name: "max", Type: FieldNumber}}
	numberValueFields     = []Field{nameField, {Name: "value", Type: FieldNumber}}
	viewportFields        = []Field{{Name: "min", Type: FieldNumber}, {Name: "mid", Type: FieldNumber}, {Name: "max", Type: FieldNumber}}
)

// Token file schemas. Sizes and weights share the range and numeric shapes.
var (
	ColorsSchema  = documentSchema[ValueToken]("Colors", namedValueFields)
	FontsSchema   = documentSchema[ListToken]("Fonts", namedStringListFields)
	SpacingSchema = documentSchema[RangeToken]("Spacing", rangeFields)
	LeadingSchema = documentSchema[NumericToken]("Leading", numberValueFields)
	SizesSchema   = documentSchema[RangeToken]("Sizes", rangeFields)
	WeightsSchema = documentSchema[NumericToken]("Weights", numberValueFields)

	ViewportsSchema = Schema[ViewportTokens]{
		name:   "Viewports",
		fields: viewportFields,
		check:  checkViewportOrder,
	}
)

func documentSchema[T Token](name string, fields []Field) Schema[TokenDocument[T]] {
	return Schema[TokenDocument[T]]{name: name, document: true, fields: fields}
}

func checkViewportOrder(v ViewportTokens) []Violation {
	if v.Min < v.Mid && v.Mid < v.Max {
		return nil
	}
	return []Violation{{
		Path: "(root)",
		Item: -1,
		Code: ViolationValue,
		Message: fmt.Sprintf("Viewports must satisfy min < mid < max, received min=%s, mid=%s, max=%s.",
			formatNumber(v.Min), formatNumber(v.Mid), formatNumber(v.Max)),
	}}
}

// validate walks the parsed JSON and collects every structural violation.
func (s Schema[T]) validate(root gjson.Result, category Category) []Violation {
	if !root.IsObject() {
		return []Violation{{
			Path:     "(root)",
			Item:     -1,
			Code:     ViolationType,
			Expected: "object",
			Received: jsonType(root),
			Message:  fmt.Sprintf("Expected an object, received %s.", jsonType(root)),
		}}
	}

	if !s.document {
		return validateFields(root, s.fields, "", -1, category)
	}

	violations := caseVariantViolations(root, documentKeys, "", -1)
	for _, key := range []string{"title", "description"} {
		if r := root.Get(key); r.Exists() && r.Type != gjson.String {
			violations = append(violations, Violation{
				Path:     key,
				Field:    key,
				Item:     -1,
				Code:     ViolationType,
				Expected: "string",
				Received: jsonType(r),
				Message:  fmt.Sprintf("Property '%s' must be a string, received %s.", key, jsonType(r)),
			})
		}
	}

	items := root.Get("items")
	switch {
	case !items.Exists():
		return append(violations, Violation{
			Path:     "items",
			Field:    "items",
			Item:     -1,
			Code:     ViolationMissing,
			Expected: "array",
			Received: "undefined",
			Message:  "Missing required property 'items'. Token files must have an 'items' array.",
		})
	case !items.IsArray():
		return append(violations, Violation{
			Path:     "items",
			Field:    "items",
			Item:     -1,
			Code:     ViolationType,
			Expected: "array",
			Received: jsonType(items),
			Message:  fmt.Sprintf("Property 'items' must be an array, received %s.", jsonType(items)),
		})
	}

	for i, item := range items.Array() {
		prefix := fmt.Sprintf("items[%d].", i)
		if !item.IsObject() {
			violations = append(violations, Violation{
				Path:     fmt.Sprintf("items[%d]", i),
				Item:     i,
				Code:     ViolationType,
				Expected: "object",
				Received: jsonType(item),
				Message:  fmt.Sprintf("Each %s item must be an object, received %s.", categoryLabel(category), jsonType(item)),
			})
			continue
		}
		violations = append(violations, validateFields(item, s.fields, prefix, i, category)...)
	}

	return violations
}

func validateFields(obj gjson.Result, fields []Field, prefix string, item int, category Category) []Violation {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	violations := caseVariantViolations(obj, names, prefix, item)

	for _, f := range fields {
		r := obj.Get(f.Name)
		v := Violation{
			Path:     prefix + f.Name,
			Field:    f.Name,
			Item:     item,
			Expected: f.Type.String(),
			Received: jsonType(r),
		}

		if !r.Exists() {
			v.Code = ViolationMissing
			v.Message = missingMessage(category, f.Name)
			violations = append(violations, v)
			continue
		}

		switch f.Type {
		case FieldString:
			if r.Type != gjson.String {
				v.Code = ViolationType
				v.Message = typeMessage(category, f.Name, v.Received)
				violations = append(violations, v)
			} else if f.CSSValue {
				violations = append(violations, cssValueViolations(r.Str, v)...)
			}

		case FieldNumber:
			if r.Type != gjson.Number {
				v.Code = ViolationType
				v.Message = typeMessage(category, f.Name, v.Received)
				violations = append(violations, v)
			} else if math.IsInf(r.Num, 0) {
				v.Code = ViolationValue
				v.Expected = "finite number"
				v.Message = fmt.Sprintf("Property '%s' must be a finite number, received %s.", f.Name, r.Raw)
				violations = append(violations, v)
			}

		case FieldStringList:
			if !r.IsArray() {
				v.Code = ViolationType
				v.Message = typeMessage(category, f.Name, v.Received)
				violations = append(violations, v)
				continue
			}
			if f.CSSValue && len(r.Array()) == 0 {
				v.Code = ViolationValue
				v.Expected = "non-empty array"
				v.Message = fmt.Sprintf("Property '%s' must list at least one entry.", f.Name)
				violations = append(violations, v)
				continue
			}
			for j, el := range r.Array() {
				ev := v
				ev.Path = fmt.Sprintf("%s%s[%d]", prefix, f.Name, j)
				ev.Expected = "string"
				ev.Received = jsonType(el)
				if el.Type != gjson.String {
					ev.Code = ViolationType
					ev.Message = fmt.Sprintf("Property '%s[%d]' must be a string (font family name), received %s.", f.Name, j, ev.Received)
					violations = append(violations, ev)
				} else if f.CSSValue {
					violations = append(violations, cssValueViolations(el.Str, ev)...)
				}
			}
		}
	}

	return violations
}

// documentKeys are the known top-level keys of a token document.
var documentKeys = []string{"title", "description", "meta", "items"}

// caseVariantViolations reports keys that differ from a known key only in
// case. Decoding matches keys case-insensitively, so such a key would
// silently replace the real one.
func caseVariantViolations(obj gjson.Result, known []string, prefix string, item int) []Violation {
	var violations []Violation
	obj.ForEach(func(key, _ gjson.Result) bool {
		for _, name := range known {
			if key.Str != name && strings.EqualFold(key.Str, name) {
				violations = append(violations, Violation{
					Path:     prefix + key.Str,
					Field:    key.Str,
					Item:     item,
					Code:     ViolationKey,
					Expected: name,
					Received: key.Str,
					Message:  fmt.Sprintf("Unrecognized property '%s'. Property names are case-sensitive; did you mean '%s'?", key.Str, name),
				})
			}
		}
		return true
	})
	return violations
}

func cssValueViolations(value string, v Violation) []Violation {
	offending, ok := checkCSSValue(value)
	if ok {
		return nil
	}
	v.Code = ViolationValue
	if offending == "" {
		v.Message = fmt.Sprintf("Property '%s' must not be empty.", v.Field)
	} else {
		v.Message = fmt.Sprintf("Property '%s' must be a single CSS value, found %q in %q.", v.Field, offending, value)
	}
	return []Violation{v}
}

// jsonType names a JSON value's type the way validation messages report it.
func jsonType(r gjson.Result) string {
	if !r.Exists() {
		return "undefined"
	}
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	if r.IsArray() {
		return "array"
	}
	return "object"
}
