package themegen

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Every error returned by the pipeline matches exactly one of
// these with errors.Is.
var (
	ErrLoad         = errors.New("token file could not be loaded")
	ErrSchema       = errors.New("token file failed validation")
	ErrDuplicateKey = errors.New("duplicate token key")
	ErrWrite        = errors.New("theme file could not be written")
)

// ErrInvalidRootSize is returned for a negative root size.
var ErrInvalidRootSize = errors.New("root size must be a positive number of pixels")

// LoadError means a token file was missing, unreadable, or not JSON.
type LoadError struct {
	File  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load token file %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Cause} }

// Violation is one schema failure inside a token file.
type Violation struct {
	Path     string // "items[0].max"
	Field    string // "max"
	Item     int    // index into items, -1 when not inside items
	Code     string // one of the Violation* codes
	Expected string // "number"
	Received string // "undefined", "string", ...
	Message  string
}

// Violation codes
const (
	ViolationMissing = "missing"
	ViolationType    = "invalid_type"
	ViolationValue   = "invalid_value"
	ViolationKey     = "unrecognized_key"
)

// SchemaError means a token file parsed as JSON but did not match its schema.
type SchemaError struct {
	File       string
	Category   Category
	Violations []Violation

	// Context for the first violation inside items, if any
	ItemIndex int
	ItemName  string
	ItemDump  string
	Fix       string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invalid token file: %s\n\n", e.File)

	for i, v := range e.Violations {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "✖ %s\n  → at %s", v.Message, v.Path)
	}

	if e.ItemIndex >= 0 {
		name := ""
		if e.ItemName != "" {
			name = fmt.Sprintf(" (%s)", e.ItemName)
		}
		fmt.Fprintf(&b, "\n\n  → at items[%d]%s\n\n  Current item:\n  %s\n\n  Fix: %s",
			e.ItemIndex, name, indent(e.ItemDump, "  "), e.Fix)
	}

	return b.String()
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// DuplicateKeyError means two tokens in one category share a slug.
type DuplicateKeyError struct {
	Category Category
	Key      string
	First    string
	Second   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s key %q: tokens %q and %q produce the same CSS name",
		e.Category, e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// EmptySlugError means a token name has no characters usable in a CSS name.
type EmptySlugError struct {
	Category Category
	Name     string
}

func (e *EmptySlugError) Error() string {
	return fmt.Sprintf("%s token name %q produces an empty CSS name", e.Category, e.Name)
}

func (e *EmptySlugError) Unwrap() error { return ErrSchema }

// WriteError means the theme differed from disk but could not be written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write theme file %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Cause} }

// indent prefixes every line after the first with prefix.
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
