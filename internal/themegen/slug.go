package themegen

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Slugify converts a token name into a CSS custom property fragment:
// lowercase, ASCII-transliterated, punctuation and spaces collapsed to "-".
func Slugify(name string) string {
	return slug.Make(name)
}

// TokensToCSSMap flattens tokens into slug → value pairs, keeping input order.
// Two tokens whose names slug to the same key abort the whole call with a
// DuplicateKeyError. RangeTokens must go through ClampGenerator first.
func TokensToCSSMap[T Token](category Category, tokens []T) (*FlattenedTokenMap, error) {
	result := orderedmap.New[string, string]()
	owners := make(map[string]string, len(tokens))

	for _, t := range tokens {
		key := Slugify(t.TokenName())
		if key == "" {
			return nil, &EmptySlugError{Category: category, Name: t.TokenName()}
		}
		if first, exists := owners[key]; exists {
			return nil, &DuplicateKeyError{
				Category: category,
				Key:      key,
				First:    first,
				Second:   t.TokenName(),
			}
		}

		value, err := cssValue(t)
		if err != nil {
			return nil, err
		}

		owners[key] = t.TokenName()
		result.Set(key, value)
	}

	return result, nil
}

// cssValue renders a token's value as CSS text.
func cssValue(t Token) (string, error) {
	switch v := t.(type) {
	case ValueToken:
		return v.Value, nil
	case ClampResultToken:
		return v.Value, nil
	case ListToken:
		return strings.Join(v.Value, ", "), nil
	case NumericToken:
		return formatNumber(v.Value), nil
	case RangeToken:
		return "", fmt.Errorf("range token %q has no single value: convert it with ClampGenerator first", v.Name)
	default:
		return "", fmt.Errorf("unsupported token type %T", t)
	}
}
