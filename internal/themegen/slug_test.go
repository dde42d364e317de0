package themegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brand Blue", "brand-blue"},
		{"sm", "sm"},
		{"2XL", "2xl"},
		{"Step 0", "step-0"},
		{"  Brand   Blue!! ", "brand-blue"},
		{"Crème Brûlée", "creme-brulee"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestTokensToCSSMap(t *testing.T) {
	t.Run("values keep input order", func(t *testing.T) {
		m, err := TokensToCSSMap(CategoryColors, []ValueToken{
			{Name: "Zinc", Value: "#71717a"},
			{Name: "Brand Blue", Value: "#1034A6"},
			{Name: "Amber", Value: "#f59e0b"},
		})
		require.NoError(t, err)

		var keys []string
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
		assert.Equal(t, []string{"zinc", "brand-blue", "amber"}, keys)

		v, ok := m.Get("brand-blue")
		require.True(t, ok)
		assert.Equal(t, "#1034A6", v)
	})

	t.Run("font stacks are joined", func(t *testing.T) {
		m, err := TokensToCSSMap(CategoryFonts, []ListToken{
			{Name: "Base", Value: []string{"Inter", "system-ui", "sans-serif"}},
		})
		require.NoError(t, err)

		v, _ := m.Get("base")
		assert.Equal(t, "Inter, system-ui, sans-serif", v)
	})

	t.Run("numbers are stringified", func(t *testing.T) {
		m, err := TokensToCSSMap(CategoryLeading, []NumericToken{
			{Name: "Flat", Value: 1},
			{Name: "Fine", Value: 1.5},
		})
		require.NoError(t, err)

		v, _ := m.Get("flat")
		assert.Equal(t, "1", v)
		v, _ = m.Get("fine")
		assert.Equal(t, "1.5", v)
	})

	t.Run("distinct slugs map one to one", func(t *testing.T) {
		tokens := []ValueToken{
			{Name: "a", Value: "1"},
			{Name: "b", Value: "2"},
			{Name: "c d", Value: "3"},
			{Name: "c-e", Value: "4"},
		}
		m, err := TokensToCSSMap(CategoryColors, tokens)
		require.NoError(t, err)
		assert.Equal(t, len(tokens), m.Len())
	})

	t.Run("colliding slugs abort", func(t *testing.T) {
		m, err := TokensToCSSMap(CategoryColors, []ValueToken{
			{Name: "Brand Blue", Value: "#1034A6"},
			{Name: "Other", Value: "#000"},
			{Name: "brand-blue", Value: "#0000ff"},
		})
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, ErrDuplicateKey))

		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, CategoryColors, dup.Category)
		assert.Equal(t, "brand-blue", dup.Key)
		assert.Equal(t, "Brand Blue", dup.First)
		assert.Equal(t, "brand-blue", dup.Second)
		assert.Contains(t, err.Error(), "brand-blue")
	})

	t.Run("empty slug is rejected", func(t *testing.T) {
		_, err := TokensToCSSMap(CategoryColors, []ValueToken{{Name: "!!!", Value: "#000"}})

		var empty *EmptySlugError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, "!!!", empty.Name)
	})

	t.Run("unclamped range tokens are rejected", func(t *testing.T) {
		_, err := TokensToCSSMap(CategorySpacing, []RangeToken{{Name: "sm", Min: 8, Max: 8}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ClampGenerator")
	})

	t.Run("empty input", func(t *testing.T) {
		m, err := TokensToCSSMap(CategoryColors, []ValueToken{})
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}
