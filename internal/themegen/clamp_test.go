package themegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = ViewportTokens{Min: 320, Mid: 768, Max: 1440}

func TestClampGenerator(t *testing.T) {
	tests := []struct {
		name     string
		token    RangeToken
		rootSize float64
		want     string
	}{
		{
			name:     "fixed size",
			token:    RangeToken{Name: "sm", Min: 8, Max: 8},
			rootSize: 16,
			want:     "0.5rem",
		},
		{
			name:     "fixed size with custom root",
			token:    RangeToken{Name: "sm", Min: 10, Max: 10},
			rootSize: 20,
			want:     "0.5rem",
		},
		{
			name:     "fluid size",
			token:    RangeToken{Name: "m", Min: 16, Max: 24},
			rootSize: 16,
			want:     "clamp(1rem, 0.86rem + 0.71vw, 1.5rem)",
		},
		{
			name:     "fluid text step",
			token:    RangeToken{Name: "step-0", Min: 18, Max: 20},
			rootSize: 16,
			want:     "clamp(1.125rem, 1.09rem + 0.18vw, 1.25rem)",
		},
		{
			name:     "zero root size falls back to 16",
			token:    RangeToken{Name: "sm", Min: 8, Max: 8},
			rootSize: 0,
			want:     "0.5rem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampGenerator([]RangeToken{tt.token}, testViewport, tt.rootSize)
			require.Len(t, got, 1)
			assert.Equal(t, tt.token.Name, got[0].Name)
			assert.Equal(t, tt.want, got[0].Value)
		})
	}
}

func TestClampGenerator_PreservesOrder(t *testing.T) {
	tokens := []RangeToken{
		{Name: "xl", Min: 32, Max: 48},
		{Name: "xs", Min: 4, Max: 4},
		{Name: "m", Min: 16, Max: 24},
	}

	got := ClampGenerator(tokens, testViewport, 16)
	require.Len(t, got, 3)
	assert.Equal(t, "xl", got[0].Name)
	assert.Equal(t, "xs", got[1].Name)
	assert.Equal(t, "m", got[2].Name)
}

func TestClampGenerator_HitsBoundsAtViewportEdges(t *testing.T) {
	ranges := []RangeToken{
		{Name: "a", Min: 16, Max: 24},
		{Name: "b", Min: 12, Max: 64},
		{Name: "c", Min: 40, Max: 41},
		{Name: "d", Min: 2, Max: 200},
	}
	viewports := []ViewportTokens{
		{Min: 320, Mid: 768, Max: 1440},
		{Min: 360, Mid: 900, Max: 1920},
	}

	for _, vp := range viewports {
		for _, r := range ranges {
			t.Run(fmt.Sprintf("%s@%v-%v", r.Name, vp.Min, vp.Max), func(t *testing.T) {
				got := ClampGenerator([]RangeToken{r}, vp, 16)[0].Value

				var minRem, intersection, coefficient, maxRem float64
				_, err := fmt.Sscanf(got, "clamp(%grem, %grem + %gvw, %grem)", &minRem, &intersection, &coefficient, &maxRem)
				require.NoError(t, err, got)

				assert.InDelta(t, r.Min/16, minRem, 1e-9)
				assert.InDelta(t, r.Max/16, maxRem, 1e-9)

				// 1vw at width w px is w/100 px, i.e. w/(100*16) rem
				at := func(widthPx float64) float64 {
					return intersection + coefficient*widthPx/(100*16)
				}
				assert.InDelta(t, minRem, at(vp.Min), 0.015)
				assert.InDelta(t, maxRem, at(vp.Max), 0.015)
			})
		}
	}
}
