package themegen

import "fmt"

// ClampGenerator converts pixel ranges into fluid CSS sizes.
//
// A token with Min == Max becomes a fixed rem length. Otherwise the value is a
// clamp() expression that equals Min at viewport.Min and Max at viewport.Max,
// scaling linearly with the viewport width in between. viewport.Mid is not
// used. A non-positive rootSize falls back to DefaultRootSize.
func ClampGenerator(tokens []RangeToken, viewport ViewportTokens, rootSize float64) []ClampResultToken {
	if rootSize <= 0 {
		rootSize = DefaultRootSize
	}

	result := make([]ClampResultToken, 0, len(tokens))
	for _, t := range tokens {
		result = append(result, ClampResultToken{
			Name:  t.Name,
			Value: clampValue(t.Min, t.Max, viewport, rootSize),
		})
	}
	return result
}

func clampValue(minPx, maxPx float64, viewport ViewportTokens, rootSize float64) string {
	minSize := minPx / rootSize
	if minPx == maxPx {
		return formatNumber(minSize) + "rem"
	}
	maxSize := maxPx / rootSize

	minViewport := viewport.Min / rootSize
	maxViewport := viewport.Max / rootSize

	slope := (maxSize - minSize) / (maxViewport - minViewport)
	intersection := -minViewport*slope + minSize

	// min/max keep full precision, the preferred value is fixed to 2 decimals
	return fmt.Sprintf("clamp(%srem, %srem + %svw, %srem)",
		formatNumber(minSize),
		toFixed2(intersection),
		toFixed2(slope*100),
		formatNumber(maxSize))
}
