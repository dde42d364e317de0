package themegen

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// formatNumber renders v the way JavaScript's Number#toString does:
// shortest round-trip digits, exponent form outside [1e-6, 1e21).
func formatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// toFixed2 renders v with exactly two decimals using the exact binary value,
// rounding ties away from zero (Number#toFixed semantics).
func toFixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNumber(v)
	}

	neg := v < 0
	if neg {
		v = -v
	}
	if v >= 1e21 {
		s := formatNumber(v)
		if neg {
			return "-" + s
		}
		return s
	}

	scaled := new(big.Float).SetPrec(2048).SetFloat64(v)
	scaled.Mul(scaled, big.NewFloat(100))
	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(2048).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg {
		return "-" + s
	}
	return s
}
