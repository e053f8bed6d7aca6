package lab

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFixed renders x with exactly digits fractional digits. Ties round
// away from zero on the exact binary value, NaN and infinities are spelled
// "NaN", "Infinity" and "-Infinity", and magnitudes of 1e21 or more fall
// back to exponent notation.
func FormatFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	if x == 0 {
		// -0 prints without a sign
		x = 0
	}
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	if x >= 1e21 {
		return sign + strconv.FormatFloat(x, 'g', -1, 64)
	}

	// 1100 fractional digits hold any float64 exactly.
	exact := new(big.Float).SetFloat64(x).Text('f', 1100)
	return sign + roundHalfUp(exact, digits)
}

func roundHalfUp(s string, digits int) string {
	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) <= digits {
		frac += "0"
	}

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		i := len(kept) - 1
		for ; i >= 0; i-- {
			if kept[i] == '9' {
				kept[i] = '0'
				continue
			}
			kept[i]++
			break
		}
		if i < 0 {
			kept = append([]byte{'1'}, kept...)
		}
	}

	n := len(kept) - digits
	if digits == 0 {
		return string(kept)
	}
	return string(kept[:n]) + "." + string(kept[n:])
}
