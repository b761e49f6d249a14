package ir

import (
	"math"
	"strconv"
)

// FormatFloat formats f independently of locale: '.' as the decimal point, no
// digit grouping and the shortest representation which parses back to f.
// Exponent notation is used for magnitudes below 1e-6 or from 1e21.
// Non finite values are written NaN, Infinity and -Infinity.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) || bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, fmt, -1, bitSize)
	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

// ParseFloat parses the text of a number node.
func ParseFloat(raw string, bitSize int) (float64, error) {
	return strconv.ParseFloat(raw, bitSize)
}
