package strength

import (
	"math"
	"unicode/utf8"
)

// Bits estimates password entropy as length times log2 of the alphabet size.
// Lengths are Unicode code points. The result is never negative or NaN: the
// empty string and an alphabet of 1 both yield 0.
func Bits(password string, alphabetSize int) float64 {
	length := utf8.RuneCountInString(password)
	if length == 0 || alphabetSize < 2 {
		return 0
	}

	return float64(length) * math.Log2(float64(alphabetSize))
}
