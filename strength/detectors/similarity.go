package detectors

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarityRatio is the Ratcliff/Obershelp ratio between two strings,
// computed rune-by-rune: 2*M/T where M is the number of matched runes and T
// the total length of both inputs. 1.0 means identical, 0.0 means disjoint.
func similarityRatio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
