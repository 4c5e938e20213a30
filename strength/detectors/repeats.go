package detectors

import "unicode"

const (
	repeatedRunPenalty    = 20
	repeatedDigitsPenalty = 15

	repeatedRunLength    = 4
	repeatedDigitsLength = 3
)

// Go's regexp has no backreferences, so runs are found with a plain scan.

type repeatedRun struct{}

// RepeatedRun fires when any single character appears four or more times in
// a row.
func RepeatedRun() Detector {
	return &repeatedRun{}
}

func (repeatedRun) Detect(password string) (Finding, bool) {
	if longestRun(password, nil) >= repeatedRunLength {
		return Finding{Reason: "repeated pattern", Penalty: repeatedRunPenalty}, true
	}

	return Finding{}, false
}

type repeatedDigits struct{}

// RepeatedDigits fires when any single digit appears three or more times in
// a row.
func RepeatedDigits() Detector {
	return &repeatedDigits{}
}

func (repeatedDigits) Detect(password string) (Finding, bool) {
	if longestRun(password, unicode.IsDigit) >= repeatedDigitsLength {
		return Finding{Reason: "repeated numbers", Penalty: repeatedDigitsPenalty}, true
	}

	return Finding{}, false
}

// longestRun returns the length of the longest consecutive run of a single
// rune, counting only runes accepted by the filter (nil accepts all).
func longestRun(s string, filter func(rune) bool) int {
	var (
		longest int
		current int
		prev    rune
	)

	for _, r := range s {
		if filter != nil && !filter(r) {
			current = 0
			prev = 0
			continue
		}

		if r == prev {
			current++
		} else {
			current = 1
			prev = r
		}

		if current > longest {
			longest = current
		}
	}

	return longest
}
