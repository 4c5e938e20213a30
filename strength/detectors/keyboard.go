package detectors

import "strings"

const keyboardPatternPenalty = 18

type keyboardPattern struct{}

// KeyboardPattern fires on a case-insensitive substring match against common
// keyboard-walk strings.
func KeyboardPattern() Detector {
	return &keyboardPattern{}
}

func (keyboardPattern) Detect(password string) (Finding, bool) {
	low := strings.ToLower(password)

	for _, pattern := range keyboardPatterns {
		if strings.Contains(low, pattern) {
			return Finding{Reason: "keyboard pattern", Penalty: keyboardPatternPenalty}, true
		}
	}

	return Finding{}, false
}
