package detectors

import "unicode/utf8"

const (
	tooShortPenalty   = 30
	minAcceptedLength = 6
)

type tooShort struct{}

// TooShort fires when the password is under six characters.
func TooShort() Detector {
	return &tooShort{}
}

func (tooShort) Detect(password string) (Finding, bool) {
	if utf8.RuneCountInString(password) >= minAcceptedLength {
		return Finding{}, false
	}

	return Finding{Reason: "too short", Penalty: tooShortPenalty}, true
}
