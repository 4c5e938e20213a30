package detectors

import "strings"

const numericSequencePenalty = 15

type numericSequence struct{}

// NumericSequence fires when the password contains any four-digit ascending
// or descending run from the fixed sequence list.
func NumericSequence() Detector {
	return &numericSequence{}
}

func (numericSequence) Detect(password string) (Finding, bool) {
	for _, seq := range numericSequences {
		if strings.Contains(password, seq) {
			return Finding{Reason: "numeric sequence", Penalty: numericSequencePenalty}, true
		}
	}

	return Finding{}, false
}
