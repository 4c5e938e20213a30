package detectors

import "unicode"

const missingCategoryPenalty = 10

type missingCategory struct {
	reason  string
	present func(rune) bool
}

// MissingLowercase fires when the password has no lowercase letter.
func MissingLowercase() Detector {
	return &missingCategory{reason: "missing lowercase", present: unicode.IsLower}
}

// MissingUppercase fires when the password has no uppercase letter.
func MissingUppercase() Detector {
	return &missingCategory{reason: "missing uppercase", present: unicode.IsUpper}
}

// MissingDigit fires when the password has no digit.
func MissingDigit() Detector {
	return &missingCategory{reason: "missing digit", present: unicode.IsDigit}
}

// MissingSymbol fires when the password has no non-alphanumeric character.
func MissingSymbol() Detector {
	return &missingCategory{reason: "missing special", present: isSymbol}
}

func isSymbol(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

func (m *missingCategory) Detect(password string) (Finding, bool) {
	for _, r := range password {
		if m.present(r) {
			return Finding{}, false
		}
	}

	return Finding{Reason: m.reason, Penalty: missingCategoryPenalty}, true
}
