package detectors

// DefaultSet returns every detector in its fixed evaluation order. The order
// determines reason ordering in results, so it must stay stable.
func DefaultSet() []Detector {
	return SetWithWords(nil)
}

// SetWithWords is DefaultSet with extra words folded into the common-password
// and dictionary detectors.
func SetWithWords(words []string) []Detector {
	return []Detector{
		MissingLowercase(),
		MissingUppercase(),
		MissingDigit(),
		MissingSymbol(),
		Common(words...),
		Dictionary(words...),
		RepeatedRun(),
		RepeatedDigits(),
		NumericSequence(),
		KeyboardPattern(),
		TooShort(),
	}
}
