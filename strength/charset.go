package strength

import "unicode"

// Alphabet size contributions per character class.
const (
	lowercaseAlphabet = 26
	uppercaseAlphabet = 26
	digitAlphabet     = 10
	symbolAlphabet    = 32
	nonASCIIAlphabet  = 500
)

// Profile records which character classes appear in a password and the
// estimated size of the alphabet it was drawn from.
type Profile struct {
	HasLowercase bool
	HasUppercase bool
	HasDigit     bool
	HasSymbol    bool
	HasNonASCII  bool

	// AlphabetSize is the sum of the per-class contributions, never below 1.
	AlphabetSize int
}

// EstimateCharset classifies a password's character repertoire. It is total:
// the empty string yields a profile with no classes and alphabet size 1.
func EstimateCharset(password string) Profile {
	var p Profile

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.HasLowercase = true
		case unicode.IsUpper(r):
			p.HasUppercase = true
		case unicode.IsDigit(r):
			p.HasDigit = true
		}

		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			p.HasSymbol = true
		}

		if r > unicode.MaxASCII {
			p.HasNonASCII = true
		}
	}

	size := 0
	if p.HasLowercase {
		size += lowercaseAlphabet
	}
	if p.HasUppercase {
		size += uppercaseAlphabet
	}
	if p.HasDigit {
		size += digitAlphabet
	}
	if p.HasSymbol {
		size += symbolAlphabet
	}
	if p.HasNonASCII {
		size += nonASCIIAlphabet
	}

	if size < 1 {
		size = 1
	}
	p.AlphabetSize = size

	return p
}

// CategoryCount is the number of satisfied character categories out of
// lowercase, uppercase, digit, and symbol.
func (p Profile) CategoryCount() int {
	count := 0
	for _, present := range []bool{p.HasLowercase, p.HasUppercase, p.HasDigit, p.HasSymbol} {
		if present {
			count++
		}
	}

	return count
}
