package detectors

// Built-in word and pattern lists. All matching against them is
// case-insensitive; entries must be lowercase.
//
// Slice order is the fixed iteration order for dictionary matching, so the
// first entry that matches is the one reported.

var commonPasswords = []string{
	"123456", "password", "12345678", "qwerty", "abc123", "monkey", "letmein",
	"dragon", "111111", "baseball", "iloveyou", "trustno1", "1234567", "sunshine",
	"princess", "admin", "welcome", "football", "qazwsx", "password1",
}

var dictionaryWords = []string{
	"password", "admin", "user", "login", "welcome", "love", "secret",
	"master", "hello", "service", "system", "pass", "qwerty",
}

var keyboardPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "1qaz2wsx", "qazwsx", "password",
}

var numericSequences = []string{
	"0123", "1234", "2345", "3456", "4567", "5678", "6789",
	"9876", "8765", "7654",
}
