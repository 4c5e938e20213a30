package detectors

import "strings"

// leetMap reverses the digit and symbol substitutions commonly used to dress
// up a dictionary word. Ambiguous characters get their most common reading.
var leetMap = map[rune]rune{
	'4': 'a',
	'3': 'e',
	'0': 'o',
	'1': 'i',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
	'!': 'i',
}

func leetNormalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if sub, ok := leetMap[r]; ok {
			b.WriteRune(sub)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
