package detectors

import (
	"fmt"
	"strings"
)

const dictionaryPenalty = 25

// similarityThreshold is the whole-string ratio above which a password is
// considered a variation of a dictionary word.
const similarityThreshold = 0.78

type dictionaryDetector struct {
	words []string
}

// Dictionary fires when the password contains, or closely resembles, a word
// from the built-in dictionary plus any extra words given. Three checks run
// in order, first success wins: literal substring containment, containment
// after leet-speak normalization, then a whole-string similarity ratio.
func Dictionary(extra ...string) Detector {
	words := make([]string, 0, len(dictionaryWords)+len(extra))
	words = append(words, dictionaryWords...)
	for _, w := range extra {
		words = append(words, strings.ToLower(w))
	}

	return &dictionaryDetector{words: words}
}

func (d *dictionaryDetector) Detect(password string) (Finding, bool) {
	low := strings.ToLower(password)

	for _, w := range d.words {
		if strings.Contains(low, w) {
			return dictionaryFinding(w, 1.0), true
		}
	}

	normalized := leetNormalize(low)
	for _, w := range d.words {
		if strings.Contains(normalized, w) {
			return dictionaryFinding(w, 0.95), true
		}
	}

	for _, w := range d.words {
		if ratio := similarityRatio(low, w); ratio >= similarityThreshold {
			return dictionaryFinding(w, ratio), true
		}
	}

	return Finding{}, false
}

func dictionaryFinding(word string, similarity float64) Finding {
	return Finding{
		Reason:     fmt.Sprintf("dictionary word '%s'", word),
		Word:       word,
		Similarity: similarity,
		Penalty:    dictionaryPenalty,
	}
}
