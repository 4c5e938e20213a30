package detectors

import (
	"bufio"
	"io"
	"strings"
)

// WordsFromReader reads one word per line, lowercasing and skipping blanks.
// The returned order is the file order, which fixes match precedence for any
// words appended to the dictionary.
func WordsFromReader(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
