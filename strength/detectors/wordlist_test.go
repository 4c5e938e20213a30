package detectors_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/technical-param/password-checker-web/strength/detectors"
)

var _ = Describe("WordsFromReader", func() {
	It("reads one lowercased word per line, preserving order", func() {
		words, err := detectors.WordsFromReader(strings.NewReader("Wombat\n\n  hunter2  \nCorge\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]string{"wombat", "hunter2", "corge"}))
	})

	It("returns nothing for an empty reader", func() {
		words, err := detectors.WordsFromReader(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(BeEmpty())
	})
})
