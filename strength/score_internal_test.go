package strength

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("rawScore", func() {
	It("saturates the entropy base at 60", func() {
		Expect(rawScore(1000, 0, 0, 0)).To(Equal(60))
	})

	It("adds 5 per category and the length bonus", func() {
		// base 0, 4 categories, 16+ characters
		Expect(rawScore(0, 4, 16, 0)).To(Equal(32))
		Expect(rawScore(0, 4, 12, 0)).To(Equal(28))
		Expect(rawScore(0, 4, 8, 0)).To(Equal(24))
		Expect(rawScore(0, 4, 7, 0)).To(Equal(20))
	})

	It("clamps below at 0", func() {
		Expect(rawScore(0, 0, 0, 999)).To(Equal(0))
	})

	It("clamps above at 100", func() {
		Expect(rawScore(1000, 4, 16, -100)).To(Equal(100))
	})

	It("truncates the fractional part", func() {
		// base = min(19.93.., 60) with one category
		Expect(rawScore(19.931568, 1, 6, 0)).To(Equal(54))
	})
})

var _ = Describe("normalize", func() {
	It("maps raw scores to the fixed label bands", func() {
		score, label := normalize(0)
		Expect(score).To(Equal(0))
		Expect(label).To(Equal("Very Weak"))

		score, label = normalize(14)
		Expect(score).To(Equal(1))
		Expect(label).To(Equal("Weak"))

		score, label = normalize(23)
		Expect(score).To(Equal(2))
		Expect(label).To(Equal("Weak"))

		score, label = normalize(34)
		Expect(score).To(Equal(3))
		Expect(label).To(Equal("Fair"))

		score, label = normalize(42)
		Expect(score).To(Equal(4))
		Expect(label).To(Equal("Fair"))

		score, label = normalize(54)
		Expect(score).To(Equal(5))
		Expect(label).To(Equal("Good"))

		score, label = normalize(63)
		Expect(score).To(Equal(6))
		Expect(label).To(Equal("Good"))

		score, label = normalize(70)
		Expect(score).To(Equal(7))
		Expect(label).To(Equal("Strong"))

		score, label = normalize(81)
		Expect(score).To(Equal(8))
		Expect(label).To(Equal("Strong"))

		score, label = normalize(94)
		Expect(score).To(Equal(9))
		Expect(label).To(Equal("Excellent"))

		score, label = normalize(100)
		Expect(score).To(Equal(10))
		Expect(label).To(Equal("Excellent"))
	})

	It("never leaves the 0-10 range", func() {
		for raw := 0; raw <= 100; raw++ {
			score, label := normalize(raw)
			Expect(score).To(BeNumerically(">=", 0))
			Expect(score).To(BeNumerically("<=", 10))
			Expect(label).NotTo(BeEmpty())
		}
	})
})
