package detectors_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/technical-param/password-checker-web/strength/detectors"
)

var _ = Describe("RepeatedRun", func() {
	var detector detectors.Detector

	BeforeEach(func() {
		detector = detectors.RepeatedRun()
	})

	It("fires when a character repeats four times in a row", func() {
		finding, found := detector.Detect("xxaaaaxx")
		Expect(found).To(BeTrue())
		Expect(finding.Reason).To(Equal("repeated pattern"))
		Expect(finding.Penalty).To(Equal(20))
	})

	It("stays quiet at three in a row", func() {
		_, found := detector.Detect("xxaaaxx")
		Expect(found).To(BeFalse())
	})

	It("is case-sensitive", func() {
		_, found := detector.Detect("aaAA")
		Expect(found).To(BeFalse())
	})

	It("fires on repeated symbols", func() {
		_, found := detector.Detect("ab!!!!cd")
		Expect(found).To(BeTrue())
	})
})

var _ = Describe("RepeatedDigits", func() {
	var detector detectors.Detector

	BeforeEach(func() {
		detector = detectors.RepeatedDigits()
	})

	It("fires when a digit repeats three times in a row", func() {
		finding, found := detector.Detect("ab111cd")
		Expect(found).To(BeTrue())
		Expect(finding.Reason).To(Equal("repeated numbers"))
		Expect(finding.Penalty).To(Equal(15))
	})

	It("stays quiet at two in a row", func() {
		_, found := detector.Detect("ab11cd")
		Expect(found).To(BeFalse())
	})

	It("ignores repeated letters", func() {
		_, found := detector.Detect("aaa")
		Expect(found).To(BeFalse())
	})

	It("does not bridge runs across non-digits", func() {
		_, found := detector.Detect("1a1a1")
		Expect(found).To(BeFalse())
	})
})
