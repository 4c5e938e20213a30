package detectors_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/technical-param/password-checker-web/strength/detectors"
)

var _ = Describe("NumericSequence", func() {
	var detector detectors.Detector

	BeforeEach(func() {
		detector = detectors.NumericSequence()
	})

	It("fires on an ascending four-digit run", func() {
		finding, found := detector.Detect("x1234y")
		Expect(found).To(BeTrue())
		Expect(finding.Reason).To(Equal("numeric sequence"))
		Expect(finding.Penalty).To(Equal(15))
	})

	It("fires on a descending four-digit run", func() {
		_, found := detector.Detect("pw9876")
		Expect(found).To(BeTrue())
	})

	It("stays quiet on a three-digit run", func() {
		_, found := detector.Detect("abc123xyz")
		Expect(found).To(BeFalse())
	})

	It("stays quiet on descending runs outside the fixed set", func() {
		_, found := detector.Detect("4321")
		Expect(found).To(BeFalse())
	})
})

var _ = Describe("KeyboardPattern", func() {
	var detector detectors.Detector

	BeforeEach(func() {
		detector = detectors.KeyboardPattern()
	})

	It("fires on a keyboard walk substring", func() {
		finding, found := detector.Detect("xxQWErtyxx")
		Expect(found).To(BeTrue())
		Expect(finding.Reason).To(Equal("keyboard pattern"))
		Expect(finding.Penalty).To(Equal(18))
	})

	It("fires on 1qaz2wsx", func() {
		_, found := detector.Detect("my1qaz2wsx")
		Expect(found).To(BeTrue())
	})

	It("stays quiet otherwise", func() {
		_, found := detector.Detect("tr0ub4dor&3")
		Expect(found).To(BeFalse())
	})
})

var _ = Describe("TooShort", func() {
	var detector detectors.Detector

	BeforeEach(func() {
		detector = detectors.TooShort()
	})

	It("fires under six characters", func() {
		finding, found := detector.Detect("aB1!x")
		Expect(found).To(BeTrue())
		Expect(finding.Reason).To(Equal("too short"))
		Expect(finding.Penalty).To(Equal(30))
	})

	It("stays quiet at six characters", func() {
		_, found := detector.Detect("aB1!xy")
		Expect(found).To(BeFalse())
	})

	It("counts code points, not bytes", func() {
		_, found := detector.Detect("héllo!")
		Expect(found).To(BeFalse())
	})
})
