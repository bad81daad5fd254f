package validator

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Test address validation", func() {
	var errOut *bytes.Buffer

	BeforeEach(func() {
		errOut = new(bytes.Buffer)
	})

	Context("Test ValidateIP with a well formed address", func() {
		It("accepts IPv4 without a diagnostic", func() {
			Expect(ValidateIP("192.168.0.10", errOut)).To(BeTrue())
			Expect(errOut.Len()).To(Equal(0))
		})

		It("accepts IPv6 without a diagnostic", func() {
			Expect(ValidateIP("fd00::10", errOut)).To(BeTrue())
			Expect(errOut.Len()).To(Equal(0))
		})
	})

	Context("Test ValidateIP with a malformed address", func() {
		It("rejects out of range octets and reports the parse error", func() {
			Expect(ValidateIP("999.999.999.999", errOut)).To(BeFalse())
			Expect(errOut.String()).To(ContainSubstring(ErrInvalidAddress.Error()))
			Expect(errOut.String()).To(HaveSuffix("\n"))
		})

		It("rejects host names", func() {
			Expect(ValidateIP("arduino", errOut)).To(BeFalse())
			Expect(errOut.String()).NotTo(BeEmpty())
		})
	})
})
