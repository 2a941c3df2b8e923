package search_test

import (
	"flowledger/internal/search"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ToUnits", func() {
	DescribeTable("scaling decimal literals",
		func(amount string, decimals uint8, roundUp bool, expected string) {
			units, err := search.ToUnits(amount, decimals, roundUp)
			Expect(err).NotTo(HaveOccurred())
			Expect(units.Dec()).To(Equal(expected))
		},
		Entry("whole number", "100", uint8(6), false, "100000000"),
		Entry("fraction", "0.5", uint8(6), false, "500000"),
		Entry("excess digits floored", "1.0000009", uint8(6), false, "1000000"),
		Entry("excess digits rounded up", "1.0000009", uint8(6), true, "1000001"),
		Entry("excess zero digits stay exact", "1.0000000", uint8(6), true, "1000000"),
		Entry("zero decimals", "42.9", uint8(0), false, "42"),
		Entry("leading zeros", "007.25", uint8(2), false, "725"),
		Entry("eighteen decimals", "1.5", uint8(18), false, "1500000000000000000"),
	)

	It("should reject non-numeric input", func() {
		_, err := search.ToUnits("1e6", 6, false)
		Expect(err).To(MatchError(search.ErrInvalidAmount))
	})
})

var _ = Describe("FormatUnits", func() {
	DescribeTable("rendering raw values",
		func(value string, decimals uint8, expected string) {
			formatted, err := search.FormatUnits(value, decimals)
			Expect(err).NotTo(HaveOccurred())
			Expect(formatted).To(Equal(expected))
		},
		Entry("whole token", "1000000", uint8(6), "1"),
		Entry("fractional", "1234567", uint8(6), "1.234567"),
		Entry("below one", "500", uint8(6), "0.0005"),
		Entry("zero", "0", uint8(6), "0"),
		Entry("no decimals", "15", uint8(0), "15"),
		Entry("beyond 64 bits", "340282366920938463463374607431768211456", uint8(18), "340282366920938463463.374607431768211456"),
	)

	It("should reject garbage", func() {
		_, err := search.FormatUnits("12abc", 6)
		Expect(err).To(MatchError(search.ErrInvalidAmount))
	})
})

var _ = Describe("MatchAmount", func() {
	DescribeTable("thresholds against 1000000 units of a 6 decimal token",
		func(query string, expected bool) {
			filters, _, err := search.Parse(query)
			Expect(err).NotTo(HaveOccurred())

			matched, err := filters.MatchAmount("1000000", 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(matched).To(Equal(expected))
		},
		Entry("above a half", "amount>0.5", true),
		Entry("above two", "amount>2", false),
		Entry("strictly above one", "amount>1", false),
		Entry("below two", "amount<2", true),
		Entry("strictly below one", "amount<1", false),
		Entry("below a hair over one", "amount<1.0000001", true),
		Entry("inside range", "amount>0.999999 amount<1.000001", true),
		Entry("no thresholds", "rent", true),
	)

	When("a threshold does not fit in 256 bits once scaled", func() {
		huge := "1" + strings.Repeat("0", 60)

		It("should treat the upper bound as unbounded", func() {
			filters, _, err := search.Parse("amount<" + huge)
			Expect(err).NotTo(HaveOccurred())

			matched, err := filters.MatchAmount("5000000000000000000", 18)
			Expect(err).NotTo(HaveOccurred())
			Expect(matched).To(BeTrue())
		})

		It("should match nothing above the lower bound", func() {
			filters, _, err := search.Parse("amount>" + huge)
			Expect(err).NotTo(HaveOccurred())

			matched, err := filters.MatchAmount("5000000000000000000", 18)
			Expect(err).NotTo(HaveOccurred())
			Expect(matched).To(BeFalse())
		})

		It("should report the overflow from ToUnits", func() {
			_, err := search.ToUnits(huge, 18, false)
			Expect(err).To(MatchError(search.ErrAmountOverflow))
		})
	})
})
