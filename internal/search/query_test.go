package search_test

import (
	"flowledger/internal/search"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	var (
		query    string
		filters  search.Filters
		freeText string
		err      error
	)

	JustBeforeEach(func() {
		filters, freeText, err = search.Parse(query)
	})

	When("every token is present with an address", func() {
		BeforeEach(func() {
			query = "tag:invoice-1042 amount>100 since:2026-01-01 direction:in 0x1111111111111111111111111111111111111111"
		})

		It("should extract the filters and clear the free text", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.Tag).To(Equal("invoice-1042"))
			Expect(filters.MinAmount).To(Equal("100"))
			Expect(filters.MaxAmount).To(BeEmpty())
			Expect(filters.Since).NotTo(BeNil())
			Expect(*filters.Since).To(Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(filters.Until).To(BeNil())
			Expect(filters.Direction).To(Equal(search.DirectionIn))
			Expect(filters.Address).To(Equal("0x1111111111111111111111111111111111111111"))
			Expect(freeText).To(BeEmpty())
		})
	})

	When("tokens appear in another order", func() {
		BeforeEach(func() {
			query = "direction:OUT   coffee  amount<2.5 TAG:Food until:2026-02-28"
		})

		It("should keep the residual words as free text", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.Direction).To(Equal(search.DirectionOut))
			Expect(filters.MaxAmount).To(Equal("2.5"))
			Expect(filters.Tag).To(Equal("Food"))
			Expect(*filters.Until).To(Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
			Expect(freeText).To(Equal("coffee"))
		})
	})

	When("the free text has inner runs of spaces", func() {
		BeforeEach(func() {
			query = "tag:shop  coffee   beans "
		})

		It("should keep them and trim only the ends", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.Tag).To(Equal("shop"))
			Expect(freeText).To(Equal("coffee   beans"))
		})
	})

	When("the remainder is a transaction hash", func() {
		BeforeEach(func() {
			query = "0xABCDEF0000000000000000000000000000000000000000000000000000000001"
		})

		It("should become a lowercase hash filter", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.TxHash).To(Equal("0xabcdef0000000000000000000000000000000000000000000000000000000001"))
			Expect(filters.Address).To(BeEmpty())
			Expect(freeText).To(BeEmpty())
		})
	})

	When("the remainder only looks like hex", func() {
		BeforeEach(func() {
			query = "0x1234 rent"
		})

		It("should stay free text", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.Address).To(BeEmpty())
			Expect(filters.TxHash).To(BeEmpty())
			Expect(freeText).To(Equal("0x1234 rent"))
		})
	})

	When("direction is only a prefix of a word", func() {
		BeforeEach(func() {
			query = "direction:inbound"
		})

		It("should not be taken as a direction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters.Direction).To(BeEmpty())
			Expect(freeText).To(Equal("direction:inbound"))
		})
	})

	When("a date is not a calendar day", func() {
		BeforeEach(func() {
			query = "since:2026-13-40"
		})

		It("should fail with ErrInvalidQuery", func() {
			Expect(err).To(MatchError(search.ErrInvalidQuery))
		})
	})

	When("the query is empty", func() {
		BeforeEach(func() {
			query = "   "
		})

		It("should yield no filters", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filters).To(Equal(search.Filters{}))
			Expect(freeText).To(BeEmpty())
		})
	})
})

var _ = Describe("Filters", func() {
	It("should expose inclusive day bounds in unix seconds", func() {
		filters, _, err := search.Parse("since:2026-01-01 until:2026-01-01")
		Expect(err).NotTo(HaveOccurred())

		Expect(*filters.SinceUnix()).To(Equal(int64(1767225600)))
		Expect(*filters.UntilUnix()).To(Equal(int64(1767225600 + 86399)))
	})

	It("should return nil bounds when dates are absent", func() {
		Expect(search.Filters{}.SinceUnix()).To(BeNil())
		Expect(search.Filters{}.UntilUnix()).To(BeNil())
	})
})

var _ = Describe("MatchTag and MatchText", func() {
	tags := []string{"Invoice-1042", "rent"}

	It("should match tag substrings ignoring case", func() {
		Expect(search.MatchTag(tags, "invoice")).To(BeTrue())
		Expect(search.MatchTag(tags, "food")).To(BeFalse())
		Expect(search.MatchTag(nil, "rent")).To(BeFalse())
	})

	It("should match text in the memo or the tags", func() {
		Expect(search.MatchText("March Rent payment", nil, "rent pay")).To(BeTrue())
		Expect(search.MatchText("", tags, "1042")).To(BeTrue())
		Expect(search.MatchText("lunch", tags, "dinner")).To(BeFalse())
	})
})
