package core_test

import (
	"flowledger/internal/core"
	"flowledger/internal/repository"
	tokenIssuer "flowledger/pkg/jwt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payslips", func() {
	var (
		f   *fixture
		ref core.Reference
	)

	BeforeEach(func() {
		f = newFixture()
		ref = core.Reference{Kind: core.ReferenceTxHash, ID: hash(3)}
		f.seed(repository.CachedTransfer{TransactionHash: hash(3), BlockNumber: 3, Timestamp: 300, From: alice, To: bob, Value: "2750000"})

		_, err := f.ledger.SaveAnnotation(f.ctx, core.AnnotationInput{Reference: ref, MemoText: "February salary"})
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return *f.clock }
		DeferCleanup(func() { tokenIssuer.TimeNow = time.Now })
	})

	It("should resolve an issued token to the transfer and its annotation", func() {
		token, err := f.ledger.IssuePayslip(f.ctx, ref)
		Expect(err).NotTo(HaveOccurred())

		payslip, err := f.ledger.ResolvePayslip(f.ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(payslip.Reference).To(Equal(ref))
		Expect(payslip.Amount).To(Equal("2.75"))
		Expect(payslip.Transfer.To).To(Equal(bob))
		Expect(payslip.Annotation.MemoText).To(Equal("February salary"))
		Expect(payslip.ExpiresAt).To(Equal(f.clock.Add(core.DefaultPayslipTTL).Unix()))
	})

	It("should refuse a token past its expiry", func() {
		token, err := f.ledger.IssuePayslip(f.ctx, ref)
		Expect(err).NotTo(HaveOccurred())

		f.advance(core.DefaultPayslipTTL + time.Hour)
		_, err = f.ledger.ResolvePayslip(f.ctx, token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should refuse a tampered token", func() {
		token, err := f.ledger.IssuePayslip(f.ctx, ref)
		Expect(err).NotTo(HaveOccurred())

		_, err = f.ledger.ResolvePayslip(f.ctx, token+"x")
		Expect(err).To(HaveOccurred())
	})

	It("should not issue for an uncached transfer", func() {
		_, err := f.ledger.IssuePayslip(f.ctx, core.Reference{Kind: core.ReferenceTxHash, ID: hash(4)})
		Expect(err).To(MatchError(core.ErrNotFound))
	})

	It("should issue for a payroll payment without a transfer", func() {
		token, err := f.ledger.IssuePayslip(f.ctx, core.Reference{Kind: core.ReferencePayrollPayment, ID: "run-1:0"})
		Expect(err).NotTo(HaveOccurred())

		payslip, err := f.ledger.ResolvePayslip(f.ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(payslip.Transfer).To(BeNil())
		Expect(payslip.Annotation).To(BeNil())
	})
})
