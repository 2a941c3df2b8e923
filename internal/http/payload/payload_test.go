package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"flowledger/internal/http/payload"

	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	address = "0x1111111111111111111111111111111111111111"
	txHash  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	request := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}

	It("should decode and validate a payload", func() {
		var p payload.ChainSyncRequest
		Expect(dv.DecodeAndValidateJSONPayload(request(`{"address":"`+address+`","days":7}`), &p)).To(Succeed())
		Expect(p.Days).To(Equal(7))
	})

	It("should reject unknown fields", func() {
		var p payload.ChainSyncRequest
		err := dv.DecodeAndValidateJSONPayload(request(`{"address":"`+address+`","weeks":1}`), &p)
		Expect(err).To(MatchError(ContainSubstring("unknown field")))
	})

	It("should run the payload's rules", func() {
		var p payload.ChainSyncRequest
		err := dv.DecodeAndValidateJSONPayload(request(`{"address":"0x12"}`), &p)
		Expect(err).To(MatchError(ContainSubstring("address")))
	})

	It("should read a raw json body", func() {
		raw, err := dv.ReadBody(request(`{"version":1}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(Equal(`{"version":1}`))

		_, err = dv.ReadBody(request(`{"version":`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Validation rules", func() {
	DescribeTable("payloads",
		func(p validation.Validatable, valid bool) {
			if valid {
				Expect(p.Validate()).To(Succeed())
			} else {
				Expect(p.Validate()).NotTo(Succeed())
			}
		},
		Entry("explorer sync", payload.ExplorerSyncRequest{Address: address}, true),
		Entry("explorer sync without address", payload.ExplorerSyncRequest{}, false),
		Entry("explorer sync with negative page", payload.ExplorerSyncRequest{Address: address, Page: -1}, false),
		Entry("chain sync with too many days", payload.ChainSyncRequest{Address: address, Days: 5000}, false),
		Entry("annotation", payload.AnnotationRequest{Kind: "TX_HASH", ID: txHash, Tags: []string{"a"}}, true),
		Entry("annotation with unknown kind", payload.AnnotationRequest{Kind: "INVOICE", ID: txHash}, false),
		Entry("annotation without id", payload.AnnotationRequest{Kind: "REQUEST"}, false),
		Entry("worker", payload.WorkerRequest{Address: address, Name: "Bob"}, true),
		Entry("worker without name", payload.WorkerRequest{Address: address}, false),
		Entry("payroll", payload.PayrollRequest{Employer: address, Payments: []payload.Payment{{Worker: address, Amount: "100"}}}, true),
		Entry("payroll with decimal amount", payload.PayrollRequest{Employer: address, Payments: []payload.Payment{{Worker: address, Amount: "1.5"}}}, false),
		Entry("payroll without payments", payload.PayrollRequest{Employer: address}, false),
		Entry("payroll with unknown status", payload.PayrollRequest{Employer: address, Status: "late", Payments: []payload.Payment{{Worker: address, Amount: "1"}}}, false),
		Entry("payment status", payload.PaymentStatusRequest{Worker: address, Status: "paid", TxHash: txHash}, true),
		Entry("payment status with bad hash", payload.PaymentStatusRequest{Worker: address, Status: "paid", TxHash: "0x1"}, false),
		Entry("pay request", payload.PayRequestBody{ID: txHash, WorkerAddress: address, EmployerAddress: address, Amount: "5"}, true),
		Entry("pay request with non-hash id", payload.PayRequestBody{ID: "req-1", WorkerAddress: address, EmployerAddress: address, Amount: "5"}, false),
		Entry("payslip", payload.PayslipRequest{Kind: "PAYROLL_PAYMENT", ID: "run-1:0"}, true),
	)

	It("should convert an annotation into a core input", func() {
		input := payload.AnnotationRequest{Kind: "TX_HASH", ID: txHash, MemoText: "memo", Tags: []string{"x"}}.ToCore()
		Expect(string(input.Reference.Kind)).To(Equal("TX_HASH"))
		Expect(input.Reference.ID).To(Equal(txHash))
		Expect(input.MemoText).To(Equal("memo"))
	})
})
