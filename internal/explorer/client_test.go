package explorer_test

import (
	"context"
	"errors"
	"flowledger/internal/explorer"
	"flowledger/internal/ratelimit"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const contract = "0x3c499c542cef5e3811e1192ce70d8cc03d5c3359"

var _ = Describe("Client", func() {
	var (
		server    *httptest.Server
		status    int
		body      string
		requests  []url.Values
		client    *explorer.Client
		params    explorer.Params
		transfers []explorer.Transfer
		err       error
	)

	BeforeEach(func() {
		status = http.StatusOK
		requests = nil
		params = explorer.Params{
			APIKey:     "secret",
			Address:    "0x1111111111111111111111111111111111111111",
			StartBlock: 42,
		}

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.URL.Query())
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		DeferCleanup(server.Close)

		client = explorer.NewClient(server.Client(), server.URL, contract, ratelimit.NewGate("test", time.Millisecond))
	})

	JustBeforeEach(func() {
		transfers, err = client.FetchTokenTransfers(context.Background(), params)
	})

	When("the explorer returns transfers", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":[{"blockNumber":"100","timeStamp":"1700000000","hash":"0xAA","from":"0x1111111111111111111111111111111111111111","to":"0x2222222222222222222222222222222222222222","value":"1000000","tokenSymbol":"USDC","tokenDecimal":"6","gasUsed":"21000","gasPrice":"30"}]}`
		})

		It("should decode them and send the tokentx query", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(1))
			Expect(transfers[0].Hash).To(Equal("0xAA"))

			block, err := transfers[0].Block()
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(Equal(uint64(100)))
			decimals, err := transfers[0].Decimals()
			Expect(err).NotTo(HaveOccurred())
			Expect(decimals).To(Equal(uint8(6)))

			Expect(requests).To(HaveLen(1))
			q := requests[0]
			Expect(q.Get("module")).To(Equal("account"))
			Expect(q.Get("action")).To(Equal("tokentx"))
			Expect(q.Get("contractaddress")).To(Equal(contract))
			Expect(q.Get("address")).To(Equal(params.Address))
			Expect(q.Get("startblock")).To(Equal("42"))
			Expect(q.Get("endblock")).To(Equal("99999999"))
			Expect(q.Get("page")).To(Equal("1"))
			Expect(q.Get("offset")).To(Equal("100"))
			Expect(q.Get("sort")).To(Equal("desc"))
			Expect(q.Get("apikey")).To(Equal("secret"))
		})
	})

	When("no transactions exist", func() {
		BeforeEach(func() {
			body = `{"status":"0","message":"No transactions found","result":[]}`
		})

		It("should return an empty result without error", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(BeEmpty())
		})
	})

	When("the explorer reports an error", func() {
		BeforeEach(func() {
			body = `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`
		})

		It("should surface the message verbatim", func() {
			var upstream *explorer.UpstreamError
			Expect(errors.As(err, &upstream)).To(BeTrue())
			Expect(upstream.Message).To(Equal("NOTOK"))
			Expect(transfers).To(BeEmpty())
		})
	})

	When("the error carries no message", func() {
		BeforeEach(func() {
			body = `{"status":"0","message":"","result":""}`
		})

		It("should fall back to a generic message", func() {
			Expect(err).To(MatchError("Unknown error"))
		})
	})

	When("a successful status carries a string result", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":"Max rate limit reached"}`
		})

		It("should treat the string as an upstream error", func() {
			Expect(err).To(MatchError("Max rate limit reached"))
		})
	})

	When("the HTTP status is not OK", func() {
		BeforeEach(func() {
			status = http.StatusBadGateway
			body = "bad gateway"
		})

		It("should return an upstream error", func() {
			var upstream *explorer.UpstreamError
			Expect(errors.As(err, &upstream)).To(BeTrue())
			Expect(upstream.Message).To(ContainSubstring("502"))
		})
	})

	When("the explorer cannot be reached", func() {
		BeforeEach(func() {
			server.Close()
		})

		It("should mark the failure as unreachable", func() {
			Expect(err).To(MatchError(explorer.ErrUnreachable))
			Expect(transfers).To(BeNil())
		})
	})

	When("the API key is missing", func() {
		BeforeEach(func() {
			params.APIKey = ""
		})

		It("should fail without calling the explorer", func() {
			Expect(err).To(MatchError(explorer.ErrMissingAPIKey))
			Expect(requests).To(BeEmpty())
		})
	})
})
