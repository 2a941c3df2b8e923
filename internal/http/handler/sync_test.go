package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"flowledger/internal/core"
	"flowledger/internal/ethereum"
	"flowledger/internal/explorer"
	"flowledger/internal/http/handler"
	"flowledger/internal/http/handler/fake"
	"flowledger/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SyncHandler", func() {
	var (
		sh            *handler.SyncHandler
		fakeService   *fake.SyncService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.SyncService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = payload.DecodeValidator{}.DecodeAndValidateJSONPayload

		w = httptest.NewRecorder()
		sh = handler.NewSyncHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleSyncExplorer", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/sync/explorer", strings.NewReader(`{"address":"`+alice+`","startBlock":12}`))
			fakeService.SyncExplorerReturns(3, nil)
		})

		JustBeforeEach(func() {
			sh.HandleSyncExplorer(w, req)
		})

		It("should return the inserted count", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var data map[string]int
			decode(w, &data)
			Expect(data["inserted"]).To(Equal(3))

			_, syncReq := fakeService.SyncExplorerArgsForCall(0)
			Expect(syncReq.Address).To(Equal(alice))
			Expect(*syncReq.StartBlock).To(Equal(uint64(12)))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 without syncing", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.SyncExplorerCallCount()).To(BeZero())
			})
		})

		When("the API key is missing", func() {
			BeforeEach(func() {
				fakeService.SyncExplorerReturns(0, explorer.ErrMissingAPIKey)
			})

			It("should return 422 with the reason", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(decode(w, nil).Error).To(Equal(explorer.ErrMissingAPIKey.Error()))
			})
		})

		When("the explorer reports an error", func() {
			BeforeEach(func() {
				fakeService.SyncExplorerReturns(0, &explorer.UpstreamError{Message: "Max rate limit reached"})
			})

			It("should return 502 with the upstream message", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(decode(w, nil).Error).To(Equal("Max rate limit reached"))
			})
		})

		When("the explorer cannot be reached", func() {
			BeforeEach(func() {
				fakeService.SyncExplorerReturns(0, fmt.Errorf("http request: %w: %w", explorer.ErrUnreachable, errors.New("connection reset")))
			})

			It("should return 502 with the reason", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(decode(w, nil).Error).To(ContainSubstring("connection reset"))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeService.SyncExplorerReturns(0, fakeErr)
			})

			It("should return 500 and hide the details", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSyncChain", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/ledger/sync/chain", strings.NewReader(`{"address":"`+alice+`","days":7}`))
		})

		JustBeforeEach(func() {
			sh.HandleSyncChain(w, req)
		})

		It("should pass the window through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, address, days := fakeService.SyncChainArgsForCall(0)
			Expect(address).To(Equal(alice))
			Expect(days).To(Equal(7))
		})

		When("the address is rejected by the ledger", func() {
			BeforeEach(func() {
				fakeService.SyncChainReturns(0, core.ErrInvalidAddress)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeService.SyncChainReturns(0, fmt.Errorf("get latest block: %w: %w", ethereum.ErrNode, errors.New("dial tcp 127.0.0.1:8545: connection refused")))
			})

			It("should return 502 with the node error", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(decode(w, nil).Error).To(ContainSubstring("connection refused"))
			})
		})
	})
})
