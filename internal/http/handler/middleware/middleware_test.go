package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"flowledger/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seenID string
		next   http.Handler
		w      *httptest.ResponseRecorder
		req    *http.Request
	)

	BeforeEach(func() {
		seenID = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/ledger/search", nil)
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(uuid.Validate(seenID)).To(Succeed())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("should reuse the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).To(Equal("abc-123"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should log the response status with the request id", func() {
			core, logs := observer.New(zap.InfoLevel)
			h := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
			h = middleware.NewRequestIDMiddleware().RequestID(h)

			req.Header.Set(middleware.RequestIDHeader, "req-1")
			h.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["request_id"]).To(Equal("req-1"))
			Expect(fields["path"]).To(Equal("/ledger/search"))
		})
	})
})
