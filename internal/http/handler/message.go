package handler

import (
	"encoding/json"
	"errors"
	"flowledger/internal/core"
	"flowledger/internal/ethereum"
	"flowledger/internal/explorer"
	"flowledger/internal/http/handler/middleware"
	"flowledger/internal/search"
	tokenIssuer "flowledger/pkg/jwt"
	"net/http"

	"go.uber.org/zap"
)

const (
	oopsErr       = "Oops! Something went wrong. Please try again later."
	unexpectedErr = "unexpected error occurred"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// responder is embedded by every handler for the shared JSON envelope.
type responder struct {
	logs *zap.SugaredLogger
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// fail writes the error envelope with the status matching err. Details of internal
// errors stay in the log.
func (h responder) fail(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	requestId := requestID(r)
	code := statusFor(err)

	resp := Response{Message: message, Error: err.Error()}
	if code == http.StatusInternalServerError {
		resp.Error = unexpectedErr
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

// invalid answers 400 for a payload or parameter that failed decoding or validation.
func (h responder) invalid(w http.ResponseWriter, r *http.Request, route, message string, err error) {
	requestId := requestID(r)
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h responder) ok(w http.ResponseWriter, r *http.Request, message string, data any) {
	h.respond(w, Response{Message: message, Data: data}, http.StatusOK, requestID(r))
}

func requestID(r *http.Request) string {
	return middleware.RequestIDFrom(r.Context())
}

func statusFor(err error) int {
	var upstream *explorer.UpstreamError
	switch {
	case errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidReference),
		errors.Is(err, core.ErrInvalidSnapshot),
		errors.Is(err, core.ErrInvalidStatus),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidSetting),
		errors.Is(err, search.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, tokenIssuer.ErrTokenExpired),
		errors.Is(err, tokenIssuer.ErrTokenNotValid):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrNotFound),
		errors.Is(err, core.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrWorkerExists),
		errors.Is(err, core.ErrPayRequestExists),
		errors.Is(err, core.ErrPayrollRunExists),
		errors.Is(err, core.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, explorer.ErrMissingAPIKey):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream),
		errors.Is(err, explorer.ErrUnreachable),
		errors.Is(err, ethereum.ErrNode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
