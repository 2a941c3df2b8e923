package handler

import (
	"flowledger/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	IssuePayslip   = "POST /ledger/payslips"
	ResolvePayslip = "GET /ledger/payslips/{token}"
)

type PayslipHandler struct {
	responder
	requestValidator RequestValidator
	ledger           PayslipService
}

func NewPayslipHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, payslipService PayslipService) *PayslipHandler {
	return &PayslipHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           payslipService,
	}
}

func (h *PayslipHandler) HandleIssuePayslip(w http.ResponseWriter, r *http.Request) {
	var req payload.PayslipRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, IssuePayslip, "Could not issue payslip", err)
		return
	}

	token, err := h.ledger.IssuePayslip(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, IssuePayslip, "Could not issue payslip", err)
		return
	}

	h.ok(w, r, "Payslip issued", map[string]string{"token": token})
}

func (h *PayslipHandler) HandleResolvePayslip(w http.ResponseWriter, r *http.Request) {
	payslip, err := h.ledger.ResolvePayslip(r.Context(), r.PathValue("token"))
	if err != nil {
		h.fail(w, r, ResolvePayslip, "Could not open payslip", err)
		return
	}

	h.ok(w, r, "", payslip)
}
