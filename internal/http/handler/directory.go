package handler

import (
	"flowledger/internal/http/payload"
	"flowledger/internal/repository"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	GetSetting    = "GET /ledger/settings/{key}"
	PutSetting    = "PUT /ledger/settings/{key}"
	DeleteSetting = "DELETE /ledger/settings/{key}"

	ListWorkers  = "GET /ledger/workers"
	CreateWorker = "POST /ledger/workers"
	UpdateWorker = "PUT /ledger/workers/{id}"
	DeleteWorker = "DELETE /ledger/workers/{id}"

	CreatePayroll       = "POST /ledger/payroll"
	ListPayroll         = "GET /ledger/payroll"
	GetPayroll          = "GET /ledger/payroll/{runId}"
	UpdatePaymentStatus = "PATCH /ledger/payroll/{runId}/payments"
	UpdatePayrollStatus = "PATCH /ledger/payroll/{runId}/status"

	CreatePayRequest       = "POST /ledger/requests"
	ListPayRequests        = "GET /ledger/requests"
	GetPayRequest          = "GET /ledger/requests/{id}"
	UpdatePayRequestStatus = "PATCH /ledger/requests/{id}/status"
)

type DirectoryHandler struct {
	responder
	requestValidator RequestValidator
	ledger           DirectoryService
}

func NewDirectoryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, directoryService DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           directoryService,
	}
}

func (h *DirectoryHandler) HandleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := h.ledger.GetSetting(r.Context(), key)
	if err != nil {
		h.fail(w, r, GetSetting, "Could not get setting", err)
		return
	}
	h.ok(w, r, "", map[string]string{"key": key, "value": value})
}

func (h *DirectoryHandler) HandlePutSetting(w http.ResponseWriter, r *http.Request) {
	var req payload.SettingRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, PutSetting, "Could not save setting", err)
		return
	}

	key := r.PathValue("key")
	if err := h.ledger.SetSetting(r.Context(), key, req.Value); err != nil {
		h.fail(w, r, PutSetting, "Could not save setting", err)
		return
	}
	h.ok(w, r, "Setting saved", map[string]string{"key": key})
}

func (h *DirectoryHandler) HandleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteSetting(r.Context(), r.PathValue("key")); err != nil {
		h.fail(w, r, DeleteSetting, "Could not delete setting", err)
		return
	}
	h.ok(w, r, "Setting deleted", nil)
}

func (h *DirectoryHandler) HandleListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.ledger.ListWorkers(r.Context())
	if err != nil {
		h.fail(w, r, ListWorkers, "Could not list workers", err)
		return
	}
	h.ok(w, r, "", workers)
}

func (h *DirectoryHandler) HandleCreateWorker(w http.ResponseWriter, r *http.Request) {
	var req payload.WorkerRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, CreateWorker, "Could not create worker", err)
		return
	}

	worker, err := h.ledger.CreateWorker(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, CreateWorker, "Could not create worker", err)
		return
	}
	h.respond(w, Response{Message: "Worker created", Data: worker}, http.StatusCreated, requestID(r))
}

func (h *DirectoryHandler) HandleUpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.invalid(w, r, UpdateWorker, "Could not update worker", err)
		return
	}

	var req payload.WorkerUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, UpdateWorker, "Could not update worker", err)
		return
	}

	worker, err := h.ledger.UpdateWorker(r.Context(), id, req.ToCore())
	if err != nil {
		h.fail(w, r, UpdateWorker, "Could not update worker", err)
		return
	}
	h.ok(w, r, "Worker updated", worker)
}

func (h *DirectoryHandler) HandleDeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.invalid(w, r, DeleteWorker, "Could not delete worker", err)
		return
	}

	if err := h.ledger.DeleteWorker(r.Context(), id); err != nil {
		h.fail(w, r, DeleteWorker, "Could not delete worker", err)
		return
	}
	h.ok(w, r, "Worker deleted", nil)
}

func (h *DirectoryHandler) HandleCreatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payload.PayrollRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, CreatePayroll, "Could not create payroll run", err)
		return
	}

	run, err := h.ledger.CreatePayrollRun(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, CreatePayroll, "Could not create payroll run", err)
		return
	}
	h.respond(w, Response{Message: "Payroll run created", Data: run}, http.StatusCreated, requestID(r))
}

func (h *DirectoryHandler) HandleListPayroll(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	runs, err := h.ledger.ListPayrollRuns(r.Context(), repository.PayrollFilter{
		Employer: values.Get("employer"),
		Status:   values.Get("status"),
	})
	if err != nil {
		h.fail(w, r, ListPayroll, "Could not list payroll runs", err)
		return
	}
	h.ok(w, r, "", runs)
}

func (h *DirectoryHandler) HandleGetPayroll(w http.ResponseWriter, r *http.Request) {
	run, err := h.ledger.GetPayrollRun(r.Context(), r.PathValue("runId"))
	if err != nil {
		h.fail(w, r, GetPayroll, "Could not get payroll run", err)
		return
	}
	h.ok(w, r, "", run)
}

func (h *DirectoryHandler) HandleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.PaymentStatusRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, UpdatePaymentStatus, "Could not update payment", err)
		return
	}

	run, err := h.ledger.UpdatePaymentStatus(r.Context(), r.PathValue("runId"), req.Worker, req.Status, req.TxHash)
	if err != nil {
		h.fail(w, r, UpdatePaymentStatus, "Could not update payment", err)
		return
	}
	h.ok(w, r, "Payment updated", run)
}

func (h *DirectoryHandler) HandleUpdatePayrollStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.StatusRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, UpdatePayrollStatus, "Could not update payroll run", err)
		return
	}

	run, err := h.ledger.UpdatePayrollStatus(r.Context(), r.PathValue("runId"), req.Status)
	if err != nil {
		h.fail(w, r, UpdatePayrollStatus, "Could not update payroll run", err)
		return
	}
	h.ok(w, r, "Payroll run updated", run)
}

func (h *DirectoryHandler) HandleCreatePayRequest(w http.ResponseWriter, r *http.Request) {
	var req payload.PayRequestBody
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, CreatePayRequest, "Could not create pay request", err)
		return
	}

	request, err := h.ledger.CreatePayRequest(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, CreatePayRequest, "Could not create pay request", err)
		return
	}
	h.respond(w, Response{Message: "Pay request created", Data: request}, http.StatusCreated, requestID(r))
}

func (h *DirectoryHandler) HandleListPayRequests(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	requests, err := h.ledger.ListPayRequests(r.Context(), repository.PayRequestFilter{
		Worker:   values.Get("worker"),
		Employer: values.Get("employer"),
		Status:   values.Get("status"),
	})
	if err != nil {
		h.fail(w, r, ListPayRequests, "Could not list pay requests", err)
		return
	}
	h.ok(w, r, "", requests)
}

func (h *DirectoryHandler) HandleGetPayRequest(w http.ResponseWriter, r *http.Request) {
	request, err := h.ledger.GetPayRequest(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, GetPayRequest, "Could not get pay request", err)
		return
	}
	h.ok(w, r, "", request)
}

func (h *DirectoryHandler) HandleUpdatePayRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.StatusRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, UpdatePayRequestStatus, "Could not update pay request", err)
		return
	}

	request, err := h.ledger.UpdatePayRequestStatus(r.Context(), r.PathValue("id"), req.Status, req.TxHash)
	if err != nil {
		h.fail(w, r, UpdatePayRequestStatus, "Could not update pay request", err)
		return
	}
	h.ok(w, r, "Pay request updated", request)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be a positive integer: %q", r.PathValue("id"))
	}
	return uint(id), nil
}
