package handler

import (
	"flowledger/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	SyncExplorer = "POST /ledger/sync/explorer"
	SyncChain    = "POST /ledger/sync/chain"
)

type SyncHandler struct {
	responder
	requestValidator RequestValidator
	ledger           SyncService
}

func NewSyncHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, syncService SyncService) *SyncHandler {
	return &SyncHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           syncService,
	}
}

func (h *SyncHandler) HandleSyncExplorer(w http.ResponseWriter, r *http.Request) {
	var req payload.ExplorerSyncRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, SyncExplorer, "Could not sync transfers", err)
		return
	}

	inserted, err := h.ledger.SyncExplorer(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, SyncExplorer, "Could not sync transfers", err)
		return
	}

	h.ok(w, r, "Transfers synced", map[string]int{"inserted": inserted})
}

func (h *SyncHandler) HandleSyncChain(w http.ResponseWriter, r *http.Request) {
	var req payload.ChainSyncRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, SyncChain, "Could not sync transfers", err)
		return
	}

	inserted, err := h.ledger.SyncChain(r.Context(), req.Address, req.Days)
	if err != nil {
		h.fail(w, r, SyncChain, "Could not sync transfers", err)
		return
	}

	h.ok(w, r, "Transfers synced", map[string]int{"inserted": inserted})
}
