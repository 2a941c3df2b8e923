package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var (
	Export = "GET /ledger/export"
	Import = "POST /ledger/import"
	Clear  = "DELETE /ledger/data"
)

type SnapshotHandler struct {
	responder
	requestValidator RequestValidator
	ledger           SnapshotService
}

func NewSnapshotHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, snapshotService SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           snapshotService,
	}
}

// HandleExport answers with the snapshot document itself, outside the envelope, so it
// can be fed back to import unchanged.
func (h *SnapshotHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.ledger.Export(r.Context())
	if err != nil {
		h.fail(w, r, Export, "Export failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="flowledger-export.json"`)
	if _, err := w.Write(data); err != nil {
		h.logs.Errorw("failed to write export", "error", err, "handler", Export)
	}
}

func (h *SnapshotHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	data, err := h.requestValidator.ReadBody(r)
	if err != nil {
		h.invalid(w, r, Import, "Import failed", err)
		return
	}

	stats, err := h.ledger.Import(r.Context(), data)
	if err != nil {
		h.fail(w, r, Import, "Import failed", err)
		return
	}

	message := "Snapshot imported"
	if dup := stats.Duplicates(); dup > 0 {
		message = fmt.Sprintf("Snapshot imported, %d rows already present were skipped", dup)
	}
	h.ok(w, r, message, stats)
}

// HandleClear wipes every collection. The caller must confirm with ?confirm=true.
func (h *SnapshotHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		h.invalid(w, r, Clear, "Clear refused", fmt.Errorf("confirm=true query parameter is required"))
		return
	}

	if err := h.ledger.Clear(r.Context()); err != nil {
		h.fail(w, r, Clear, "Clear failed", err)
		return
	}

	h.ok(w, r, "All data cleared", nil)
}
