package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Search    = "GET /ledger/search"
	Summary   = "GET /ledger/summary/{address}"
	ExportCSV = "GET /ledger/export/csv"
)

const maxSearchLimit = 1000

type SearchHandler struct {
	responder
	ledger SearchService
}

func NewSearchHandler(logger *zap.SugaredLogger, searchService SearchService) *SearchHandler {
	return &SearchHandler{
		responder: responder{logs: logger},
		ledger:    searchService,
	}
}

// HandleSearch runs a query against the user's cached transfers and all annotations.
// Parameters: user (required), q and limit.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	user := values.Get("user")
	if user == "" {
		h.invalid(w, r, Search, "Search failed", fmt.Errorf("user query parameter is required"))
		return
	}

	limit, err := parseLimit(values.Get("limit"))
	if err != nil {
		h.invalid(w, r, Search, "Search failed", err)
		return
	}

	result, err := h.ledger.Search(r.Context(), user, values.Get("q"), limit)
	if err != nil {
		h.fail(w, r, Search, "Search failed", err)
		return
	}

	h.ok(w, r, "", result)
}

func (h *SearchHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Summary(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, r, Summary, "Could not summarize transfers", err)
		return
	}

	h.ok(w, r, "", summary)
}

func (h *SearchHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	user := values.Get("user")
	if user == "" {
		h.invalid(w, r, ExportCSV, "Export failed", fmt.Errorf("user query parameter is required"))
		return
	}

	data, err := h.ledger.ExportCSV(r.Context(), user, values.Get("q"))
	if err != nil {
		h.fail(w, r, ExportCSV, "Export failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.csv"`)
	if _, err := w.Write(data); err != nil {
		h.logs.Errorw("failed to write csv", "error", err, "handler", ExportCSV)
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxSearchLimit {
		return 0, fmt.Errorf("limit must be an integer between 1 and %d", maxSearchLimit)
	}
	return limit, nil
}
