package handler

import (
	"flowledger/internal/core"
	"flowledger/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	GetAnnotation  = "GET /ledger/annotations/{kind}/{id}"
	SaveAnnotation = "PUT /ledger/annotations"
)

type AnnotationHandler struct {
	responder
	requestValidator RequestValidator
	ledger           AnnotationService
}

func NewAnnotationHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, annotationService AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		ledger:           annotationService,
	}
}

func (h *AnnotationHandler) HandleGetAnnotation(w http.ResponseWriter, r *http.Request) {
	ref, err := core.NewReference(r.PathValue("kind"), r.PathValue("id"))
	if err != nil {
		h.invalid(w, r, GetAnnotation, "Could not get annotation", err)
		return
	}

	annotation, found, err := h.ledger.GetAnnotation(r.Context(), ref)
	if err != nil {
		h.fail(w, r, GetAnnotation, "Could not get annotation", err)
		return
	}
	if !found {
		h.fail(w, r, GetAnnotation, "Annotation not found", core.ErrNotFound)
		return
	}

	h.ok(w, r, "", annotation)
}

func (h *AnnotationHandler) HandleSaveAnnotation(w http.ResponseWriter, r *http.Request) {
	var req payload.AnnotationRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.invalid(w, r, SaveAnnotation, "Could not save annotation", err)
		return
	}

	annotation, err := h.ledger.SaveAnnotation(r.Context(), req.ToCore())
	if err != nil {
		h.fail(w, r, SaveAnnotation, "Could not save annotation", err)
		return
	}

	h.ok(w, r, "Annotation saved", annotation)
}
