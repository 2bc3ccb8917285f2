package httpadapter

import (
	"net/http"

	"campaign-engine/internal/core/domain"
)

// handleContentGenerate returns ad copy. Generation falls back to templates
// when no language model answers, so only an undecodable body fails.
func (h *Handler) handleContentGenerate(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if !h.decode(w, r, &req) {
		return
	}
	out, err := h.svc.GenerateContent(r.Context(), req)
	if err != nil {
		h.fail(w, r, "generate content", err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}
