package httpadapter

import (
	"net/http"

	"campaign-engine/internal/core/port"
)

// handleABTestAnalyze picks the winning variant. Fewer than two variants is
// HTTP 400; an analysis failure is HTTP 500.
func (h *Handler) handleABTestAnalyze(w http.ResponseWriter, r *http.Request) {
	var req port.ABTestRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.AnalyzeABTest(r.Context(), req)
	if err != nil {
		h.fail(w, r, "analyze ab test", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
