package httpadapter

import (
	"net/http"

	"campaign-engine/internal/core/port"
)

// handleBudgetOptimize recommends a new budget for a campaign. Malformed
// JSON and invalid campaigns or constraints produce HTTP 400. The optimizer
// degrades instead of failing, so a decodable and valid request always
// gets HTTP 200.
func (h *Handler) handleBudgetOptimize(w http.ResponseWriter, r *http.Request) {
	var req port.BudgetRequest
	if !h.decode(w, r, &req) {
		return
	}
	rec, err := h.svc.OptimizeBudget(r.Context(), req)
	if err != nil {
		h.fail(w, r, "optimize budget", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}
