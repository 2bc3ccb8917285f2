package httpadapter

import (
	"net/http"

	"campaign-engine/internal/core/port"
)

func (h *Handler) handlePredictPerformance(w http.ResponseWriter, r *http.Request) {
	var req port.ForecastRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.PredictPerformance(r.Context(), req)
	if err != nil {
		h.fail(w, r, "predict performance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleAudienceInsights(w http.ResponseWriter, r *http.Request) {
	var req port.AudienceRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.AudienceInsights(r.Context(), req)
	if err != nil {
		h.fail(w, r, "audience insights", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
