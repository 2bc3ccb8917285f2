package httpadapter

import (
	"net/http"
	"time"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// handleStatsOverview returns decision counts from the audit log over a
// period. It accepts optional `from`, `to` (RFC3339 timestamps) and
// `engine` query parameters. If no period is provided, it defaults to the
// last 24 hours. Invalid parameters result in HTTP 400. Internal errors
// produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'from' timestamp")
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'to' timestamp")
			return
		}
	} else {
		req.To = time.Now()
	}

	if req.From.After(req.To) {
		h.writeError(w, http.StatusBadRequest, "'from' is after 'to'")
		return
	}

	if e := q.Get("engine"); e != "" {
		engine := domain.Engine(e)
		if !engine.Valid() {
			h.writeError(w, http.StatusBadRequest, "unknown engine")
			return
		}
		req.Engine = &engine
	}

	stats, err := h.stats.GetStats(r.Context(), req)
	if err != nil {
		h.fail(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
