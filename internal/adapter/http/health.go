package httpadapter

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// handleHealth reports liveness together with the state of every
// registered dependency. Any failing check turns the answer into HTTP 503.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "healthy",
		Service:   "campaign-engine",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		resp.Checks = make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result := "ok"
				if err := check(ctx); err != nil {
					result = err.Error()
				}
				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = result
				if result != "ok" {
					resp.Status = "unhealthy"
					status = http.StatusServiceUnavailable
				}
			}()
		}
		wg.Wait()
	}

	h.writeJSON(w, status, resp)
}
