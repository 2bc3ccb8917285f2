package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/adapter/usecase"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(opts ...Option) http.Handler {
	return NewHandler(usecase.NewDecisionEngine(discardLogger()), discardLogger(), opts...).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestBudgetOptimize(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodPost, "/api/v1/budget/optimize", `{
		"campaign": {"id": "cmp-1", "name": "Launch", "budget": 1000,
			"performance": {"spend": 500, "conversions": 200}},
		"historical_performance": {"campaigns": []},
		"constraints": {}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	got := decodeBody[domain.BudgetRecommendation](t, rec)
	assert.Equal(t, 1300.0, got.RecommendedBudget)
	assert.Equal(t, 0.75, got.ConfidenceScore)
	assert.Equal(t, map[string]float64{"roas": 0.10, "conversions": 0.20}, got.ExpectedImprovement)
}

func TestBudgetOptimizeDegradedIsStillOK(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodPost, "/api/v1/budget/optimize",
		`{"campaign": {"id": "c", "budget": 80, "performance": {"spend": "lots"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[domain.BudgetRecommendation](t, rec)
	assert.True(t, got.Degraded)
	assert.Equal(t, 80.0, got.RecommendedBudget)
	assert.Equal(t, 0.5, got.ConfidenceScore)
}

func TestBudgetOptimizeBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"malformed json", `{"campaign":`, "invalid JSON"},
		{"missing campaign id", `{"campaign": {"budget": 10}}`, "campaign.id"},
		{"negative budget", `{"campaign": {"id": "c", "budget": -10}}`, "campaign.budget"},
		{"inverted constraints", `{"campaign": {"id": "c", "budget": 10}, "constraints": {"min_budget": 50, "max_budget": 5}}`, "min_budget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestHandler(), http.MethodPost, "/api/v1/budget/optimize", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody[errorResponse](t, rec).Error, tt.msg)
		})
	}
}

func TestContentGenerate(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodPost, "/api/v1/content/generate",
		`{"objective": "traffic", "platform": "facebook", "audience": {"segment": "runners"}, "max_length": 20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.GeneratedContent](t, rec)
	assert.Equal(t, "Ready to boost your", got.Headline)
	assert.Equal(t, "Join the runners who are achieving remarkable results.", got.Description)
	assert.Equal(t, "template", got.Strategy)
	assert.Equal(t, 0.7, got.ConfidenceScore)

	rec = do(t, h, http.MethodPost, "/api/v1/content/generate", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/content/generate", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestABTestAnalyze(t *testing.T) {
	h := newTestHandler()
	variants := `[{"id": "a", "performance": {"conversion_rate": 0.10}}, {"id": "b", "performance": {"conversion_rate": 0.05}}]`

	for _, tt := range []struct {
		level       string
		significant bool
	}{{"0.7", true}, {"0.9", false}} {
		rec := do(t, h, http.MethodPost, "/api/v1/ab-test/analyze",
			fmt.Sprintf(`{"variants": %s, "confidence_level": %s}`, variants, tt.level))
		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[domain.ABTestResult](t, rec)
		assert.Equal(t, "a", got.Winner)
		assert.Equal(t, tt.significant, got.StatisticalSignificance, "level %s", tt.level)
	}

	rec := do(t, h, http.MethodPost, "/api/v1/ab-test/analyze", `{"variants": [{"id": "solo"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "at least 2 variants")

	rec = do(t, h, http.MethodPost, "/api/v1/ab-test/analyze", fmt.Sprintf(`{"variants": %s, "confidence_level": 1.5}`, variants))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/ab-test/analyze", `{"variants": [{"id": ""}, {"id": "b"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// failingUseCase fails every A/B analysis.
type failingUseCase struct {
	port.DecisionUseCase
}

func (failingUseCase) AnalyzeABTest(context.Context, port.ABTestRequest) (domain.ABTestResult, error) {
	return domain.ABTestResult{}, fmt.Errorf("%w: ranking exploded", domain.ErrAnalysisFailure)
}

func TestABTestAnalyzeFailureIsServerError(t *testing.T) {
	h := NewHandler(failingUseCase{}, discardLogger()).Router()

	rec := do(t, h, http.MethodPost, "/api/v1/ab-test/analyze", `{"variants": [{"id": "a"}, {"id": "b"}]}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "analysis failed", decodeBody[errorResponse](t, rec).Error)
}

func TestPredictAndInsights(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodPost, "/api/v1/predict/performance", `{"campaign": {"id": "c", "budget": 40}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	forecast := decodeBody[domain.PerformanceForecast](t, rec)
	assert.Equal(t, 40000.0, forecast.PredictedImpressions)
	assert.Equal(t, 400.0, forecast.PredictedClicks)

	rec = do(t, h, http.MethodPost, "/api/v1/audience/insights", `{"audience": {"segment": "parents"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	insights := decodeBody[domain.AudienceInsights](t, rec)
	assert.Equal(t, "parents shows high engagement with video content", insights.Insights[0])
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "healthy", got.Status)
	assert.Empty(t, got.Checks)

	h := newTestHandler(
		WithHealthCheck("postgres", func(context.Context) error { return nil }),
		WithHealthCheck("redis", func(context.Context) error { return errors.New("connection refused") }),
	)
	rec = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	got = decodeBody[healthResponse](t, rec)
	assert.Equal(t, "unhealthy", got.Status)
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "connection refused"}, got.Checks)
}

func TestMetricsRoute(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "decisions_total 1\n")
	})
	rec = do(t, newTestHandler(WithMetrics(metrics)), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "decisions_total")
}

func TestStatsOverview(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet, "/api/v1/stats/overview", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	stats := mocks.NewMockDecisionStats(t)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	stats.EXPECT().
		GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.From.Equal(from) && req.To.Equal(to) && req.Engine != nil && *req.Engine == domain.EngineBudget
		})).
		Return(&port.StatsResp{From: from, To: to, Total: 3, Rows: []port.SourceStats{
			{Engine: domain.EngineBudget, Source: domain.SourceRule, Count: 3, AvgConfidence: 0.75},
		}}, nil).
		Once()

	h := newTestHandler(WithStats(stats))
	rec = do(t, h, http.MethodGet, "/api/v1/stats/overview?from=2026-01-01T00:00:00Z&to=2026-01-03T00:00:00Z&engine=budget", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[port.StatsResp](t, rec)
	assert.Equal(t, int64(3), got.Total)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, domain.SourceRule, got.Rows[0].Source)

	for _, q := range []string{"from=yesterday", "to=soon", "engine=crystal_ball", "from=2026-01-03T00:00:00Z&to=2026-01-01T00:00:00Z"} {
		rec = do(t, h, http.MethodGet, "/api/v1/stats/overview?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestStatsOverviewStoreError(t *testing.T) {
	stats := mocks.NewMockDecisionStats(t)
	stats.EXPECT().GetStats(mock.Anything, mock.Anything).Return(nil, errors.New("pool closed")).Once()

	rec := do(t, newTestHandler(WithStats(stats)), http.MethodGet, "/api/v1/stats/overview", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeBody[errorResponse](t, rec).Error)
}
