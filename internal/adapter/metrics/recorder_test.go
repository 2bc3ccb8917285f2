package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, domain.DecisionRecord{Engine: domain.EngineContent, Source: domain.SourceModel, Strategy: "openai", Confidence: 0.85, Duration: 300 * time.Millisecond}))
	require.NoError(t, r.Record(ctx, domain.DecisionRecord{Engine: domain.EngineContent, Source: domain.SourceModel, Strategy: "openai", Confidence: 0.85}))
	require.NoError(t, r.Record(ctx, domain.DecisionRecord{Engine: domain.EngineContent, Source: domain.SourceRule, Strategy: "template", Confidence: 0.7}))
	require.NoError(t, r.Record(ctx, domain.DecisionRecord{Engine: domain.EngineABTest, Source: domain.SourceRejected}))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.decisions.WithLabelValues("content", "model", "openai")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.decisions.WithLabelValues("content", "rule", "template")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.decisions.WithLabelValues("ab_test", "rejected", "")))

	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
	// rejected decisions carry no confidence
	assert.Equal(t, 1, testutil.CollectAndCount(r.confidence))
}

func TestRecorderRegistersOnRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	require.NoError(t, r.Record(context.Background(), domain.DecisionRecord{Engine: domain.EngineBudget, Source: domain.SourceRule, Confidence: 0.75}))

	n, err := testutil.GatherAndCount(reg, "campaign_engine_decisions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
