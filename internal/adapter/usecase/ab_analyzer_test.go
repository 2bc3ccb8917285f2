package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-engine/internal/core/domain"
)

func variant(id string, rate float64) domain.Variant {
	return domain.Variant{ID: id, Performance: map[string]float64{domain.MetricConversionRate: rate}}
}

func newAnalyzer() *ABTestAnalyzer {
	return NewABTestAnalyzer(DefaultScorer(), discardLogger())
}

func TestAnalyzeSignificance(t *testing.T) {
	tests := []struct {
		name        string
		variants    []domain.Variant
		level       float64
		winner      string
		significant bool
		score       float64
		lift        float64
	}{
		{
			name:     "clear winner at low threshold",
			variants: []domain.Variant{variant("a", 0.10), variant("b", 0.05)},
			level:    0.7, winner: "a", significant: true, score: 0.85, lift: 100,
		},
		{
			name:     "clear winner at high threshold",
			variants: []domain.Variant{variant("a", 0.10), variant("b", 0.05)},
			level:    0.9, winner: "a", significant: false, score: 0.85, lift: 100,
		},
		{
			name:     "winner not first",
			variants: []domain.Variant{variant("a", 0.02), variant("b", 0.03), variant("c", 0.025)},
			level:    0.5, winner: "b", significant: true, score: 0.85, lift: 50,
		},
		{
			name:     "within margin",
			variants: []domain.Variant{variant("a", 0.105), variant("b", 0.100)},
			level:    0.5, winner: "a", significant: true, score: 0.6, lift: 5,
		},
		{
			name:     "tiny rates use floor",
			variants: []domain.Variant{variant("a", 0.001), variant("b", 0.0105)},
			level:    0.5, winner: "b", significant: true, score: 0.6, lift: 95,
		},
		{
			name:     "missing rate counts as zero",
			variants: []domain.Variant{{ID: "a"}, variant("b", 0.02)},
			level:    0.8, winner: "b", significant: true, score: 0.85, lift: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newAnalyzer().Analyze(context.Background(), tt.variants, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.winner, res.Winner)
			assert.Equal(t, tt.significant, res.StatisticalSignificance)
			assert.Equal(t, tt.score, res.SignificanceScore)
			assert.InDelta(t, tt.lift, res.Lift, 1e-9)
			assert.Equal(t, 0.88, res.Confidence)
			require.Len(t, res.Recommendations, 3)
		})
	}
}

func TestAnalyzeTieKeepsFirst(t *testing.T) {
	res, err := newAnalyzer().Analyze(context.Background(),
		[]domain.Variant{variant("first", 0.04), variant("second", 0.04)}, domain.DefaultConfidenceLevel)
	require.NoError(t, err)

	assert.Equal(t, "first", res.Winner)
	assert.Equal(t, 0.0, res.Lift)
	assert.Equal(t, "Variant first shows 0.0% better performance than variant first", res.Recommendations[0])
}

func TestAnalyzeWinnerHasHighestRate(t *testing.T) {
	variants := []domain.Variant{
		variant("a", 0.031), variant("b", 0.12), variant("c", 0.0), variant("d", 0.119), variant("e", 0.12),
	}
	res, err := newAnalyzer().Analyze(context.Background(), variants, domain.DefaultConfidenceLevel)
	require.NoError(t, err)

	var winner domain.Variant
	for _, v := range variants {
		if v.ID == res.Winner {
			winner = v
		}
	}
	require.NotEmpty(t, winner.ID)
	for _, v := range variants {
		assert.GreaterOrEqual(t, winner.ConversionRate(), v.ConversionRate())
	}
	assert.Equal(t, "b", res.Winner)
	assert.Equal(t, "Variant b shows 1200.0% better performance than variant c", res.Recommendations[0])
}

func TestAnalyzeRejectsTooFewVariants(t *testing.T) {
	for _, variants := range [][]domain.Variant{nil, {variant("solo", 0.2)}} {
		_, err := newAnalyzer().Analyze(context.Background(), variants, 0.95)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAnalyzeNonFiniteRate(t *testing.T) {
	_, err := newAnalyzer().Analyze(context.Background(),
		[]domain.Variant{variant("a", 0.1), variant("b", math.NaN())}, 0.95)
	require.ErrorIs(t, err, domain.ErrAnalysisFailure)

	_, err = newAnalyzer().Analyze(context.Background(),
		[]domain.Variant{variant("a", 0.1), variant("b", 0.2)}, math.NaN())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignificanceScore(t *testing.T) {
	assert.Equal(t, 0.85, SignificanceScore(0.2, 0.1))
	assert.Equal(t, 0.6, SignificanceScore(0.11, 0.1))
	assert.Equal(t, 0.6, SignificanceScore(0.011, 0))
	assert.Equal(t, 0.85, SignificanceScore(0.0111, 0))
}
