package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"campaign-engine/internal/core/domain"
)

// Significance heuristic parameters. This is a relative-margin rule, not a
// hypothesis test: sample sizes and variance are ignored.
const (
	significanceMargin = 1.1
	minRateFloor       = 0.01
	significantScore   = 0.85
	inconclusiveScore  = 0.6
)

// ABTestAnalyzer ranks variants by conversion rate. Unlike the other
// engines it does not degrade: a wrong verdict costs more than an error.
type ABTestAnalyzer struct {
	scorer ConfidenceScorer
	logger *slog.Logger
}

func NewABTestAnalyzer(scorer ConfidenceScorer, logger *slog.Logger) *ABTestAnalyzer {
	return &ABTestAnalyzer{scorer: scorer, logger: logger}
}

// Analyze returns the winning variant. Fewer than two variants is
// domain.ErrInvalidInput; any other failure is domain.ErrAnalysisFailure.
func (a *ABTestAnalyzer) Analyze(ctx context.Context, variants []domain.Variant, confidenceLevel float64) (res domain.ABTestResult, err error) {
	if len(variants) < 2 {
		return res, fmt.Errorf("%w: need at least 2 variants, got %d", domain.ErrInvalidInput, len(variants))
	}
	if math.IsNaN(confidenceLevel) {
		return res, fmt.Errorf("%w: confidence level is not a number", domain.ErrInvalidInput)
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "ab test analysis panic", slog.Any("panic", r))
			res, err = domain.ABTestResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailure, r)
		}
	}()

	best, worst := 0, 0
	for i, v := range variants {
		rate := v.ConversionRate()
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return res, fmt.Errorf("%w: variant %q has a non-finite conversion rate", domain.ErrAnalysisFailure, v.ID)
		}
		if rate > variants[best].ConversionRate() {
			best = i
		}
		if rate < variants[worst].ConversionRate() {
			worst = i
		}
	}
	winner, loser := variants[best], variants[worst]
	maxRate, minRate := winner.ConversionRate(), loser.ConversionRate()

	score := SignificanceScore(maxRate, minRate)
	lift := (maxRate - minRate) / math.Max(minRate, minRateFloor) * 100

	return domain.ABTestResult{
		Winner:                  winner.ID,
		Confidence:              a.scorer.Score(domain.EngineABTest, domain.SourceRule),
		StatisticalSignificance: score > confidenceLevel,
		SignificanceScore:       score,
		Lift:                    math.Round(lift*10) / 10,
		Recommendations: []string{
			fmt.Sprintf("Variant %s shows %.1f%% better performance than variant %s", winner.ID, lift, loser.ID),
			"Consider implementing the winning variant permanently",
			"Run additional tests to validate results",
		},
	}, nil
}

// SignificanceScore applies the relative-margin rule: the spread is
// significant when the best rate beats the worst by more than 10%, with the
// worst rate floored at 0.01.
func SignificanceScore(maxRate, minRate float64) float64 {
	if maxRate > math.Max(minRate, minRateFloor)*significanceMargin {
		return significantScore
	}
	return inconclusiveScore
}
