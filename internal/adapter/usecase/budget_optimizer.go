package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"campaign-engine/internal/core/domain"
)

// assumedOrderValue is the average order value used to turn conversions
// into revenue when computing ROAS.
const assumedOrderValue = 10.0

// ROAS tier boundaries.
const (
	highROAS       = 3.0
	acceptableROAS = 1.5
)

const degradedReasoning = "Using conservative budget recommendation due to analysis error"

// BudgetOptimizer maps a campaign's spend efficiency to a new budget within
// the caller's bounds. It is stateless and safe for concurrent use.
type BudgetOptimizer struct {
	scorer ConfidenceScorer
	logger *slog.Logger
}

// NewBudgetOptimizer creates an optimizer that scores results with scorer.
func NewBudgetOptimizer(scorer ConfidenceScorer, logger *slog.Logger) *BudgetOptimizer {
	return &BudgetOptimizer{scorer: scorer, logger: logger}
}

// Optimize recommends a budget for campaign. It never fails: any internal
// error yields a conservative recommendation that keeps the budget as is.
// Historical data is accepted as context and not modified.
func (o *BudgetOptimizer) Optimize(ctx context.Context, campaign domain.CampaignSnapshot, _ domain.HistoricalRecord, constraints domain.BudgetConstraints) (rec domain.BudgetRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.ErrorContext(ctx, "budget optimization panic",
				slog.String("campaign_id", campaign.ID), slog.Any("panic", r))
			rec = o.fallback(campaign)
		}
	}()

	var err error
	rec, err = o.recommend(campaign, constraints)
	if err != nil {
		o.logger.WarnContext(ctx, "budget optimization degraded",
			slog.String("campaign_id", campaign.ID), slog.Any("error", err))
		return o.fallback(campaign)
	}
	return rec
}

func (o *BudgetOptimizer) recommend(campaign domain.CampaignSnapshot, constraints domain.BudgetConstraints) (domain.BudgetRecommendation, error) {
	spend, err := campaign.Performance.Float(domain.MetricSpend)
	if err != nil {
		return domain.BudgetRecommendation{}, fmt.Errorf("%w: %w", domain.ErrInternalComputation, err)
	}
	conversions, err := campaign.Performance.Float(domain.MetricConversions)
	if err != nil {
		return domain.BudgetRecommendation{}, fmt.Errorf("%w: %w", domain.ErrInternalComputation, err)
	}

	roas := ROAS(conversions, spend)
	budget := campaign.Budget
	lo, hi := constraints.Bounds(budget)

	var (
		raw         float64
		tier        domain.BudgetTier
		improvement map[string]float64
		verdict     string
	)
	switch {
	case roas > highROAS:
		raw = math.Min(budget*1.3, hi)
		tier = domain.TierHighEfficiency
		improvement = map[string]float64{"roas": 0.10, "conversions": 0.20}
		verdict = "spend is highly efficient, scaling budget up"
	case roas > acceptableROAS:
		raw = budget * 1.1
		tier = domain.TierAcceptableEfficiency
		improvement = map[string]float64{"roas": 0.05, "conversions": 0.10}
		verdict = "spend is acceptable, applying a modest increase"
	default:
		raw = math.Max(budget*0.8, lo)
		tier = domain.TierUnderperforming
		improvement = map[string]float64{"roas": 0.15, "conversions": 0.05}
		verdict = "campaign is underperforming, reducing budget while targeting is reviewed"
	}

	recommended := clamp(roundCents(raw), lo, hi)
	if math.IsNaN(recommended) || math.IsInf(recommended, 0) {
		return domain.BudgetRecommendation{}, fmt.Errorf("%w: recommended budget is not finite", domain.ErrInternalComputation)
	}

	return domain.BudgetRecommendation{
		RecommendedBudget:   recommended,
		ConfidenceScore:     o.scorer.Score(domain.EngineBudget, domain.SourceRule),
		Reasoning:           fmt.Sprintf("Based on current ROAS of %.2f: %s", roas, verdict),
		ExpectedImprovement: improvement,
		ROAS:                roas,
		Tier:                tier,
	}, nil
}

func (o *BudgetOptimizer) fallback(campaign domain.CampaignSnapshot) domain.BudgetRecommendation {
	return domain.BudgetRecommendation{
		RecommendedBudget:   campaign.Budget,
		ConfidenceScore:     o.scorer.Score(domain.EngineBudget, domain.SourceFallback),
		Reasoning:           degradedReasoning,
		ExpectedImprovement: map[string]float64{},
		Tier:                domain.TierDegraded,
		Degraded:            true,
	}
}

// ROAS returns conversion revenue divided by spend, or zero when nothing
// was spent.
func ROAS(conversions, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return conversions * assumedOrderValue / spend
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
