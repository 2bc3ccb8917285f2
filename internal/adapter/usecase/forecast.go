package usecase

import (
	"fmt"
	"math"

	"campaign-engine/internal/core/domain"
)

// Delivery ratios per currency unit of budget.
const (
	impressionsPerUnit = 1000.0
	clicksPerUnit      = 10.0
	conversionsPerUnit = 0.1
)

// PerformancePredictor produces coarse delivery forecasts and audience
// insights. Both are placeholders for trained models.
type PerformancePredictor struct {
	scorer ConfidenceScorer
}

func NewPerformancePredictor(scorer ConfidenceScorer) *PerformancePredictor {
	return &PerformancePredictor{scorer: scorer}
}

// Predict projects delivery linearly from the campaign budget.
func (p *PerformancePredictor) Predict(campaign domain.CampaignSnapshot) (domain.PerformanceForecast, error) {
	if campaign.Budget < 0 || math.IsNaN(campaign.Budget) || math.IsInf(campaign.Budget, 0) {
		return domain.PerformanceForecast{}, fmt.Errorf("%w: budget must be a non-negative number", domain.ErrInvalidInput)
	}
	return domain.PerformanceForecast{
		PredictedImpressions: campaign.Budget * impressionsPerUnit,
		PredictedClicks:      campaign.Budget * clicksPerUnit,
		PredictedConversions: campaign.Budget * conversionsPerUnit,
		Confidence:           p.scorer.Score(domain.EngineForecast, domain.SourceRule),
	}, nil
}

// Insights returns the audience insight catalogue. When the audience names
// a segment the summary insight refers to it.
func (p *PerformancePredictor) Insights(audience map[string]any) domain.AudienceInsights {
	subject := "Audience"
	if v, ok := audienceValue(audience, "segment"); ok {
		subject = v
	}
	return domain.AudienceInsights{
		Insights: []string{
			subject + " shows high engagement with video content",
			"Peak activity between 7-9 PM local time",
			"Mobile users convert 40% more than desktop",
		},
		Recommendations: []string{
			"Increase video content budget by 25%",
			"Schedule ads for evening hours",
			"Optimize for mobile experience",
		},
		Confidence: p.scorer.Score(domain.EngineAudience, domain.SourceRule),
	}
}
