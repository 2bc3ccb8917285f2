package port

import (
	"context"

	"campaign-engine/internal/core/domain"
)

// DecisionUseCase is the primary port into the decision engine. Each method
// routes one typed request to its engine and returns a typed result. Errors
// are classified with the kinds declared in the domain package.
type DecisionUseCase interface {
	// OptimizeBudget recommends a new budget for the campaign. Internal
	// failures degrade to a conservative recommendation; only invalid input
	// is reported as an error.
	OptimizeBudget(ctx context.Context, req BudgetRequest) (domain.BudgetRecommendation, error)

	// GenerateContent produces ad copy. It never fails for a well-formed
	// request; the error return exists for interface symmetry and is always
	// nil today.
	GenerateContent(ctx context.Context, req domain.ContentRequest) (domain.GeneratedContent, error)

	// AnalyzeABTest picks the winning variant. It returns ErrInvalidInput for
	// fewer than two variants and ErrAnalysisFailure for anything else.
	AnalyzeABTest(ctx context.Context, req ABTestRequest) (domain.ABTestResult, error)

	// PredictPerformance projects delivery for the campaign's budget.
	PredictPerformance(ctx context.Context, req ForecastRequest) (domain.PerformanceForecast, error)

	// AudienceInsights summarises audience behaviour.
	AudienceInsights(ctx context.Context, req AudienceRequest) (domain.AudienceInsights, error)
}

// BudgetRequest bundles the inputs of a budget optimization.
type BudgetRequest struct {
	Campaign    domain.CampaignSnapshot  `json:"campaign"`
	Historical  domain.HistoricalRecord  `json:"historical_performance"`
	Constraints domain.BudgetConstraints `json:"constraints"`
}

// ABTestRequest lists the variants under test. ConfidenceLevel defaults to
// domain.DefaultConfidenceLevel when nil.
type ABTestRequest struct {
	Variants        []domain.Variant `json:"variants" validate:"dive"`
	ConfidenceLevel *float64         `json:"confidence_level,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Level returns the effective confidence level.
func (r ABTestRequest) Level() float64 {
	if r.ConfidenceLevel == nil {
		return domain.DefaultConfidenceLevel
	}
	return *r.ConfidenceLevel
}

type ForecastRequest struct {
	Campaign   domain.CampaignSnapshot `json:"campaign"`
	MarketData map[string]any          `json:"market_data,omitempty"`
}

type AudienceRequest struct {
	Audience        map[string]any   `json:"audience"`
	CampaignHistory []map[string]any `json:"campaign_history,omitempty"`
}
