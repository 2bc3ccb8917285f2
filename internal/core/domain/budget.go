package domain

import "fmt"

// BudgetConstraints bounds a budget recommendation. Nil bounds are derived
// from the current budget by the optimizer.
type BudgetConstraints struct {
	MinBudget *float64 `json:"min_budget,omitempty"`
	MaxBudget *float64 `json:"max_budget,omitempty"`
}

// Validate reports ErrInvalidInput for negative or inverted bounds.
func (c BudgetConstraints) Validate() error {
	if c.MinBudget != nil && *c.MinBudget < 0 {
		return fmt.Errorf("%w: min_budget must not be negative", ErrInvalidInput)
	}
	if c.MaxBudget != nil && *c.MaxBudget < 0 {
		return fmt.Errorf("%w: max_budget must not be negative", ErrInvalidInput)
	}
	if c.MinBudget != nil && c.MaxBudget != nil && *c.MinBudget > *c.MaxBudget {
		return fmt.Errorf("%w: min_budget %.2f exceeds max_budget %.2f", ErrInvalidInput, *c.MinBudget, *c.MaxBudget)
	}
	return nil
}

// Bounds resolves the effective [min, max] range for the given budget.
// Missing bounds default to half and double the current budget; a derived
// bound yields to an explicit one so that lo <= hi always holds for
// constraints that pass Validate.
func (c BudgetConstraints) Bounds(budget float64) (lo, hi float64) {
	lo, hi = budget*0.5, budget*2
	if c.MinBudget != nil {
		lo = *c.MinBudget
	}
	if c.MaxBudget != nil {
		hi = *c.MaxBudget
	}
	if lo > hi {
		if c.MaxBudget == nil {
			hi = lo
		} else {
			lo = hi
		}
	}
	return lo, hi
}

// BudgetTier labels the efficiency band a campaign's ROAS falls into.
type BudgetTier string

const (
	TierHighEfficiency       BudgetTier = "high_efficiency"
	TierAcceptableEfficiency BudgetTier = "acceptable_efficiency"
	TierUnderperforming      BudgetTier = "underperforming"
	TierDegraded             BudgetTier = "degraded"
)

// BudgetRecommendation is the optimizer's answer. RecommendedBudget is
// rounded to cents and lies within the effective constraint bounds.
type BudgetRecommendation struct {
	RecommendedBudget   float64            `json:"recommended_budget"`
	ConfidenceScore     float64            `json:"confidence_score"`
	Reasoning           string             `json:"reasoning"`
	ExpectedImprovement map[string]float64 `json:"expected_improvement"`
	ROAS                float64            `json:"roas"`
	Tier                BudgetTier         `json:"tier"`
	Degraded            bool               `json:"degraded"`
}
