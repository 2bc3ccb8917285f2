package usecase

import "campaign-engine/internal/core/domain"

// ConfidenceScorer assigns the confidence score attached to every result.
// Scores describe provenance quality, not calibrated probability, and must
// keep model >= rule >= fallback within one engine. A learned model can
// replace StaticScorer without touching the engines.
type ConfidenceScorer interface {
	Score(engine domain.Engine, source domain.Source) float64
}

// StaticScorer looks scores up in a fixed table. Unknown pairs score zero.
type StaticScorer map[domain.Engine]map[domain.Source]float64

// DefaultScorer returns the table the engines ship with.
func DefaultScorer() StaticScorer {
	return StaticScorer{
		domain.EngineBudget: {
			domain.SourceRule:     0.75,
			domain.SourceFallback: 0.5,
		},
		domain.EngineContent: {
			domain.SourceModel:    0.85,
			domain.SourceRule:     0.7,
			domain.SourceFallback: 0.6,
		},
		domain.EngineABTest: {
			domain.SourceRule: 0.88,
		},
		domain.EngineForecast: {
			domain.SourceRule: 0.75,
		},
		domain.EngineAudience: {
			domain.SourceRule: 0.65,
		},
	}
}

// Score implements ConfidenceScorer. Values are clamped to [0,1].
func (s StaticScorer) Score(engine domain.Engine, source domain.Source) float64 {
	return clamp(s[engine][source], 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
