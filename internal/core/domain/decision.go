package domain

import "time"

// Engine identifies which decision procedure produced a result.
type Engine string

const (
	EngineBudget   Engine = "budget"
	EngineContent  Engine = "content"
	EngineABTest   Engine = "ab_test"
	EngineForecast Engine = "forecast"
	EngineAudience Engine = "audience"
)

// Valid reports whether e is a known engine.
func (e Engine) Valid() bool {
	switch e {
	case EngineBudget, EngineContent, EngineABTest, EngineForecast, EngineAudience:
		return true
	}
	return false
}

// Source describes the provenance of a result. Confidence scores are
// ordered model >= rule >= fallback within an engine.
type Source string

const (
	SourceModel    Source = "model"
	SourceRule     Source = "rule"
	SourceFallback Source = "fallback"
	SourceRejected Source = "rejected"
	SourceFailed   Source = "failed"
)

// DecisionRecord is an audit entry describing one decision the engine made.
// It carries no campaign history, only what was recommended and how.
type DecisionRecord struct {
	ID         string        `json:"id"`
	Engine     Engine        `json:"engine"`
	Source     Source        `json:"source"`
	Strategy   string        `json:"strategy,omitempty"`
	SubjectID  string        `json:"subject_id,omitempty"`
	Confidence float64       `json:"confidence"`
	Summary    string        `json:"summary"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  time.Time     `json:"created_at"`
}
