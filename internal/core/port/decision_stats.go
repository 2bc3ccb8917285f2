package port

import (
	"context"
	"time"

	"campaign-engine/internal/core/domain"
)

// DecisionStats aggregates the decision audit log.
type DecisionStats interface {
	// GetStats returns decision counts per engine and source recorded in
	// the requested period. A nil Engine covers every engine.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

type StatsReq struct {
	From   time.Time
	To     time.Time
	Engine *domain.Engine
}

// StatsResp summarises decisions by engine and source. Rejected and failed
// requests carry no score, so their AvgConfidence is zero.
type StatsResp struct {
	From  time.Time     `json:"from"`
	To    time.Time     `json:"to"`
	Total int64         `json:"total"`
	Rows  []SourceStats `json:"rows"`
}

type SourceStats struct {
	Engine        domain.Engine `json:"engine"`
	Source        domain.Source `json:"source"`
	Count         int64         `json:"count"`
	AvgConfidence float64       `json:"avg_confidence"`
	AvgDurationMs float64       `json:"avg_duration_ms"`
}
