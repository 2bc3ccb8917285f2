package port

import (
	"context"

	"campaign-engine/internal/core/domain"
)

// DecisionSink receives an audit record for every decision the engine
// makes. It is an outbound port; implementations persist, publish or count
// the records. Failures are reported but never change a decision.
type DecisionSink interface {
	Record(ctx context.Context, rec domain.DecisionRecord) error
}
