package usecase

import (
	"context"
	"errors"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// multiSink fans a record out to several sinks and joins their errors.
type multiSink []port.DecisionSink

// NewMultiSink combines sinks. Nil entries are skipped.
func NewMultiSink(sinks ...port.DecisionSink) port.DecisionSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Record(ctx context.Context, rec domain.DecisionRecord) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
