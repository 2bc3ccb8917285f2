package usecase

import (
	"context"
	"io"
	"log/slog"

	"campaign-engine/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// stubStrategy is a ContentStrategy with canned behaviour.
type stubStrategy struct {
	name    string
	source  domain.Source
	content domain.GeneratedContent
	err     error
	panics  bool
	calls   int
}

func (s *stubStrategy) Name() string          { return s.name }
func (s *stubStrategy) Source() domain.Source { return s.source }

func (s *stubStrategy) Generate(context.Context, domain.ContentRequest) (domain.GeneratedContent, error) {
	s.calls++
	if s.panics {
		panic("strategy exploded")
	}
	return s.content, s.err
}
