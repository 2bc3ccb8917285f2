package usecase

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"campaign-engine/internal/core/domain"
)

// ContentStrategy is one way of producing ad copy. Strategies report
// failure through the error return; the generator then tries the next one.
type ContentStrategy interface {
	Name() string
	// Source is the provenance of content produced by this strategy.
	Source() domain.Source
	Generate(ctx context.Context, req domain.ContentRequest) (domain.GeneratedContent, error)
}

const fallbackStrategyName = "default"

// fallbackContent is returned when every strategy failed.
var fallbackContent = domain.GeneratedContent{
	Headline:     "Discover Amazing Solutions",
	Description:  "Transform your business with our innovative platform",
	CallToAction: "Learn More",
	Hashtags:     []string{"#innovation", "#business", "#growth"},
}

// ContentGenerator runs an ordered chain of strategies and returns the
// first success. It never fails.
type ContentGenerator struct {
	strategies []ContentStrategy
	scorer     ConfidenceScorer
	logger     *slog.Logger
}

// NewContentGenerator builds a generator trying strategies in order.
func NewContentGenerator(scorer ConfidenceScorer, logger *slog.Logger, strategies ...ContentStrategy) *ContentGenerator {
	return &ContentGenerator{strategies: strategies, scorer: scorer, logger: logger}
}

// Generate returns ad copy for req. The headline never exceeds the
// requested maximum length.
func (g *ContentGenerator) Generate(ctx context.Context, req domain.ContentRequest) domain.GeneratedContent {
	out, _ := g.generate(ctx, req)
	return out
}

func (g *ContentGenerator) generate(ctx context.Context, req domain.ContentRequest) (out domain.GeneratedContent, source domain.Source) {
	req = req.WithDefaults()
	defer func() {
		if r := recover(); r != nil {
			g.logger.ErrorContext(ctx, "content generation panic", slog.Any("panic", r))
			out, source = g.fallback(req), domain.SourceFallback
		}
	}()

	for _, s := range g.strategies {
		content, err := s.Generate(ctx, req)
		if err != nil {
			g.logger.WarnContext(ctx, "content strategy failed",
				slog.String("strategy", s.Name()), slog.Any("error", err))
			continue
		}
		content.Headline = truncateRunes(content.Headline, req.MaxLength)
		content.Strategy = s.Name()
		content.ConfidenceScore = g.scorer.Score(domain.EngineContent, s.Source())
		return content, s.Source()
	}
	return g.fallback(req), domain.SourceFallback
}

func (g *ContentGenerator) fallback(req domain.ContentRequest) domain.GeneratedContent {
	out := fallbackContent
	out.Hashtags = append([]string(nil), fallbackContent.Hashtags...)
	out.Headline = truncateRunes(out.Headline, req.WithDefaults().MaxLength)
	out.Strategy = fallbackStrategyName
	out.ConfidenceScore = g.scorer.Score(domain.EngineContent, domain.SourceFallback)
	return out
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:n]), " ")
}
