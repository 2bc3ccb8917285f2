package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

const tracerName = "campaign-engine/usecase"

// DecisionEngine implements port.DecisionUseCase. It validates requests,
// dispatches them to the matching engine and reports every decision to a
// sink. All engines are stateless so one instance serves every request.
type DecisionEngine struct {
	budget    *BudgetOptimizer
	content   *ContentGenerator
	abtest    *ABTestAnalyzer
	predictor *PerformancePredictor

	sink        port.DecisionSink
	sinkTimeout time.Duration
	tracer      trace.Tracer
	logger      *slog.Logger
}

type engineOptions struct {
	scorer      ConfidenceScorer
	strategies  []ContentStrategy
	sinks       []port.DecisionSink
	sinkTimeout time.Duration
	tracer      trace.Tracer
}

// Option configures a DecisionEngine.
type Option func(*engineOptions)

// WithScorer replaces the default confidence table.
func WithScorer(s ConfidenceScorer) Option {
	return func(o *engineOptions) {
		o.scorer = s
	}
}

// WithContentStrategies sets the language-model strategies tried before
// the template strategy, in order.
func WithContentStrategies(strategies ...ContentStrategy) Option {
	return func(o *engineOptions) {
		o.strategies = append(o.strategies, strategies...)
	}
}

// WithSinks adds decision sinks.
func WithSinks(sinks ...port.DecisionSink) Option {
	return func(o *engineOptions) {
		o.sinks = append(o.sinks, sinks...)
	}
}

// WithSinkTimeout bounds how long reporting one decision may take.
func WithSinkTimeout(d time.Duration) Option {
	return func(o *engineOptions) {
		o.sinkTimeout = d
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *engineOptions) {
		o.tracer = t
	}
}

// NewDecisionEngine wires the engines together. The template strategy is
// always the last link of the content chain.
func NewDecisionEngine(logger *slog.Logger, opts ...Option) *DecisionEngine {
	o := engineOptions{
		scorer:      DefaultScorer(),
		sinkTimeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	strategies := append(o.strategies, NewTemplateStrategy(nil))

	return &DecisionEngine{
		budget:      NewBudgetOptimizer(o.scorer, logger),
		content:     NewContentGenerator(o.scorer, logger, strategies...),
		abtest:      NewABTestAnalyzer(o.scorer, logger),
		predictor:   NewPerformancePredictor(o.scorer),
		sink:        NewMultiSink(o.sinks...),
		sinkTimeout: o.sinkTimeout,
		tracer:      o.tracer,
		logger:      logger,
	}
}

// OptimizeBudget implements port.DecisionUseCase.
func (e *DecisionEngine) OptimizeBudget(ctx context.Context, req port.BudgetRequest) (domain.BudgetRecommendation, error) {
	ctx, span := e.tracer.Start(ctx, "budget.optimize",
		trace.WithAttributes(attribute.String("campaign.id", req.Campaign.ID)))
	defer span.End()
	start := time.Now()

	if err := validateCampaign(req.Campaign); err != nil {
		return domain.BudgetRecommendation{}, e.reject(ctx, span, domain.EngineBudget, req.Campaign.ID, start, err)
	}
	if err := req.Constraints.Validate(); err != nil {
		return domain.BudgetRecommendation{}, e.reject(ctx, span, domain.EngineBudget, req.Campaign.ID, start, err)
	}

	rec := e.budget.Optimize(ctx, req.Campaign, req.Historical, req.Constraints)
	source := domain.SourceRule
	if rec.Degraded {
		source = domain.SourceFallback
	}
	span.SetAttributes(
		attribute.String("budget.tier", string(rec.Tier)),
		attribute.Float64("budget.roas", rec.ROAS),
		attribute.Bool("budget.degraded", rec.Degraded),
	)
	e.record(ctx, domain.DecisionRecord{
		Engine:     domain.EngineBudget,
		Source:     source,
		SubjectID:  req.Campaign.ID,
		Confidence: rec.ConfidenceScore,
		Summary:    fmt.Sprintf("%s: %.2f -> %.2f", rec.Tier, req.Campaign.Budget, rec.RecommendedBudget),
		Duration:   time.Since(start),
	})
	return rec, nil
}

// GenerateContent implements port.DecisionUseCase. It never returns an error.
func (e *DecisionEngine) GenerateContent(ctx context.Context, req domain.ContentRequest) (domain.GeneratedContent, error) {
	ctx, span := e.tracer.Start(ctx, "content.generate",
		trace.WithAttributes(
			attribute.String("content.objective", req.Objective),
			attribute.String("content.platform", req.Platform),
		))
	defer span.End()
	start := time.Now()

	out, source := e.content.generate(ctx, req)
	span.SetAttributes(attribute.String("content.strategy", out.Strategy))
	e.record(ctx, domain.DecisionRecord{
		Engine:     domain.EngineContent,
		Source:     source,
		Strategy:   out.Strategy,
		Confidence: out.ConfidenceScore,
		Summary:    out.Headline,
		Duration:   time.Since(start),
	})
	return out, nil
}

// AnalyzeABTest implements port.DecisionUseCase.
func (e *DecisionEngine) AnalyzeABTest(ctx context.Context, req port.ABTestRequest) (domain.ABTestResult, error) {
	ctx, span := e.tracer.Start(ctx, "abtest.analyze",
		trace.WithAttributes(attribute.Int("abtest.variants", len(req.Variants))))
	defer span.End()
	start := time.Now()

	res, err := e.abtest.Analyze(ctx, req.Variants, req.Level())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return res, e.reject(ctx, span, domain.EngineABTest, "", start, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		e.logger.ErrorContext(ctx, "ab test analysis failed", slog.Any("error", err))
		e.record(ctx, domain.DecisionRecord{
			Engine:   domain.EngineABTest,
			Source:   domain.SourceFailed,
			Summary:  err.Error(),
			Duration: time.Since(start),
		})
		return res, err
	}

	span.SetAttributes(
		attribute.String("abtest.winner", res.Winner),
		attribute.Bool("abtest.significant", res.StatisticalSignificance),
	)
	e.record(ctx, domain.DecisionRecord{
		Engine:     domain.EngineABTest,
		Source:     domain.SourceRule,
		SubjectID:  res.Winner,
		Confidence: res.Confidence,
		Summary:    fmt.Sprintf("winner %s, significant=%t", res.Winner, res.StatisticalSignificance),
		Duration:   time.Since(start),
	})
	return res, nil
}

// PredictPerformance implements port.DecisionUseCase.
func (e *DecisionEngine) PredictPerformance(ctx context.Context, req port.ForecastRequest) (domain.PerformanceForecast, error) {
	ctx, span := e.tracer.Start(ctx, "forecast.predict",
		trace.WithAttributes(attribute.String("campaign.id", req.Campaign.ID)))
	defer span.End()
	start := time.Now()

	forecast, err := e.predictor.Predict(req.Campaign)
	if err != nil {
		return forecast, e.reject(ctx, span, domain.EngineForecast, req.Campaign.ID, start, err)
	}
	e.record(ctx, domain.DecisionRecord{
		Engine:     domain.EngineForecast,
		Source:     domain.SourceRule,
		SubjectID:  req.Campaign.ID,
		Confidence: forecast.Confidence,
		Summary:    fmt.Sprintf("%.0f impressions, %.0f clicks", forecast.PredictedImpressions, forecast.PredictedClicks),
		Duration:   time.Since(start),
	})
	return forecast, nil
}

// AudienceInsights implements port.DecisionUseCase.
func (e *DecisionEngine) AudienceInsights(ctx context.Context, req port.AudienceRequest) (domain.AudienceInsights, error) {
	ctx, span := e.tracer.Start(ctx, "audience.insights")
	defer span.End()
	start := time.Now()

	insights := e.predictor.Insights(req.Audience)
	e.record(ctx, domain.DecisionRecord{
		Engine:     domain.EngineAudience,
		Source:     domain.SourceRule,
		Confidence: insights.Confidence,
		Summary:    insights.Insights[0],
		Duration:   time.Since(start),
	})
	return insights, nil
}

// reject records a caller error and returns it unchanged.
func (e *DecisionEngine) reject(ctx context.Context, span trace.Span, engine domain.Engine, subject string, start time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "invalid input")
	e.record(ctx, domain.DecisionRecord{
		Engine:    engine,
		Source:    domain.SourceRejected,
		SubjectID: subject,
		Summary:   err.Error(),
		Duration:  time.Since(start),
	})
	return err
}

// record reports rec to the sink. The request context may already be gone
// when the client disconnected, so reporting runs on a detached context.
func (e *DecisionEngine) record(ctx context.Context, rec domain.DecisionRecord) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.sinkTimeout)
	defer cancel()
	if err := e.sink.Record(sinkCtx, rec); err != nil {
		e.logger.ErrorContext(ctx, "record decision failed",
			slog.String("engine", string(rec.Engine)),
			slog.String("decision_id", rec.ID),
			slog.Any("error", err))
	}
}

func validateCampaign(c domain.CampaignSnapshot) error {
	if c.Budget < 0 || math.IsNaN(c.Budget) || math.IsInf(c.Budget, 0) {
		return fmt.Errorf("%w: budget must be a non-negative number", domain.ErrInvalidInput)
	}
	return nil
}
