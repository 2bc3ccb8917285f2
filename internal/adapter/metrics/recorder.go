package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"campaign-engine/internal/core/domain"
)

const namespace = "campaign_engine"

// Recorder exposes decisions as Prometheus metrics. It implements
// port.DecisionSink.
type Recorder struct {
	decisions  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	confidence *prometheus.HistogramVec
}

// NewRecorder registers the decision metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Decisions by engine, source and content strategy.",
		}, []string{"engine", "source", "strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decision_duration_seconds",
			Help:      "Time spent producing a decision.",
			Buckets:   []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"engine"}),
		confidence: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decision_confidence",
			Help:      "Confidence attached to successful decisions.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}, []string{"engine"}),
	}
}

func (r *Recorder) Record(_ context.Context, rec domain.DecisionRecord) error {
	engine := string(rec.Engine)
	r.decisions.WithLabelValues(engine, string(rec.Source), rec.Strategy).Inc()
	r.duration.WithLabelValues(engine).Observe(rec.Duration.Seconds())
	if rec.Source != domain.SourceRejected && rec.Source != domain.SourceFailed {
		r.confidence.WithLabelValues(engine).Observe(rec.Confidence)
	}
	return nil
}
