package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"campaign-engine/internal/core/domain"
)

// DefaultSubjectPrefix is where decision events go unless configured.
const DefaultSubjectPrefix = "campaign.decisions"

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subject string, data []byte) error
}

// DecisionEvent is the message published for every decision.
type DecisionEvent struct {
	EventType  string        `json:"event_type"`
	ID         string        `json:"id"`
	Engine     domain.Engine `json:"engine"`
	Source     domain.Source `json:"source"`
	Strategy   string        `json:"strategy,omitempty"`
	SubjectID  string        `json:"subject_id,omitempty"`
	Confidence float64       `json:"confidence"`
	Summary    string        `json:"summary"`
	LatencyMS  int64         `json:"latency_ms"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Publisher streams decisions to NATS, one subject per engine. It
// implements port.DecisionSink.
type Publisher struct {
	nc     conn
	prefix string
}

// Connect dials the NATS server at url.
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name(name), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return nc, nil
}

// ConnCheck reports whether nc is connected.
func ConnCheck(nc *nats.Conn) func(context.Context) error {
	return func(context.Context) error {
		if status := nc.Status(); status != nats.CONNECTED {
			return fmt.Errorf("nats connection is %s", status)
		}
		return nil
	}
}

// NewPublisher publishes to "<prefix>.<engine>". An empty prefix uses
// DefaultSubjectPrefix.
func NewPublisher(nc conn, prefix string) *Publisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Publisher{nc: nc, prefix: prefix}
}

func (p *Publisher) Record(_ context.Context, rec domain.DecisionRecord) error {
	data, err := json.Marshal(DecisionEvent{
		EventType:  "decision",
		ID:         rec.ID,
		Engine:     rec.Engine,
		Source:     rec.Source,
		Strategy:   rec.Strategy,
		SubjectID:  rec.SubjectID,
		Confidence: rec.Confidence,
		Summary:    rec.Summary,
		LatencyMS:  rec.Duration.Milliseconds(),
		Timestamp:  rec.CreatedAt,
	})
	if err != nil {
		return err
	}

	subject := p.prefix + "." + string(rec.Engine)
	if err = p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
