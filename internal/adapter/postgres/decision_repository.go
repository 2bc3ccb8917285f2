package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// DecisionRepository stores the decision audit log in PostgreSQL. It
// implements port.DecisionSink and port.DecisionStats.
type DecisionRepository struct {
	pool *pgxpool.Pool
}

// NewDecisionRepository returns a new repository instance.
func NewDecisionRepository(pool *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{pool: pool}
}

// Record appends one decision to the log.
func (r *DecisionRepository) Record(ctx context.Context, rec domain.DecisionRecord) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO decision_log
(id, engine, source, strategy, subject_id, confidence, summary, duration_ms, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, string(rec.Engine), string(rec.Source), rec.Strategy, rec.SubjectID,
		rec.Confidence, rec.Summary, durationMs(rec), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert decision %s: %w", rec.ID, err)
	}
	return nil
}

// GetStats returns decision counts per engine and source.
func (r *DecisionRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	query, args := statsQuery(req)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	stats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SourceStats, error) {
		var (
			s              port.SourceStats
			engine, source string
		)
		err := row.Scan(&engine, &source, &s.Count, &s.AvgConfidence, &s.AvgDurationMs)
		s.Engine, s.Source = domain.Engine(engine), domain.Source(source)
		return s, err
	})
	if err != nil {
		return nil, err
	}

	resp := &port.StatsResp{From: req.From, To: req.To, Rows: stats}
	for _, s := range stats {
		resp.Total += s.Count
	}
	return resp, nil
}

// Ping checks connectivity.
func (r *DecisionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func statsQuery(req port.StatsReq) (string, []any) {
	args := []any{req.From, req.To}
	whereEngine := ""
	if req.Engine != nil {
		whereEngine = "AND engine = $3"
		args = append(args, string(*req.Engine))
	}
	query := fmt.Sprintf(`SELECT engine, source, count(*), COALESCE(avg(confidence),0), COALESCE(avg(duration_ms),0)
FROM decision_log WHERE created_at >= $1 AND created_at <= $2 %s
GROUP BY engine, source ORDER BY engine, source`, whereEngine)
	return query, args
}

func durationMs(rec domain.DecisionRecord) float64 {
	return float64(rec.Duration.Microseconds()) / 1000
}
