package archive

import (
	"context"
	"fmt"

	"github.com/garrettladley/thoura/internal/client/oura"
	go_json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Sink = (*PostgresSink)(nil)

type PostgresSink struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, url string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := applyMigrations(ctx, &postgresMigrator{pool: pool}, "sql/postgres"); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &PostgresSink{pool: pool}, nil
}

func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresSink) PutSleeps(ctx context.Context, sleeps []oura.Sleep) error {
	batch, err := sleepBatch(sleeps)
	if err != nil {
		return err
	}
	return s.send(ctx, batch)
}

func (s *PostgresSink) PutActivities(ctx context.Context, activities []oura.Activity) error {
	batch, err := activityBatch(activities)
	if err != nil {
		return err
	}
	return s.send(ctx, batch)
}

func (s *PostgresSink) PutReadiness(ctx context.Context, readiness []oura.Readiness) error {
	batch, err := readinessBatch(readiness)
	if err != nil {
		return err
	}
	return s.send(ctx, batch)
}

const (
	upsertSleepSQL = `
		INSERT INTO sleeps (summary_date, period_id, is_longest, bedtime_start, bedtime_end, score, total, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (summary_date, period_id) DO UPDATE SET
			is_longest = EXCLUDED.is_longest,
			bedtime_start = EXCLUDED.bedtime_start,
			bedtime_end = EXCLUDED.bedtime_end,
			score = EXCLUDED.score,
			total = EXCLUDED.total,
			payload = EXCLUDED.payload,
			archived_at = NOW()`

	upsertActivitySQL = `
		INSERT INTO activities (summary_date, score, steps, cal_total, rest_mode_state, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (summary_date) DO UPDATE SET
			score = EXCLUDED.score,
			steps = EXCLUDED.steps,
			cal_total = EXCLUDED.cal_total,
			rest_mode_state = EXCLUDED.rest_mode_state,
			payload = EXCLUDED.payload,
			archived_at = NOW()`

	upsertReadinessSQL = `
		INSERT INTO readiness (summary_date, period_id, score, rest_mode_state, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (summary_date, period_id) DO UPDATE SET
			score = EXCLUDED.score,
			rest_mode_state = EXCLUDED.rest_mode_state,
			payload = EXCLUDED.payload,
			archived_at = NOW()`
)

func sleepBatch(sleeps []oura.Sleep) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, r := range sleeps {
		payload, err := go_json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal sleep %s: %w", r.Key(), err)
		}
		batch.Queue(upsertSleepSQL, r.SummaryDate, r.PeriodID, r.Longest(), r.BedtimeStart, r.BedtimeEnd, int(r.Score), r.Total, payload)
	}
	return batch, nil
}

func activityBatch(activities []oura.Activity) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, r := range activities {
		payload, err := go_json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal activity %s: %w", r.Key(), err)
		}
		batch.Queue(upsertActivitySQL, r.SummaryDate, int(r.Score), r.Steps, r.CalTotal, int(r.RestModeState), payload)
	}
	return batch, nil
}

func readinessBatch(readiness []oura.Readiness) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, r := range readiness {
		payload, err := go_json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal readiness %s: %w", r.Key(), err)
		}
		batch.Queue(upsertReadinessSQL, r.SummaryDate, r.PeriodID, int(r.Score), int(r.RestModeState), payload)
	}
	return batch, nil
}

// send runs the batch in one transaction so a window lands whole or not at all.
func (s *PostgresSink) send(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type postgresMigrator struct {
	pool *pgxpool.Pool
}

func (m *postgresMigrator) createHistoryTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	return err
}

func (m *postgresMigrator) isApplied(ctx context.Context, name string) (bool, error) {
	var count int
	err := m.pool.QueryRow(ctx, "SELECT COUNT(*) FROM migrations_history WHERE name = $1", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *postgresMigrator) exec(ctx context.Context, stmt string) error {
	_, err := m.pool.Exec(ctx, stmt)
	return err
}

func (m *postgresMigrator) record(ctx context.Context, name string) error {
	_, err := m.pool.Exec(ctx, "INSERT INTO migrations_history (name) VALUES ($1)", name)
	return err
}
