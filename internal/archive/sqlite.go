package archive

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garrettladley/thoura/internal/client/oura"
	go_json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"
)

var _ Sink = (*SQLiteSink)(nil)

type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the archive file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	if err := applyMigrations(ctx, &sqliteMigrator{db: db}, "sql/sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

const sqlitePragmas = "_journal_mode=WAL&_busy_timeout=5000"

// sqliteDSN appends the pragmas to path, keeping any query it already has.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

func (s *SQLiteSink) Close() error { return s.db.Close() }

func (s *SQLiteSink) PutSleeps(ctx context.Context, sleeps []oura.Sleep) error {
	const query = `
		INSERT INTO sleeps (summary_date, period_id, is_longest, bedtime_start, bedtime_end, score, total, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (summary_date, period_id) DO UPDATE SET
			is_longest = excluded.is_longest,
			bedtime_start = excluded.bedtime_start,
			bedtime_end = excluded.bedtime_end,
			score = excluded.score,
			total = excluded.total,
			payload = excluded.payload,
			archived_at = CURRENT_TIMESTAMP`

	return s.inTx(ctx, query, len(sleeps), func(stmt *sql.Stmt, i int) error {
		r := sleeps[i]
		payload, err := go_json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal sleep %s: %w", r.Key(), err)
		}
		_, err = stmt.ExecContext(ctx, r.SummaryDate, r.PeriodID, r.IsLongest, r.BedtimeStart, r.BedtimeEnd, int(r.Score), r.Total, string(payload))
		return err
	})
}

func (s *SQLiteSink) PutActivities(ctx context.Context, activities []oura.Activity) error {
	const query = `
		INSERT INTO activities (summary_date, score, steps, cal_total, rest_mode_state, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (summary_date) DO UPDATE SET
			score = excluded.score,
			steps = excluded.steps,
			cal_total = excluded.cal_total,
			rest_mode_state = excluded.rest_mode_state,
			payload = excluded.payload,
			archived_at = CURRENT_TIMESTAMP`

	return s.inTx(ctx, query, len(activities), func(stmt *sql.Stmt, i int) error {
		r := activities[i]
		payload, err := go_json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal activity %s: %w", r.Key(), err)
		}
		_, err = stmt.ExecContext(ctx, r.SummaryDate, int(r.Score), r.Steps, r.CalTotal, int(r.RestModeState), string(payload))
		return err
	})
}

func (s *SQLiteSink) PutReadiness(ctx context.Context, readiness []oura.Readiness) error {
	const query = `
		INSERT INTO readiness (summary_date, period_id, score, rest_mode_state, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (summary_date, period_id) DO UPDATE SET
			score = excluded.score,
			rest_mode_state = excluded.rest_mode_state,
			payload = excluded.payload,
			archived_at = CURRENT_TIMESTAMP`

	return s.inTx(ctx, query, len(readiness), func(stmt *sql.Stmt, i int) error {
		r := readiness[i]
		payload, err := go_json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal readiness %s: %w", r.Key(), err)
		}
		_, err = stmt.ExecContext(ctx, r.SummaryDate, r.PeriodID, int(r.Score), int(r.RestModeState), string(payload))
		return err
	})
}

// inTx prepares query once and runs put for each of n rows in one transaction.
func (s *SQLiteSink) inTx(ctx context.Context, query string, n int, put func(stmt *sql.Stmt, i int) error) error {
	if n == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range n {
		if err := put(stmt, i); err != nil {
			return fmt.Errorf("upsert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type sqliteMigrator struct {
	db *sql.DB
}

func (m *sqliteMigrator) createHistoryTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (m *sqliteMigrator) isApplied(ctx context.Context, name string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations_history WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *sqliteMigrator) exec(ctx context.Context, stmt string) error {
	_, err := m.db.ExecContext(ctx, stmt)
	return err
}

func (m *sqliteMigrator) record(ctx context.Context, name string) error {
	_, err := m.db.ExecContext(ctx, "INSERT INTO migrations_history (name) VALUES (?)", name)
	return err
}
