package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
)

// AnswerLogRepository persists one row per served answer for offline
// tuning of the classifier and the grounding gate.
type AnswerLogRepository struct {
	db *sql.DB
}

func NewAnswerLogRepository(db *sql.DB) *AnswerLogRepository {
	return &AnswerLogRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *AnswerLogRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/indexer startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082801)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS answer_log (
	id TEXT PRIMARY KEY,
	question TEXT NOT NULL,
	section TEXT NOT NULL,
	source TEXT NOT NULL,
	gate_outcome TEXT NOT NULL,
	answer TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answer_log_created_at ON answer_log(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_answer_log_source ON answer_log(source);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *AnswerLogRepository) Record(ctx context.Context, rec domain.AnswerRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO answer_log (id, question, section, source, gate_outcome, answer, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`,
		rec.ID, rec.Question, string(rec.Section), string(rec.Source), rec.GateOutcome, rec.Answer, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert answer log: %w", err)
	}
	return nil
}
