package recordlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
)

// SQLiteStore persists records in a SQLite database. Use ":memory:" for an
// ephemeral store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		op TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
	CREATE INDEX IF NOT EXISTS idx_records_run_seq ON records(run_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Append implements Store.
func (s *SQLiteStore) Append(ctx context.Context, runID string, ops []blockenc.Operation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq)+1, 0) FROM records WHERE run_id = ?`, runID,
	).Scan(&seq); err != nil {
		return fmt.Errorf("next seq: %w", err)
	}

	for i, op := range ops {
		payload, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("marshal record %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (run_id, seq, op, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
			runID, seq+i, opName(op), string(payload), time.Now().UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Read implements Store.
func (s *SQLiteStore) Read(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, seq, op, payload, created_at FROM records
		 WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var payload, createdAt string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Seq, &rec.Op, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		if err := json.Unmarshal([]byte(payload), &rec.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal record %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return records, nil
}

// Runs implements Store.
func (s *SQLiteStore) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT run_id FROM records ORDER BY run_id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
