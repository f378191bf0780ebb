package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status of a recorded export run.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Record is one export run.
type Record struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	StoreName string
	Pages     int
	Images    int
	Bytes     int64
	Status    Status
	Output    string
	Error     string
}

// Store provides access to export records.
type Store struct {
	db *DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *DB) *Store {
	return &Store{db: database}
}

// Log inserts a record. If rec.ID is empty a UUID is generated; if
// StartedAt is zero the current time is used.
func (s *Store) Log(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (
			id, started_at, duration_ms, store_name,
			pages, images, bytes, status, output, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.Duration.Milliseconds(),
		rec.StoreName,
		rec.Pages,
		rec.Images,
		rec.Bytes,
		string(rec.Status),
		rec.Output,
		rec.Error,
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

// Recent returns the most recent records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, duration_ms, store_name,
		       pages, images, bytes, status, output, error
		FROM exports
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying export records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec        Record
			startedAt  string
			durationMS int64
			status     string
		)
		if err := rows.Scan(&rec.ID, &startedAt, &durationMS, &rec.StoreName,
			&rec.Pages, &rec.Images, &rec.Bytes, &status, &rec.Output, &rec.Error); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.Status = Status(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Prune deletes records older than the cutoff and returns how many
// were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM exports WHERE started_at < ?`,
		before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("pruning export records: %w", err)
	}
	return res.RowsAffected()
}
