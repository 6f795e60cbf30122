// Package auditlog records each query the HTTP façade evaluates against the
// index into a queryable DuckDB table, so an operator can later ask "which
// queries ran against which snapshot generation, and how big were the
// results". JSON requests answered from the result cache are not recorded.
package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// Event is one served query, logged after the result is known.
type Event struct {
	Timestamp      time.Time
	Generation     uint64
	Strategy       string // "all", "union", or "intersection"
	Segments       string // "ASPECT,STATUS;ASPECT,STATUS" encoding of the request
	Format         string
	GeneCount      int
	AnnotationCount int
	DurationMillis int64
}

// Log records Events to a DuckDB table. A nil *Log is valid and Record is a
// no-op on it, so the audit log can be left unconfigured without every
// call site needing a presence check.
type Log struct {
	db *sql.DB
}

// Open opens or creates a DuckDB database at path and ensures the audit
// table exists. Use an empty string for an in-memory database, useful for
// tests.
func Open(path string) (*Log, error) {
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create audit log directory: %w", err)
			}
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	l := &Log{db: db}
	if err := l.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure audit schema: %w", err)
	}
	return l, nil
}

func (l *Log) ensureSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS query_events (
		ts TIMESTAMP,
		generation UBIGINT,
		strategy VARCHAR,
		segments VARCHAR,
		format VARCHAR,
		gene_count BIGINT,
		annotation_count BIGINT,
		duration_millis BIGINT
	)`)
	return err
}

// Close closes the underlying database connection. Safe to call on a nil
// *Log.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	return l.db.Close()
}

// Record inserts ev as a row. It is a no-op on a nil *Log, so callers do
// not need to branch on whether auditing is configured.
func (l *Log) Record(ctx context.Context, ev Event) error {
	if l == nil {
		return nil
	}
	_, err := l.db.ExecContext(ctx, `INSERT INTO query_events
		(ts, generation, strategy, segments, format, gene_count, annotation_count, duration_millis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Timestamp, ev.Generation, ev.Strategy, ev.Segments, ev.Format,
		ev.GeneCount, ev.AnnotationCount, ev.DurationMillis)
	return err
}

// Recent returns the most recent n query events, newest first. It returns
// an empty slice on a nil *Log.
func (l *Log) Recent(ctx context.Context, n int) ([]Event, error) {
	if l == nil {
		return nil, nil
	}
	rows, err := l.db.QueryContext(ctx, `SELECT ts, generation, strategy, segments, format,
		gene_count, annotation_count, duration_millis
		FROM query_events ORDER BY ts DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.Timestamp, &ev.Generation, &ev.Strategy, &ev.Segments,
			&ev.Format, &ev.GeneCount, &ev.AnnotationCount, &ev.DurationMillis); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
