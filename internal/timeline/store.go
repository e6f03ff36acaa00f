package timeline

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/marionette/internal/scene"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed Timeline.
//
// It gives CLI runs a durable artifact: the keyframe channels plus a log
// of import runs. Uses WAL mode so the database stays readable while an
// import is writing.
type Store struct {
	db *sql.DB

	// run is the token of the run in progress, stamped onto keyframes.
	// Empty outside BeginRun/FinishRun.
	run string
}

// Open creates or opens a timeline database at the given path.
// Pass ":memory:" for an ephemeral database. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY during an import.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert implements Timeline. The upsert overwrites any prior keyframe
// at the same (node, frame) - re-importing never duplicates.
func (s *Store) Insert(ctx context.Context, node string, frame int, rot scene.Euler) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keyframes (node, frame, rx, ry, rz, run_token)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(node, frame) DO UPDATE SET
			rx = excluded.rx,
			ry = excluded.ry,
			rz = excluded.rz,
			run_token = excluded.run_token
	`, node, frame, rot.X, rot.Y, rot.Z, s.run)
	if err != nil {
		return fmt.Errorf("insert keyframe %s@%d: %w", node, frame, err)
	}
	return nil
}

// Keyframes implements Timeline. Returns the node's channel in ascending
// frame order, sentinel frame first when present.
func (s *Store) Keyframes(ctx context.Context, node string) ([]Keyframe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT frame, rx, ry, rz FROM keyframes
		WHERE node = ? ORDER BY frame ASC
	`, node)
	if err != nil {
		return nil, fmt.Errorf("read keyframes for %s: %w", node, err)
	}
	defer rows.Close()

	var kfs []Keyframe
	for rows.Next() {
		var kf Keyframe
		if err := rows.Scan(&kf.Frame, &kf.Rotation.X, &kf.Rotation.Y, &kf.Rotation.Z); err != nil {
			return nil, fmt.Errorf("scan keyframe for %s: %w", node, err)
		}
		kfs = append(kfs, kf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read keyframes for %s: %w", node, err)
	}
	return kfs, nil
}

// Nodes returns the names of all nodes with at least one keyframe, sorted.
func (s *Store) Nodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT node FROM keyframes ORDER BY node ASC`)
	if err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}
	defer rows.Close()

	var nodes []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// BeginRun records the start of an import run and stamps subsequent
// keyframes with its token. Re-running with the same token replaces the
// earlier run record.
func (s *Store) BeginRun(ctx context.Context, token, source string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (token, source, started_at)
		VALUES (?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			source = excluded.source,
			started_at = excluded.started_at,
			finished_at = NULL
	`, token, source, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin run %s: %w", token, err)
	}
	s.run = token
	return nil
}

// FinishRun closes out the run record with the final joint tallies.
func (s *Store) FinishRun(ctx context.Context, token string, imported, skipped, keyframes int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, imported = ?, skipped = ?, keyframes = ?
		WHERE token = ?
	`, time.Now().UTC().Format(time.RFC3339), imported, skipped, keyframes, token)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", token, err)
	}
	s.run = ""
	return nil
}

// RunRecord is one row of the import run log.
type RunRecord struct {
	Token      string
	Source     string
	StartedAt  string
	FinishedAt string
	Imported   int
	Skipped    int
	Keyframes  int
}

// Runs returns the import run log, most recent first.
func (s *Store) Runs(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT token, source, started_at, COALESCE(finished_at, ''), imported, skipped, keyframes
		FROM runs ORDER BY started_at DESC, token DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.Token, &r.Source, &r.StartedAt, &r.FinishedAt, &r.Imported, &r.Skipped, &r.Keyframes); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
