// Copyright Akcero Labs Inc., 2026. All rights reserved.

// Package store persists blueprint runs in a SQLite database. A run is
// immutable once saved; the blueprint is stored as a JSON column so the
// schema does not chase facet changes.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/akcero/blueprint-engine/pkg/types"
)

const dbFile = "blueprints.db"

// timeLayout pins fractional seconds to nine digits. RFC3339Nano trims
// trailing zeros, which breaks lexical ordering of the TEXT column for
// sub-second timestamps; a fixed-width layout keeps ORDER BY correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when no run matches the requested ID.
var ErrNotFound = errors.New("store: run not found")

// Store manages the run database.
type Store struct {
	db      *sql.DB
	maxList int
}

// New opens or creates the run database at dataDir/blueprints.db and
// ensures the schema exists.
func New(cfg types.StorageConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = 50
	}

	s := &Store{db: db, maxList: maxList}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			idea_text TEXT NOT NULL,
			blueprint TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun persists a completed run and returns its generated ID.
func (s *Store) SaveRun(ctx context.Context, ideaText string, bp *types.Blueprint) (string, error) {
	payload, err := json.Marshal(bp)
	if err != nil {
		return "", fmt.Errorf("marshaling blueprint: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(timeLayout)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, idea_text, blueprint, created_at) VALUES (?, ?, ?, ?)`,
		id, ideaText, string(payload), createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// ListRuns returns run summaries newest first. A limit of zero or less
// uses the configured default.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]types.RunSummary, error) {
	if limit <= 0 {
		limit = s.maxList
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, idea_text, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []types.RunSummary
	for rows.Next() {
		var id, idea, createdAt string
		if err := rows.Scan(&id, &idea, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		summaries = append(summaries, types.RunSummary{
			ID:          id,
			IdeaExcerpt: excerpt(idea, 80),
			CreatedAt:   ts,
		})
	}
	return summaries, rows.Err()
}

// GetRun fetches a full run record by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*types.RunRecord, error) {
	var idea, payload, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT idea_text, blueprint, created_at FROM runs WHERE id = ?`, id,
	).Scan(&idea, &payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", id, err)
	}

	var bp types.Blueprint
	if err := json.Unmarshal([]byte(payload), &bp); err != nil {
		return nil, fmt.Errorf("unmarshaling blueprint for run %s: %w", id, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run timestamp: %w", err)
	}

	return &types.RunRecord{
		ID:        id,
		IdeaText:  idea,
		Blueprint: bp,
		CreatedAt: ts,
	}, nil
}

// excerpt truncates s to max runes, appending an ellipsis when cut.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
