// Copyright Akcero Labs Inc., 2026. All rights reserved.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akcero/blueprint-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(types.StorageConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testBlueprint(summary string) *types.Blueprint {
	return &types.Blueprint{
		Idea: types.IdeaBrief{
			FeatureBundle: types.FeatureBundle{
				Problem:    "p",
				Solution:   "s",
				Domain:     "Technology & Innovation",
				Audience:   "Visionary product builders",
				Keywords:   []string{"innovation"},
				Attributes: map[string]bool{types.AttrAINative: true},
				Complexity: types.ComplexityLean,
			},
		},
		Summary: summary,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveRun(ctx, "a garden planner", testBlueprint("summary one"))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id == "" {
		t.Fatal("empty run ID")
	}

	rec, err := s.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.IdeaText != "a garden planner" {
		t.Errorf("idea text = %q", rec.IdeaText)
	}
	if rec.Blueprint.Summary != "summary one" {
		t.Errorf("blueprint summary = %q", rec.Blueprint.Summary)
	}
	if rec.Blueprint.Idea.Complexity != types.ComplexityLean {
		t.Errorf("complexity = %q", rec.Blueprint.Idea.Complexity)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("zero creation time")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetRun(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.SaveRun(ctx, "first idea", testBlueprint("one"))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := s.SaveRun(ctx, "second idea", testBlueprint("two"))
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Error("runs not ordered newest first")
	}

	limited, err := s.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != second {
		t.Error("limit did not keep only the newest run")
	}
}

func TestListRunsOrdersSubSecondTimestamps(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Variable-width fractions sort wrong lexically: ".1Z" > ".12Z".
	// The fixed-width layout keeps the TEXT column in timestamp order.
	older := time.Date(2026, 1, 1, 0, 0, 0, 100_000_000, time.UTC)
	newer := time.Date(2026, 1, 1, 0, 0, 0, 120_000_000, time.UTC)

	rows := []struct {
		id string
		ts time.Time
	}{
		{"run-older", older},
		{"run-newer", newer},
	}
	for _, row := range rows {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO runs (id, idea_text, blueprint, created_at) VALUES (?, ?, ?, ?)`,
			row.id, "idea", "{}", row.ts.Format(timeLayout),
		)
		if err != nil {
			t.Fatalf("inserting %s: %v", row.id, err)
		}
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-newer" || runs[1].ID != "run-older" {
		t.Errorf("order = [%s, %s], want newest first", runs[0].ID, runs[1].ID)
	}
	if !runs[0].CreatedAt.Equal(newer) {
		t.Errorf("newest CreatedAt = %v, want %v", runs[0].CreatedAt, newer)
	}
}

func TestListRunsExcerptTruncation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	long := ""
	for i := 0; i < 30; i++ {
		long += "blueprint "
	}
	if _, err := s.SaveRun(ctx, long, testBlueprint("x")); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if got := runs[0].IdeaExcerpt; len([]rune(got)) != 83 {
		t.Errorf("excerpt length = %d, want 83 (80 runes plus ellipsis)", len([]rune(got)))
	}
}
