package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/turnmap/internal/report"
	"github.com/talgya/turnmap/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "turns.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleReport() *report.Report {
	coord := world.Coord{X: 2, Y: 2}
	return &report.Report{
		Name:   "Hill Dwarves",
		Number: 27,
		Date:   report.Date{Month: "February", Year: 3},
		Engine: report.Engine{Ruleset: "NewOrigins", RulesetVersion: "3.0.0", Version: "5.2.5"},
		Events: []report.Event{
			{
				Message:  "Miners: Earns 120 silver working.",
				Category: "economy",
				Unit:     &report.UnitRef{Name: "Miners", Number: 101},
				Region:   &report.RegionRef{Coord: &coord},
			},
			{Message: "Taxes collected.", Category: "economy"},
		},
	}
}

func TestArchiveTurnRoundTrip(t *testing.T) {
	db := openTestDB(t)

	turnID, err := db.ArchiveTurn("session-1", sampleReport(), 14)
	if err != nil {
		t.Fatalf("ArchiveTurn: %v", err)
	}
	if turnID == 0 {
		t.Fatal("turn id should be non-zero")
	}

	turns, err := db.RecentTurns(10)
	if err != nil {
		t.Fatalf("RecentTurns: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("got %d turns, want 1", len(turns))
	}
	tr := turns[0]
	if tr.FactionName != "Hill Dwarves" || tr.FactionNumber != 27 {
		t.Fatalf("turn faction = %q/%d", tr.FactionName, tr.FactionNumber)
	}
	if tr.Month != "February" || tr.Year != 3 || tr.Ruleset != "NewOrigins" {
		t.Fatalf("turn header = %+v", tr)
	}
	if tr.RegionCount != 14 || tr.EventCount != 2 {
		t.Fatalf("counts = %d regions, %d events", tr.RegionCount, tr.EventCount)
	}
	if tr.SessionID != "session-1" {
		t.Fatalf("session id = %q", tr.SessionID)
	}
	if tr.LoadedAt == "" {
		t.Fatal("loaded_at not set")
	}

	evs, err := db.EventsForTurn(turnID)
	if err != nil {
		t.Fatalf("EventsForTurn: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	first := evs[0]
	if first.Message != "Miners: Earns 120 silver working." || first.Category != "economy" {
		t.Fatalf("first event = %+v", first)
	}
	if first.UnitNumber == nil || *first.UnitNumber != 101 {
		t.Fatalf("unit number = %v", first.UnitNumber)
	}
	if first.X == nil || *first.X != 2 || first.Y == nil || *first.Y != 2 {
		t.Fatalf("event coord = %v,%v", first.X, first.Y)
	}

	// The second event had no unit or region reference.
	second := evs[1]
	if second.UnitNumber != nil || second.X != nil || second.Y != nil {
		t.Fatalf("unreferenced event carries references: %+v", second)
	}
}

func TestRecentTurnsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.ArchiveTurn("s", sampleReport(), 1); err != nil {
		t.Fatal(err)
	}
	r2 := sampleReport()
	r2.Date.Month = "March"
	if _, err := db.ArchiveTurn("s", r2, 2); err != nil {
		t.Fatal(err)
	}

	turns, err := db.RecentTurns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 2 || turns[0].Month != "March" {
		t.Fatalf("turns = %+v, want March first", turns)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if err := db.SaveMeta("last_report_path", "reports/turn-3.json"); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	if err := db.SaveMeta("last_report_path", "reports/turn-4.json"); err != nil {
		t.Fatalf("SaveMeta overwrite: %v", err)
	}

	got, err := db.GetMeta("last_report_path")
	if err != nil {
		t.Fatalf("GetMeta: %v", err)
	}
	if got != "reports/turn-4.json" {
		t.Fatalf("meta = %q, want the overwritten value", got)
	}

	if _, err := db.GetMeta("missing"); err == nil {
		t.Fatal("GetMeta on a missing key should fail")
	}
}
