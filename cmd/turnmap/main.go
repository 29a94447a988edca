// Command turnmap loads a turn report and the persistent map overlay,
// prints a summary of the reconciled world, archives the turn, and saves
// the overlay back to disk. The GUI front end drives the same session
// surface; this launcher is the headless path.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/talgya/turnmap/internal/config"
	"github.com/talgya/turnmap/internal/persistence"
	"github.com/talgya/turnmap/internal/session"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if len(os.Args) > 1 {
		cfg.ReportPath = os.Args[1]
	}

	// ── Archive database ─────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.ArchivePath), 0755)
	db, err := persistence.Open(cfg.ArchivePath)
	if err != nil {
		slog.Error("failed to open archive", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("archive opened", "path", cfg.ArchivePath)

	// ── Session ──────────────────────────────────────────────────────
	sess := session.New()

	if err := sess.LoadOverlay(cfg.OverlayPath); err != nil {
		slog.Error("failed to load overlay", "error", err)
		os.Exit(1)
	}
	slog.Info("overlay loaded", "path", cfg.OverlayPath, "hexes", sess.Overlay().Len())

	if cfg.ReportPath == "" {
		slog.Info("no report given, nothing to do")
		return
	}

	if err := sess.LoadReport(cfg.ReportPath); err != nil {
		slog.Error("failed to load report", "error", err)
		os.Exit(1)
	}

	// ── Summary ──────────────────────────────────────────────────────
	rpt, err := sess.Report()
	if err != nil {
		slog.Error("no report after load", "error", err)
		os.Exit(1)
	}

	faction := sess.FactionInfo()
	date := sess.DateInfo()
	engine := sess.EngineInfo()

	regions := sess.Regions()
	var units, settlements int
	var population int64
	for _, r := range regions {
		units += len(r.AllUnits())
		if r.Settlement != nil {
			settlements++
		}
		if r.Population != nil {
			population += int64(r.Population.Amount)
		}
	}

	fmt.Printf("\n%s (%d) — %s, Year %d [%s %s]\n",
		faction.Name, faction.Number, date.Month, date.Year,
		engine.Ruleset, engine.RulesetVersion)
	fmt.Printf("Regions: %s   Settlements: %s   Units: %s   Population: %s\n",
		humanize.Comma(int64(len(regions))),
		humanize.Comma(int64(settlements)),
		humanize.Comma(int64(units)),
		humanize.Comma(population))
	fmt.Printf("Events this turn: %s\n", humanize.Comma(int64(len(rpt.Events))))

	// ── Archive ──────────────────────────────────────────────────────
	turnID, err := db.ArchiveTurn(sess.ID(), rpt, len(regions))
	if err != nil {
		slog.Error("failed to archive turn", "error", err)
	} else {
		slog.Info("turn archived", "turn_id", turnID, "session", sess.ID())
	}
	if err := db.SaveMeta("last_report_path", cfg.ReportPath); err != nil {
		slog.Warn("failed to record last report path", "error", err)
	}

	// ── Persist overlay ──────────────────────────────────────────────
	if err := sess.SaveOverlay(cfg.OverlayPath); err != nil {
		slog.Error("failed to save overlay", "error", err)
		os.Exit(1)
	}
	slog.Info("overlay saved", "path", cfg.OverlayPath, "hexes", sess.Overlay().Len())
}
