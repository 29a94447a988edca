// Package persistence provides the SQLite turn archive: every
// successfully loaded report leaves a row of header data plus its event
// list behind, so past turns remain queryable after the session moves
// on. The archive is additive history only; it never feeds the
// overlay-merge path.
package persistence

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/turnmap/internal/report"
)

// DB wraps the SQLite connection holding the turn archive.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the archive database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		faction_name TEXT NOT NULL,
		faction_number INTEGER NOT NULL,
		month TEXT NOT NULL,
		year INTEGER NOT NULL,
		ruleset TEXT NOT NULL,
		ruleset_version TEXT NOT NULL,
		engine_version TEXT NOT NULL,
		region_count INTEGER NOT NULL,
		event_count INTEGER NOT NULL,
		loaded_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		category TEXT NOT NULL,
		unit_number INTEGER,
		x INTEGER,
		y INTEGER
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn_id);
	CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// TurnRecord is one archived report load.
type TurnRecord struct {
	ID            int64  `db:"id"`
	SessionID     string `db:"session_id"`
	FactionName   string `db:"faction_name"`
	FactionNumber int    `db:"faction_number"`
	Month         string `db:"month"`
	Year          int    `db:"year"`
	Ruleset       string `db:"ruleset"`
	RegionCount   int    `db:"region_count"`
	EventCount    int    `db:"event_count"`
	LoadedAt      string `db:"loaded_at"`
}

// EventRecord is one archived event row.
type EventRecord struct {
	ID         int64  `db:"id"`
	TurnID     int64  `db:"turn_id"`
	Message    string `db:"message"`
	Category   string `db:"category"`
	UnitNumber *int   `db:"unit_number"`
	X          *int   `db:"x"`
	Y          *int   `db:"y"`
}

// ArchiveTurn writes the report's header and event list in a single
// transaction and returns the new turn row id. regionCount is the size
// of the region store after ingestion (overlay-carried hexes included).
func (db *DB) ArchiveTurn(sessionID string, r *report.Report, regionCount int) (int64, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO turns
		(session_id, faction_name, faction_number, month, year,
		 ruleset, ruleset_version, engine_version,
		 region_count, event_count, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, r.Name, r.Number, r.Date.Month, r.Date.Year,
		r.Engine.Ruleset, r.Engine.RulesetVersion, r.Engine.Version,
		regionCount, len(r.Events), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert turn: %w", err)
	}
	turnID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Preparex(`INSERT INTO events
		(turn_id, message, category, unit_number, x, y)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, e := range r.Events {
		var unitNumber, x, y *int
		if e.Unit != nil {
			n := e.Unit.Number
			unitNumber = &n
		}
		if e.Region != nil && e.Region.Coord != nil {
			cx, cy := e.Region.Coord.X, e.Region.Coord.Y
			x, y = &cx, &cy
		}
		if _, err := stmt.Exec(turnID, e.Message, e.Category, unitNumber, x, y); err != nil {
			return 0, fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return turnID, nil
}

// RecentTurns returns the most recently archived turns, newest first.
func (db *DB) RecentTurns(limit int) ([]TurnRecord, error) {
	var turns []TurnRecord
	err := db.conn.Select(&turns,
		`SELECT id, session_id, faction_name, faction_number, month, year,
		        ruleset, region_count, event_count, loaded_at
		 FROM turns ORDER BY id DESC LIMIT ?`,
		limit,
	)
	return turns, err
}

// EventsForTurn returns the archived events of one turn in report order.
func (db *DB) EventsForTurn(turnID int64) ([]EventRecord, error) {
	var evs []EventRecord
	err := db.conn.Select(&evs,
		`SELECT id, turn_id, message, category, unit_number, x, y
		 FROM events WHERE turn_id = ? ORDER BY id`,
		turnID,
	)
	return evs, err
}

// SaveMeta stores a key-value pair in archive metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
