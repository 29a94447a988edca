// Package report defines the turn report document and its JSON parser.
// A report is one dated snapshot of the game world as visible to one
// faction; its region and event shapes are shared with the world store.
package report

import "github.com/talgya/turnmap/internal/world"

// Report is a parsed turn report document.
type Report struct {
	Name           string         `json:"name,omitempty"`
	Number         int            `json:"number,omitempty"`
	Date           Date           `json:"date"`
	Engine         Engine         `json:"engine"`
	Attitudes      Attitudes      `json:"attitudes"`
	Administrative Administrative `json:"administrative"`
	Regions        []RegionEntry  `json:"regions,omitempty"`
	Events         []Event        `json:"events,omitempty"`
}

// RegionEntry is one row of the report's region list. The coordinate is
// kept raw, with pointer axes, so a missing coordinates object or a
// missing single axis can be told apart from a legitimate zero; such
// rows are skipped during ingestion.
type RegionEntry struct {
	world.Region
	RawCoord *RawCoord `json:"coordinates"`
}

// RawCoord is a coordinate as it appears on the wire, either axis
// possibly absent.
type RawCoord struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// Coordinate returns the entry's coordinate and whether both axes were
// actually present in the document.
func (e *RegionEntry) Coordinate() (world.Coord, bool) {
	if e.RawCoord == nil || e.RawCoord.X == nil || e.RawCoord.Y == nil {
		return world.Coord{}, false
	}
	return world.Coord{X: *e.RawCoord.X, Y: *e.RawCoord.Y}, true
}

// Date is the turn's in-game date.
type Date struct {
	Month string `json:"month,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// Engine identifies the game engine that produced the report.
type Engine struct {
	Ruleset        string `json:"ruleset,omitempty"`
	RulesetVersion string `json:"ruleset_version,omitempty"`
	Version        string `json:"version,omitempty"`
}

// Attitudes holds the faction's diplomatic stance lists.
type Attitudes struct {
	Default    string             `json:"default,omitempty"`
	Ally       []world.FactionRef `json:"ally,omitempty"`
	Friendly   []world.FactionRef `json:"friendly,omitempty"`
	Neutral    []world.FactionRef `json:"neutral,omitempty"`
	Unfriendly []world.FactionRef `json:"unfriendly,omitempty"`
	Hostile    []world.FactionRef `json:"hostile,omitempty"`
}

// Administrative holds the account settings echoed back in each report.
type Administrative struct {
	PasswordUnset     bool   `json:"password_unset,omitempty"`
	ShowUnitAttitudes bool   `json:"show_unit_attitudes,omitempty"`
	TimesSent         bool   `json:"times_sent,omitempty"`
	Email             string `json:"email,omitempty"`
}

// Event is one faction-visible notification. The message doubles as the
// deduplication key: two events with the same non-empty message are the
// same event.
type Event struct {
	Message  string     `json:"message,omitempty"`
	Category string     `json:"category,omitempty"`
	Unit     *UnitRef   `json:"unit,omitempty"`
	Region   *RegionRef `json:"region,omitempty"`
}

// UnitRef ties an event to a unit.
type UnitRef struct {
	Name   string `json:"name,omitempty"`
	Number int    `json:"number"`
}

// RegionRef ties an event to a hex.
type RegionRef struct {
	Terrain  string       `json:"terrain,omitempty"`
	Province string       `json:"province,omitempty"`
	Coord    *world.Coord `json:"coordinates,omitempty"`
}
