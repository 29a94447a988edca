// Package session ties the stores together: it ingests turn reports into
// the region store, reconciles them with the persistent overlay, and
// exposes the query surface the presentation layer works against.
//
// A session is either empty or has exactly one loaded report. A load
// that fails (unreadable file, invalid syntax) leaves the previously
// committed stores untouched; only a fully parsed report is applied.
package session

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/turnmap/internal/events"
	"github.com/talgya/turnmap/internal/overlay"
	"github.com/talgya/turnmap/internal/report"
	"github.com/talgya/turnmap/internal/world"
)

// ErrNoReport is returned by operations that require a loaded report.
var ErrNoReport = errors.New("no report loaded")

// Session holds one viewing session: the active report, the region
// store built from it, the cross-turn overlay, and the event index.
type Session struct {
	id      string
	regions *world.Store
	overlay *overlay.Store
	rpt     *report.Report
	index   *events.Index
}

// New creates an empty session with a fresh region store and overlay.
func New() *Session {
	return &Session{
		id:      uuid.NewString(),
		regions: world.NewStore(),
		overlay: overlay.NewStore(),
		index:   events.NewIndex(nil),
	}
}

// ID returns the session identifier, stamped onto archive rows.
func (s *Session) ID() string {
	return s.id
}

// Loaded reports whether a report is the active source of truth.
func (s *Session) Loaded() bool {
	return s.rpt != nil
}

// Report returns the active report, or ErrNoReport if the session is
// still empty.
func (s *Session) Report() (*report.Report, error) {
	if s.rpt == nil {
		return nil, ErrNoReport
	}
	return s.rpt, nil
}

// Overlay exposes the session's persistent overlay store.
func (s *Session) Overlay() *overlay.Store {
	return s.overlay
}

// LoadReport reads, parses, and ingests a turn report from disk.
func (s *Session) LoadReport(path string) error {
	r, err := report.ReadFile(path)
	if err != nil {
		return err
	}
	s.Ingest(r)
	slog.Info("report loaded",
		"path", path,
		"faction", r.Name,
		"regions", s.regions.Len(),
		"events", len(r.Events),
	)
	return nil
}

// Ingest makes r the active report. Regions replace the store wholesale,
// the overlay records each region's decaying facts and is then applied
// back so hexes missing from this report keep their last known data,
// and the event index is rebuilt from r's event list verbatim.
//
// Ingesting the same report twice yields the same store contents as
// ingesting it once.
func (s *Session) Ingest(r *report.Report) {
	staged := world.NewStore()

	for i := range r.Regions {
		entry := &r.Regions[i]
		coord, ok := entry.Coordinate()
		if !ok {
			slog.Warn("skipping region without coordinates", "index", i)
			continue
		}
		if !coord.Valid() {
			continue
		}
		region := entry.Region
		staged.Upsert(coord, &region)
		s.overlay.Record(coord, overlay.Extract(&region))
	}

	// Exits admit unseen neighbors as stubs. A known region is never
	// touched by its neighbors' exit data.
	for _, region := range staged.All() {
		for _, ex := range region.Exits {
			if ex.Region == nil || ex.Region.Coord == nil {
				continue
			}
			coord := *ex.Region.Coord
			if !coord.Valid() || staged.Get(coord) != nil {
				continue
			}
			staged.Upsert(coord, &world.Region{Terrain: ex.Region.Terrain})
		}
	}

	s.regions.ReplaceAll(staged.All())
	s.overlay.ApplyTo(s.regions)

	s.rpt = r
	s.index = events.NewIndex(r.Events)
}

// LoadOverlay loads the persistent overlay from path. A missing file
// yields an empty overlay; if a report is already loaded, the freshly
// loaded facts are applied to it.
func (s *Session) LoadOverlay(path string) error {
	if err := s.overlay.LoadFile(path); err != nil {
		return err
	}
	if s.rpt != nil {
		s.overlay.ApplyTo(s.regions)
	}
	return nil
}

// SaveOverlay writes the persistent overlay to path.
func (s *Session) SaveOverlay(path string) error {
	return s.overlay.SaveFile(path)
}

// Region returns the region at (x, y), or nil if unknown.
func (s *Session) Region(x, y int) *world.Region {
	return s.regions.Get(world.Coord{X: x, Y: y})
}

// Regions returns every known region, overlay-carried hexes included.
func (s *Session) Regions() []*world.Region {
	return s.regions.All()
}

// UnitsInRegion returns the units stationed at (x, y), including units
// garrisoned inside structures.
func (s *Session) UnitsInRegion(x, y int) []world.Unit {
	return s.regions.UnitsAt(world.Coord{X: x, Y: y})
}

// Markets returns the market listings at (x, y), or nil if the hex has
// none or is unknown.
func (s *Session) Markets(x, y int) *world.Markets {
	r := s.Region(x, y)
	if r == nil {
		return nil
	}
	return r.Markets
}

// Settlement returns the settlement at (x, y), or nil if the hex has
// none or is unknown.
func (s *Session) Settlement(x, y int) *world.Settlement {
	r := s.Region(x, y)
	if r == nil {
		return nil
	}
	return r.Settlement
}

// EventsForHex returns the deduplicated events relevant to (x, y):
// events tied to the hex itself plus events tied to units stationed
// there. See events.Index.ForHex for the ordering and dedup rules.
func (s *Session) EventsForHex(x, y int) []report.Event {
	coord := world.Coord{X: x, Y: y}

	units := s.regions.UnitsAt(coord)
	numbers := make([]int, 0, len(units))
	for _, u := range units {
		if u.Number != 0 {
			numbers = append(numbers, u.Number)
		}
	}
	return s.index.ForHex(coord, numbers)
}

// UnitOrders pairs a unit's identity with its order list.
type UnitOrders struct {
	UnitName   string   `json:"unit_name"`
	UnitNumber int      `json:"unit_number"`
	Orders     []string `json:"orders"`
}

// OrdersForHex returns the orders of the viewing faction's own units at
// (x, y). Units of other factions never expose orders.
func (s *Session) OrdersForHex(x, y int) []UnitOrders {
	var result []UnitOrders
	for _, u := range s.UnitsInRegion(x, y) {
		if !u.OwnUnit {
			continue
		}
		name := u.Name
		if name == "" {
			name = "Unknown Unit"
		}
		result = append(result, UnitOrders{
			UnitName:   name,
			UnitNumber: u.Number,
			Orders:     u.Orders,
		})
	}
	return result
}
