// Package overlay maintains the cross-turn region facts that decay out
// of newer reports: terrain, province, settlement, and population stop
// appearing for a hex once the faction no longer has units there, so
// they are remembered here and merged back into every loaded report.
package overlay

import (
	"sync"

	"github.com/talgya/turnmap/internal/world"
)

// Facts is the remembered subset of a region. Every field is optional;
// a zero field means "not known", never "known to be empty".
type Facts struct {
	Terrain    string            `json:"terrain,omitempty"`
	Province   string            `json:"province,omitempty"`
	Settlement *world.Settlement `json:"settlement,omitempty"`
	Population *world.Population `json:"population,omitempty"`
}

func (f Facts) isZero() bool {
	return f.Terrain == "" && f.Province == "" && f.Settlement == nil && f.Population == nil
}

// merge copies the known fields of src over f.
func (f *Facts) merge(src Facts) {
	if src.Terrain != "" {
		f.Terrain = src.Terrain
	}
	if src.Province != "" {
		f.Province = src.Province
	}
	if src.Settlement != nil {
		f.Settlement = src.Settlement
	}
	if src.Population != nil {
		f.Population = src.Population
	}
}

// Extract pulls the decaying-field subset out of a full region record.
func Extract(r *world.Region) Facts {
	return Facts{
		Terrain:    r.Terrain,
		Province:   r.Province,
		Settlement: r.Settlement,
		Population: r.Population,
	}
}

// Store is the persistent overlay: coordinate → remembered facts.
// Entries are created and updated as regions are ingested and are never
// deleted automatically. Safe for one writer and many readers.
type Store struct {
	mu    sync.RWMutex
	facts map[world.Coord]*Facts
}

// NewStore creates an empty overlay store.
func NewStore() *Store {
	return &Store{facts: make(map[world.Coord]*Facts)}
}

// Record merges facts into the entry for coord, creating it if absent.
// Recording a facts value with nothing known is a no-op, so a stub
// region never plants an empty entry.
func (s *Store) Record(coord world.Coord, facts Facts) {
	if facts.isZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.facts[coord]
	if !ok {
		f = &Facts{}
		s.facts[coord] = f
	}
	f.merge(facts)
}

// Get returns the remembered facts for coord and whether any exist.
func (s *Store) Get(coord world.Coord) (Facts, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.facts[coord]
	if !ok {
		return Facts{}, false
	}
	return *f, true
}

// Len returns the number of coordinates with remembered facts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts)
}

// ApplyTo merges every overlay entry into the region store. Coordinates
// the store does not know get a minimal stub region, so hexes absent
// from the latest report still surface their last known facts. Runs
// after every full ingestion.
func (s *Store) ApplyTo(regions *world.Store) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for coord, f := range s.facts {
		regions.Upsert(coord, &world.Region{
			Terrain:    f.Terrain,
			Province:   f.Province,
			Settlement: f.Settlement,
			Population: f.Population,
		})
	}
}
