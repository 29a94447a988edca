package world

import "sync"

// Store is the coordinate-keyed region store for the active session.
// It holds exactly one record per coordinate; upserting an existing
// coordinate merges into that record instead of creating a second one.
//
// The store is safe for one writer and many readers. List results are
// copies, so readers never observe a later mutation through a snapshot.
type Store struct {
	mu      sync.RWMutex
	regions map[Coord]*Region
	order   []Coord
}

// NewStore creates an empty region store.
func NewStore() *Store {
	return &Store{regions: make(map[Coord]*Region)}
}

// Upsert merges fields into the region at coord, creating the record if
// the coordinate is unseen. Any coordinate carried inside fields is
// ignored; coord is authoritative. Returns the resulting record.
func (s *Store) Upsert(coord Coord, fields *Region) *Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertLocked(coord, fields)
}

func (s *Store) upsertLocked(coord Coord, fields *Region) *Region {
	r, ok := s.regions[coord]
	if !ok {
		r = &Region{Coord: coord}
		s.regions[coord] = r
		s.order = append(s.order, coord)
	}
	r.Merge(fields)
	r.Coord = coord
	return r
}

// Get returns the region at coord, or nil if the coordinate is unknown.
func (s *Store) Get(coord Coord) *Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regions[coord]
}

// All returns every region in insertion order. The slice is a fresh
// copy; the pointed-to records are shared with the store.
func (s *Store) All() []*Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Region, 0, len(s.order))
	for _, c := range s.order {
		result = append(result, s.regions[c])
	}
	return result
}

// Len returns the number of regions in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions)
}

// ReplaceAll clears the store and bulk-loads regions, merging entries
// that share a coordinate. Used on full report ingestion so no stale
// coordinate survives a reload.
func (s *Store) ReplaceAll(regions []*Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regions = make(map[Coord]*Region, len(regions))
	s.order = s.order[:0]
	for _, r := range regions {
		s.upsertLocked(r.Coord, r)
	}
}

// UnitsAt returns the units stationed at coord, structures included.
// An unknown coordinate yields an empty list.
func (s *Store) UnitsAt(coord Coord) []Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.regions[coord]
	if !ok {
		return nil
	}
	return r.AllUnits()
}
