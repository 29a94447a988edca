// Package events indexes the active report's event list for per-hex and
// per-unit queries. Deduplication lives here and only here; callers must
// not re-filter the results.
package events

import (
	"github.com/talgya/turnmap/internal/report"
	"github.com/talgya/turnmap/internal/world"
)

// Index answers event queries against one report's event list. The list
// is session-scoped: each report load builds a fresh index and fully
// supersedes the previous one.
type Index struct {
	events []report.Event
}

// NewIndex builds an index over evs. The slice is used as-is.
func NewIndex(evs []report.Event) *Index {
	return &Index{events: evs}
}

// All returns the full event list in report order.
func (ix *Index) All() []report.Event {
	return ix.events
}

// ForRegion returns the events whose region reference names coord.
func (ix *Index) ForRegion(coord world.Coord) []report.Event {
	var result []report.Event
	for _, e := range ix.events {
		if e.Region != nil && e.Region.Coord != nil && *e.Region.Coord == coord {
			result = append(result, e)
		}
	}
	return result
}

// ForUnits returns the events whose unit reference is one of numbers.
func (ix *Index) ForUnits(numbers []int) []report.Event {
	if len(numbers) == 0 {
		return nil
	}
	wanted := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		wanted[n] = true
	}

	var result []report.Event
	for _, e := range ix.events {
		if e.Unit != nil && wanted[e.Unit.Number] {
			result = append(result, e)
		}
	}
	return result
}

// ForHex returns the events relevant to a hex: region-tied events first,
// then events tied to the units stationed there, deduplicated by message
// in first-seen order. Events without a message carry no dedup key and
// are always retained.
func (ix *Index) ForHex(coord world.Coord, unitNumbers []int) []report.Event {
	combined := ix.ForRegion(coord)
	combined = append(combined, ix.ForUnits(unitNumbers)...)

	seen := make(map[string]bool, len(combined))
	unique := combined[:0]
	for _, e := range combined {
		if e.Message != "" {
			if seen[e.Message] {
				continue
			}
			seen[e.Message] = true
		}
		unique = append(unique, e)
	}
	return unique
}
