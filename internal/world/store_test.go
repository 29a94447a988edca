package world

import "testing"

func TestStoreUpsertCreates(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 2, Y: 2}

	r := s.Upsert(coord, &Region{Terrain: "plain"})
	if r == nil {
		t.Fatal("Upsert returned nil")
	}
	if r.Coord != coord {
		t.Fatalf("coord = %v, want %v", r.Coord, coord)
	}
	if got := s.Get(coord); got != r {
		t.Fatal("Get should return the upserted record")
	}
}

func TestStoreUpsertShallowMerge(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 1, Y: 1}

	s.Upsert(coord, &Region{Terrain: "forest"})
	s.Upsert(coord, &Region{Population: &Population{Amount: 50, Race: "human"}})

	r := s.Get(coord)
	if r.Terrain != "forest" {
		t.Fatalf("terrain = %q, want \"forest\" (merge lost a field)", r.Terrain)
	}
	if r.Population == nil || r.Population.Amount != 50 {
		t.Fatalf("population = %+v, want amount 50", r.Population)
	}
	if s.Len() != 1 {
		t.Fatalf("store has %d regions, want 1 (duplicate coord must merge)", s.Len())
	}
}

func TestStoreObjectFieldsReplaceWholesale(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 0, Y: 0}

	s.Upsert(coord, &Region{Settlement: &Settlement{Name: "Oldtown", Size: "city"}})
	s.Upsert(coord, &Region{Settlement: &Settlement{Name: "Shire"}})

	st := s.Get(coord).Settlement
	if st.Name != "Shire" {
		t.Fatalf("settlement name = %q, want \"Shire\"", st.Name)
	}
	if st.Size != "" {
		t.Fatalf("settlement size = %q, want empty (no deep merge)", st.Size)
	}
}

func TestStoreStubMergeDoesNotErase(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 4, Y: 2}

	s.Upsert(coord, &Region{
		Terrain:    "mountain",
		Province:   "Highlands",
		Population: &Population{Amount: 200, Race: "dwarf"},
	})
	// A stub carries terrain only; merging it must not erase detail.
	s.Upsert(coord, &Region{Terrain: "mountain"})

	r := s.Get(coord)
	if r.Province != "Highlands" {
		t.Fatalf("province = %q, want \"Highlands\"", r.Province)
	}
	if r.Population == nil {
		t.Fatal("population erased by stub merge")
	}
}

func TestStoreReplaceAll(t *testing.T) {
	s := NewStore()
	s.Upsert(Coord{X: 0, Y: 0}, &Region{Terrain: "swamp"})
	s.Upsert(Coord{X: 2, Y: 0}, &Region{Terrain: "desert"})

	s.ReplaceAll([]*Region{
		{Coord: Coord{X: 4, Y: 4}, Terrain: "plain"},
	})

	if s.Len() != 1 {
		t.Fatalf("store has %d regions after ReplaceAll, want 1", s.Len())
	}
	if s.Get(Coord{X: 0, Y: 0}) != nil {
		t.Fatal("stale coordinate survived ReplaceAll")
	}
	if r := s.Get(Coord{X: 4, Y: 4}); r == nil || r.Terrain != "plain" {
		t.Fatalf("replacement region missing or wrong: %+v", r)
	}
}

func TestStoreReplaceAllMergesDuplicates(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 2, Y: 2}
	s.ReplaceAll([]*Region{
		{Coord: coord, Terrain: "forest"},
		{Coord: coord, Province: "Westwood"},
	})

	if s.Len() != 1 {
		t.Fatalf("store has %d regions, want 1", s.Len())
	}
	r := s.Get(coord)
	if r.Terrain != "forest" || r.Province != "Westwood" {
		t.Fatalf("duplicate bulk entries not merged: %+v", r)
	}
}

func TestStoreAllInsertionOrderAndCopy(t *testing.T) {
	s := NewStore()
	a, b := Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1}
	s.Upsert(a, &Region{Terrain: "plain"})
	s.Upsert(b, &Region{Terrain: "forest"})

	all := s.All()
	if len(all) != 2 || all[0].Coord != a || all[1].Coord != b {
		t.Fatalf("All() order wrong: %+v", all)
	}

	// The returned slice is a snapshot; growing the store must not
	// change it.
	s.Upsert(Coord{X: 2, Y: 2}, &Region{})
	if len(all) != 2 {
		t.Fatal("All() snapshot grew with the store")
	}
}

func TestStoreUnitsAt(t *testing.T) {
	s := NewStore()
	coord := Coord{X: 2, Y: 0}
	s.Upsert(coord, &Region{
		Units: []Unit{{Number: 101}},
		Structures: []Structure{
			{Name: "Tower", Number: 1, Units: []Unit{{Number: 202}}},
		},
	})

	units := s.UnitsAt(coord)
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2 (structure garrison included)", len(units))
	}
	if units[0].Number != 101 || units[1].Number != 202 {
		t.Fatalf("unit numbers = %d, %d; want 101, 202", units[0].Number, units[1].Number)
	}

	if got := s.UnitsAt(Coord{X: 8, Y: 8}); len(got) != 0 {
		t.Fatalf("unknown coord returned %d units", len(got))
	}
}
