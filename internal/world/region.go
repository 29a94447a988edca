package world

// Region is one hex as described by a turn report. Regions reached only
// through another region's exits are stubs: coordinate plus terrain,
// with no economic detail until a report covers them directly.
type Region struct {
	Coord      Coord       `json:"coordinates"`
	Terrain    string      `json:"terrain,omitempty"`
	Province   string      `json:"province,omitempty"`
	Population *Population `json:"population,omitempty"`
	Tax        int         `json:"tax,omitempty"`
	Wages      *Wages      `json:"wages,omitempty"`
	Entertain  int         `json:"entertainment,omitempty"`
	Products   []Product   `json:"products,omitempty"`
	Markets    *Markets    `json:"markets,omitempty"`
	Settlement *Settlement `json:"settlement,omitempty"`
	Structures []Structure `json:"structures,omitempty"`
	Units      []Unit      `json:"units,omitempty"`
	Exits      []Exit      `json:"exits,omitempty"`
}

// Population counts the inhabitants of a region.
type Population struct {
	Amount int    `json:"amount"`
	Race   string `json:"race,omitempty"`
}

// Wages holds the wage rate and the per-turn maximum.
type Wages struct {
	Amount float64 `json:"amount"`
	Max    int     `json:"max"`
}

// Product is one entry in a region's production list.
type Product struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Markets lists what a region buys and sells.
type Markets struct {
	ForSale []MarketItem `json:"for_sale,omitempty"`
	Wanted  []MarketItem `json:"wanted,omitempty"`
}

// MarketItem is one tradeable line in a market listing.
type MarketItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Price  int    `json:"price"`
}

// Settlement is the named population center of a region, if any.
type Settlement struct {
	Name string `json:"name"`
	Size string `json:"size,omitempty"`
}

// Structure is a building or ship inside a region. Units garrisoned in
// the structure are listed here rather than at the region level.
type Structure struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Units  []Unit `json:"units,omitempty"`
}

// Exit links a region to a neighbor. The neighbor is carried as a stub:
// reports include its coordinate and terrain only.
type Exit struct {
	Direction string    `json:"direction"`
	Region    *Neighbor `json:"region,omitempty"`
}

// Neighbor is the stub view of an adjacent region as seen on an exit.
// The coordinate is a pointer so exits with no coordinates at all can be
// told apart from exits pointing at (0,0).
type Neighbor struct {
	Coord   *Coord `json:"coordinates,omitempty"`
	Terrain string `json:"terrain,omitempty"`
}

// Merge copies the populated fields of src into r. The merge is shallow:
// scalar fields overwrite when src carries a value, and object-valued
// fields (population, markets, settlement, unit lists) replace wholesale.
// Absent fields (empty strings, nil pointers, nil slices, zero amounts)
// never erase existing data, so a stub can be merged over a fully
// detailed region without losing detail.
func (r *Region) Merge(src *Region) {
	if src.Terrain != "" {
		r.Terrain = src.Terrain
	}
	if src.Province != "" {
		r.Province = src.Province
	}
	if src.Population != nil {
		r.Population = src.Population
	}
	if src.Tax != 0 {
		r.Tax = src.Tax
	}
	if src.Wages != nil {
		r.Wages = src.Wages
	}
	if src.Entertain != 0 {
		r.Entertain = src.Entertain
	}
	if src.Products != nil {
		r.Products = src.Products
	}
	if src.Markets != nil {
		r.Markets = src.Markets
	}
	if src.Settlement != nil {
		r.Settlement = src.Settlement
	}
	if src.Structures != nil {
		r.Structures = src.Structures
	}
	if src.Units != nil {
		r.Units = src.Units
	}
	if src.Exits != nil {
		r.Exits = src.Exits
	}
}

// AllUnits returns the units stationed in the region, including units
// garrisoned inside structures.
func (r *Region) AllUnits() []Unit {
	units := make([]Unit, 0, len(r.Units))
	units = append(units, r.Units...)
	for _, st := range r.Structures {
		units = append(units, st.Units...)
	}
	return units
}
