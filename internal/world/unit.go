package world

// Attitude values a faction can hold toward another.
const (
	AttitudeAlly       = "ally"
	AttitudeFriendly   = "friendly"
	AttitudeNeutral    = "neutral"
	AttitudeUnfriendly = "unfriendly"
	AttitudeHostile    = "hostile"
)

// Unit is a group of people or creatures stationed in a region or one
// of its structures. The number is unique within a single report.
type Unit struct {
	Number    int             `json:"number"`
	Name      string          `json:"name,omitempty"`
	Faction   *FactionRef     `json:"faction,omitempty"`
	Attitude  string          `json:"attitude,omitempty"`
	Flags     UnitFlags       `json:"flags"`
	Inventory []InventoryItem `json:"items,omitempty"`
	Skills    []Skill         `json:"skills,omitempty"`
	Orders    []string        `json:"orders,omitempty"`
	OwnUnit   bool            `json:"own_unit,omitempty"`
}

// FactionRef identifies a faction by name and number.
type FactionRef struct {
	Name   string `json:"name,omitempty"`
	Number int    `json:"number"`
}

// UnitFlags holds the standing-order flags set on a unit.
type UnitFlags struct {
	Avoid bool `json:"avoid,omitempty"`
	Guard bool `json:"guard,omitempty"`
}

// InventoryItem is one line of a unit's possessions.
type InventoryItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Tag    string `json:"tag,omitempty"`
}

// Skill is one learned ability of a unit.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Days  int    `json:"days,omitempty"`
	Tag   string `json:"tag,omitempty"`
}
