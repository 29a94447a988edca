// Package world provides the hex grid data model: coordinates, regions,
// units, and the coordinate-keyed region store.
// The grid uses staggered columns: a coordinate is on the grid only when
// its x and y share parity.
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses one hex on the map. Coordinates are immutable values
// and serve as the unique key for regions.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid reports whether the coordinate is a real grid position.
// Both axes must be non-negative and share parity (even columns hold
// even rows, odd columns hold odd rows). Invalid coordinates are
// expected in raw exit data and are filtered, not rejected as errors.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.Y >= 0 && c.X%2 == c.Y%2
}

// Key renders the coordinate as the "<x>,<y>" form used for overlay
// file keys.
func (c Coord) Key() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

func (c Coord) String() string {
	return "(" + c.Key() + ")"
}

// ParseKey parses a "<x>,<y>" key back into a coordinate.
func ParseKey(key string) (Coord, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Coord{}, fmt.Errorf("coord key %q: missing separator", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, fmt.Errorf("coord key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, fmt.Errorf("coord key %q: %w", key, err)
	}
	return Coord{X: x, Y: y}, nil
}
