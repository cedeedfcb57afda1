package station

import (
	"errors"

	"github.com/katalvlaran/subway/geo"
)

// Sentinel errors for station lookups and line assembly.
var (
	// ErrNotFound indicates that a station name has no directory entry.
	ErrNotFound = errors.New("station: not found")

	// ErrEmptyLine indicates an empty line identifier.
	ErrEmptyLine = errors.New("station: line identifier is empty")

	// ErrEmptyName indicates a station record with an empty name.
	ErrEmptyName = errors.New("station: station name is empty")
)

// Station is a single stop on a line. It is created once while loading
// network data and never mutated afterwards.
type Station struct {
	// Line is the identifier of the line this record was loaded from.
	Line string `json:"line"`

	// Name is the display name and lookup key.
	Name string `json:"name"`

	// Lat and Lng are decimal degrees.
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the station coordinates as a geo.Point.
func (s Station) Point() geo.Point {
	return geo.Point{Lat: s.Lat, Lng: s.Lng}
}
