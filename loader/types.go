package loader

import "errors"

// Sentinel errors for network data parsing.
var (
	ErrNoTable       = errors.New("loader: no table found")
	ErrMalformedRow  = errors.New("loader: malformed station row")
	ErrBadCoordinate = errors.New("loader: bad coordinate")
	ErrMissingColumn = errors.New("loader: missing column")
	ErrUnknownFormat = errors.New("loader: unknown file format")
)

// Column positions of a station row in the HTML table.
const (
	colName = 1
	colLat  = 3
	colLng  = 4

	minStationCells = colLng + 1
)
