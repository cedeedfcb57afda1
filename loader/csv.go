package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/subway/station"
)

var csvColumns = []string{"line", "name", "lat", "lng"}

// ParseCSV reads line,name,lat,lng rows into Lines.
func ParseCSV(r io.Reader) (*station.Lines, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	lines := station.NewLines()
	for row := 1; ; row++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read csv row %d: %w", row, err)
		}

		line := strings.TrimSpace(rec[idx["line"]])
		s, err := parseStation(
			strings.TrimSpace(rec[idx["name"]]),
			strings.TrimSpace(rec[idx["lat"]]),
			strings.TrimSpace(rec[idx["lng"]]),
		)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if err := lines.Add(line, s); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, row, err)
		}
	}

	return lines, nil
}
