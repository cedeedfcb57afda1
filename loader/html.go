package loader

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/katalvlaran/subway/station"
)

// ParseHTML reads the first table of an HTML document into Lines.
func ParseHTML(r io.Reader) (*station.Lines, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("loader: parse html: %w", err)
	}

	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}

	lines := station.NewLines()
	line := ""
	for i, row := range collect(table, atom.Tr) {
		cells := cellTexts(row)
		switch {
		case len(cells) == 1:
			// a blank header leaves the rows under it without a line
			line = cells[0]
			if line == "" {
				continue
			}
			if err := lines.Add(line); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i, err)
			}
			continue
		case line == "", len(cells) == 0:
			continue
		case len(cells) < minStationCells:
			return nil, fmt.Errorf("%w: row %d has %d cells, want at least %d",
				ErrMalformedRow, i, len(cells), minStationCells)
		}

		s, err := parseStation(cells[colName], cells[colLat], cells[colLng])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := lines.Add(line, s); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i, err)
		}
	}

	return lines, nil
}

// parseStation builds a Station from trimmed name/lat/lng text.
func parseStation(name, lat, lng string) (station.Station, error) {
	if name == "" {
		return station.Station{}, fmt.Errorf("%w: empty station name", ErrMalformedRow)
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || !finite(la) {
		return station.Station{}, fmt.Errorf("%w: latitude %q of %q", ErrBadCoordinate, lat, name)
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil || !finite(ln) {
		return station.Station{}, fmt.Errorf("%w: longitude %q of %q", ErrBadCoordinate, lng, name)
	}

	return station.Station{Name: name, Lat: la, Lng: ln}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// findFirst returns the first element with the given atom in document order.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}

	return nil
}

// collect returns all descendants of n with the given atom in document order,
// without descending into nested tables.
func collect(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == a {
				out = append(out, c)
				continue
			}
			if c.DataAtom == atom.Table {
				continue
			}
			walk(c)
		}
	}
	walk(n)

	return out
}

// cellTexts returns the trimmed text of each direct <td> child of row.
func cellTexts(row *html.Node) []string {
	var cells []string
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Td {
			cells = append(cells, strings.TrimSpace(text(c)))
		}
	}

	return cells
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}

	return b.String()
}
