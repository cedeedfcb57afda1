package station

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/subway/geo"
)

// Directory resolves station names to Station records.
// It is populated once and read-only afterwards.
type Directory struct {
	byName map[string]Station
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{byName: make(map[string]Station)}
}

// Load builds a Directory from every station in lines, in line insertion
// order then index order. Later occurrences of a name overwrite earlier ones.
func Load(lines *Lines) *Directory {
	d := NewDirectory()
	lines.Each(func(_ string, i int, seq []Station) {
		d.Put(seq[i])
	})

	return d
}

// Put records s under s.Name, replacing any previous record.
func (d *Directory) Put(s Station) {
	d.byName[s.Name] = s
}

// Get returns the record for name, or ErrNotFound.
func (d *Directory) Get(name string) (Station, error) {
	s, ok := d.byName[name]
	if !ok {
		return Station{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return s, nil
}

// Has reports whether name has a record.
func (d *Directory) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Len returns the number of distinct station names.
func (d *Directory) Len() int { return len(d.byName) }

// Names returns all station names sorted lexicographically.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.byName))
	for name := range d.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// DistanceBetween returns the great-circle distance in kilometres between the
// stations named a and b. ErrNotFound from either lookup is propagated.
func (d *Directory) DistanceBetween(a, b string) (float64, error) {
	sa, err := d.Get(a)
	if err != nil {
		return 0, err
	}
	sb, err := d.Get(b)
	if err != nil {
		return 0, err
	}

	return geo.Distance(sa.Point(), sb.Point()), nil
}
