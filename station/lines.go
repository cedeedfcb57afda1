package station

import "fmt"

// Lines maps a line identifier to its ordered station sequence while
// remembering the order in which lines were first added.
//
// The zero value is not usable; construct with NewLines.
type Lines struct {
	order    []string
	stations map[string][]Station
}

// NewLines returns an empty Lines.
func NewLines() *Lines {
	return &Lines{stations: make(map[string][]Station)}
}

// Add appends stations to line, creating the line on first use. Adding with no
// stations registers an empty line. Each appended record has its Line field
// set to line.
//
// Returns ErrEmptyLine for an empty identifier and ErrEmptyName if any
// station has no name; in both cases nothing is appended.
func (l *Lines) Add(line string, stations ...Station) error {
	if line == "" {
		return ErrEmptyLine
	}
	for i, s := range stations {
		if s.Name == "" {
			return fmt.Errorf("%w: line %q index %d", ErrEmptyName, line, i)
		}
	}

	seq, ok := l.stations[line]
	if !ok {
		l.order = append(l.order, line)
		seq = make([]Station, 0, len(stations))
	}
	for _, s := range stations {
		s.Line = line
		seq = append(seq, s)
	}
	l.stations[line] = seq

	return nil
}

// Lines returns line identifiers in insertion order.
func (l *Lines) Lines() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)

	return out
}

// Stations returns a copy of the ordered sequence for line, or nil if the
// line is unknown.
func (l *Lines) Stations(line string) []Station {
	seq, ok := l.stations[line]
	if !ok {
		return nil
	}
	out := make([]Station, len(seq))
	copy(out, seq)

	return out
}

// Len returns the number of lines.
func (l *Lines) Len() int { return len(l.order) }

// Each calls fn for every station, lines in insertion order then stations by
// index. seq is the line's backing slice and must not be modified.
func (l *Lines) Each(fn func(line string, index int, seq []Station)) {
	for _, line := range l.order {
		seq := l.stations[line]
		for i := range seq {
			fn(line, i, seq)
		}
	}
}
