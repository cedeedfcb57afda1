package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/subway/station"
)

// Load reads the network file at path, choosing the parser by extension.
func Load(path string) (*station.Lines, error) {
	var parse func(f *os.File) (*station.Lines, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".txt":
		parse = func(f *os.File) (*station.Lines, error) { return ParseHTML(f) }
	case ".csv":
		parse = func(f *os.File) (*station.Lines, error) { return ParseCSV(f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}
