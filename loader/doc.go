// Package loader turns raw network data into ordered per-line station
// sequences (station.Lines) for the network builder.
//
// Two formats are supported:
//
// HTML table (ParseHTML)
//
//	The first <table> of the document is read row by row:
//	  - a row with exactly one <td> starts a new line; its text is the line id;
//	    a blank one drops the rows under it until the next header
//	  - rows before the first line header are ignored
//	  - rows without <td> cells (e.g. <th> header rows) are ignored
//	  - any other row is a station: cell 1 = name, cell 3 = latitude,
//	    cell 4 = longitude (0-based); at least five cells are required
//
// CSV (ParseCSV)
//
//	A header row naming the columns line, name, lat, lng (any order, extra
//	columns ignored), then one station per row. Lines appear in the order of
//	their first row.
//
// Load dispatches on file extension: .html, .htm and .txt are parsed as HTML,
// .csv as CSV.
//
// Errors
//
//   - ErrNoTable:        the HTML document contains no <table>.
//   - ErrMalformedRow:   a station row has too few cells or an empty name.
//   - ErrBadCoordinate:  a latitude or longitude cell is not a finite number.
//   - ErrMissingColumn:  the CSV header lacks a required column.
//   - ErrUnknownFormat:  Load was given an unsupported extension.
package loader
