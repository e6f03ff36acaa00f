// Package motion loads per-joint rotation time series from tabular
// motion files.
//
// A motion file is a CSV whose header names one column per joint, plus
// an optional time column. Each data row supplies one angle sample per
// joint. Column headers are taken verbatim - downstream binding requires
// an exact, case-sensitive match against scene node names.
//
// Failure isolation is per column: a malformed cell rejects that joint's
// whole track and leaves every other column untouched. Only file-level
// problems (unreadable source, broken header, bad time cell) are fatal.
package motion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Defaults for Options fields left zero.
const (
	DefaultFPS        = 24.0
	DefaultTimeColumn = "time"
)

// Options controls how a motion file is interpreted.
type Options struct {
	// FPS converts a time column (seconds) into frame indices:
	// frame = round(time * FPS). Ignored when the file has no time
	// column. Zero means DefaultFPS.
	FPS float64

	// TimeColumn is the exact header of the time column. A file without
	// this column uses the data row ordinal as the frame index. Zero
	// value means DefaultTimeColumn.
	TimeColumn string
}

func (o Options) withDefaults() Options {
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.TimeColumn == "" {
		o.TimeColumn = DefaultTimeColumn
	}
	return o
}

// LoadFile opens and loads a motion file from disk.
// Returns a *LoadError if the file cannot be opened or parsed at all.
func LoadFile(path string, opts Options) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open", Err: err}
	}
	defer f.Close()

	return Load(f, path, opts)
}

// Load reads a motion file from r. name is used in error messages only.
//
// The returned Set contains one Track per joint column whose cells all
// parsed as finite numbers, and one ColumnError per column that failed.
// Tracks satisfy the strictly-increasing frame invariant.
func Load(r io.Reader, name string, opts Options) (*Set, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows become per-column missing values

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Path: name, Message: "empty file"}
	}
	if err != nil {
		return nil, &LoadError{Path: name, Message: "cannot read header", Err: err}
	}

	// Locate the time column and reject ambiguity up front.
	timeIdx := -1
	for i, h := range header {
		if h != opts.TimeColumn {
			continue
		}
		if timeIdx >= 0 {
			return nil, &LoadError{Path: name, Message: fmt.Sprintf("duplicate time column %q", opts.TimeColumn)}
		}
		timeIdx = i
	}

	type column struct {
		name    string
		index   int
		samples []Sample
		failed  *ColumnError
	}

	// Joint columns in header order. Duplicate headers cannot be bound
	// unambiguously, so every column carrying the duplicated name fails.
	seen := make(map[string]*column)
	var cols []*column
	for i, h := range header {
		if i == timeIdx {
			continue
		}
		if prev, dup := seen[h]; dup {
			ce := &ColumnError{Column: h, Row: -1, Message: "duplicate column header"}
			prev.failed = ce
			continue
		}
		c := &column{name: h, index: i}
		seen[h] = c
		cols = append(cols, c)
	}
	if len(cols) == 0 {
		return nil, &LoadError{Path: name, Message: "no joint columns in header"}
	}

	rows := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: name, Message: fmt.Sprintf("cannot read row %d", rows), Err: err}
		}

		// Resolve the row's frame index. A broken time cell invalidates
		// the frame for every column, so it is fatal rather than
		// isolated.
		frame := rows
		if timeIdx >= 0 {
			if timeIdx >= len(row) {
				return nil, &LoadError{Path: name, Message: fmt.Sprintf("row %d: missing time value", rows)}
			}
			t, err := parseNumber(row[timeIdx])
			if err != nil {
				return nil, &LoadError{Path: name, Message: fmt.Sprintf("row %d: bad time value %q", rows, row[timeIdx]), Err: err}
			}
			frame = int(math.Round(t * opts.FPS))
		}

		for _, c := range cols {
			if c.failed != nil {
				continue
			}
			if c.index >= len(row) {
				c.failed = &ColumnError{Column: c.name, Row: rows, Message: "missing value"}
				continue
			}
			angle, err := parseNumber(row[c.index])
			if err != nil {
				c.failed = &ColumnError{Column: c.name, Row: rows, Message: err.Error()}
				continue
			}
			if n := len(c.samples); n > 0 && frame <= c.samples[n-1].Frame {
				c.failed = &ColumnError{
					Column:  c.name,
					Row:     rows,
					Message: fmt.Sprintf("frame index %d not increasing (previous %d)", frame, c.samples[n-1].Frame),
				}
				continue
			}
			c.samples = append(c.samples, Sample{Frame: frame, Angle: angle})
		}
		rows++
	}

	if rows == 0 {
		return nil, &LoadError{Path: name, Message: "no data rows"}
	}

	set := &Set{Tracks: make(map[string]*Track)}
	for _, c := range cols {
		if c.failed != nil {
			set.Failures = append(set.Failures, c.failed)
			continue
		}
		set.Tracks[c.name] = &Track{Joint: c.name, Samples: c.samples}
	}
	return set, nil
}

// parseNumber parses a cell as a finite float. Thousands separators are
// stripped first, matching the files this importer was built for.
func parseNumber(cell string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q", cell)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", cell)
	}
	return v, nil
}
