// Package table reads grouped control points from CSV, writes interpolated
// results back as long-format CSV, and loads YAML job files describing a run.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cast"

	splines "github.com/tphakala/go-splines"
)

// Columns names the roles of the input columns.
type Columns struct {
	// Keys are the categorical columns that partition rows into groups.
	// Empty means the whole table is one group.
	Keys []string

	// X is the control point abscissa column.
	X string

	// Values are the ordinate columns, each interpolated independently.
	Values []string
}

// Validate checks that the column roles are set and do not overlap.
func (c Columns) Validate() error {
	if c.X == "" {
		return fmt.Errorf("%w: x column not set", ErrMissingColumn)
	}
	if len(c.Values) == 0 {
		return fmt.Errorf("%w: no value columns", ErrMissingColumn)
	}

	seen := make(map[string]bool, len(c.Keys)+1+len(c.Values))
	for _, name := range slices.Concat(c.Keys, []string{c.X}, c.Values) {
		if name == "" {
			return fmt.Errorf("%w: empty column name", ErrMissingColumn)
		}
		if seen[name] {
			return fmt.Errorf("%w: column %q used twice", splines.ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	return nil
}

// series holds the control points of one value column within one group.
type series struct {
	x []float64
	y []float64
}

// Frame is a decoded table: groups in order of first appearance, each with
// one series per value column.
type Frame struct {
	Columns Columns

	keys   [][]string
	index  map[string]int
	series [][]series // [group][value column]
}

// Len returns the number of groups.
func (f *Frame) Len() int { return len(f.keys) }

// Keys returns the key values of every group, in order of first appearance.
func (f *Frame) Keys() [][]string { return f.keys }

// Groups returns the groups for value column col, ready for interpolation.
func (f *Frame) Groups(col int) []splines.Group {
	groups := make([]splines.Group, len(f.keys))
	for g, key := range f.keys {
		s := f.series[g][col]
		groups[g] = splines.Group{Key: key, X: s.x, Y: s.y}
	}
	return groups
}

func (f *Frame) group(key []string) int {
	id := strings.Join(key, "\x00")
	if g, ok := f.index[id]; ok {
		return g
	}

	g := len(f.keys)
	f.index[id] = g
	f.keys = append(f.keys, key)
	f.series = append(f.series, make([]series, len(f.Columns.Values)))
	return g
}

// ReadCSV decodes a CSV stream with a header row. A row whose x cell or
// value cell is empty contributes nothing to that value column; any other
// unparseable numeric cell is an error naming its row and column.
func ReadCSV(r io.Reader, cols Columns) (*Frame, error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	keyIdx, err := lookup(header, cols.Keys)
	if err != nil {
		return nil, err
	}
	xIdx, err := lookup(header, []string{cols.X})
	if err != nil {
		return nil, err
	}
	valIdx, err := lookup(header, cols.Values)
	if err != nil {
		return nil, err
	}

	f := &Frame{Columns: cols, index: make(map[string]int)}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		key := make([]string, len(keyIdx))
		for i, idx := range keyIdx {
			key[i] = strings.TrimSpace(rec[idx])
		}
		g := f.group(key)

		x, ok, err := parseCell(rec[xIdx[0]])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", row, cols.X, err)
		}
		if !ok {
			continue
		}

		for c, idx := range valIdx {
			y, ok, err := parseCell(rec[idx])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, cols.Values[c], err)
			}
			if !ok {
				continue
			}
			s := &f.series[g][c]
			s.x = append(s.x, x)
			s.y = append(s.y, y)
		}
	}

	return f, nil
}

func lookup(header, names []string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j := slices.Index(header, name)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = j
	}
	return idx, nil
}

// parseCell returns ok=false for an empty cell.
func parseCell(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err = cast.ToFloat64E(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	return v, true, nil
}
