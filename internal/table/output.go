package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cast"

	splines "github.com/tphakala/go-splines"
)

// Output is the interpolated table: one row per group and query point.
type Output struct {
	Columns Columns

	// Keys holds the key values of every group.
	Keys [][]string

	// Xi is the query sequence shared by every group.
	Xi []float64

	// Results is indexed [value column][group].
	Results [][]splines.GroupResult
}

// WriteCSV writes out in long format: key columns, the x column, then one
// column per value column. Missing values are empty cells.
func WriteCSV(w io.Writer, out Output) error {
	if len(out.Results) != len(out.Columns.Values) {
		return fmt.Errorf("%w: %d result sets for %d value columns",
			splines.ErrShape, len(out.Results), len(out.Columns.Values))
	}

	cw := csv.NewWriter(w)

	header := slices.Concat(out.Columns.Keys, []string{out.Columns.X}, out.Columns.Values)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rec := make([]string, len(header))
	nk := len(out.Columns.Keys)

	for g, key := range out.Keys {
		copy(rec, key)
		for i, q := range out.Xi {
			rec[nk] = cast.ToString(q)
			for c := range out.Results {
				rec[nk+1+c] = formatCell(out.Results[c][g].Result, i)
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write group %v: %w", key, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(r splines.Result, i int) string {
	v, ok := r.At(i)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}
