package table

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splines "github.com/tphakala/go-splines"
)

const sampleCSV = `site,sensor,t,temp,hum
a,1,0,10,50
a,1,1,20,
b,1,0,5,40
a,1,2,30,70
b,1,,99,99
b,1,2,15,60
`

func TestReadCSV_Groups(t *testing.T) {
	f, err := ReadCSV(strings.NewReader(sampleCSV), Columns{
		Keys:   []string{"site", "sensor"},
		X:      "t",
		Values: []string{"temp", "hum"},
	})
	require.NoError(t, err)

	require.Equal(t, 2, f.Len())
	assert.Equal(t, [][]string{{"a", "1"}, {"b", "1"}}, f.Keys())

	temp := f.Groups(0)
	assert.Equal(t, []float64{0, 1, 2}, temp[0].X)
	assert.Equal(t, []float64{10, 20, 30}, temp[0].Y)
	assert.Equal(t, []float64{0, 2}, temp[1].X, "row with empty x is dropped")
	assert.Equal(t, []float64{5, 15}, temp[1].Y)

	hum := f.Groups(1)
	assert.Equal(t, []float64{0, 2}, hum[0].X, "empty value cell drops only that column")
	assert.Equal(t, []float64{50, 70}, hum[0].Y)
	assert.Equal(t, []string{"b", "1"}, hum[1].Key)
}

func TestReadCSV_NoKeys(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("x,y\n1,2\n0,0\n"), Columns{X: "x", Values: []string{"y"}})
	require.NoError(t, err)

	require.Equal(t, 1, f.Len())
	g := f.Groups(0)[0]
	assert.Empty(t, g.Key)
	assert.Equal(t, []float64{1, 0}, g.X, "input order is preserved")
}

func TestReadCSV_NaNCellIsKept(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("x,y\n0,NaN\n1,1\n"), Columns{X: "x", Values: []string{"y"}})
	require.NoError(t, err)

	g := f.Groups(0)[0]
	require.Len(t, g.Y, 2)
	assert.True(t, math.IsNaN(g.Y[0]))
}

func TestReadCSV_Errors(t *testing.T) {
	cols := Columns{Keys: []string{"k"}, X: "x", Values: []string{"y"}}

	tests := []struct {
		name    string
		input   string
		cols    Columns
		wantErr error
		msg     string
	}{
		{"empty input", "", cols, ErrMissingColumn, "empty input"},
		{"missing key column", "x,y\n1,2\n", cols, ErrMissingColumn, `"k"`},
		{"bad x", "k,x,y\na,one,2\n", cols, ErrBadCell, `row 2 column "x"`},
		{"bad y", "k,x,y\na,1,2\na,2,two\n", cols, ErrBadCell, `row 3 column "y"`},
		{"no x column", "k,x,y\n", Columns{Values: []string{"y"}}, ErrMissingColumn, "x column"},
		{"duplicate role", "k,x,y\n", Columns{X: "x", Values: []string{"x"}}, splines.ErrInvalidConfig, "used twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), tt.cols)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadCSV_RaggedRow(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("x,y\n1\n"), Columns{X: "x", Values: []string{"y"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
