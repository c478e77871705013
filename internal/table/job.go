package table

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	splines "github.com/tphakala/go-splines"
)

// Grid describes num evenly spaced query points from Start to Stop.
type Grid struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Num   int     `yaml:"num"`
}

// Validate checks the grid bounds and size.
func (g Grid) Validate() error {
	if g.Num < 1 {
		return fmt.Errorf("%w: grid num must be positive, got %d", ErrInvalidJob, g.Num)
	}
	if !finite(g.Start) || !finite(g.Stop) {
		return fmt.Errorf("%w: grid bounds must be finite", ErrInvalidJob)
	}
	return nil
}

// Points expands the grid into query points.
func (g Grid) Points() []float64 {
	return splines.Linspace(g.Start, g.Stop, g.Num)
}

// ParseGrid parses "start:stop:num".
func ParseGrid(s string) (Grid, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Grid{}, fmt.Errorf("%w: grid %q must be start:stop:num", ErrInvalidJob, s)
	}

	start, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: grid start %q", ErrInvalidJob, parts[0])
	}
	stop, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: grid stop %q", ErrInvalidJob, parts[1])
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: grid num %q", ErrInvalidJob, parts[2])
	}

	g := Grid{Start: start, Stop: stop, Num: num}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// ParseQueries parses a comma-separated list of query points.
func ParseQueries(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}

	fields := strings.Split(s, ",")
	xi := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := cast.ToFloat64E(f)
		if f == "" || err != nil {
			return nil, fmt.Errorf("%w: query %d: %q", ErrBadCell, i, f)
		}
		xi[i] = v
	}
	return xi, nil
}

// Job is a complete interpolation run loaded from YAML.
type Job struct {
	Method  string   `yaml:"method"`
	Fill    *float64 `yaml:"fill"`
	OnError string   `yaml:"on_error"`

	Parallel bool `yaml:"parallel"`
	Workers  int  `yaml:"workers"`

	Keys   []string `yaml:"keys"`
	X      string   `yaml:"x"`
	Values []string `yaml:"values"`

	Xi   []float64 `yaml:"xi"`
	Grid *Grid     `yaml:"grid"`
}

// LoadJob reads and parses a job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return ParseJob(data)
}

// ParseJob parses a YAML job. Unknown fields are rejected.
func ParseJob(data []byte) (*Job, error) {
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &job, nil
}

// Validate checks that the job is self-consistent.
func (j *Job) Validate() error {
	if j.Grid != nil && len(j.Xi) > 0 {
		return fmt.Errorf("%w: xi and grid are mutually exclusive", ErrInvalidJob)
	}
	if j.Grid != nil {
		if err := j.Grid.Validate(); err != nil {
			return err
		}
	}
	if _, err := j.Config(); err != nil {
		return err
	}
	if _, err := j.GroupOptions(); err != nil {
		return err
	}
	return j.Columns().Validate()
}

// Columns returns the column roles named by the job.
func (j *Job) Columns() Columns {
	return Columns{Keys: j.Keys, X: j.X, Values: j.Values}
}

// Queries returns the query points, from the grid when one is set.
func (j *Job) Queries() []float64 {
	if j.Grid != nil {
		return j.Grid.Points()
	}
	if j.Xi == nil {
		return []float64{}
	}
	return j.Xi
}

// Config builds the interpolation configuration.
func (j *Job) Config() (splines.Config, error) {
	m, err := splines.ParseMethod(j.Method)
	if err != nil {
		return splines.Config{}, err
	}

	fill := splines.FillNull()
	if j.Fill != nil {
		fill = splines.FillConstant(*j.Fill)
	}

	cfg := splines.Config{Method: m, Fill: fill, Xi: j.Queries()}
	if err := cfg.Validate(); err != nil {
		return splines.Config{}, err
	}
	return cfg, nil
}

// GroupOptions builds the group runner options.
func (j *Job) GroupOptions() (splines.GroupOptions, error) {
	policy, err := splines.ParseErrorPolicy(j.OnError)
	if err != nil {
		return splines.GroupOptions{}, err
	}

	opts := splines.GroupOptions{Parallel: j.Parallel, Workers: j.Workers, OnError: policy}
	if err := opts.Validate(); err != nil {
		return splines.GroupOptions{}, err
	}
	return opts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
