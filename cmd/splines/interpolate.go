package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	splines "github.com/tphakala/go-splines"
	"github.com/tphakala/go-splines/internal/table"
)

// interpolateOptions holds the interpolate command flags.
type interpolateOptions struct {
	input  string
	output string
	job    string

	keys   []string
	x      string
	values []string

	method  string
	fill    string
	xi      string
	grid    string
	onError string

	parallel bool
	workers  int
}

func newInterpolateCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &interpolateOptions{}

	cmd := &cobra.Command{
		Use:   "interpolate",
		Short: "Interpolate grouped CSV data",
		Long: `Read control points from CSV, partition rows by the key columns and
evaluate every value column at the query points. Output is long-format CSV
with one row per group and query point; missing values are empty cells.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInterpolate(cmd.Context(), cmd, rootOpts, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", stdStream, "input CSV file (- for stdin)")
	f.StringVarP(&opts.output, "output", "o", stdStream, "output CSV file (- for stdout)")
	f.StringVar(&opts.job, "job", "", "YAML job file describing columns, method and queries")
	f.StringSliceVar(&opts.keys, "keys", nil, "key columns that partition rows into groups")
	f.StringVar(&opts.x, "x", "x", "x column")
	f.StringSliceVar(&opts.values, "values", []string{"y"}, "value columns")
	f.StringVarP(&opts.method, "method", "m", "linear", "interpolation method (linear|cosine|catmullrom)")
	f.StringVar(&opts.fill, "fill", "", "constant for out-of-domain queries (empty for null)")
	f.StringVar(&opts.xi, "xi", "", "comma-separated query points")
	f.StringVar(&opts.grid, "grid", "", "evenly spaced query points as start:stop:num")
	f.StringVar(&opts.onError, "on-error", "fail-fast", "group failure policy (fail-fast|null-on-error)")
	f.BoolVar(&opts.parallel, "parallel", false, "evaluate groups concurrently")
	f.IntVar(&opts.workers, "workers", 0, "concurrent groups when --parallel is set (0 for GOMAXPROCS)")

	cmd.MarkFlagsMutuallyExclusive("xi", "grid")
	for _, name := range []string{"keys", "x", "values", "method", "fill", "xi", "grid", "on-error", "parallel", "workers"} {
		cmd.MarkFlagsMutuallyExclusive("job", name)
	}

	return cmd
}

// buildJob turns the flags into a job, or loads the job file.
func (o *interpolateOptions) buildJob() (*table.Job, error) {
	if o.job != "" {
		return table.LoadJob(o.job)
	}

	job := &table.Job{
		Method:   o.method,
		OnError:  o.onError,
		Parallel: o.parallel,
		Workers:  o.workers,
		Keys:     o.keys,
		X:        o.x,
		Values:   o.values,
	}

	if o.fill != "" {
		v, err := cast.ToFloat64E(o.fill)
		if err != nil {
			return nil, fmt.Errorf("%w: fill %q", splines.ErrInvalidValue, o.fill)
		}
		job.Fill = &v
	}

	switch {
	case o.grid != "":
		g, err := table.ParseGrid(o.grid)
		if err != nil {
			return nil, err
		}
		job.Grid = &g
	case o.xi != "":
		xi, err := table.ParseQueries(o.xi)
		if err != nil {
			return nil, err
		}
		job.Xi = xi
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

func runInterpolate(ctx context.Context, cmd *cobra.Command, rootOpts *rootOptions, opts *interpolateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	job, err := opts.buildJob()
	if err != nil {
		return err
	}

	cfg, err := job.Config()
	if err != nil {
		return err
	}
	groupOpts, err := job.GroupOptions()
	if err != nil {
		return err
	}
	groupOpts.Logger = rootOpts.logger()

	in, err := openInput(opts.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	cols := job.Columns()
	frame, err := table.ReadCSV(in, cols)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.input, err)
	}

	results := make([][]splines.GroupResult, len(cols.Values))
	for c, name := range cols.Values {
		results[c], err = splines.InterpolateGroups(ctx, frame.Groups(c), cfg, groupOpts)
		if err != nil {
			return fmt.Errorf("value column %q: %w", name, err)
		}
	}

	out, err := openOutput(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	err = table.WriteCSV(out, table.Output{
		Columns: cols,
		Keys:    frame.Keys(),
		Xi:      cfg.Xi,
		Results: results,
	})
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == stdStream {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == stdStream {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
