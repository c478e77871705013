package splines

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/sgostarter/i/l"
)

// Group is one partition of rows sharing the same key values, carrying its
// own control points.
type Group struct {
	Key []string
	X   []float64
	Y   []float64
}

// GroupResult is the output for one Group, tagged with the group's key.
// Err is set only under NullOnError, in which case Result is all missing.
type GroupResult struct {
	Key    []string
	Result Result
	Err    error
}

// ErrorPolicy decides what happens when one group's call fails.
type ErrorPolicy int

const (
	// FailFast aborts the whole operation on the first failing group.
	FailFast ErrorPolicy = iota

	// NullOnError substitutes an all-missing result for a failing group and
	// keeps going. The error is recorded on the GroupResult.
	NullOnError
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case NullOnError:
		return "null-on-error"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy converts a policy name to an ErrorPolicy.
// The empty string selects FailFast.
func ParseErrorPolicy(name string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "null-on-error", "null":
		return NullOnError, nil
	default:
		return 0, fmt.Errorf("%w: unknown error policy %q", ErrInvalidConfig, name)
	}
}

// GroupOptions configures a GroupInterpolator.
type GroupOptions struct {
	// Parallel evaluates groups concurrently. Groups never share state, so
	// results are identical to sequential evaluation.
	Parallel bool

	// Workers caps concurrent groups when Parallel is set. 0 means GOMAXPROCS.
	Workers int

	// OnError selects the per-group failure policy.
	OnError ErrorPolicy

	// Logger receives per-group diagnostics. nil disables logging.
	Logger l.Wrapper
}

// Validate checks the options.
func (o *GroupOptions) Validate() error {
	if o.Workers < 0 || o.Workers > maxGroupWorkers {
		return fmt.Errorf("%w: workers must be 0-%d", ErrInvalidConfig, maxGroupWorkers)
	}

	if o.OnError != FailFast && o.OnError != NullOnError {
		return fmt.Errorf("%w: unknown error policy %v", ErrInvalidConfig, o.OnError)
	}

	return nil
}

// GroupInterpolator feeds groups to an Interpolator and collects the results
// in group order.
type GroupInterpolator struct {
	interp Interpolator
	opts   GroupOptions
	logger l.Wrapper
}

// NewGroupInterpolator creates a GroupInterpolator around interp.
// A nil interp selects the built-in engine.
func NewGroupInterpolator(interp Interpolator, opts GroupOptions) (*GroupInterpolator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if interp == nil {
		interp = NewEngine()
	}

	logger := opts.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &GroupInterpolator{
		interp: interp,
		opts:   opts,
		logger: logger.WithFields(l.StringField(l.ClsKey, "GroupInterpolator")),
	}, nil
}

// Run evaluates cfg against every group. The returned slice is aligned with
// groups. Configuration errors and, under FailFast, the first group error
// (in group order) abort the whole run. ctx is checked between groups.
func (g *GroupInterpolator) Run(ctx context.Context, groups []Group, cfg Config) ([]GroupResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.logger.WithFields(
		l.IntField("groups", len(groups)),
		l.IntField("queries", len(cfg.Xi)),
		l.StringField("method", cfg.Method.String()),
		l.StringField("fill", cfg.Fill.String()),
	).Debug("run started")

	results := make([]GroupResult, len(groups))
	errs := make([]error, len(groups))

	if !g.opts.Parallel || len(groups) <= 1 {
		for i := range groups {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i], errs[i] = g.runGroup(groups[i], cfg)
			if errs[i] != nil && g.opts.OnError == FailFast {
				return nil, errs[i]
			}
		}
		return results, nil
	}

	// Parallel processing: each goroutine writes only its own slot. Groups
	// start in index order and a started group always runs to completion,
	// so the lowest-index error matches the sequential result.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	sem := make(chan struct{}, g.workers())

	for i := range groups {
		sem <- struct{}{}
		if runCtx.Err() != nil {
			<-sem
			break
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx], errs[idx] = g.runGroup(groups[idx], cfg)
			if errs[idx] != nil && g.opts.OnError == FailFast {
				cancel()
			}
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.opts.OnError == FailFast {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// runGroup evaluates one group. Under NullOnError the returned error is nil
// and the failure is recorded on the result instead.
func (g *GroupInterpolator) runGroup(group Group, cfg Config) (GroupResult, error) {
	key := strings.Join(group.Key, groupKeySeparator)
	logger := g.logger.WithFields(l.StringField("group", key), l.IntField("points", len(group.X)))

	res, err := g.interp.Interpolate(group.X, group.Y, cfg)
	if err == nil {
		logger.WithFields(l.IntField("missing", res.MissingCount())).Debug("group done")
		return GroupResult{Key: group.Key, Result: res}, nil
	}

	err = fmt.Errorf("group %v: %w", group.Key, err)
	logger.WithFields(l.ErrorField(err)).Error("group failed")

	if g.opts.OnError == NullOnError {
		return GroupResult{Key: group.Key, Result: missingResult(len(cfg.Xi)), Err: err}, nil
	}

	return GroupResult{Key: group.Key}, err
}

func (g *GroupInterpolator) workers() int {
	if g.opts.Workers > 0 {
		return g.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// InterpolateGroups runs the built-in engine over groups with opts.
func InterpolateGroups(ctx context.Context, groups []Group, cfg Config, opts GroupOptions) ([]GroupResult, error) {
	g, err := NewGroupInterpolator(nil, opts)
	if err != nil {
		return nil, err
	}
	return g.Run(ctx, groups, cfg)
}

// Concat joins per-group results into a single column, in group order.
func Concat(results []GroupResult) Result {
	n := 0
	for _, r := range results {
		n += r.Result.Len()
	}

	out := Result{
		Values: make([]float64, 0, n),
		Valid:  make([]bool, 0, n),
	}
	for _, r := range results {
		out.Values = append(out.Values, r.Result.Values...)
		out.Valid = append(out.Valid, r.Result.Valid...)
	}
	return out
}
