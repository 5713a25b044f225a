package majority

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Option configures a search. Use with FindMinimumCostMajority, Solve and Sweep.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// Engine selects the search driver. Default Recursive.
	Engine Engine

	// MaxSteps caps subproblem expansions; 0 means unlimited.
	MaxSteps int64

	// TimeLimit bounds the wall-clock time of one search; 0 means unlimited.
	TimeLimit time.Duration

	// Workers bounds concurrency for the Parallel engine and for Sweep.
	// Defaults to GOMAXPROCS.
	Workers int

	// Logger receives start/finish records at Debug level. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	// Metrics, if non-nil, records search outcomes.
	Metrics *Metrics
}

// DefaultOptions returns Options with:
//   - Background context
//   - Recursive engine
//   - no step or time budget
//   - Workers = GOMAXPROCS
//   - a discarding logger, no metrics
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Engine:  Recursive,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discardLogger(),
	}
}

// WithContext sets the search context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithEngine selects the search driver.
func WithEngine(e Engine) Option {
	return func(o *Options) { o.Engine = e }
}

// WithMaxSteps caps subproblem expansions (0 = unlimited).
func WithMaxSteps(n int64) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithTimeLimit bounds the duration of one search (0 = unlimited).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithWorkers bounds concurrency for Parallel and Sweep.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// resolveOptions applies opts over DefaultOptions and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	if o.Ctx == nil {
		return o, fmt.Errorf("nil context: %w", ErrBadOption)
	}
	if o.MaxSteps < 0 {
		return o, fmt.Errorf("MaxSteps=%d: %w", o.MaxSteps, ErrBadOption)
	}
	if o.TimeLimit < 0 {
		return o, fmt.Errorf("TimeLimit=%s: %w", o.TimeLimit, ErrBadOption)
	}
	if o.Workers < 1 {
		return o, fmt.Errorf("Workers=%d: %w", o.Workers, ErrBadOption)
	}
	switch o.Engine {
	case Recursive, Iterative, Parallel:
	default:
		return o, fmt.Errorf("engine %d: %w", int(o.Engine), ErrUnsupportedEngine)
	}

	return o, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
