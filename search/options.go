package search

import (
	"context"
	"fmt"
	"io"

	"github.com/kataras/golog"
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative step bound), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize one search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Logger receives debug traces of every emitted vertex.
	Logger *golog.Logger

	// MaxSteps, if > 0, bounds the number of expansions (queue pops, hill
	// climbing moves, DFS frame visits). 0 disables the bound.
	MaxSteps int

	// OnVisit is called for each vertex appended to the result sequence.
	// If it returns an error, the search aborts and propagates it.
	OnVisit func(v int, label string) error

	// internal error recorded during option parsing
	err error
}

// silentLogger is shared by every search that does not set WithLogger.
var silentLogger = newSilentLogger()

func newSilentLogger() *golog.Logger {
	l := golog.New()
	l.SetOutput(io.Discard)
	l.SetLevel("disable")

	return l
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - a logger that discards everything
//   - no step bound (MaxSteps == 0)
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   silentLogger,
		MaxSteps: 0,
		OnVisit:  func(int, string) error { return nil },
	}
}

// Resolve applies opts over DefaultOptions and returns the first recorded
// option violation, if any.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *golog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps bounds the number of expansions a search may perform.
//
//	n > 0: fail with ErrStepLimit once n expansions have been made
//	n == 0: explicit no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnVisit registers a callback run on each emitted vertex; returning an
// error from it stops the search.
func WithOnVisit(fn func(v int, label string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
