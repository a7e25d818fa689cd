package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Endpoint is a vertex argument of a search together with its role name,
// used to validate it and to label errors.
type Endpoint struct {
	Role string
	ID   int
}

// Start marks v as the start vertex of a search.
func Start(v int) Endpoint { return Endpoint{Role: "start", ID: v} }

// Goal marks v as the goal vertex of a search.
func Goal(v int) Endpoint { return Endpoint{Role: "goal", ID: v} }

// Run is the mutable state owned by a single search invocation: the visited
// markers, the emitted sequence and the step counter. Nothing in it outlives
// the call, which keeps every search reentrant.
type Run struct {
	Graph   *core.Graph
	Name    Algorithm
	Opts    Options
	Visited []bool

	order []int
	steps int
}

// Begin validates g, the options and every endpoint, and returns fresh run
// state sized for g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOptionViolation for a bad Option.
//   - core.ErrVertexOutOfRange for an endpoint outside g.
//
// All of them wrap core.ErrInvalidArgument.
func Begin(g *core.Graph, name Algorithm, opts []Option, endpoints ...Endpoint) (*Run, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrGraphNil)
	}
	o, err := Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, ep := range endpoints {
		if err = g.CheckVertex(ep.Role, ep.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	n := g.VertexCount()

	return &Run{
		Graph:   g,
		Name:    name,
		Opts:    o,
		Visited: make([]bool, n),
		order:   make([]int, 0, n),
	}, nil
}

// Step accounts for one expansion. It fails when the context is done or the
// MaxSteps bound is exceeded.
func (r *Run) Step() error {
	select {
	case <-r.Opts.Ctx.Done():
		return fmt.Errorf("%s: %w", r.Name, r.Opts.Ctx.Err())
	default:
	}
	r.steps++
	if r.Opts.MaxSteps > 0 && r.steps > r.Opts.MaxSteps {
		return fmt.Errorf("%s: %w after %d steps", r.Name, ErrStepLimit, r.Opts.MaxSteps)
	}

	return nil
}

// Steps returns how many expansions have been accounted so far.
func (r *Run) Steps() int { return r.steps }

// Emit appends v to the result sequence, traces it and runs the OnVisit hook.
func (r *Run) Emit(v int) error {
	r.order = append(r.order, v)
	label, _ := r.Graph.Label(v)
	r.Opts.Logger.Debugf("%s: visit %s (id=%d)", r.Name, label, v)
	if err := r.Opts.OnVisit(v, label); err != nil {
		return fmt.Errorf("%s: OnVisit error at %q: %w", r.Name, label, err)
	}

	return nil
}

// Order returns the sequence emitted so far.
func (r *Run) Order() []int { return r.order }

// Neighbors fetches the adjacency of v, wrapping lookup errors with the
// algorithm name.
func (r *Run) Neighbors(v int) ([]core.AdjacencyEntry, error) {
	nbs, err := r.Graph.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get neighbors of %d: %w", r.Name, v, err)
	}

	return nbs, nil
}

// Logf writes a debug trace prefixed with the algorithm name.
func (r *Run) Logf(format string, args ...interface{}) {
	r.Opts.Logger.Debugf(string(r.Name)+": "+format, args...)
}

// Found builds a successful result over vertices.
func (r *Run) Found(vertices []int) *Result {
	return r.result(StatusFound, vertices)
}

// FoundWithCost builds a successful result that also reports a total cost.
func (r *Run) FoundWithCost(vertices []int, cost int64) *Result {
	res := r.result(StatusFound, vertices)
	res.Cost = cost
	res.HasCost = true

	return res
}

// NoPath builds a StatusNoPath result that keeps the partial sequence the
// search produced.
func (r *Run) NoPath(vertices []int) *Result {
	r.Logf("goal not reached after %d steps", r.steps)

	return r.result(StatusNoPath, vertices)
}

func (r *Run) result(status Status, vertices []int) *Result {
	if vertices == nil {
		vertices = []int{}
	}

	return &Result{
		Algorithm: r.Name,
		Status:    status,
		Vertices:  vertices,
		Path:      r.Graph.LabelsOf(vertices),
	}
}
