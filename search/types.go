package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("search: graph is nil: %w", core.ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("search: invalid option supplied: %w", core.ErrInvalidArgument)

	// ErrNoPathFound is reported by Result.Err when a goal-directed search
	// exhausted its frontier, or got stuck, without reaching the goal.
	ErrNoPathFound = errors.New("search: no path found")

	// ErrStepLimit is returned when a search exceeds the bound set by WithMaxSteps.
	ErrStepLimit = errors.New("search: step limit exceeded")
)

// Algorithm names a search strategy. The value is the display name used in
// every formatted result line.
type Algorithm string

// The six strategies, in the order the suite runs them.
const (
	BFS            Algorithm = "BFS"
	DFS            Algorithm = "DFS"
	BestFirst      Algorithm = "Best-First Search"
	HillClimbing   Algorithm = "Hill Climbing"
	BranchAndBound Algorithm = "Branch and Bound"
	ShortestPath   Algorithm = "Shortest Path (Dijkstra)"
)

// Status tags the outcome of one search invocation.
type Status int

const (
	// StatusFound means the traversal completed or the goal was reached.
	StatusFound Status = iota

	// StatusNoPath means a goal-directed search ended without reaching its goal.
	StatusNoPath
)

// String renders the status for logs and reports.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no path"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of one search:
//   - Vertices: visited or path vertex ids, in order.
//   - Path: the labels of Vertices.
//   - Cost/HasCost: total path cost, reported by the shortest-path search only.
//   - Status: StatusNoPath when the goal was not reached. Vertices then keeps
//     whatever sequence the search produced before giving up.
type Result struct {
	Algorithm Algorithm
	Status    Status
	Vertices  []int
	Path      []string
	Cost      int64
	HasCost   bool
}

// Found reports whether the search completed successfully.
func (r *Result) Found() bool {
	return r != nil && r.Status == StatusFound
}

// Err returns nil for a successful result and ErrNoPathFound, wrapped with the
// algorithm name, otherwise.
func (r *Result) Err() error {
	if r.Found() {
		return nil
	}
	if r == nil {
		return ErrNoPathFound
	}

	return fmt.Errorf("%s: %w", r.Algorithm, ErrNoPathFound)
}

// String formats the result as a single line: name, colon, space-joined labels.
func (r *Result) String() string {
	return string(r.Algorithm) + ": " + strings.Join(r.Path, " ")
}
