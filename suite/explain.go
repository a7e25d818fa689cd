package suite

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Reason classifies the outcome of a search.
type Reason int

const (
	// Reached means the search completed normally.
	Reached Reason = iota
	// Disconnected means no path exists between start and goal.
	Disconnected
	// DeadEnd means a path exists but the search gave up before finding it.
	DeadEnd
)

// String returns a short human-readable description.
func (r Reason) String() string {
	switch r {
	case Reached:
		return "reached"
	case Disconnected:
		return "start and goal are not connected"
	case DeadEnd:
		return "search stopped at a dead end"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Explain tells why res did or did not reach goal, using the connected
// components of g.
func Explain(g *core.Graph, res *search.Result, start, goal int) (Reason, error) {
	if res == nil {
		return Reached, fmt.Errorf("suite: nil result: %w", core.ErrInvalidArgument)
	}
	if res.Found() {
		return Reached, nil
	}
	if g == nil {
		return Reached, fmt.Errorf("suite: %w", search.ErrGraphNil)
	}

	ok, err := g.Connected(start, goal)
	if err != nil {
		return Reached, fmt.Errorf("suite: %w", err)
	}
	if !ok {
		return Disconnected, nil
	}

	return DeadEnd, nil
}
