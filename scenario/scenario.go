// Package scenario provides the two example graphs the command-line driver
// runs every search over. Both use start vertex 0 and goal vertex 7.
package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Scenario is a named example graph with its default start and goal.
// Name is "<Title>: <start label> -> <goal label>".
type Scenario struct {
	Title string
	Name  string
	Graph *core.Graph
	Start int
	Goal  int
}

// New returns a scenario over g titled title, searching from start to goal.
func New(title string, g *core.Graph, start, goal int) Scenario {
	return Scenario{Title: title, Graph: g}.With(start, goal)
}

// With returns a copy of s retargeted to start and goal, with Name rebuilt
// from their labels. Ids outside the graph render as "?".
func (s Scenario) With(start, goal int) Scenario {
	s.Start, s.Goal = start, goal
	labels := s.Graph.LabelsOf([]int{start, goal})
	s.Name = fmt.Sprintf("%s: %s -> %s", s.Title, labels[0], labels[1])

	return s
}

// edgeSpec is one undirected edge of a fixture, {from, to, cost}.
type edgeSpec [3]int

// build allocates a graph and inserts edges in the listed order.
func build(labels []string, edges []edgeSpec) (*core.Graph, error) {
	g, err := core.NewGraph(len(labels), labels)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1], int64(e[2])); err != nil {
			return nil, fmt.Errorf("scenario: edge %v: %w", e, err)
		}
	}

	return g, nil
}

// GraphOne builds example graph 1:
//
//	S—A:4  S—B:3  A—B:5  A—D:5  B—C:3
//	D—C:5  D—F:3  C—E:2  E—Z:2
func GraphOne() (*core.Graph, error) {
	return build(
		[]string{"S", "A", "B", "C", "D", "E", "F", "Z"},
		[]edgeSpec{
			{0, 1, 4}, {0, 2, 3}, {1, 2, 5}, {1, 4, 5}, {2, 3, 3},
			{4, 3, 5}, {4, 6, 3}, {3, 5, 2}, {5, 7, 2},
		},
	)
}

// GraphTwo builds example graph 2:
//
//	A—B:3  A—C:5  B—C:6  B—D:4  C—E:3  D—E:5
//	D—F:3  E—G:2  F—G:6  F—Z:2  G—Z:3
func GraphTwo() (*core.Graph, error) {
	return build(
		[]string{"A", "B", "C", "D", "E", "F", "G", "Z"},
		[]edgeSpec{
			{0, 1, 3}, {0, 2, 5}, {1, 2, 6}, {1, 3, 4}, {2, 4, 3},
			{3, 4, 5}, {3, 5, 3}, {4, 6, 2}, {5, 6, 6}, {5, 7, 2}, {6, 7, 3},
		},
	)
}

// All returns both example scenarios in display order.
func All() ([]Scenario, error) {
	g1, err := GraphOne()
	if err != nil {
		return nil, err
	}
	g2, err := GraphTwo()
	if err != nil {
		return nil, err
	}

	return []Scenario{
		New("Graf 1", g1, 0, 7),
		New("Graf 2", g2, 0, 7),
	}, nil
}
