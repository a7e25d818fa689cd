// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connectivity queries backed by a union-find over the edge catalog.

package core

import (
	uf "github.com/spakin/disjoint"
)

// Components partitions the vertices into connected components.
//
// Each component lists its vertex ids in ascending order, and components are
// ordered by their smallest id, so the result is deterministic.
//
// Complexity: O(V + E·α(V)).
func (g *Graph) Components() [][]int {
	elems := g.unionAll()

	index := make(map[*uf.Element]int, len(elems))
	var comps [][]int
	for v, el := range elems {
		root := el.Find()
		i, ok := index[root]
		if !ok {
			i = len(comps)
			index[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], v)
	}

	return comps
}

// Connected reports whether u and v lie in the same component.
func (g *Graph) Connected(u, v int) (bool, error) {
	if err := g.CheckVertex("u", u); err != nil {
		return false, err
	}
	if err := g.CheckVertex("v", v); err != nil {
		return false, err
	}
	if u == v {
		return true, nil
	}
	elems := g.unionAll()

	return elems[u].Find() == elems[v].Find(), nil
}

// unionAll builds one disjoint-set element per vertex and unions the
// endpoints of every edge.
func (g *Graph) unionAll() []*uf.Element {
	elems := make([]*uf.Element, g.vertexCount)
	for v := range elems {
		el := uf.NewElement()
		el.Data = v
		elems[v] = el
	}
	for _, e := range g.Edges() {
		uf.Union(elems[e.From], elems[e.To])
	}

	return elems
}
