// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package pathfind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/mitom/ai-pathfinder/internal/cave"
)

var (
	// ErrEmptyCave is returned when the cave has no caverns.
	ErrEmptyCave = errors.New("cave has no caverns")
	// ErrUnknownCavern is returned when an endpoint is out of range.
	ErrUnknownCavern = errors.New("unknown cavern")
)

// Node is a visited cavern with its estimated total cost.
type Node struct {
	Cavern int
	Cost   float64

	parent *Node
	g      float64
}

// Path returns the cavern indexes from the start to n.
func (n *Node) Path() []int {
	var rev []int
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, cur.Cavern)
	}
	path := make([]int, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// Step is a snapshot of one iteration.
type Step struct {
	Iteration int
	Current   Node
	Path      []int
	Open      []Node
	Closed    []Node
}

// Result is the outcome of a Search.
type Result struct {
	Found      bool
	Path       []int
	Distance   float64
	Iterations int
	Steps      []Step
}

// Graph lists, per cavern, the caverns reachable from it. A one at row n,
// column i of the matrix is a passage from cavern i to cavern n.
func Graph(c *cave.Cave) [][]int {
	size := c.Matrix.Size()
	adj := make([][]int, size)
	for n := 0; n < size; n++ {
		for i := 0; i < size; i++ {
			if c.Matrix.At(n, i) == 1 {
				adj[i] = append(adj[i], n)
			}
		}
	}
	return adj
}

// Search looks for a route between two caverns. Children are tested
// against the goal as they are generated, and a child is dropped when the
// open or closed list already holds its cavern at a lower cost.
func Search(c *cave.Cave, opts ...Option) (*Result, error) {
	if c == nil || c.Count() == 0 {
		return nil, ErrEmptyCave
	}

	o := options{start: 0, goal: c.Count() - 1, weight: DefaultHeuristicWeight}
	for _, opt := range opts {
		opt(&o)
	}
	for _, n := range []int{o.start, o.goal} {
		if n < 0 || n >= c.Count() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCavern, n)
		}
	}

	goal := c.Caverns[o.goal]
	h := func(n int) float64 { return o.weight * c.Caverns[n].DistanceTo(goal) }

	res := &Result{}
	if o.start == o.goal {
		res.Found = true
		res.Path = []int{o.start}
		return res, nil
	}

	adj := Graph(c)
	open := []*Node{{Cavern: o.start, Cost: h(o.start)}}
	var closed []*Node

	for iteration := 1; len(open) > 0; iteration++ {
		res.Iterations = iteration

		ci := cheapest(open)
		current := open[ci]
		open = append(open[:ci], open[ci+1:]...)

		for _, child := range adj[current.Cavern] {
			g := current.g + c.Caverns[current.Cavern].DistanceTo(c.Caverns[child])
			node := &Node{Cavern: child, Cost: g + h(child), parent: current, g: g}

			if child == o.goal {
				if o.trace {
					res.Steps = append(res.Steps, snapshot(iteration, node, open, closed))
				}
				res.Found = true
				res.Path = node.Path()
				res.Distance = g
				log.Debugf("found path %v after %d iterations", res.Path, iteration)
				return res, nil
			}

			if known := find(open, child); known != nil && known.Cost < node.Cost {
				continue
			}
			if known := find(closed, child); known != nil && known.Cost < node.Cost {
				continue
			}
			open = append(open, node)
		}

		if o.trace {
			res.Steps = append(res.Steps, snapshot(iteration, current, open, closed))
		}
		closed = append(closed, current)
	}

	log.Debugf("no path after %d iterations", res.Iterations)
	return res, nil
}

// cheapest returns the index of the first node with the lowest cost.
func cheapest(nodes []*Node) int {
	best := 0
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Cost < nodes[best].Cost {
			best = i
		}
	}
	return best
}

func find(nodes []*Node, cavern int) *Node {
	for _, n := range nodes {
		if n.Cavern == cavern {
			return n
		}
	}
	return nil
}

func snapshot(iteration int, current *Node, open, closed []*Node) Step {
	s := Step{
		Iteration: iteration,
		Current:   *current,
		Path:      current.Path(),
		Open:      make([]Node, len(open)),
		Closed:    make([]Node, len(closed)),
	}
	for i, n := range open {
		s.Open[i] = *n
	}
	for i, n := range closed {
		s.Closed[i] = *n
	}
	return s
}

// FormatPath renders a path with 1-based cavern ids, e.g. "1->4->9".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n + 1)
	}
	return strings.Join(parts, "->")
}
