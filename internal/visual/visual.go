// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package visual produces the script consumed by the browser renderer: the
// cave layout and, optionally, every step of a route search.
package visual

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitom/ai-pathfinder/internal/cave"
	"github.com/mitom/ai-pathfinder/internal/pathfind"
)

// Node is a cavern as the renderer expects it. Ids are 1-based.
type Node struct {
	ID int `json:"i"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Edge is a passage between two 1-based cavern ids.
type Edge struct {
	From int `json:"f"`
	To   int `json:"t"`
}

// Cave is the renderer's layout document.
type Cave struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// SearchNode is an open or closed list entry.
type SearchNode struct {
	Cost float64 `json:"c"`
	ID   int     `json:"i"`
}

// Build converts c into the renderer layout. Edges follow the same
// direction as pathfind.Graph.
func Build(c *cave.Cave) Cave {
	v := Cave{Nodes: make([]Node, c.Count()), Edges: []Edge{}}
	for n, cv := range c.Caverns {
		v.Nodes[n] = Node{ID: n + 1, X: cv.X, Y: cv.Y}
	}

	size := c.Matrix.Size()
	for n := 0; n < size; n++ {
		for i := 0; i < size; i++ {
			if c.Matrix.At(n, i) == 1 {
				v.Edges = append(v.Edges, Edge{From: i + 1, To: n + 1})
			}
		}
	}
	return v
}

// WriteInstructions writes setCave(...) for c, then one addState(...) per
// recorded search step and a closing init() when res is not nil.
func WriteInstructions(w io.Writer, c *cave.Cave, res *pathfind.Result) error {
	bw := bufio.NewWriter(w)

	layout, err := json.Marshal(Build(c))
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "setCave(%s)", layout)

	if res != nil {
		for _, s := range res.Steps {
			current, err := json.Marshal(searchNode(s.Current))
			if err != nil {
				return err
			}
			open, err := json.Marshal(searchNodes(s.Open))
			if err != nil {
				return err
			}
			closed, err := json.Marshal(searchNodes(s.Closed))
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "\naddState(%s, %q, %s, %s)", current, pathfind.FormatPath(s.Path), open, closed)
		}
		fmt.Fprint(bw, "\ninit()")
	}

	return bw.Flush()
}

// WriteFile writes the instructions script to path.
func WriteFile(path string, c *cave.Cave, res *pathfind.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create visualization file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteInstructions(f, c, res)
}

func searchNode(n pathfind.Node) SearchNode {
	return SearchNode{Cost: n.Cost, ID: n.Cavern + 1}
}

func searchNodes(nodes []pathfind.Node) []SearchNode {
	out := make([]SearchNode, len(nodes))
	for i, n := range nodes {
		out[i] = searchNode(n)
	}
	return out
}
