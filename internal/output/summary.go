// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/mitom/ai-pathfinder/internal/cave"
)

// Summary describes a cave at a glance.
type Summary struct {
	Caverns   int     `json:"caverns" yaml:"caverns"`
	Passages  int     `json:"passages" yaml:"passages"`
	Symmetric bool    `json:"symmetric" yaml:"symmetric"`
	Isolated  int     `json:"isolated" yaml:"isolated"`
	MeanOut   float64 `json:"meanOut" yaml:"meanOut"`
	MinX      int     `json:"minX" yaml:"minX"`
	MaxX      int     `json:"maxX" yaml:"maxX"`
	MinY      int     `json:"minY" yaml:"minY"`
	MaxY      int     `json:"maxY" yaml:"maxY"`
}

// Document is what inspect emits.
type Document struct {
	Summary Summary                  `json:"summary" yaml:"summary"`
	Caverns []map[string]interface{} `json:"caverns,omitempty" yaml:"caverns,omitempty"`
}

// Summarize computes the Summary of c. Passages count matrix ones, so a
// pair connected both ways counts twice.
func Summarize(c *cave.Cave) Summary {
	s := Summary{
		Caverns:   c.Count(),
		Passages:  c.Matrix.Edges(),
		Symmetric: c.Matrix.Symmetric(),
	}
	if s.Caverns == 0 {
		return s
	}

	s.MinX, s.MaxX = c.Caverns[0].X, c.Caverns[0].X
	s.MinY, s.MaxY = c.Caverns[0].Y, c.Caverns[0].Y
	for n, cv := range c.Caverns {
		s.MinX = min(s.MinX, cv.X)
		s.MaxX = max(s.MaxX, cv.X)
		s.MinY = min(s.MinY, cv.Y)
		s.MaxY = max(s.MaxY, cv.Y)
		if c.Matrix.RowSum(n) == 0 && c.Matrix.ColSum(n) == 0 {
			s.Isolated++
		}
	}
	s.MeanOut = float64(s.Passages) / float64(s.Caverns)

	return s
}

// Rows returns one row per cavern: its 1-based id, coordinates and the
// number of passages leaving (out) and entering (in) it. Passage direction
// follows the pathfind convention, so out is the column sum.
func Rows(c *cave.Cave) []map[string]interface{} {
	rows := make([]map[string]interface{}, c.Count())
	for n, cv := range c.Caverns {
		rows[n] = map[string]interface{}{
			"id":  n + 1,
			"x":   cv.X,
			"y":   cv.Y,
			"out": c.Matrix.ColSum(n),
			"in":  c.Matrix.RowSum(n),
		}
	}
	return rows
}

// RowKeys is the column order of Rows.
var RowKeys = []string{"id", "x", "y", "out", "in"}
