// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"fmt"
	"math"
	"math/bits"
)

// Cavern is a point-like node of the cave. Its id is its index in the
// sequence it was placed in.
type Cavern struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// DistanceTo returns the Euclidean distance between c and o.
func (c Cavern) DistanceTo(o Cavern) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (c Cavern) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Region is an inclusive integer box.
type Region struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether c lies inside r.
func (r Region) Contains(c Cavern) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Size returns the number of integer points in r, saturated at
// math.MaxUint64.
func (r Region) Size() uint64 {
	w := uint64(r.MaxX) - uint64(r.MinX) + 1
	h := uint64(r.MaxY) - uint64(r.MinY) + 1
	if w == 0 || h == 0 {
		return math.MaxUint64
	}
	hi, lo := bits.Mul64(w, h)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// draw picks a uniform point inside r, x first.
func (r Region) draw(src Source) Cavern {
	x := IntRange(src, r.MinX, r.MaxX)
	y := IntRange(src, r.MinY, r.MaxY)
	return Cavern{X: x, Y: y}
}

// Bounds returns the full plane of p.
func (p Params) Bounds() Region {
	return Region{MinX: 0, MaxX: p.Width, MinY: 0, MaxY: p.Height}
}

// EntryRegion is the lower-left third where the first cavern is placed.
func (p Params) EntryRegion() Region {
	return Region{MinX: 0, MaxX: p.Width / 3, MinY: 0, MaxY: p.Height / 3}
}

// ExitRegion is the upper-right third where the last cavern is placed.
func (p Params) ExitRegion() Region {
	return Region{MinX: twoThirds(p.Width), MaxX: p.Width, MinY: twoThirds(p.Height), MaxY: p.Height}
}

// twoThirds is floor(2v/3) for v >= 0 without overflowing 2v.
func twoThirds(v int) int {
	return 2*(v/3) + 2*(v%3)/3
}

// RegionFor returns the placement region of cavern n. The exit rule is
// checked first, so a single-cavern cave puts its only cavern in the exit
// region.
func RegionFor(n int, p Params) Region {
	switch {
	case n == p.Count-1:
		return p.ExitRegion()
	case n == 0:
		return p.EntryRegion()
	default:
		return p.Bounds()
	}
}
