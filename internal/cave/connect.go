// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

// Connect builds the connectivity matrix for caverns. Every ordered pair
// within p.Radius gets its own draw in [0,100] and is connected when the
// draw is <= p.Connectivity, so (n,i) and (i,n) may disagree.
func Connect(src Source, caverns []Cavern, p Params) *Matrix {
	m := NewMatrix(len(caverns))

	for n := range caverns {
		for i := range caverns {
			if n == i {
				continue
			}
			if caverns[n].DistanceTo(caverns[i]) > p.Radius {
				continue
			}
			if IntRange(src, 0, 100) <= p.Connectivity {
				m.Set(n, i, 1)
			}
		}
	}

	return m
}
