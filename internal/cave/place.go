// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"github.com/apex/log"
)

// Place draws p.Count unique caverns. A draw that lands on an occupied
// point is repeated in the same region, at most p.MaxAttempts times per
// cavern.
func Place(src Source, p Params) ([]Cavern, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	caverns := make([]Cavern, 0, p.Count)
	taken := make(map[Cavern]struct{}, p.Count)

	for n := 0; n < p.Count; n++ {
		region := RegionFor(n, p)

		// Every point of the region is already occupied, drawing is futile.
		if full(region, taken) {
			return nil, &PlacementError{Index: n, Region: region}
		}

		placed := false
		for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
			c := region.draw(src)
			if _, dup := taken[c]; dup {
				continue
			}
			if attempt > 1 {
				log.Debugf("cavern %d placed at %v after %d attempts", n, c, attempt)
			}
			taken[c] = struct{}{}
			caverns = append(caverns, c)
			placed = true
			break
		}

		if !placed {
			return nil, &PlacementError{Index: n, Attempts: p.MaxAttempts, Region: region}
		}
	}

	return caverns, nil
}

// full reports whether every point of r is taken.
func full(r Region, taken map[Cavern]struct{}) bool {
	size := r.Size()
	if uint64(len(taken)) < size {
		return false
	}
	var n uint64
	for c := range taken {
		if r.Contains(c) {
			n++
		}
	}
	return n >= size
}
