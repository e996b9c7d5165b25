// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"github.com/apex/log"
)

// Cave is a generated graph: caverns in placement order and the matrix of
// passages between them.
type Cave struct {
	Caverns []Cavern
	Matrix  *Matrix
}

// Count returns the number of caverns.
func (c *Cave) Count() int {
	return len(c.Caverns)
}

// Generate validates p, places the caverns and connects them, drawing every
// random value from src.
func Generate(src Source, p Params) (*Cave, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	caverns, err := Place(src, p)
	if err != nil {
		return nil, err
	}
	log.Debugf("placed %d caverns in %v", len(caverns), p.Bounds())

	m := Connect(src, caverns, p)
	log.Debugf("connected caverns with %d passages (radius=%v, connectivity=%d%%)",
		m.Edges(), p.Radius, p.Connectivity)

	return &Cave{Caverns: caverns, Matrix: m}, nil
}
