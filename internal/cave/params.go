// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"math"
)

// Defaults used when a value is not supplied by flag, env or config file.
const (
	DefaultCount        = 100
	DefaultWidth        = 400
	DefaultHeight       = 200
	DefaultConnectivity = 50
	DefaultRadius       = 30.0
	DefaultMaxAttempts  = 10000
)

// Params are the knobs of a single generation run.
type Params struct {
	// Count is the number of caverns.
	Count int `json:"count" yaml:"count"`
	// Width and Height bound the plane, inclusive.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	// Connectivity is the percent chance (0-100) that two caverns within
	// Radius of each other are connected.
	Connectivity int     `json:"connectivity" yaml:"connectivity"`
	Radius       float64 `json:"radius" yaml:"radius"`
	// Seed for the random source. 0 means a random seed is chosen.
	Seed int64 `json:"seed" yaml:"seed"`
	// MaxAttempts caps the draws spent on a single cavern before placement
	// gives up.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// DefaultParams returns the stock configuration.
func DefaultParams() Params {
	return Params{
		Count:        DefaultCount,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Connectivity: DefaultConnectivity,
		Radius:       DefaultRadius,
		MaxAttempts:  DefaultMaxAttempts,
	}
}

// Validate rejects configurations the generator cannot honor. The first
// offending field is reported.
func (p Params) Validate() error {
	switch {
	case p.Count <= 0:
		return &ConfigurationError{Field: "count", Value: p.Count, Reason: "must be positive"}
	case p.Width <= 0:
		return &ConfigurationError{Field: "width", Value: p.Width, Reason: "must be positive"}
	case p.Height <= 0:
		return &ConfigurationError{Field: "height", Value: p.Height, Reason: "must be positive"}
	case p.Connectivity < 0 || p.Connectivity > 100:
		return &ConfigurationError{Field: "connectivity", Value: p.Connectivity, Reason: "must be between 0 and 100"}
	case math.IsNaN(p.Radius) || p.Radius < 0:
		return &ConfigurationError{Field: "radius", Value: p.Radius, Reason: "must be a non-negative number"}
	case p.MaxAttempts <= 0:
		return &ConfigurationError{Field: "max-attempts", Value: p.MaxAttempts, Reason: "must be positive"}
	}
	return nil
}
