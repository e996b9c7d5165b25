// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cave

import (
	"fmt"
)

// ConfigurationError reports a parameter outside of its accepted range.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%v %s", e.Field, e.Value, e.Reason)
}

// PlacementError reports that no free point could be found for a cavern.
// Attempts is 0 when the region was known to be full before drawing.
type PlacementError struct {
	Index    int
	Attempts int
	Region   Region
}

func (e *PlacementError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("cannot place cavern %d: region %v has no free point", e.Index, e.Region)
	}
	return fmt.Sprintf("cannot place cavern %d: no free point in region %v after %d attempts",
		e.Index, e.Region, e.Attempts)
}
