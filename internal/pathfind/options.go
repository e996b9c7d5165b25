// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package pathfind

// DefaultHeuristicWeight scales the straight-line estimate to the goal.
const DefaultHeuristicWeight = 2.0

type options struct {
	start  int
	goal   int
	weight float64
	trace  bool
}

// Option customizes a Search.
type Option func(*options)

// WithStart sets the starting cavern index. Defaults to 0.
func WithStart(n int) Option {
	return func(o *options) { o.start = n }
}

// WithGoal sets the goal cavern index. Defaults to the last cavern.
func WithGoal(n int) Option {
	return func(o *options) { o.goal = n }
}

// WithHeuristicWeight sets the multiplier applied to the distance-to-goal
// estimate. A weight of 1 gives plain A*.
func WithHeuristicWeight(w float64) Option {
	return func(o *options) { o.weight = w }
}

// WithTrace records a Step per iteration in the Result.
func WithTrace(enabled bool) Option {
	return func(o *options) { o.trace = enabled }
}
