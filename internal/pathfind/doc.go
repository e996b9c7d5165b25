// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package pathfind runs a weighted A* search across a generated cave, by
// default from its first cavern to its last.
package pathfind
