// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package output summarizes caves and emits them as text tables, JSON or
// YAML, with row filtering and sorting.
package output
