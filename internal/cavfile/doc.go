// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cavfile reads and writes the flat comma-separated .cav format:
// the cavern count, then x,y per cavern, then the row-major connectivity
// matrix.
package cavfile
