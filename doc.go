// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// cavegen is the main package for the cavegen command line tool. It wires
// the CLI, delegates to internal packages, and serves as the entry point.
package main
