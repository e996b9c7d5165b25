// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for cavegen. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
