// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cave generates random cave graphs: unique caverns placed on an
// integer plane and a distance-gated connectivity matrix between them.
package cave
