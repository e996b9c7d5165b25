// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time with
// -ldflags "-X github.com/mitom/ai-pathfinder/internal/version.Version=...".
var Version = "0.1.0-dev"
