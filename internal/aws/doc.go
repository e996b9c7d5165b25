// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package aws loads AWS SDK v2 configuration and publishes generated caves
// to S3.
package aws
