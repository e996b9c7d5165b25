// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil keeps generated caves on disk, keyed by the parameters
// that produced them.
package cacheutil

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/mitom/ai-pathfinder/internal/cave"
)

// CaveDir is the subdirectory holding generated caves.
const CaveDir = "caves"

// Entry is a cache hit.
type Entry struct {
	Key  string
	Path string
	Data []byte
}

// Dir is CAVEGEN_CACHE_DIR, or cavegen under the user cache directory. ok is
// false when neither resolves.
func Dir() (dir string, ok bool) {
	if d := os.Getenv("CAVEGEN_CACHE_DIR"); d != "" {
		return d, true
	}
	if d, err := os.UserCacheDir(); err == nil && d != "" {
		return filepath.Join(d, "cavegen"), true
	}
	return "", false
}

// Enabled is false when CAVEGEN_CACHE is "0" or "false".
func Enabled() bool {
	switch os.Getenv("CAVEGEN_CACHE") {
	case "0", "false":
		return false
	}
	return true
}

// EnsureBaseDir creates the cache directory. ok is false when caching is
// off or the directory could not be made.
func EnsureBaseDir() (base string, ok bool, err error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok = Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

func entryPath(subdirs []string, key string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	parts := append([]string{base}, subdirs...)
	return filepath.Join(append(parts, encodeKey(key))...), true
}

// Purge deletes entries older than hours. hours <= 0 keeps everything.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			// unreadable entries are skipped
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			return nil
		}
		log.Debugf("removed cache file %s", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// Read returns the entry stored under key, if any.
func Read(subdirs []string, key string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := entryPath(subdirs, key)
	if !ok {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Debugf("cache read %s", p)
		}
		return nil, false
	}
	return &Entry{Key: key, Path: p, Data: bytes.TrimSpace(b)}, true
}

// Write stores data under key. A disabled cache drops it silently.
func Write(subdirs []string, key string, data []byte) error {
	if !Enabled() {
		return nil
	}
	p, ok := entryPath(subdirs, key)
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// CaveKey is the clear-text cache key of a seeded generation. Runs without
// an explicit seed are never cached.
func CaveKey(p cave.Params) (string, bool) {
	if p.Seed == 0 {
		return "", false
	}
	return fmt.Sprintf("v1/count=%d/width=%d/height=%d/connectivity=%d/radius=%g/seed=%d/attempts=%d",
		p.Count, p.Width, p.Height, p.Connectivity, p.Radius, p.Seed, p.MaxAttempts), true
}

// encodeKey is the on-disk file name of key.
func encodeKey(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}
