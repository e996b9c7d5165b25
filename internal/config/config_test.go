// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets CAVEGEN_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("CAVEGEN_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, 250, cfg.Data["count"])
				assert.Equal(t, "caves/simple.cav", cfg.Data["out"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				gen, ok := cfg.Data["generate"].(map[string]interface{})
				assert.True(t, ok, "generate should be a map")
				assert.Equal(t, 40, gen["count"])
				assert.Equal(t, 12.5, gen["radius"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "test-cave", cfg.Data["name"])
				assert.Equal(t, true, cfg.Data["enabled"])
				assert.Equal(t, 30.5, cfg.Data["radius"])
				tags, ok := cfg.Data["tags"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, tags, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("CAVEGEN_CFG", "/nonexistent/path/cavegen.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_FailureClearsPreviousConfig(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load("path")
	assert.NoError(t, err)
	got, err := GetFloat("weight")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, got)

	t.Setenv("CAVEGEN_CFG", "/nonexistent/path/cavegen.yaml")
	_, err = Load("path")
	assert.Error(t, err)
	assert.Empty(t, Config.Data)
	assert.Equal(t, "path", Config.Namespace)

	got, err = GetFloat("weight", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestLoad_CfgIsDirectory(t *testing.T) {
	t.Setenv("CAVEGEN_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	assert.NoError(t, os.WriteFile(path, []byte("count: [1,"), 0o600))
	t.Setenv("CAVEGEN_CFG", path)
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_StandardLocations(t *testing.T) {
	home := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("count: 7\n"), 0o600))

	t.Setenv("CAVEGEN_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", home)
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load("generate")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, FileName), cfg.Source)
	assert.Equal(t, "generate", cfg.Namespace)
	assert.Equal(t, 7, cfg.Data["count"])
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "out",
			want:     "caves/simple.cav",
		},
		{
			name:     "nested string value",
			testFile: "deep-nested.yaml",
			key:      "level1.level2.level3.value",
			want:     "deep-value",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "simple.yaml",
			key:      "count",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "simple.yaml",
			key:      "count",
			want:     250,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "radius",
			want:     30,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "generate.count",
			want:     40,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "out",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFloat(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load("generate")
	assert.NoError(t, err)

	// Namespaced value wins over the top-level one.
	got, err := GetFloat("radius")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = GetFloat("path.weight")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = GetFloat("missing", 3.5)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, got)

	_, err = GetFloat("out")
	assert.Error(t, err)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	assert.NoError(t, err)

	// Without a namespace only the top-level key is visible.
	val, err := Config.get("radius")
	assert.NoError(t, err)
	assert.Equal(t, 25, val)

	Config.Namespace = "generate"
	val, err = Config.get("radius")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, val)

	// Namespace misses fall back to the bare key.
	Config.Namespace = "path"
	val, err = Config.get("radius")
	assert.NoError(t, err)
	assert.Equal(t, 25, val)

	_, err = Config.get("nonexistent")
	assert.Error(t, err)
}

func TestConfig_LazyLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	// Don't explicitly call Load(), just use GetString
	val, err := GetString("out")
	assert.NoError(t, err)
	assert.Equal(t, "caves/simple.cav", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}
