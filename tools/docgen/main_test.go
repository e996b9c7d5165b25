// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "# cavegen path\n\n" +
	"## Short description\n\n" +
	"Search a route\nthrough a cave.\n\n" +
	"## Quick examples\n\n" +
	"```sh\n" +
	"# Route through the default file\n" +
	"cavegen path\n" +
	"cavegen   path --weight 1 big.cav\n" +
	"```\n"

func TestTitleAndShort(t *testing.T) {
	title, short := titleAndShort(sampleDoc)
	assert.Equal(t, "cavegen path", title)
	assert.Equal(t, "Search a route through a cave.", short)

	title, short = titleAndShort("# only a title\n")
	assert.Equal(t, "only a title", title)
	assert.Equal(t, "only a title.", short)
}

func TestQuickExamples(t *testing.T) {
	assert.Equal(t, []example{
		{Desc: "Route through the default file", Cmd: "cavegen path"},
		{Desc: "Example", Cmd: "cavegen path --weight 1 big.cav"},
	}, quickExamples(sampleDoc))

	assert.Nil(t, quickExamples("# nothing here\n"))
}

func TestBuildTLDR(t *testing.T) {
	got := buildTLDR("path", "", "", nil)
	assert.Equal(t, "# cavegen-path\n\n"+
		"> cavegen path\n"+
		"> More information: "+project+".\n\n"+
		"- Show help for the command:\n\n"+
		"`cavegen path --help`\n", got)
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	cmds := filepath.Join(root, "docs", "commands")
	require.NoError(t, os.MkdirAll(cmds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cmds, "path.md"), []byte(sampleDoc), 0o600))

	n, err := run(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.FileExists(t, filepath.Join(root, "docs", "man", "share", "man1", "cavegen-path.1"))
	tldr, err := os.ReadFile(filepath.Join(root, "docs", "tldr", "cavegen-path.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "`cavegen path --weight 1 big.cav`")

	_, err = run(t.TempDir(), true)
	assert.Error(t, err)
}
