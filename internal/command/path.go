// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/mitom/ai-pathfinder/internal/meta"
	"github.com/mitom/ai-pathfinder/internal/pathfind"
	"github.com/mitom/ai-pathfinder/internal/visual"
)

// PathCommandAction is the action handler for the "path" subcommand. It
// searches a route from the first to the last cavern of a cave file.
func PathCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, "path") {
		return nil
	}

	c, _, err := readCave(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	verbose := cmd.Bool("verbose")
	vis := cmd.String("visualize")
	step := cmd.Bool("step")

	opts := []pathfind.Option{
		pathfind.WithHeuristicWeight(cmd.Float("weight")),
		pathfind.WithTrace(verbose || vis != "" || step),
	}
	if cmd.IsSet("start") {
		opts = append(opts, pathfind.WithStart(cmd.Int("start")-1))
	}
	if cmd.IsSet("goal") {
		opts = append(opts, pathfind.WithGoal(cmd.Int("goal")-1))
	}

	res, err := pathfind.Search(c, opts...)
	if err != nil {
		return err
	}

	if verbose {
		for _, s := range res.Steps {
			writeStep(w, s)
		}
	}

	writeResult(w, res)

	if vis != "" {
		if err := visual.WriteFile(vis, c, res); err != nil {
			return err
		}
		log.Debugf("wrote renderer script to %s", vis)
	}

	if step {
		if !isTerminal(w) {
			log.Warn("--step needs a terminal, skipping")
			return nil
		}
		return runStepper(ctx, w, res)
	}

	return nil
}

// writeResult prints the outcome of a search.
func writeResult(w io.Writer, res *pathfind.Result) {
	if !res.Found {
		fmt.Fprintf(w, "no path found after %d iterations\n", res.Iterations)
		return
	}
	fmt.Fprintf(w, "path: %s\n", pathfind.FormatPath(res.Path))
	fmt.Fprintf(w, "distance: %s\n", strconv.FormatFloat(res.Distance, 'f', 2, 64))
	fmt.Fprintf(w, "iterations: %d\n", res.Iterations)
}

// writeStep prints one iteration with its open and closed lists.
func writeStep(w io.Writer, s pathfind.Step) {
	fmt.Fprintf(w, "iteration %d: current %d (%.2f) path %s\n",
		s.Iteration, s.Current.Cavern+1, s.Current.Cost, pathfind.FormatPath(s.Path))
	fmt.Fprintf(w, "  open: %s\n", formatNodes(s.Open))
	fmt.Fprintf(w, "  closed: %s\n", formatNodes(s.Closed))
}

// formatNodes renders nodes as "id(cost)" pairs with 1-based ids.
func formatNodes(nodes []pathfind.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%d(%.2f)", n.Cavern+1, n.Cost)
	}
	return strings.Join(parts, " ")
}

// PathCommandBuilder constructs the cli.Command definition for the "path"
// command.
func PathCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "path",
		Usage:     "search a route from the first to the last cavern",
		UsageText: `cavegen path [FILE] [options]`,
		Flags:     NewPathFlags("path", meta.Config),
		Action:    PathCommandAction,
		Meta:      meta,
	}).Build()
}
