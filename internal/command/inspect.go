// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/mitom/ai-pathfinder/internal/cavfile"
	"github.com/mitom/ai-pathfinder/internal/meta"
	"github.com/mitom/ai-pathfinder/internal/output"
)

// InspectCommandAction is the action handler for the "inspect" subcommand.
// It decodes a cave file and emits its summary and, on request, one row per
// cavern.
func InspectCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, "inspect") {
		return nil
	}

	c, _, err := readCave(cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	opts := output.Options{
		Format: cmd.String("output"),
		Filter: cmd.String("filter"),
		Sort:   cmd.String("sort"),
		Query:  cmd.String("query"),
		Color:  cmd.Bool("color") && isTerminal(w),
		Titles: cmd.Bool("titles"),
	}

	if opts.Format == "raw" {
		if err := cavfile.Encode(w, c); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	doc := output.Document{Summary: output.Summarize(c)}
	if cmd.Bool("caverns") || opts.Filter != "" || opts.Sort != "" {
		doc.Caverns = output.Rows(c)
	}

	return output.Emit(w, doc, opts)
}

// InspectCommandBuilder constructs the cli.Command definition for the
// "inspect" command.
func InspectCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := append(NewOutputFlags("inspect", meta.Config), &cli.BoolFlag{
		Name:        "caverns",
		Usage:       "include one row per cavern",
		HideDefault: true,
	})

	return (&CommandBuilder{
		Name:      "inspect",
		Usage:     "summarize a cave file",
		UsageText: `cavegen inspect [FILE] [options]`,
		Flags:     flags,
		Action:    InspectCommandAction,
		Meta:      meta,
	}).Build()
}
