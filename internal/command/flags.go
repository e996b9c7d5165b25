// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/mitom/ai-pathfinder/internal/cave"
	"github.com/mitom/ai-pathfinder/internal/cavfile"
	"github.com/mitom/ai-pathfinder/internal/config"
	"github.com/mitom/ai-pathfinder/internal/output"
	"github.com/mitom/ai-pathfinder/internal/pathfind"
)

// envVar is the CAVEGEN_ variable backing a flag, e.g. CAVEGEN_MAX_ATTEMPTS.
func envVar(name string) string {
	return "CAVEGEN_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// configSources returns the value chain shared by config-backed flags:
// environment, then the namespaced config key, then the global config key.
func configSources(ns string, name string, cfg config.Type) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(envVar(name)),
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(cfg.Source)),
		yaml.YAML(name, altsrc.StringSourcer(cfg.Source)),
	)
}

// NewGenerateFlags builds the flags of the generate command.
func NewGenerateFlags(ns string, cfg config.Type) []cli.Flag {
	d := cave.DefaultParams()

	return []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of caverns",
			Sources: configSources(ns, "count", cfg),
			Value:   d.Count,
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"W"},
			Usage:   "width of the cave",
			Sources: configSources(ns, "width", cfg),
			Value:   d.Width,
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"H"},
			Usage:   "height of the cave",
			Sources: configSources(ns, "height", cfg),
			Value:   d.Height,
		},
		&cli.IntFlag{
			Name:    "connectivity",
			Aliases: []string{"c"},
			Usage:   "chance in percent that two caverns in range are connected",
			Sources: configSources(ns, "connectivity", cfg),
			Value:   d.Connectivity,
		},
		&cli.FloatFlag{
			Name:    "radius",
			Aliases: []string{"r"},
			Usage:   "maximum distance between connected caverns",
			Sources: configSources(ns, "radius", cfg),
			Value:   d.Radius,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed, 0 picks one",
			Sources: configSources(ns, "seed", cfg),
			Value:   d.Seed,
		},
		&cli.IntFlag{
			Name:    "max-attempts",
			Usage:   "placement draws allowed per cavern",
			Sources: configSources(ns, "max-attempts", cfg),
			Value:   d.MaxAttempts,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output file",
			Sources: configSources(ns, "out", cfg),
			Value:   cavfile.DefaultName,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator)
			},
		},
		&cli.IntFlag{
			Name:    "cache-ttl",
			Usage:   "hours to keep cached caves, 0 keeps them forever",
			Sources: configSources(ns, "cache-ttl", cfg),
			Value:   DefaultCacheTTL,
		},
		&cli.IntFlag{
			Name:    "s3-retries",
			Usage:   "attempts per S3 request, 0 uses the SDK default",
			Sources: configSources(ns, "s3-retries", cfg),
			Validator: func(value int) error {
				if value < 0 {
					return fmt.Errorf("must not be negative, got %d", value)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "do not print the summary line",
			HideDefault: true,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "publish the cave to this S3 bucket",
			Sources: cli.NewValueSourceChain(cli.EnvVar(envVar("s3-bucket"))),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:    "s3-key",
			Usage:   "object key, or prefix when it ends in /",
			Sources: cli.NewValueSourceChain(cli.EnvVar(envVar("s3-key"))),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "s3-region",
			Usage: "region of the S3 bucket. Defaults to the AWS config chain",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(envVar("s3-region")),
				cli.EnvVar("AWS_REGION"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "aws-profile",
			Usage: "shared config profile used for publishing",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(envVar("aws-profile")),
				cli.EnvVar("AWS_PROFILE"),
			),
		}),
	}
}

// NewOutputFlags builds the flags controlling how results are rendered.
func NewOutputFlags(ns string, cfg config.Type) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to cavern rows",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   fmt.Sprintf("output format, one of %v", output.Formats),
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"Q"},
			Usage:   "gjson path applied to json output",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of row keys to sort by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}
}

// defaultWeight is the heuristic weight from cavegen.yaml, path.weight before
// weight, or the stock weight when the file does not set one.
func defaultWeight() float64 {
	w, err := config.GetFloat("weight", pathfind.DefaultHeuristicWeight)
	if err != nil {
		log.WithError(err).Warn("ignoring weight from config")
		return pathfind.DefaultHeuristicWeight
	}
	return w
}

// NewPathFlags builds the flags of the path command.
func NewPathFlags(ns string, cfg config.Type) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "start",
			Usage: "1-based id of the starting cavern. Defaults to the first",
			Validator: func(value int) error {
				return FlagValidators(value, PositiveValidator)
			},
		},
		&cli.IntFlag{
			Name:  "goal",
			Usage: "1-based id of the goal cavern. Defaults to the last",
			Validator: func(value int) error {
				return FlagValidators(value, PositiveValidator)
			},
		},
		&cli.FloatFlag{
			Name:    "weight",
			Usage:   "multiplier of the distance-to-goal estimate",
			Sources: cli.NewValueSourceChain(cli.EnvVar(envVar("weight"))),
			Value:   defaultWeight(),
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "print the open and closed lists of every iteration",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "visualize",
			Usage: "write the renderer script to this file",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "step",
			Usage:       "step through the search interactively",
			HideDefault: true,
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
