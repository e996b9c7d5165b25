// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/mitom/ai-pathfinder/internal/aws"
	"github.com/mitom/ai-pathfinder/internal/cacheutil"
	"github.com/mitom/ai-pathfinder/internal/cave"
	"github.com/mitom/ai-pathfinder/internal/cavfile"
	"github.com/mitom/ai-pathfinder/internal/meta"
	"github.com/mitom/ai-pathfinder/internal/output"
)

// DefaultCacheTTL is how many hours cached caves are kept.
const DefaultCacheTTL = 168

// newPublisher builds the S3 client behind --s3-bucket. retries of 0 keeps
// the SDK's retry policy.
var newPublisher = func(ctx context.Context, profile, region string, retries int) (awsx.PutObjectAPI, error) {
	opts := []awsx.Option{awsx.WithProfile(profile), awsx.WithRegion(region)}
	if retries > 0 {
		opts = append(opts, awsx.WithRetryer(awsx.StandardRetryer(retries)))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return awsx.NewS3(cfg), nil
}

// paramsFromFlags collects the generation parameters.
func paramsFromFlags(cmd *cli.Command) cave.Params {
	return cave.Params{
		Count:        cmd.Int("count"),
		Width:        cmd.Int("width"),
		Height:       cmd.Int("height"),
		Connectivity: cmd.Int("connectivity"),
		Radius:       cmd.Float("radius"),
		Seed:         cmd.Int64("seed"),
		MaxAttempts:  cmd.Int("max-attempts"),
	}
}

// GenerateCommandAction is the action handler for the "generate" subcommand.
// It builds a cave, writes it to --out and optionally publishes it to S3.
func GenerateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, "generate") {
		return nil
	}

	p := paramsFromFlags(cmd)
	if err := p.Validate(); err != nil {
		return err
	}

	c, err := generateOrCached(cmd, &p)
	if err != nil {
		return err
	}

	data, err := cavfile.Marshal(c)
	if err != nil {
		return err
	}

	out := cmd.String("out")
	if err := cavfile.WriteBytes(out, data); err != nil {
		return err
	}

	if bucket := cmd.String("s3-bucket"); bucket != "" {
		api, err := newPublisher(ctx, cmd.String("aws-profile"), cmd.String("s3-region"), cmd.Int("s3-retries"))
		if err != nil {
			return err
		}
		key := awsx.ObjectKey(cmd.String("s3-key"), out)
		if err := awsx.Publish(ctx, api, bucket, key, data); err != nil {
			return err
		}
	}

	if !cmd.Bool("quiet") {
		fmt.Fprintln(cmd.Root().Writer, output.GeneratedLine(out, len(data), output.Summarize(c), p.Seed))
	}

	return nil
}

// generateOrCached returns the cached cave for seeded parameters, generating
// and caching it on a miss. Unseeded runs get a fresh seed, stored in p so
// that it can be reported.
func generateOrCached(cmd *cli.Command, p *cave.Params) (*cave.Cave, error) {
	if err := cacheutil.Purge(cmd.Int("cache-ttl")); err != nil {
		log.WithError(err).Warn("cache purge failed")
	}

	key, cacheable := cacheutil.CaveKey(*p)
	subdirs := []string{cacheutil.CaveDir}
	if cacheable {
		if entry, ok := cacheutil.Read(subdirs, key); ok {
			c, err := cavfile.Unmarshal(entry.Data)
			if err == nil {
				log.Debugf("cache hit %s", entry.Path)
				return c, nil
			}
			log.WithError(err).Warnf("ignoring unreadable cache entry %s", entry.Path)
		}
	}

	if p.Seed == 0 {
		p.Seed = cave.RandomSeed()
		log.Debugf("using random seed %d", p.Seed)
	}

	c, err := cave.Generate(cave.NewSource(p.Seed), *p)
	if err != nil {
		return nil, err
	}

	if cacheable {
		data, err := cavfile.Marshal(c)
		if err == nil {
			err = cacheutil.Write(subdirs, key, data)
		}
		if err != nil {
			log.WithError(err).Warn("failed to cache cave")
		}
	}

	return c, nil
}

// GenerateCommandBuilder constructs the cli.Command definition for the
// "generate" command.
func GenerateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "generate a random cave",
		UsageText: `cavegen generate [options]`,
		Flags:     NewGenerateFlags("generate", meta.Config),
		Action:    GenerateCommandAction,
		Meta:      meta,
	}).Build()
}
