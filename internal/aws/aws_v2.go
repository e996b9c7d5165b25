// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// CaveContentType is the content type stored with published caves.
const CaveContentType = "text/plain; charset=utf-8"

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// StandardRetryer returns a retryer factory for WithRetryer that makes at
// most maxAttempts attempts per request.
func StandardRetryer(maxAttempts int) func() awsv2.Retryer {
	return func() awsv2.Retryer {
		return retry.AddWithMaxAttempts(retry.NewStandard(), maxAttempts)
	}
}

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// PutObjectAPI is the slice of the S3 client used to publish caves.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// ObjectKey resolves the key a file is published under. An empty key uses
// the file's base name; a key ending in "/" is treated as a prefix.
func ObjectKey(key string, file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	switch {
	case key == "":
		return base
	case strings.HasSuffix(key, "/"):
		return key + base
	default:
		return key
	}
}

// Publish uploads an encoded cave to s3://bucket/key.
func Publish(ctx context.Context, api PutObjectAPI, bucket, key string, data []byte) error {
	if bucket == "" {
		return fmt.Errorf("no bucket given for publishing %s", key)
	}

	_, err := api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:        awsv2.String(bucket),
		Key:           awsv2.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: awsv2.Int64(int64(len(data))),
		ContentType:   awsv2.String(CaveContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to publish s3://%s/%s: %w", bucket, key, err)
	}

	log.Debugf("published %d bytes to s3://%s/%s", len(data), bucket, key)
	return nil
}
