package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vietdv277/nimbus/internal/aws"
	"github.com/vietdv277/nimbus/internal/config"
	"github.com/vietdv277/nimbus/internal/deploy"
)

// deployFlags holds the per-command overrides shared by push, activate and
// revisions. Any value left empty falls back to the active target, then to
// the config defaults.
type deployFlags struct {
	bucket       string
	prefix       string
	acl          string
	cacheControl string
	sse          string
	gzip         []string
}

func (f *deployFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bucket, "bucket", "", "Destination bucket (supports ssm:/path references)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&f.acl, "acl", "", "Canned ACL for written objects")
	cmd.Flags().StringVar(&f.cacheControl, "cache-control", "", "Cache-Control header value")
	cmd.Flags().StringVar(&f.sse, "sse", "", "Server-side encryption algorithm (e.g. AES256)")
	cmd.Flags().StringSliceVar(&f.gzip, "gzip", nil, "Artifact name patterns that are pre-compressed")
}

// buildOptions merges flag values over the target and defaults, and
// resolves ssm: references through the client. Returns the deploy options
// plus the key prefix for the artifact.
func buildOptions(ctx context.Context, client *aws.Client, tgt *config.Target, f *deployFlags) (deploy.Options, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return deploy.Options{}, "", err
	}

	opts := deploy.Options{
		Bucket:       f.bucket,
		ACL:          f.acl,
		CacheControl: f.cacheControl,
		SSE:          f.sse,
		GzipPatterns: f.gzip,
	}
	prefix := f.prefix

	if tgt != nil {
		if opts.Bucket == "" {
			opts.Bucket = tgt.Bucket
		}
		if prefix == "" {
			prefix = tgt.Prefix
		}
		if opts.ACL == "" {
			opts.ACL = tgt.ACL
		}
		if opts.CacheControl == "" {
			opts.CacheControl = tgt.CacheControl
		}
		if opts.SSE == "" {
			opts.SSE = tgt.SSE
		}
		if len(opts.GzipPatterns) == 0 {
			opts.GzipPatterns = tgt.GzipPatterns
		}
	}

	if opts.ACL == "" {
		opts.ACL = cfg.Defaults.ACL
	}
	if opts.CacheControl == "" {
		opts.CacheControl = cfg.Defaults.CacheControl
	}
	opts.ContentType = cfg.Defaults.ContentType

	if opts.Bucket == "" {
		return deploy.Options{}, "", fmt.Errorf("no bucket configured: pass --bucket or set one on the target")
	}

	// Bucket may point at an SSM parameter
	opts.Bucket, err = client.ResolveValue(ctx, opts.Bucket)
	if err != nil {
		return deploy.Options{}, "", err
	}

	return opts, prefix, nil
}
