package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vietdv277/nimbus/internal/aws"
	"github.com/vietdv277/nimbus/internal/config"
)

var (
	// Global flags
	profile string
	region  string
	target  string
)

var rootCmd = &cobra.Command{
	Use:   "nbs",
	Short: "Nimbus - Revisioned artifact deploys to object storage",
	Long: `Nimbus deploys files to an object-storage bucket as immutable,
uniquely-keyed revisions, and promotes one revision at a time to be the
live object served under a stable key.

Typical flow:
  nbs push dist/index.html --revision v42   # Upload a new revision
  nbs revisions ls index.html               # Inspect the revision ledger
  nbs activate index.html v42               # Make v42 the live object

Targets:
  nbs targets                               # List configured deploy targets
  nbs use staging                           # Switch the active target
  nbs status                                # Show target and auth status

Buckets, prefixes and headers come from the active target in
~/.nimbus.yaml; every value can be overridden per invocation with flags.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVarP(&target, "target", "t", "", "deploy target from ~/.nimbus.yaml")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("NBS")
	viper.AutomaticEnv()

	if profile == "" {
		profile = os.Getenv("AWS_PROFILE")
	}

	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}

// currentTarget returns the deploy target selected by the --target flag or
// the config file's current target. A nil target is fine as long as flags
// supply a bucket.
func currentTarget() (*config.Target, string, error) {
	return config.GetTarget(target)
}

// newClientForTarget builds an AWS client honoring, in order, the global
// flags, the target's settings, and the environment.
func newClientForTarget(ctx context.Context, tgt *config.Target) (*aws.Client, error) {
	clientProfile := GetProfile()
	clientRegion := GetRegion()
	endpoint := ""

	if tgt != nil {
		if clientProfile == "" {
			clientProfile = tgt.Profile
		}
		if clientRegion == "" {
			clientRegion = tgt.Region
		}
		endpoint = tgt.Endpoint
	}

	opts := []aws.ClientOption{
		aws.WithProfile(clientProfile),
		aws.WithRegion(clientRegion),
	}
	if endpoint != "" {
		opts = append(opts, aws.WithEndpoint(endpoint))
	}

	client, err := aws.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}
