// Package cli implements the transfer-provider command line
package cli

import (
	"context"
	"os"

	"github.com/hashicorp/terraform-plugin-log/tfsdklog"
	"github.com/spf13/cobra"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/config"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
	"github.com/aaearon/cloudformation-transfer-providers/internal/provider"
)

const loggerName = "transfer-provider"

// Execute runs the root command
func Execute(ctx context.Context, version string) error {
	return newRootCommand(version).ExecuteContext(ctx)
}

type rootOptions struct {
	version    string
	configPath string
}

func newRootCommand(version string) *cobra.Command {
	opts := &rootOptions{version: version}

	rootCmd := &cobra.Command{
		Use:   "transfer-provider",
		Short: "CloudFormation resource providers for AWS Transfer Family",
		Long: `transfer-provider runs the CloudFormation handlers for the AWS::Transfer
agreement, certificate, profile, server, user and web app resource types.

It serves them as a resource type handler Lambda, as a custom resource Lambda,
or runs a single handler request locally.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (YAML)")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newInvokeCommand(opts))
	rootCmd.AddCommand(newTypesCommand(opts))

	return rootCmd
}

// load reads the configuration and installs the root logger on ctx
func (o *rootOptions) load(ctx context.Context) (context.Context, *config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return ctx, nil, err
	}

	// The logger reads its level from the environment only
	if cfg.LogLevel != "" {
		if err := os.Setenv(config.EnvLogLevel, cfg.LogLevel); err != nil {
			return ctx, nil, err
		}
	}
	ctx = tfsdklog.NewRootProviderLogger(ctx,
		tfsdklog.WithLogName(loggerName),
		tfsdklog.WithLevelFromEnv(config.EnvLogLevel),
		tfsdklog.WithoutLocation(),
	)
	return ctx, cfg, nil
}

func (o *rootOptions) newProvider(cfg *config.Config) *provider.Provider {
	return provider.New(o.version, newClientFactory(cfg))
}

// newClientFactory builds a Transfer client per request from its region and caller credentials
func newClientFactory(cfg *config.Config) provider.ClientFactory {
	return func(ctx context.Context, req *handler.Request) (client.TransferAPI, error) {
		return client.NewTransferClient(ctx, cfg.ClientOptions(req.Region, req.Credentials))
	}
}
