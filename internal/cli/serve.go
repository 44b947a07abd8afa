package cli

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/spf13/cobra"

	"github.com/aaearon/cloudformation-transfer-providers/internal/customresource"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
	"github.com/aaearon/cloudformation-transfer-providers/internal/provider"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var customResource bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the handlers as a Lambda function",
		Long: `Serve the handlers as a Lambda function.

By default the function speaks the resource type handler protocol used by the
CloudFormation registry. With --custom-resource it handles Custom::Transfer<Kind>
custom resource events instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			p := root.newProvider(cfg)

			tflog.Info(ctx, "Starting Lambda handler", map[string]interface{}{
				"version":         p.Version(),
				"custom_resource": customResource,
				"types":           p.TypeNames(),
			})

			if customResource {
				lambda.StartWithOptions(customresource.NewHandler(p).LambdaFunction(), lambda.WithContext(ctx))
			} else {
				lambda.StartWithOptions(registryHandler(p), lambda.WithContext(ctx))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&customResource, "custom-resource", false, "handle custom resource events")
	return cmd
}

// registryHandler handles one registry request. Failures are reported in the
// progress event; the Lambda invocation itself only fails on a malformed payload.
func registryHandler(p *provider.Provider) func(ctx context.Context, wire handler.HandlerRequest) (handler.ProgressEvent, error) {
	return func(ctx context.Context, wire handler.HandlerRequest) (handler.ProgressEvent, error) {
		req, err := wire.ToRequest()
		if err != nil {
			return handler.Failed(err), nil
		}
		return p.Invoke(ctx, req), nil
	}
}
