package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
)

type invokeOptions struct {
	requestPath  string
	resourceType string
	action       string
}

func newInvokeCommand(root *rootOptions) *cobra.Command {
	opts := &invokeOptions{}

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run one handler request locally and print the progress event",
		Example: `  transfer-provider invoke --request create-server.json
  transfer-provider invoke --request server.json --type AWS::Transfer::Server --action READ`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := root.load(cmd.Context())
			if err != nil {
				return err
			}

			wire, err := readRequest(opts.requestPath)
			if err != nil {
				return err
			}
			if opts.resourceType != "" {
				wire.ResourceType = opts.resourceType
			}
			if opts.action != "" {
				wire.Action = opts.action
			}
			if wire.BearerToken == "" {
				wire.BearerToken = uuid.NewString()
			}
			if wire.Region == "" {
				wire.Region = cfg.Region
			}

			var event handler.ProgressEvent
			req, err := wire.ToRequest()
			if err != nil {
				event = handler.Failed(err)
			} else {
				event = root.newProvider(cfg).Invoke(ctx, req)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(event); err != nil {
				return fmt.Errorf("failed to write progress event: %w", err)
			}
			if !event.Succeeded() {
				return fmt.Errorf("handler failed: %s", event.ErrorCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.requestPath, "request", "r", "", "handler request JSON file")
	cmd.Flags().StringVarP(&opts.resourceType, "type", "t", "", "resource type, overrides resourceType in the request")
	cmd.Flags().StringVarP(&opts.action, "action", "a", "", "CREATE, READ, UPDATE, DELETE or LIST, overrides action in the request")
	_ = cmd.MarkFlagRequired("request")

	return cmd
}

func readRequest(path string) (*handler.HandlerRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request %s: %w", path, err)
	}
	wire := &handler.HandlerRequest{}
	if err := json.Unmarshal(data, wire); err != nil {
		return nil, fmt.Errorf("failed to parse request %s: %w", path, err)
	}
	return wire, nil
}
