// Package customresource serves the Transfer resource kinds as CloudFormation
// custom resources (Custom::TransferServer and friends)
package customresource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
	"github.com/aaearon/cloudformation-transfer-providers/internal/provider"
)

const (
	customTypePrefix   = "Custom::Transfer"
	resourceTypePrefix = "AWS::Transfer::"
)

// Invoker runs one handler request. *provider.Provider implements it.
type Invoker interface {
	Resource(typeName string) (provider.ResourceHandler, bool)
	Invoke(ctx context.Context, req *handler.Request) handler.ProgressEvent
}

// Handler adapts custom resource events to handler requests. The physical
// resource id is the resource ARN.
type Handler struct {
	invoker Invoker
}

// NewHandler creates a Handler backed by invoker
func NewHandler(invoker Invoker) *Handler {
	return &Handler{invoker: invoker}
}

// LambdaFunction wraps Handle so responses are sent to the pre-signed response URL
func (h *Handler) LambdaFunction() cfn.CustomResourceLambdaFunction {
	return cfn.LambdaWrap(h.Handle)
}

// TypeName maps Custom::Transfer<Kind> to AWS::Transfer::<Kind>
func TypeName(customType string) (string, error) {
	kind, found := strings.CutPrefix(customType, customTypePrefix)
	if !found || kind == "" {
		return "", fmt.Errorf("unsupported custom resource type '%s', expected %s<Kind>", customType, customTypePrefix)
	}
	return resourceTypePrefix + kind, nil
}

// Handle runs the lifecycle handler for one custom resource event and returns
// the physical resource id and the response data
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	typeName, err := TypeName(event.ResourceType)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}
	resource, ok := h.invoker.Resource(typeName)
	if !ok {
		return event.PhysicalResourceID, nil, fmt.Errorf("unsupported custom resource type '%s'", event.ResourceType)
	}

	ctx = tflog.SetField(ctx, "request_type", string(event.RequestType))
	ctx = tflog.SetField(ctx, "physical_resource_id", event.PhysicalResourceID)

	req, err := newRequest(ctx, event, typeName)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}

	switch event.RequestType {
	case cfn.RequestCreate:
		req.Action = handler.ActionCreate
		req.DesiredResourceState = properties(event.ResourceProperties)

	case cfn.RequestUpdate:
		id, err := resource.IdentifierFromARN(event.PhysicalResourceID)
		if err != nil {
			return event.PhysicalResourceID, nil, failure(client.MapError(err, client.OperationUpdate, typeName))
		}
		req.Action = handler.ActionUpdate
		req.DesiredResourceState = withIdentifier(properties(event.ResourceProperties), id)
		req.PreviousResourceState = withIdentifier(properties(event.OldResourceProperties), id)

	case cfn.RequestDelete:
		id, err := resource.IdentifierFromARN(event.PhysicalResourceID)
		if err != nil {
			// The create never succeeded, so there is nothing to delete
			tflog.Info(ctx, "Physical resource id is not a resource ARN, skipping delete", map[string]interface{}{
				"reason": err.Error(),
			})
			return event.PhysicalResourceID, nil, nil
		}
		req.Action = handler.ActionDelete
		req.DesiredResourceState = id

	default:
		return event.PhysicalResourceID, nil, fmt.Errorf("unsupported request type '%s'", event.RequestType)
	}

	result := h.invoker.Invoke(ctx, req)
	if !result.Succeeded() {
		if req.Action == handler.ActionDelete && result.Kind == client.ErrorKindNotFound {
			tflog.Info(ctx, "Resource already deleted")
			return event.PhysicalResourceID, nil, nil
		}
		return event.PhysicalResourceID, nil, fmt.Errorf("%s: %s", result.ErrorCode, result.Message)
	}

	if req.Action == handler.ActionDelete {
		return event.PhysicalResourceID, nil, nil
	}

	data, err := attributes(result.ResourceModel)
	if err != nil {
		return event.PhysicalResourceID, nil, err
	}
	physicalID, _ := data["Arn"].(string)
	if physicalID == "" {
		physicalID = event.PhysicalResourceID
	}
	return physicalID, data, nil
}

// newRequest fills the invocation context from the stack id, falling back to
// the invoked function ARN
func newRequest(ctx context.Context, event cfn.Event, typeName string) (*handler.Request, error) {
	req := &handler.Request{
		TypeName:          typeName,
		LogicalResourceID: event.LogicalResourceID,
	}

	source := event.StackID
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		req.ClientRequestToken = lc.AwsRequestID
		if source == "" {
			source = lc.InvokedFunctionArn
		}
	}
	if req.ClientRequestToken == "" {
		req.ClientRequestToken = event.RequestID
	}

	parsed, err := awsarn.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("cannot determine account and region from '%s': %w", source, err)
	}
	req.Partition = parsed.Partition
	req.Region = parsed.Region
	req.AccountID = parsed.AccountID
	if req.Partition == "" {
		req.Partition = arn.PartitionForRegion(req.Region)
	}
	return req, nil
}

// properties copies the resource properties without the ServiceToken
func properties(props map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(props))
	for k, v := range props {
		if k == "ServiceToken" {
			continue
		}
		out[k] = v
	}
	return out
}

func withIdentifier(props, id map[string]interface{}) map[string]interface{} {
	for k, v := range id {
		props[k] = v
	}
	return props
}

// attributes returns the top-level scalar properties of model for Fn::GetAtt
func attributes(model interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource model: %w", err)
	}
	var all map[string]interface{}
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("failed to decode resource model: %w", err)
	}

	data := make(map[string]interface{}, len(all))
	for k, v := range all {
		switch v.(type) {
		case string, float64, bool:
			data[k] = v
		}
	}
	return data, nil
}

func failure(err *client.HandlerError) error {
	return fmt.Errorf("%s: %s", err.Kind.HandlerErrorCode(), err.Message)
}
