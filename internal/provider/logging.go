package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
)

// SensitiveFields are log field keys whose values are always masked
var SensitiveFields = []string{
	"PrivateKey",
	"SshPublicKeyBody",
	"ssh_public_key_body",
	"secret_access_key",
	"session_token",
	"access_key_id",
}

// WithRequestFields attaches the invocation context to every log entry written
// with the returned context and masks sensitive fields
func WithRequestFields(ctx context.Context, req *handler.Request) context.Context {
	ctx = tflog.SetField(ctx, "resource_type", req.TypeName)
	ctx = tflog.SetField(ctx, "action", string(req.Action))
	if req.ClientRequestToken != "" {
		ctx = tflog.SetField(ctx, "client_request_token", req.ClientRequestToken)
	}
	if req.LogicalResourceID != "" {
		ctx = tflog.SetField(ctx, "logical_resource_id", req.LogicalResourceID)
	}
	return tflog.MaskFieldValuesWithFieldKeys(ctx, SensitiveFields...)
}

// LogOperationStart logs the start of a remote operation
func LogOperationStart(ctx context.Context, operation string, resourceType string) {
	tflog.Debug(ctx, "Starting operation", map[string]interface{}{
		"operation":     operation,
		"resource_type": resourceType,
	})
}

// LogOperationSuccess logs successful completion of a remote operation
func LogOperationSuccess(ctx context.Context, operation string, resourceType string, resourceID string) {
	tflog.Info(ctx, "Operation completed successfully", map[string]interface{}{
		"operation":     operation,
		"resource_type": resourceType,
		"resource_id":   resourceID,
	})
}

// LogOperationError logs operation failure with its classified kind
func LogOperationError(ctx context.Context, operation string, resourceType string, kind string, err error) {
	tflog.Error(ctx, "Operation failed", map[string]interface{}{
		"operation":     operation,
		"resource_type": resourceType,
		"error_kind":    kind,
		"error":         err.Error(),
	})
}

// LogTagDelta logs the tag changes applied after an update
func LogTagDelta(ctx context.Context, resourceARN string, added int, removed int) {
	tflog.Debug(ctx, "Applying tag delta", map[string]interface{}{
		"resource_arn": resourceARN,
		"tags_added":   added,
		"tags_removed": removed,
	})
}
