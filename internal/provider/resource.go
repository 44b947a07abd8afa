package provider

import (
	"context"
	"strings"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
	"github.com/aaearon/cloudformation-transfer-providers/internal/validators"
)

// listPageSize is the MaxResults sent with every List call
const listPageSize int32 = 10

// Descriptor describes one Transfer resource kind to the generic Resource.
// The remote funcs return raw errors; Resource classifies them.
type Descriptor[M any] struct {
	TypeName     string
	ResourceType arn.ResourceType

	// IdentifierProperties are the property names of the identifier, in ARN order
	IdentifierProperties []string
	// Identifier returns the identifier values of m in ARN order
	Identifier func(m *M) []*string
	SetArn     func(m *M, resourceARN string)
	Tags       func(m *M) []models.Tag
	// ParseARN parses a resource ARN into identifier values
	ParseARN func(s string) ([]string, error)

	// ErrorRules are consulted before client.DefaultRules
	ErrorRules []client.Rule

	// Create issues the create call and stores the assigned identifier on m
	Create func(ctx context.Context, api client.TransferAPI, m *M, desiredTags map[string]string) error
	Read   func(ctx context.Context, api client.TransferAPI, m *M) (*M, error)
	// Update issues the primary update; tags are reconciled by Resource afterwards
	Update func(ctx context.Context, api client.TransferAPI, m *M) error
	Delete func(ctx context.Context, api client.TransferAPI, m *M) error
	List   func(ctx context.Context, api client.TransferAPI, m *M, nextToken *string) ([]*M, *string, error)
}

// Resource implements the five lifecycle handlers for one resource kind
type Resource[M any] struct {
	d Descriptor[M]
}

// NewResource creates a Resource from its descriptor
func NewResource[M any](d Descriptor[M]) *Resource[M] {
	return &Resource[M]{d: d}
}

// TypeName returns the CloudFormation type name, e.g. AWS::Transfer::Server
func (r *Resource[M]) TypeName() string {
	return r.d.TypeName
}

// IdentifierFromARN parses a resource ARN into identifier properties
func (r *Resource[M]) IdentifierFromARN(s string) (map[string]interface{}, error) {
	parts, err := r.d.ParseARN(s)
	if err != nil {
		return nil, err
	}
	props := make(map[string]interface{}, len(parts))
	for i, name := range r.d.IdentifierProperties {
		props[name] = parts[i]
	}
	return props, nil
}

// Handle dispatches req to the handler for its action
func (r *Resource[M]) Handle(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	ctx = WithRequestFields(ctx, req)

	switch req.Action {
	case handler.ActionCreate:
		return r.Create(ctx, api, req)
	case handler.ActionRead:
		return r.Read(ctx, api, req)
	case handler.ActionUpdate:
		return r.Update(ctx, api, req)
	case handler.ActionDelete:
		return r.Delete(ctx, api, req)
	case handler.ActionList:
		return r.List(ctx, api, req)
	default:
		return handler.Failed(client.NewHandlerError(client.ErrorKindInvalidRequest, "",
			"unsupported action '%s' for %s", req.Action, r.d.TypeName))
	}
}

// Create validates the desired model, creates the resource with the merged
// tags and returns the model with its identifier and ARN
func (r *Resource[M]) Create(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	m, err := r.decode(req.DesiredResourceState)
	if err != nil {
		return r.fail(ctx, err, client.OperationCreate, r.d.TypeName)
	}
	if err := validators.Struct(m); err != nil {
		return r.fail(ctx, err, client.OperationCreate, r.d.TypeName)
	}

	desiredTags := tags.Merge(models.TagsToMap(r.d.Tags(m)), req.DesiredResourceTags, req.SystemTags)

	LogOperationStart(ctx, string(client.OperationCreate), r.d.TypeName)
	if err := r.d.Create(ctx, api, m, desiredTags); err != nil {
		return r.fail(ctx, err, client.OperationCreate, r.d.TypeName)
	}

	ids, ok := r.identifier(m)
	if !ok {
		return r.fail(ctx, client.NewHandlerError(client.ErrorKindGeneralService, client.OperationCreate,
			"%s create returned no identifier", r.d.TypeName), client.OperationCreate, r.d.TypeName)
	}
	r.d.SetArn(m, arn.Build(req.Partition, req.Region, req.AccountID, r.d.ResourceType, ids...))

	LogOperationSuccess(ctx, string(client.OperationCreate), r.d.TypeName, arn.BuildRelativeID(ids...))
	return handler.Success(m)
}

// Read describes the resource named by the desired model's identifier
func (r *Resource[M]) Read(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	m, ids, failed := r.decodeIdentified(ctx, req.DesiredResourceState, client.OperationRead)
	if failed != nil {
		return *failed
	}
	subject := r.subject(ids)

	LogOperationStart(ctx, string(client.OperationRead), r.d.TypeName)
	out, err := r.d.Read(ctx, api, m)
	if err != nil {
		return r.fail(ctx, err, client.OperationRead, subject)
	}
	if out == nil {
		return r.fail(ctx, client.NewHandlerError(client.ErrorKindNotFound, client.OperationRead,
			"%s not found", subject), client.OperationRead, subject)
	}

	LogOperationSuccess(ctx, string(client.OperationRead), r.d.TypeName, arn.BuildRelativeID(ids...))
	return handler.Success(out)
}

// Update applies the primary update, then reconciles tags between the previous
// and desired state. A failing tag call fails the update even though the
// primary update has committed.
func (r *Resource[M]) Update(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	m, ids, failed := r.decodeIdentified(ctx, req.DesiredResourceState, client.OperationUpdate)
	if failed != nil {
		return *failed
	}
	subject := r.subject(ids)

	if err := validators.Struct(m); err != nil {
		return r.fail(ctx, err, client.OperationUpdate, subject)
	}
	previous, err := r.decode(req.PreviousResourceState)
	if err != nil {
		return r.fail(ctx, err, client.OperationUpdate, subject)
	}

	LogOperationStart(ctx, string(client.OperationUpdate), r.d.TypeName)
	if err := r.d.Update(ctx, api, m); err != nil {
		return r.fail(ctx, err, client.OperationUpdate, subject)
	}

	resourceARN := arn.Build(req.Partition, req.Region, req.AccountID, r.d.ResourceType, ids...)
	r.d.SetArn(m, resourceARN)

	desiredTags := tags.Merge(models.TagsToMap(r.d.Tags(m)), req.DesiredResourceTags, req.SystemTags)
	previousTags := tags.Merge(models.TagsToMap(r.d.Tags(previous)), req.PreviousResourceTags, req.PreviousSystemTags)
	if delta := tags.Diff(previousTags, desiredTags); !delta.Empty() {
		if err := applyTagDelta(ctx, api, resourceARN, delta); err != nil {
			return r.fail(ctx, err, client.OperationTagging, subject)
		}
	}

	LogOperationSuccess(ctx, string(client.OperationUpdate), r.d.TypeName, arn.BuildRelativeID(ids...))
	return handler.Success(m)
}

// Delete removes the resource named by the desired model's identifier
func (r *Resource[M]) Delete(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	m, ids, failed := r.decodeIdentified(ctx, req.DesiredResourceState, client.OperationDelete)
	if failed != nil {
		return *failed
	}
	subject := r.subject(ids)

	LogOperationStart(ctx, string(client.OperationDelete), r.d.TypeName)
	if err := r.d.Delete(ctx, api, m); err != nil {
		return r.fail(ctx, err, client.OperationDelete, subject)
	}

	LogOperationSuccess(ctx, string(client.OperationDelete), r.d.TypeName, arn.BuildRelativeID(ids...))
	return handler.Success(nil)
}

// List returns one page of partial models and the continuation token
func (r *Resource[M]) List(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	m, err := r.decode(req.DesiredResourceState)
	if err != nil {
		return r.fail(ctx, err, client.OperationList, r.d.TypeName)
	}

	LogOperationStart(ctx, string(client.OperationList), r.d.TypeName)
	page, nextToken, err := r.d.List(ctx, api, m, req.NextToken)
	if err != nil {
		return r.fail(ctx, err, client.OperationList, r.d.TypeName)
	}

	resourceModels := make([]interface{}, 0, len(page))
	for _, item := range page {
		resourceModels = append(resourceModels, item)
	}

	tflog.Debug(ctx, "Listed resources", map[string]interface{}{
		"count":          len(resourceModels),
		"has_next_token": nextToken != nil,
	})
	return handler.SuccessList(resourceModels, nextToken)
}

func (r *Resource[M]) decode(properties map[string]interface{}) (*M, error) {
	m := new(M)
	if err := models.Decode(properties, m); err != nil {
		return nil, client.NewHandlerError(client.ErrorKindInvalidRequest, "", "%s: %s", r.d.TypeName, err.Error())
	}
	return m, nil
}

// decodeIdentified decodes the model and requires every identifier value.
// A missing identifier means there is no resource to act on: NotFound.
func (r *Resource[M]) decodeIdentified(ctx context.Context, properties map[string]interface{}, op client.Operation) (*M, []string, *handler.ProgressEvent) {
	m, err := r.decode(properties)
	if err != nil {
		event := r.fail(ctx, err, op, r.d.TypeName)
		return nil, nil, &event
	}

	ids, ok := r.identifier(m)
	if !ok {
		event := r.fail(ctx, client.NewHandlerError(client.ErrorKindNotFound, op,
			"%s not found: identifier %s is missing", r.d.TypeName, strings.Join(r.d.IdentifierProperties, ", ")), op, r.d.TypeName)
		return nil, nil, &event
	}
	return m, ids, nil
}

func (r *Resource[M]) identifier(m *M) ([]string, bool) {
	values := r.d.Identifier(m)
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil || *v == "" {
			return nil, false
		}
		ids = append(ids, *v)
	}
	return ids, true
}

// subject names the resource in error messages: "AWS::Transfer::User s-.../alice"
func (r *Resource[M]) subject(ids []string) string {
	return r.d.TypeName + " " + arn.BuildRelativeID(ids...)
}

func (r *Resource[M]) fail(ctx context.Context, err error, op client.Operation, subject string) handler.ProgressEvent {
	mapped := client.MapError(err, op, subject, r.d.ErrorRules...)
	LogOperationError(ctx, string(op), r.d.TypeName, mapped.Kind.String(), err)
	return handler.Failed(mapped)
}
