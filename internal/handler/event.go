package handler

import (
	"errors"

	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
)

// ProgressEvent is the result of a handler invocation. Handlers complete in a
// single call, so the status is always SUCCESS or FAILED.
type ProgressEvent struct {
	Status         cftypes.OperationStatus  `json:"status"`
	ErrorCode      cftypes.HandlerErrorCode `json:"errorCode,omitempty"`
	Message        string                   `json:"message,omitempty"`
	ResourceModel  interface{}              `json:"resourceModel,omitempty"`
	ResourceModels []interface{}            `json:"resourceModels,omitempty"`
	NextToken      *string                  `json:"nextToken,omitempty"`

	// Kind is the classified failure, not serialized
	Kind client.ErrorKind `json:"-"`
}

// Succeeded reports whether the event has SUCCESS status
func (e ProgressEvent) Succeeded() bool {
	return e.Status == cftypes.OperationStatusSuccess
}

// Success returns a SUCCESS event carrying model
func Success(model interface{}) ProgressEvent {
	return ProgressEvent{
		Status:        cftypes.OperationStatusSuccess,
		ResourceModel: model,
	}
}

// SuccessList returns a SUCCESS event for a List page
func SuccessList(models []interface{}, nextToken *string) ProgressEvent {
	if models == nil {
		models = []interface{}{}
	}
	return ProgressEvent{
		Status:         cftypes.OperationStatusSuccess,
		ResourceModels: models,
		NextToken:      nextToken,
	}
}

// Failed returns a FAILED event for err. Errors that are not a HandlerError
// are reported as GeneralServiceException.
func Failed(err error) ProgressEvent {
	var handlerErr *client.HandlerError
	if !errors.As(err, &handlerErr) {
		handlerErr = &client.HandlerError{Kind: client.ErrorKindGeneralService, Message: err.Error(), Err: err}
	}
	return ProgressEvent{
		Status:    cftypes.OperationStatusFailed,
		ErrorCode: handlerErr.Kind.HandlerErrorCode(),
		Message:   handlerErr.Message,
		Kind:      handlerErr.Kind,
	}
}
