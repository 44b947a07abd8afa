// Package client builds the Transfer API client and classifies its errors
package client

import (
	"errors"
	"fmt"

	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
	"github.com/aaearon/cloudformation-transfer-providers/internal/validators"
)

// ErrorKind is the standardized outcome of a failed handler invocation
type ErrorKind int

const (
	ErrorKindGeneralService ErrorKind = iota
	ErrorKindInvalidRequest
	ErrorKindAlreadyExists
	ErrorKindNotFound
	ErrorKindServiceInternal
	ErrorKindThrottling
	ErrorKindInvalidArn
	ErrorKindResourceConflict
)

// String returns a string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidRequest:
		return "invalid_request"
	case ErrorKindAlreadyExists:
		return "already_exists"
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindServiceInternal:
		return "service_internal"
	case ErrorKindThrottling:
		return "throttling"
	case ErrorKindInvalidArn:
		return "invalid_arn"
	case ErrorKindResourceConflict:
		return "resource_conflict"
	default:
		return "general_service"
	}
}

// HandlerErrorCode returns the CloudFormation error code reported for the kind.
// CloudFormation has no ARN-specific code, so InvalidArn is reported as InvalidRequest.
func (k ErrorKind) HandlerErrorCode() cftypes.HandlerErrorCode {
	switch k {
	case ErrorKindInvalidRequest, ErrorKindInvalidArn:
		return cftypes.HandlerErrorCodeInvalidRequest
	case ErrorKindAlreadyExists:
		return cftypes.HandlerErrorCodeAlreadyExists
	case ErrorKindNotFound:
		return cftypes.HandlerErrorCodeNotFound
	case ErrorKindServiceInternal:
		return cftypes.HandlerErrorCodeServiceInternalError
	case ErrorKindThrottling:
		return cftypes.HandlerErrorCodeThrottling
	case ErrorKindResourceConflict:
		return cftypes.HandlerErrorCodeResourceConflict
	default:
		return cftypes.HandlerErrorCodeGeneralServiceException
	}
}

// Operation names the handler step an error occurred in
type Operation string

const (
	OperationCreate  Operation = "Create"
	OperationRead    Operation = "Read"
	OperationUpdate  Operation = "Update"
	OperationDelete  Operation = "Delete"
	OperationList    Operation = "List"
	OperationTagging Operation = "Tagging"
)

// HandlerError is the single failure reported by a handler invocation
type HandlerError struct {
	Kind      ErrorKind
	Operation Operation
	Message   string
	Err       error
}

func (e *HandlerError) Error() string {
	return e.Message
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewHandlerError creates a HandlerError that has no underlying cause
func NewHandlerError(kind ErrorKind, op Operation, format string, args ...interface{}) *HandlerError {
	return &HandlerError{
		Kind:      kind,
		Operation: op,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Rule maps a remote error code to a kind for a set of operations.
// An empty Operations list applies the rule to every operation except Tagging.
type Rule struct {
	Code       string
	Operations []Operation
	Kind       ErrorKind
}

func (r Rule) matches(code string, op Operation) bool {
	if r.Code != code {
		return false
	}
	if len(r.Operations) == 0 {
		return op != OperationTagging
	}
	for _, o := range r.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// Remote error codes returned by the Transfer API
const (
	CodeInvalidRequest     = "InvalidRequestException"
	CodeResourceExists     = "ResourceExistsException"
	CodeResourceNotFound   = "ResourceNotFoundException"
	CodeInternalService    = "InternalServiceError"
	CodeServiceUnavailable = "ServiceUnavailableException"
	CodeThrottling         = "ThrottlingException"
	CodeInvalidNextToken   = "InvalidNextTokenException"
	CodeConflict           = "ConflictException"
)

// DefaultRules is the classification table shared by all resource kinds.
// Codes not listed, or listed for other operations, are GeneralService.
var DefaultRules = []Rule{
	{Code: CodeInvalidRequest, Kind: ErrorKindInvalidRequest},
	{Code: CodeResourceExists, Operations: []Operation{OperationCreate}, Kind: ErrorKindAlreadyExists},
	{Code: CodeResourceNotFound, Operations: []Operation{OperationCreate}, Kind: ErrorKindInvalidRequest},
	{Code: CodeResourceNotFound, Operations: []Operation{OperationRead, OperationUpdate, OperationDelete, OperationList}, Kind: ErrorKindNotFound},
	{Code: CodeInternalService, Operations: allOperations, Kind: ErrorKindServiceInternal},
	{Code: CodeServiceUnavailable, Operations: allOperations, Kind: ErrorKindServiceInternal},
	{Code: CodeThrottling, Operations: []Operation{OperationCreate}, Kind: ErrorKindThrottling},
	{Code: CodeInvalidNextToken, Operations: []Operation{OperationList}, Kind: ErrorKindInvalidRequest},
	{Code: CodeConflict, Kind: ErrorKindResourceConflict},
}

var allOperations = []Operation{
	OperationCreate, OperationRead, OperationUpdate, OperationDelete, OperationList, OperationTagging,
}

// ErrorCode extracts the remote error code, or "" for errors that did not come
// from the Transfer API
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// classifyError determines the error kind. Local failures (validation, numeric
// narrowing, ARN parsing) are checked first, then the remote code is matched
// against rules in order. The first matching rule wins.
func classifyError(err error, op Operation, rules []Rule) ErrorKind {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Kind
	}

	var arnErr *arn.InvalidARNError
	if errors.As(err, &arnErr) {
		return ErrorKindInvalidArn
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) || errors.Is(err, models.ErrUnsafeNarrowing) {
		return ErrorKindInvalidRequest
	}

	code := ErrorCode(err)
	if code == "" {
		return ErrorKindGeneralService
	}
	for _, r := range rules {
		if r.matches(code, op) {
			return r.Kind
		}
	}
	return ErrorKindGeneralService
}

// MapError converts an error from a handler step into a HandlerError.
// kindRules are consulted before DefaultRules. Returns nil if err is nil.
func MapError(err error, op Operation, subject string, kindRules ...Rule) *HandlerError {
	if err == nil {
		return nil
	}

	var existing *HandlerError
	if errors.As(err, &existing) {
		return existing
	}

	rules := DefaultRules
	if len(kindRules) > 0 {
		rules = append(append([]Rule{}, kindRules...), DefaultRules...)
	}

	return &HandlerError{
		Kind:      classifyError(err, op, rules),
		Operation: op,
		Message:   fmt.Sprintf("%s %s failed: %s", op, subject, err.Error()),
		Err:       err,
	}
}
