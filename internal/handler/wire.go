package handler

import (
	"fmt"
	"strings"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
)

// HandlerRequest is the JSON payload the CloudFormation registry sends to the handler Lambda
type HandlerRequest struct {
	AWSAccountID    string                 `json:"awsAccountId"`
	AWSPartition    string                 `json:"awsPartition,omitempty"`
	BearerToken     string                 `json:"bearerToken"`
	Region          string                 `json:"region"`
	Action          string                 `json:"action"`
	ResourceType    string                 `json:"resourceType"`
	ResourceVersion string                 `json:"resourceTypeVersion,omitempty"`
	StackID         string                 `json:"stackId,omitempty"`
	NextToken       *string                `json:"nextToken,omitempty"`
	CallbackContext map[string]interface{} `json:"callbackContext,omitempty"`
	RequestData     RequestData            `json:"requestData"`
}

// RequestData carries the resource state and caller context of a HandlerRequest
type RequestData struct {
	CallerCredentials          *WireCredentials       `json:"callerCredentials,omitempty"`
	LogicalResourceID          string                 `json:"logicalResourceId,omitempty"`
	ResourceProperties         map[string]interface{} `json:"resourceProperties,omitempty"`
	PreviousResourceProperties map[string]interface{} `json:"previousResourceProperties,omitempty"`
	SystemTags                 map[string]string      `json:"systemTags,omitempty"`
	PreviousSystemTags         map[string]string      `json:"previousSystemTags,omitempty"`
	StackTags                  map[string]string      `json:"stackTags,omitempty"`
	PreviousStackTags          map[string]string      `json:"previousStackTags,omitempty"`
}

// WireCredentials are temporary credentials for the caller's account
type WireCredentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken"`
}

// ToRequest converts the registry payload into a handler Request. The partition
// is derived from the region when the payload does not carry one.
func (w *HandlerRequest) ToRequest() (*Request, error) {
	action := Action(strings.ToUpper(w.Action))
	if !action.Valid() {
		return nil, client.NewHandlerError(client.ErrorKindInvalidRequest, "", "unsupported action '%s'", w.Action)
	}
	if w.ResourceType == "" {
		return nil, fmt.Errorf("handler request has no resourceType")
	}

	partition := w.AWSPartition
	if partition == "" {
		partition = arn.PartitionForRegion(w.Region)
	}

	req := &Request{
		Action:                action,
		TypeName:              w.ResourceType,
		AccountID:             w.AWSAccountID,
		Region:                w.Region,
		Partition:             partition,
		ClientRequestToken:    w.BearerToken,
		LogicalResourceID:     w.RequestData.LogicalResourceID,
		DesiredResourceState:  w.RequestData.ResourceProperties,
		PreviousResourceState: w.RequestData.PreviousResourceProperties,
		DesiredResourceTags:   w.RequestData.StackTags,
		PreviousResourceTags:  w.RequestData.PreviousStackTags,
		SystemTags:            w.RequestData.SystemTags,
		PreviousSystemTags:    w.RequestData.PreviousSystemTags,
		NextToken:             w.NextToken,
	}
	if c := w.RequestData.CallerCredentials; c != nil {
		req.Credentials = &client.Credentials{
			AccessKeyID:     c.AccessKeyID,
			SecretAccessKey: c.SecretAccessKey,
			SessionToken:    c.SessionToken,
		}
	}
	return req, nil
}
