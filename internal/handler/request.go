// Package handler defines the handler request and progress event exchanged
// with the CloudFormation registry
package handler

import (
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
)

// Action is the lifecycle operation requested by CloudFormation
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionList   Action = "LIST"
)

// Valid reports whether a is one of the five lifecycle actions
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList:
		return true
	}
	return false
}

// Request is one handler invocation. Resource states are the raw resource
// properties; the resource decodes them into its model.
type Request struct {
	Action             Action
	TypeName           string
	AccountID          string
	Region             string
	Partition          string
	ClientRequestToken string
	LogicalResourceID  string

	DesiredResourceState  map[string]interface{}
	PreviousResourceState map[string]interface{}

	// Stack-level tags and system (aws:) tags; system tags are applied last
	DesiredResourceTags  map[string]string
	PreviousResourceTags map[string]string
	SystemTags           map[string]string
	PreviousSystemTags   map[string]string

	NextToken   *string
	Credentials *client.Credentials
}
