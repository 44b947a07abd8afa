// Package provider implements the CloudFormation resource handlers for
// AWS Transfer Family resources
package provider

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
)

// ResourceHandler is one registered resource kind
type ResourceHandler interface {
	TypeName() string
	Handle(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent
	IdentifierFromARN(s string) (map[string]interface{}, error)
}

// ClientFactory builds the Transfer API client for one invocation, usually from
// the request's region and caller credentials
type ClientFactory func(ctx context.Context, req *handler.Request) (client.TransferAPI, error)

// Provider routes handler requests to the resource kind named by their type
type Provider struct {
	// version is set to the provider version on release
	version   string
	resources map[string]ResourceHandler
	newClient ClientFactory
}

// New creates a Provider with every Transfer resource kind registered
func New(version string, newClient ClientFactory) *Provider {
	p := &Provider{
		version:   version,
		resources: make(map[string]ResourceHandler),
		newClient: newClient,
	}
	for _, r := range []ResourceHandler{
		NewAgreementResource(),
		NewCertificateResource(),
		NewProfileResource(),
		NewServerResource(),
		NewUserResource(),
		NewWebAppResource(),
	} {
		p.resources[r.TypeName()] = r
	}
	return p
}

// Version returns the provider version
func (p *Provider) Version() string {
	return p.version
}

// TypeNames returns the registered type names, sorted
func (p *Provider) TypeNames() []string {
	names := make([]string, 0, len(p.resources))
	for name := range p.resources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resource returns the handler registered for typeName
func (p *Provider) Resource(typeName string) (ResourceHandler, bool) {
	r, ok := p.resources[typeName]
	return r, ok
}

// Invoke builds a client for req and handles it
func (p *Provider) Invoke(ctx context.Context, req *handler.Request) handler.ProgressEvent {
	if _, ok := p.resources[req.TypeName]; !ok {
		return unsupportedType(req.TypeName)
	}
	if p.newClient == nil {
		return handler.Failed(fmt.Errorf("no Transfer client factory configured"))
	}

	api, err := p.newClient(ctx, req)
	if err != nil {
		return handler.Failed(client.NewHandlerError(client.ErrorKindGeneralService, "",
			"failed to create Transfer client: %s", err.Error()))
	}
	return p.Handle(ctx, api, req)
}

// Handle dispatches req to the resource kind named by req.TypeName
func (p *Provider) Handle(ctx context.Context, api client.TransferAPI, req *handler.Request) handler.ProgressEvent {
	r, ok := p.resources[req.TypeName]
	if !ok {
		return unsupportedType(req.TypeName)
	}
	return r.Handle(ctx, api, req)
}

func unsupportedType(typeName string) handler.ProgressEvent {
	return handler.Failed(client.NewHandlerError(client.ErrorKindInvalidRequest, "",
		"unsupported resource type '%s'", typeName))
}
