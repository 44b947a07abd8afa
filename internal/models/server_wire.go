package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the CreateServer request
func (m *Server) CreateInput(desiredTags map[string]string) *transfer.CreateServerInput {
	return &transfer.CreateServerInput{
		Certificate:                   m.Certificate,
		Domain:                        types.Domain(aws.ToString(m.Domain)),
		EndpointType:                  types.EndpointType(aws.ToString(m.EndpointType)),
		EndpointDetails:               m.EndpointDetails.toWire(),
		IdentityProviderType:          types.IdentityProviderType(aws.ToString(m.IdentityProviderType)),
		IdentityProviderDetails:       m.IdentityProviderDetails.toWire(),
		LoggingRole:                   m.LoggingRole,
		PreAuthenticationLoginBanner:  m.PreAuthenticationLoginBanner,
		PostAuthenticationLoginBanner: m.PostAuthenticationLoginBanner,
		ProtocolDetails:               m.ProtocolDetails.toWire(),
		Protocols:                     toEnums[types.Protocol](m.Protocols),
		SecurityPolicyName:            m.SecurityPolicyName,
		StructuredLogDestinations:     m.StructuredLogDestinations,
		WorkflowDetails:               m.WorkflowDetails.CreateWire(),
		Tags:                          tags.ToWire(desiredTags),
	}
}

// DescribeInput builds the DescribeServer request
func (m *Server) DescribeInput() *transfer.DescribeServerInput {
	return &transfer.DescribeServerInput{ServerId: m.ServerID}
}

// UpdateInput builds the UpdateServer request. Domain and IdentityProviderType
// cannot change in place and are not sent.
func (m *Server) UpdateInput() *transfer.UpdateServerInput {
	return &transfer.UpdateServerInput{
		ServerId:                      m.ServerID,
		Certificate:                   m.Certificate,
		EndpointType:                  types.EndpointType(aws.ToString(m.EndpointType)),
		EndpointDetails:               m.EndpointDetails.toWire(),
		IdentityProviderDetails:       m.IdentityProviderDetails.toWire(),
		LoggingRole:                   m.LoggingRole,
		PreAuthenticationLoginBanner:  m.PreAuthenticationLoginBanner,
		PostAuthenticationLoginBanner: m.PostAuthenticationLoginBanner,
		ProtocolDetails:               m.ProtocolDetails.toWire(),
		Protocols:                     toEnums[types.Protocol](m.Protocols),
		SecurityPolicyName:            m.SecurityPolicyName,
		StructuredLogDestinations:     nonNil(m.StructuredLogDestinations),
		WorkflowDetails:               m.WorkflowDetails.UpdateWire(),
	}
}

// DeleteInput builds the DeleteServer request
func (m *Server) DeleteInput() *transfer.DeleteServerInput {
	return &transfer.DeleteServerInput{ServerId: m.ServerID}
}

// ServerListInput builds one page of the ListServers request
func ServerListInput(pageSize int32, nextToken *string) *transfer.ListServersInput {
	return &transfer.ListServersInput{
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// ServerFromDescribed translates a DescribeServer response
func ServerFromDescribed(d *types.DescribedServer) *Server {
	if d == nil {
		return nil
	}
	return &Server{
		ServerID:                      d.ServerId,
		Arn:                           d.Arn,
		Certificate:                   d.Certificate,
		Domain:                        stringOrNil(string(d.Domain)),
		EndpointType:                  stringOrNil(string(d.EndpointType)),
		EndpointDetails:               endpointDetailsFromWire(d.EndpointDetails),
		IdentityProviderType:          stringOrNil(string(d.IdentityProviderType)),
		IdentityProviderDetails:       identityProviderDetailsFromWire(d.IdentityProviderDetails),
		LoggingRole:                   d.LoggingRole,
		PreAuthenticationLoginBanner:  d.PreAuthenticationLoginBanner,
		PostAuthenticationLoginBanner: d.PostAuthenticationLoginBanner,
		ProtocolDetails:               protocolDetailsFromWire(d.ProtocolDetails),
		Protocols:                     fromEnums(d.Protocols),
		SecurityPolicyName:            d.SecurityPolicyName,
		StructuredLogDestinations:     d.StructuredLogDestinations,
		WorkflowDetails:               workflowDetailsFromWire(d.WorkflowDetails),
		Tags:                          TagsFromWire(d.Tags),
		State:                         stringOrNil(string(d.State)),
	}
}

// ServerFromListed translates a ListServers summary
func ServerFromListed(l types.ListedServer) *Server {
	return &Server{
		ServerID:             l.ServerId,
		Arn:                  l.Arn,
		Domain:               stringOrNil(string(l.Domain)),
		EndpointType:         stringOrNil(string(l.EndpointType)),
		IdentityProviderType: stringOrNil(string(l.IdentityProviderType)),
		LoggingRole:          l.LoggingRole,
		State:                stringOrNil(string(l.State)),
	}
}

func (e *EndpointDetails) toWire() *types.EndpointDetails {
	if e == nil {
		return nil
	}
	return &types.EndpointDetails{
		AddressAllocationIds: e.AddressAllocationIDs,
		SecurityGroupIds:     e.SecurityGroupIDs,
		SubnetIds:            e.SubnetIDs,
		VpcEndpointId:        e.VpcEndpointID,
		VpcId:                e.VpcID,
	}
}

func endpointDetailsFromWire(e *types.EndpointDetails) *EndpointDetails {
	if e == nil {
		return nil
	}
	return &EndpointDetails{
		AddressAllocationIDs: e.AddressAllocationIds,
		SecurityGroupIDs:     e.SecurityGroupIds,
		SubnetIDs:            e.SubnetIds,
		VpcEndpointID:        e.VpcEndpointId,
		VpcID:                e.VpcId,
	}
}

func (i *IdentityProviderDetails) toWire() *types.IdentityProviderDetails {
	if i == nil {
		return nil
	}
	return &types.IdentityProviderDetails{
		DirectoryId:               i.DirectoryID,
		Function:                  i.Function,
		InvocationRole:            i.InvocationRole,
		SftpAuthenticationMethods: types.SftpAuthenticationMethods(aws.ToString(i.SftpAuthenticationMethods)),
		Url:                       i.URL,
	}
}

func identityProviderDetailsFromWire(i *types.IdentityProviderDetails) *IdentityProviderDetails {
	if i == nil {
		return nil
	}
	return &IdentityProviderDetails{
		DirectoryID:               i.DirectoryId,
		Function:                  i.Function,
		InvocationRole:            i.InvocationRole,
		SftpAuthenticationMethods: stringOrNil(string(i.SftpAuthenticationMethods)),
		URL:                       i.Url,
	}
}

func (p *ProtocolDetails) toWire() *types.ProtocolDetails {
	if p == nil {
		return nil
	}
	return &types.ProtocolDetails{
		As2Transports:            toEnums[types.As2Transport](p.As2Transports),
		PassiveIp:                p.PassiveIP,
		SetStatOption:            types.SetStatOption(aws.ToString(p.SetStatOption)),
		TlsSessionResumptionMode: types.TlsSessionResumptionMode(aws.ToString(p.TLSSessionResumptionMode)),
	}
}

func protocolDetailsFromWire(p *types.ProtocolDetails) *ProtocolDetails {
	if p == nil {
		return nil
	}
	return &ProtocolDetails{
		As2Transports:            fromEnums(p.As2Transports),
		PassiveIP:                p.PassiveIp,
		SetStatOption:            stringOrNil(string(p.SetStatOption)),
		TLSSessionResumptionMode: stringOrNil(string(p.TlsSessionResumptionMode)),
	}
}

// CreateWire translates workflow details for CreateServer. Empty trigger lists
// are sent as null, and no details at all when both are empty.
func (w *WorkflowDetails) CreateWire() *types.WorkflowDetails {
	if w == nil || (len(w.OnUpload) == 0 && len(w.OnPartialUpload) == 0) {
		return nil
	}
	return &types.WorkflowDetails{
		OnUpload:        workflowDetailsToWire(w.OnUpload),
		OnPartialUpload: workflowDetailsToWire(w.OnPartialUpload),
	}
}

// UpdateWire translates workflow details for UpdateServer. Empty or absent
// trigger lists are sent as [] so the service detaches the workflows.
func (w *WorkflowDetails) UpdateWire() *types.WorkflowDetails {
	if w == nil {
		w = &WorkflowDetails{}
	}
	return &types.WorkflowDetails{
		OnUpload:        nonNil(workflowDetailsToWire(w.OnUpload)),
		OnPartialUpload: nonNil(workflowDetailsToWire(w.OnPartialUpload)),
	}
}

func workflowDetailsToWire(details []WorkflowDetail) []types.WorkflowDetail {
	if len(details) == 0 {
		return nil
	}
	out := make([]types.WorkflowDetail, len(details))
	for i, d := range details {
		out[i] = types.WorkflowDetail{
			WorkflowId:    d.WorkflowID,
			ExecutionRole: d.ExecutionRole,
		}
	}
	return out
}

func workflowDetailsFromWire(w *types.WorkflowDetails) *WorkflowDetails {
	if w == nil || (len(w.OnUpload) == 0 && len(w.OnPartialUpload) == 0) {
		return nil
	}
	out := &WorkflowDetails{}
	for _, d := range w.OnUpload {
		out.OnUpload = append(out.OnUpload, WorkflowDetail{WorkflowID: d.WorkflowId, ExecutionRole: d.ExecutionRole})
	}
	for _, d := range w.OnPartialUpload {
		out.OnPartialUpload = append(out.OnPartialUpload, WorkflowDetail{WorkflowID: d.WorkflowId, ExecutionRole: d.ExecutionRole})
	}
	return out
}
