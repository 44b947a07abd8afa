package models

// Server represents the AWS::Transfer::Server resource model
type Server struct {
	ServerID *string `json:"ServerId,omitempty" mapstructure:"ServerId" validate:"omitempty,serverid"`
	Arn      *string `json:"Arn,omitempty" mapstructure:"Arn"`

	Certificate                   *string                  `json:"Certificate,omitempty" mapstructure:"Certificate" validate:"omitempty,max=1600"`
	Domain                        *string                  `json:"Domain,omitempty" mapstructure:"Domain" validate:"omitempty,oneof=S3 EFS"`
	EndpointType                  *string                  `json:"EndpointType,omitempty" mapstructure:"EndpointType" validate:"omitempty,oneof=PUBLIC VPC VPC_ENDPOINT"`
	EndpointDetails               *EndpointDetails         `json:"EndpointDetails,omitempty" mapstructure:"EndpointDetails"`
	IdentityProviderType          *string                  `json:"IdentityProviderType,omitempty" mapstructure:"IdentityProviderType" validate:"omitempty,oneof=SERVICE_MANAGED API_GATEWAY AWS_DIRECTORY_SERVICE AWS_LAMBDA"`
	IdentityProviderDetails       *IdentityProviderDetails `json:"IdentityProviderDetails,omitempty" mapstructure:"IdentityProviderDetails"`
	LoggingRole                   *string                  `json:"LoggingRole,omitempty" mapstructure:"LoggingRole" validate:"omitempty,iamrolearn"`
	PreAuthenticationLoginBanner  *string                  `json:"PreAuthenticationLoginBanner,omitempty" mapstructure:"PreAuthenticationLoginBanner" validate:"omitempty,max=4096"`
	PostAuthenticationLoginBanner *string                  `json:"PostAuthenticationLoginBanner,omitempty" mapstructure:"PostAuthenticationLoginBanner" validate:"omitempty,max=4096"`
	ProtocolDetails               *ProtocolDetails         `json:"ProtocolDetails,omitempty" mapstructure:"ProtocolDetails"`
	Protocols                     []string                 `json:"Protocols,omitempty" mapstructure:"Protocols" validate:"omitempty,max=4,dive,oneof=SFTP FTP FTPS AS2"`
	SecurityPolicyName            *string                  `json:"SecurityPolicyName,omitempty" mapstructure:"SecurityPolicyName" validate:"omitempty,max=100"`
	StructuredLogDestinations     []string                 `json:"StructuredLogDestinations,omitempty" mapstructure:"StructuredLogDestinations" validate:"omitempty,max=1"`
	WorkflowDetails               *WorkflowDetails         `json:"WorkflowDetails,omitempty" mapstructure:"WorkflowDetails"`
	Tags                          []Tag                    `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`

	// Read-only
	State *string `json:"State,omitempty" mapstructure:"State"`
}

// EndpointDetails configures a VPC-hosted server endpoint
type EndpointDetails struct {
	AddressAllocationIDs []string `json:"AddressAllocationIds,omitempty" mapstructure:"AddressAllocationIds"`
	SecurityGroupIDs     []string `json:"SecurityGroupIds,omitempty" mapstructure:"SecurityGroupIds"`
	SubnetIDs            []string `json:"SubnetIds,omitempty" mapstructure:"SubnetIds"`
	VpcEndpointID        *string  `json:"VpcEndpointId,omitempty" mapstructure:"VpcEndpointId"`
	VpcID                *string  `json:"VpcId,omitempty" mapstructure:"VpcId"`
}

// IdentityProviderDetails configures a custom or directory identity provider
type IdentityProviderDetails struct {
	DirectoryID               *string `json:"DirectoryId,omitempty" mapstructure:"DirectoryId"`
	Function                  *string `json:"Function,omitempty" mapstructure:"Function"`
	InvocationRole            *string `json:"InvocationRole,omitempty" mapstructure:"InvocationRole" validate:"omitempty,iamrolearn"`
	SftpAuthenticationMethods *string `json:"SftpAuthenticationMethods,omitempty" mapstructure:"SftpAuthenticationMethods" validate:"omitempty,oneof=PASSWORD PUBLIC_KEY PUBLIC_KEY_OR_PASSWORD PUBLIC_KEY_AND_PASSWORD"`
	URL                       *string `json:"Url,omitempty" mapstructure:"Url" validate:"omitempty,url"`
}

// ProtocolDetails holds per-protocol server settings
type ProtocolDetails struct {
	As2Transports            []string `json:"As2Transports,omitempty" mapstructure:"As2Transports" validate:"omitempty,dive,oneof=HTTP"`
	PassiveIP                *string  `json:"PassiveIp,omitempty" mapstructure:"PassiveIp"`
	SetStatOption            *string  `json:"SetStatOption,omitempty" mapstructure:"SetStatOption" validate:"omitempty,oneof=DEFAULT ENABLE_NO_OP"`
	TLSSessionResumptionMode *string  `json:"TlsSessionResumptionMode,omitempty" mapstructure:"TlsSessionResumptionMode" validate:"omitempty,oneof=DISABLED ENABLED ENFORCED"`
}

// WorkflowDetails lists the workflows run on upload and on partial upload
type WorkflowDetails struct {
	OnUpload        []WorkflowDetail `json:"OnUpload,omitempty" mapstructure:"OnUpload" validate:"omitempty,max=1,dive"`
	OnPartialUpload []WorkflowDetail `json:"OnPartialUpload,omitempty" mapstructure:"OnPartialUpload" validate:"omitempty,max=1,dive"`
}

// WorkflowDetail binds a workflow to the role it executes as
type WorkflowDetail struct {
	WorkflowID    *string `json:"WorkflowId,omitempty" mapstructure:"WorkflowId" validate:"required"`
	ExecutionRole *string `json:"ExecutionRole,omitempty" mapstructure:"ExecutionRole" validate:"required,iamrolearn"`
}
