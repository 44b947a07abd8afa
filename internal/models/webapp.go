package models

// WebApp represents the AWS::Transfer::WebApp resource model
type WebApp struct {
	WebAppID *string `json:"WebAppId,omitempty" mapstructure:"WebAppId" validate:"omitempty,webappid"`
	Arn      *string `json:"Arn,omitempty" mapstructure:"Arn"`

	AccessEndpoint          *string                        `json:"AccessEndpoint,omitempty" mapstructure:"AccessEndpoint" validate:"omitempty,max=1024"`
	IdentityProviderDetails *WebAppIdentityProviderDetails `json:"IdentityProviderDetails,omitempty" mapstructure:"IdentityProviderDetails" validate:"required"`
	WebAppUnits             *WebAppUnits                   `json:"WebAppUnits,omitempty" mapstructure:"WebAppUnits"`
	Tags                    []Tag                          `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`

	// Read-only
	WebAppEndpoint *string `json:"WebAppEndpoint,omitempty" mapstructure:"WebAppEndpoint"`
}

// WebAppIdentityProviderDetails is the IAM Identity Center configuration of a web app
type WebAppIdentityProviderDetails struct {
	InstanceArn *string `json:"InstanceArn,omitempty" mapstructure:"InstanceArn"`
	Role        *string `json:"Role,omitempty" mapstructure:"Role" validate:"omitempty,iamrolearn"`

	// Read-only
	ApplicationArn *string `json:"ApplicationArn,omitempty" mapstructure:"ApplicationArn"`
}

// WebAppUnits sizes the web app in provisioned units
type WebAppUnits struct {
	Provisioned *float64 `json:"Provisioned,omitempty" mapstructure:"Provisioned" validate:"omitempty,min=1"`
}
