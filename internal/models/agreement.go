// Package models defines the CloudFormation resource models for Transfer Family
// resources and their translation to and from Transfer API shapes
package models

// Agreement represents the AWS::Transfer::Agreement resource model.
// Identified by ServerId + AgreementId.
type Agreement struct {
	// Identifiers (AgreementId assigned by the service)
	AgreementID *string `json:"AgreementId,omitempty" mapstructure:"AgreementId" validate:"omitempty,agreementid"`
	ServerID    *string `json:"ServerId,omitempty" mapstructure:"ServerId" validate:"required,serverid"`
	Arn         *string `json:"Arn,omitempty" mapstructure:"Arn"`

	LocalProfileID   *string `json:"LocalProfileId,omitempty" mapstructure:"LocalProfileId" validate:"required,profileid"`
	PartnerProfileID *string `json:"PartnerProfileId,omitempty" mapstructure:"PartnerProfileId" validate:"required,profileid"`
	BaseDirectory    *string `json:"BaseDirectory,omitempty" mapstructure:"BaseDirectory" validate:"required,max=1024"`
	AccessRole       *string `json:"AccessRole,omitempty" mapstructure:"AccessRole" validate:"required,iamrolearn"`
	Status           *string `json:"Status,omitempty" mapstructure:"Status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Description      *string `json:"Description,omitempty" mapstructure:"Description" validate:"omitempty,max=200"`
	Tags             []Tag   `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`
}
