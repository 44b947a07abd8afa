package models

// Certificate represents the AWS::Transfer::Certificate resource model.
// PrivateKey is write-only and never returned by Read.
type Certificate struct {
	CertificateID *string `json:"CertificateId,omitempty" mapstructure:"CertificateId" validate:"omitempty,certificateid"`
	Arn           *string `json:"Arn,omitempty" mapstructure:"Arn"`

	Certificate      *string `json:"Certificate,omitempty" mapstructure:"Certificate" validate:"required,max=16384"`
	CertificateChain *string `json:"CertificateChain,omitempty" mapstructure:"CertificateChain" validate:"omitempty,max=2097152"`
	PrivateKey       *string `json:"PrivateKey,omitempty" mapstructure:"PrivateKey" validate:"omitempty,max=16384"`
	Usage            *string `json:"Usage,omitempty" mapstructure:"Usage" validate:"required,oneof=SIGNING ENCRYPTION TLS"`
	ActiveDate       *string `json:"ActiveDate,omitempty" mapstructure:"ActiveDate"`
	InactiveDate     *string `json:"InactiveDate,omitempty" mapstructure:"InactiveDate"`
	Description      *string `json:"Description,omitempty" mapstructure:"Description" validate:"omitempty,max=200"`
	Tags             []Tag   `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`

	// Read-only
	Status        *string `json:"Status,omitempty" mapstructure:"Status"`
	Type          *string `json:"Type,omitempty" mapstructure:"Type"`
	Serial        *string `json:"Serial,omitempty" mapstructure:"Serial"`
	NotBeforeDate *string `json:"NotBeforeDate,omitempty" mapstructure:"NotBeforeDate"`
	NotAfterDate  *string `json:"NotAfterDate,omitempty" mapstructure:"NotAfterDate"`
}
