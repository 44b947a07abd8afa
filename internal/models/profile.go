package models

// Profile represents the AWS::Transfer::Profile resource model
type Profile struct {
	ProfileID *string `json:"ProfileId,omitempty" mapstructure:"ProfileId" validate:"omitempty,profileid"`
	Arn       *string `json:"Arn,omitempty" mapstructure:"Arn"`

	As2ID          *string  `json:"As2Id,omitempty" mapstructure:"As2Id" validate:"required,min=1,max=128"`
	ProfileType    *string  `json:"ProfileType,omitempty" mapstructure:"ProfileType" validate:"required,oneof=LOCAL PARTNER"`
	CertificateIDs []string `json:"CertificateIds,omitempty" mapstructure:"CertificateIds" validate:"omitempty,dive,certificateid"`
	Tags           []Tag    `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`
}
