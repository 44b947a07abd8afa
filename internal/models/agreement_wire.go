package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the CreateAgreement request. Empty tags are sent as nil.
func (m *Agreement) CreateInput(desiredTags map[string]string) *transfer.CreateAgreementInput {
	return &transfer.CreateAgreementInput{
		ServerId:         m.ServerID,
		LocalProfileId:   m.LocalProfileID,
		PartnerProfileId: m.PartnerProfileID,
		BaseDirectory:    m.BaseDirectory,
		AccessRole:       m.AccessRole,
		Status:           types.AgreementStatusType(aws.ToString(m.Status)),
		Description:      m.Description,
		Tags:             tags.ToWire(desiredTags),
	}
}

// DescribeInput builds the DescribeAgreement request
func (m *Agreement) DescribeInput() *transfer.DescribeAgreementInput {
	return &transfer.DescribeAgreementInput{
		AgreementId: m.AgreementID,
		ServerId:    m.ServerID,
	}
}

// UpdateInput builds the UpdateAgreement request
func (m *Agreement) UpdateInput() *transfer.UpdateAgreementInput {
	return &transfer.UpdateAgreementInput{
		AgreementId:      m.AgreementID,
		ServerId:         m.ServerID,
		LocalProfileId:   m.LocalProfileID,
		PartnerProfileId: m.PartnerProfileID,
		BaseDirectory:    m.BaseDirectory,
		AccessRole:       m.AccessRole,
		Status:           types.AgreementStatusType(aws.ToString(m.Status)),
		Description:      m.Description,
	}
}

// DeleteInput builds the DeleteAgreement request
func (m *Agreement) DeleteInput() *transfer.DeleteAgreementInput {
	return &transfer.DeleteAgreementInput{
		AgreementId: m.AgreementID,
		ServerId:    m.ServerID,
	}
}

// ListInput builds one page of the ListAgreements request for the model's server
func (m *Agreement) ListInput(pageSize int32, nextToken *string) *transfer.ListAgreementsInput {
	return &transfer.ListAgreementsInput{
		ServerId:   m.ServerID,
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// AgreementFromDescribed translates a DescribeAgreement response
func AgreementFromDescribed(d *types.DescribedAgreement) *Agreement {
	if d == nil {
		return nil
	}
	return &Agreement{
		AgreementID:      d.AgreementId,
		ServerID:         d.ServerId,
		Arn:              d.Arn,
		LocalProfileID:   d.LocalProfileId,
		PartnerProfileID: d.PartnerProfileId,
		BaseDirectory:    d.BaseDirectory,
		AccessRole:       d.AccessRole,
		Status:           stringOrNil(string(d.Status)),
		Description:      d.Description,
		Tags:             TagsFromWire(d.Tags),
	}
}

// AgreementFromListed translates a ListAgreements summary; only list-visible fields are set
func AgreementFromListed(l types.ListedAgreement) *Agreement {
	return &Agreement{
		AgreementID:      l.AgreementId,
		ServerID:         l.ServerId,
		Arn:              l.Arn,
		LocalProfileID:   l.LocalProfileId,
		PartnerProfileID: l.PartnerProfileId,
		Status:           stringOrNil(string(l.Status)),
		Description:      l.Description,
	}
}
