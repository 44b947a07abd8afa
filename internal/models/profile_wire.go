package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the CreateProfile request
func (m *Profile) CreateInput(desiredTags map[string]string) *transfer.CreateProfileInput {
	return &transfer.CreateProfileInput{
		As2Id:          m.As2ID,
		ProfileType:    types.ProfileType(aws.ToString(m.ProfileType)),
		CertificateIds: m.CertificateIDs,
		Tags:           tags.ToWire(desiredTags),
	}
}

// DescribeInput builds the DescribeProfile request
func (m *Profile) DescribeInput() *transfer.DescribeProfileInput {
	return &transfer.DescribeProfileInput{ProfileId: m.ProfileID}
}

// UpdateInput builds the UpdateProfile request. An empty certificate list is
// sent as [] so removed certificates are detached.
func (m *Profile) UpdateInput() *transfer.UpdateProfileInput {
	return &transfer.UpdateProfileInput{
		ProfileId:      m.ProfileID,
		CertificateIds: nonNil(m.CertificateIDs),
	}
}

// DeleteInput builds the DeleteProfile request
func (m *Profile) DeleteInput() *transfer.DeleteProfileInput {
	return &transfer.DeleteProfileInput{ProfileId: m.ProfileID}
}

// ProfileListInput builds one page of the ListProfiles request
func ProfileListInput(pageSize int32, nextToken *string) *transfer.ListProfilesInput {
	return &transfer.ListProfilesInput{
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// ProfileFromDescribed translates a DescribeProfile response
func ProfileFromDescribed(d *types.DescribedProfile) *Profile {
	if d == nil {
		return nil
	}
	return &Profile{
		ProfileID:      d.ProfileId,
		Arn:            d.Arn,
		As2ID:          d.As2Id,
		ProfileType:    stringOrNil(string(d.ProfileType)),
		CertificateIDs: d.CertificateIds,
		Tags:           TagsFromWire(d.Tags),
	}
}

// ProfileFromListed translates a ListProfiles summary
func ProfileFromListed(l types.ListedProfile) *Profile {
	return &Profile{
		ProfileID:   l.ProfileId,
		Arn:         l.Arn,
		As2ID:       l.As2Id,
		ProfileType: stringOrNil(string(l.ProfileType)),
	}
}
