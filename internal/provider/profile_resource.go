package provider

import (
	"context"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// ProfileTypeName is the CloudFormation type of an AS2 profile
const ProfileTypeName = "AWS::Transfer::Profile"

// NewProfileResource returns the handlers for AWS::Transfer::Profile
func NewProfileResource() *Resource[models.Profile] {
	return NewResource(Descriptor[models.Profile]{
		TypeName:             ProfileTypeName,
		ResourceType:         arn.ResourceTypeProfile,
		IdentifierProperties: []string{"ProfileId"},
		Identifier: func(m *models.Profile) []*string {
			return []*string{m.ProfileID}
		},
		SetArn: func(m *models.Profile, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.Profile) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseProfileARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.ProfileID()}, nil
		},
		Create: createProfile,
		Read:   readProfile,
		Update: updateProfile,
		Delete: deleteProfile,
		List:   listProfiles,
	})
}

func createProfile(ctx context.Context, api client.TransferAPI, m *models.Profile, desiredTags map[string]string) error {
	out, err := api.CreateProfile(ctx, m.CreateInput(desiredTags))
	if err != nil {
		return err
	}
	m.ProfileID = out.ProfileId
	return nil
}

func readProfile(ctx context.Context, api client.TransferAPI, m *models.Profile) (*models.Profile, error) {
	out, err := api.DescribeProfile(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	return models.ProfileFromDescribed(out.Profile), nil
}

func updateProfile(ctx context.Context, api client.TransferAPI, m *models.Profile) error {
	_, err := api.UpdateProfile(ctx, m.UpdateInput())
	return err
}

func deleteProfile(ctx context.Context, api client.TransferAPI, m *models.Profile) error {
	_, err := api.DeleteProfile(ctx, m.DeleteInput())
	return err
}

func listProfiles(ctx context.Context, api client.TransferAPI, _ *models.Profile, nextToken *string) ([]*models.Profile, *string, error) {
	out, err := api.ListProfiles(ctx, models.ProfileListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	page := make([]*models.Profile, 0, len(out.Profiles))
	for _, l := range out.Profiles {
		page = append(page, models.ProfileFromListed(l))
	}
	return page, out.NextToken, nil
}
