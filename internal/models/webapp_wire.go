package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the CreateWebApp request
func (m *WebApp) CreateInput(desiredTags map[string]string) (*transfer.CreateWebAppInput, error) {
	units, err := m.WebAppUnits.toWire()
	if err != nil {
		return nil, err
	}

	input := &transfer.CreateWebAppInput{
		AccessEndpoint: m.AccessEndpoint,
		WebAppUnits:    units,
		Tags:           tags.ToWire(desiredTags),
	}
	if m.IdentityProviderDetails != nil {
		input.IdentityProviderDetails = &types.WebAppIdentityProviderDetailsMemberIdentityCenterConfig{
			Value: types.IdentityCenterConfig{
				InstanceArn: m.IdentityProviderDetails.InstanceArn,
				Role:        m.IdentityProviderDetails.Role,
			},
		}
	}
	return input, nil
}

// DescribeInput builds the DescribeWebApp request
func (m *WebApp) DescribeInput() *transfer.DescribeWebAppInput {
	return &transfer.DescribeWebAppInput{WebAppId: m.WebAppID}
}

// UpdateInput builds the UpdateWebApp request. The Identity Center instance is
// fixed at creation; only the role can change.
func (m *WebApp) UpdateInput() (*transfer.UpdateWebAppInput, error) {
	units, err := m.WebAppUnits.toWire()
	if err != nil {
		return nil, err
	}

	input := &transfer.UpdateWebAppInput{
		WebAppId:       m.WebAppID,
		AccessEndpoint: m.AccessEndpoint,
		WebAppUnits:    units,
	}
	if m.IdentityProviderDetails != nil {
		input.IdentityProviderDetails = &types.UpdateWebAppIdentityProviderDetailsMemberIdentityCenterConfig{
			Value: types.UpdateWebAppIdentityCenterConfig{
				Role: m.IdentityProviderDetails.Role,
			},
		}
	}
	return input, nil
}

// DeleteInput builds the DeleteWebApp request
func (m *WebApp) DeleteInput() *transfer.DeleteWebAppInput {
	return &transfer.DeleteWebAppInput{WebAppId: m.WebAppID}
}

// WebAppListInput builds one page of the ListWebApps request
func WebAppListInput(pageSize int32, nextToken *string) *transfer.ListWebAppsInput {
	return &transfer.ListWebAppsInput{
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// WebAppFromDescribed translates a DescribeWebApp response
func WebAppFromDescribed(d *types.DescribedWebApp) *WebApp {
	if d == nil {
		return nil
	}

	m := &WebApp{
		WebAppID:       d.WebAppId,
		Arn:            d.Arn,
		AccessEndpoint: d.AccessEndpoint,
		WebAppEndpoint: d.WebAppEndpoint,
		Tags:           TagsFromWire(d.Tags),
	}

	if idc, ok := d.DescribedIdentityProviderDetails.(*types.DescribedWebAppIdentityProviderDetailsMemberIdentityCenterConfig); ok {
		m.IdentityProviderDetails = &WebAppIdentityProviderDetails{
			InstanceArn:    idc.Value.InstanceArn,
			Role:           idc.Value.Role,
			ApplicationArn: idc.Value.ApplicationArn,
		}
	}
	if provisioned, ok := d.WebAppUnits.(*types.WebAppUnitsMemberProvisioned); ok {
		m.WebAppUnits = &WebAppUnits{Provisioned: Float64Ptr(float64(provisioned.Value))}
	}

	return m
}

// WebAppFromListed translates a ListWebApps summary
func WebAppFromListed(l types.ListedWebApp) *WebApp {
	return &WebApp{
		WebAppID:       l.WebAppId,
		Arn:            l.Arn,
		AccessEndpoint: l.AccessEndpoint,
		WebAppEndpoint: l.WebAppEndpoint,
	}
}

func (u *WebAppUnits) toWire() (types.WebAppUnits, error) {
	if u == nil || u.Provisioned == nil {
		return nil, nil
	}
	provisioned, err := ToInt32("WebAppUnits.Provisioned", *u.Provisioned)
	if err != nil {
		return nil, err
	}
	return &types.WebAppUnitsMemberProvisioned{Value: provisioned}, nil
}
