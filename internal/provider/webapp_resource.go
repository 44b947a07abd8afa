package provider

import (
	"context"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// WebAppTypeName is the CloudFormation type of a Transfer web app
const WebAppTypeName = "AWS::Transfer::WebApp"

// NewWebAppResource returns the handlers for AWS::Transfer::WebApp
func NewWebAppResource() *Resource[models.WebApp] {
	return NewResource(Descriptor[models.WebApp]{
		TypeName:             WebAppTypeName,
		ResourceType:         arn.ResourceTypeWebApp,
		IdentifierProperties: []string{"WebAppId"},
		Identifier: func(m *models.WebApp) []*string {
			return []*string{m.WebAppID}
		},
		SetArn: func(m *models.WebApp, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.WebApp) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseWebAppARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.WebAppID()}, nil
		},
		Create: createWebApp,
		Read:   readWebApp,
		Update: updateWebApp,
		Delete: deleteWebApp,
		List:   listWebApps,
	})
}

func createWebApp(ctx context.Context, api client.TransferAPI, m *models.WebApp, desiredTags map[string]string) error {
	input, err := m.CreateInput(desiredTags)
	if err != nil {
		return err
	}
	out, err := api.CreateWebApp(ctx, input)
	if err != nil {
		return err
	}
	m.WebAppID = out.WebAppId
	return nil
}

func readWebApp(ctx context.Context, api client.TransferAPI, m *models.WebApp) (*models.WebApp, error) {
	out, err := api.DescribeWebApp(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	return models.WebAppFromDescribed(out.WebApp), nil
}

func updateWebApp(ctx context.Context, api client.TransferAPI, m *models.WebApp) error {
	input, err := m.UpdateInput()
	if err != nil {
		return err
	}
	_, err = api.UpdateWebApp(ctx, input)
	return err
}

func deleteWebApp(ctx context.Context, api client.TransferAPI, m *models.WebApp) error {
	_, err := api.DeleteWebApp(ctx, m.DeleteInput())
	return err
}

func listWebApps(ctx context.Context, api client.TransferAPI, _ *models.WebApp, nextToken *string) ([]*models.WebApp, *string, error) {
	out, err := api.ListWebApps(ctx, models.WebAppListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	page := make([]*models.WebApp, 0, len(out.WebApps))
	for _, l := range out.WebApps {
		page = append(page, models.WebAppFromListed(l))
	}
	return page, out.NextToken, nil
}
