package provider

import (
	"context"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// ServerTypeName is the CloudFormation type of a file transfer server
const ServerTypeName = "AWS::Transfer::Server"

// NewServerResource returns the handlers for AWS::Transfer::Server
func NewServerResource() *Resource[models.Server] {
	return NewResource(Descriptor[models.Server]{
		TypeName:             ServerTypeName,
		ResourceType:         arn.ResourceTypeServer,
		IdentifierProperties: []string{"ServerId"},
		Identifier: func(m *models.Server) []*string {
			return []*string{m.ServerID}
		},
		SetArn: func(m *models.Server, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.Server) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseServerARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.ServerID()}, nil
		},
		Create: createServer,
		Read:   readServer,
		Update: updateServer,
		Delete: deleteServer,
		List:   listServers,
	})
}

func createServer(ctx context.Context, api client.TransferAPI, m *models.Server, desiredTags map[string]string) error {
	out, err := api.CreateServer(ctx, m.CreateInput(desiredTags))
	if err != nil {
		return err
	}
	m.ServerID = out.ServerId
	return nil
}

func readServer(ctx context.Context, api client.TransferAPI, m *models.Server) (*models.Server, error) {
	out, err := api.DescribeServer(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	return models.ServerFromDescribed(out.Server), nil
}

func updateServer(ctx context.Context, api client.TransferAPI, m *models.Server) error {
	_, err := api.UpdateServer(ctx, m.UpdateInput())
	return err
}

func deleteServer(ctx context.Context, api client.TransferAPI, m *models.Server) error {
	_, err := api.DeleteServer(ctx, m.DeleteInput())
	return err
}

func listServers(ctx context.Context, api client.TransferAPI, _ *models.Server, nextToken *string) ([]*models.Server, *string, error) {
	out, err := api.ListServers(ctx, models.ServerListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	page := make([]*models.Server, 0, len(out.Servers))
	for _, l := range out.Servers {
		page = append(page, models.ServerFromListed(l))
	}
	return page, out.NextToken, nil
}
