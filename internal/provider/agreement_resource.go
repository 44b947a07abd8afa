package provider

import (
	"context"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// AgreementTypeName is the CloudFormation type of an AS2 agreement
const AgreementTypeName = "AWS::Transfer::Agreement"

// NewAgreementResource returns the handlers for AWS::Transfer::Agreement
func NewAgreementResource() *Resource[models.Agreement] {
	return NewResource(Descriptor[models.Agreement]{
		TypeName:             AgreementTypeName,
		ResourceType:         arn.ResourceTypeAgreement,
		IdentifierProperties: []string{"ServerId", "AgreementId"},
		Identifier: func(m *models.Agreement) []*string {
			return []*string{m.ServerID, m.AgreementID}
		},
		SetArn: func(m *models.Agreement, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.Agreement) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseAgreementARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.ServerID(), a.AgreementID()}, nil
		},
		Create: createAgreement,
		Read:   readAgreement,
		Update: updateAgreement,
		Delete: deleteAgreement,
		List:   listAgreements,
	})
}

func createAgreement(ctx context.Context, api client.TransferAPI, m *models.Agreement, desiredTags map[string]string) error {
	out, err := api.CreateAgreement(ctx, m.CreateInput(desiredTags))
	if err != nil {
		return err
	}
	m.AgreementID = out.AgreementId
	return nil
}

func readAgreement(ctx context.Context, api client.TransferAPI, m *models.Agreement) (*models.Agreement, error) {
	out, err := api.DescribeAgreement(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	return models.AgreementFromDescribed(out.Agreement), nil
}

func updateAgreement(ctx context.Context, api client.TransferAPI, m *models.Agreement) error {
	_, err := api.UpdateAgreement(ctx, m.UpdateInput())
	return err
}

func deleteAgreement(ctx context.Context, api client.TransferAPI, m *models.Agreement) error {
	_, err := api.DeleteAgreement(ctx, m.DeleteInput())
	return err
}

func listAgreements(ctx context.Context, api client.TransferAPI, m *models.Agreement, nextToken *string) ([]*models.Agreement, *string, error) {
	if m.ServerID == nil || *m.ServerID == "" {
		return nil, nil, client.NewHandlerError(client.ErrorKindInvalidRequest, client.OperationList,
			"ServerId is required to list %s resources", AgreementTypeName)
	}

	out, err := api.ListAgreements(ctx, m.ListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	page := make([]*models.Agreement, 0, len(out.Agreements))
	for _, l := range out.Agreements {
		page = append(page, models.AgreementFromListed(l))
	}
	return page, out.NextToken, nil
}
