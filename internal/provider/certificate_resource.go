package provider

import (
	"context"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// CertificateTypeName is the CloudFormation type of an imported certificate
const CertificateTypeName = "AWS::Transfer::Certificate"

// NewCertificateResource returns the handlers for AWS::Transfer::Certificate
func NewCertificateResource() *Resource[models.Certificate] {
	return NewResource(Descriptor[models.Certificate]{
		TypeName:             CertificateTypeName,
		ResourceType:         arn.ResourceTypeCertificate,
		IdentifierProperties: []string{"CertificateId"},
		Identifier: func(m *models.Certificate) []*string {
			return []*string{m.CertificateID}
		},
		SetArn: func(m *models.Certificate, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.Certificate) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseCertificateARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.CertificateID()}, nil
		},
		Create: createCertificate,
		Read:   readCertificate,
		Update: updateCertificate,
		Delete: deleteCertificate,
		List:   listCertificates,
	})
}

func createCertificate(ctx context.Context, api client.TransferAPI, m *models.Certificate, desiredTags map[string]string) error {
	input, err := m.CreateInput(desiredTags)
	if err != nil {
		return err
	}
	out, err := api.ImportCertificate(ctx, input)
	if err != nil {
		return err
	}
	m.CertificateID = out.CertificateId
	// The private key is write-only and is not echoed back
	m.PrivateKey = nil
	return nil
}

func readCertificate(ctx context.Context, api client.TransferAPI, m *models.Certificate) (*models.Certificate, error) {
	out, err := api.DescribeCertificate(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	return models.CertificateFromDescribed(out.Certificate), nil
}

func updateCertificate(ctx context.Context, api client.TransferAPI, m *models.Certificate) error {
	input, err := m.UpdateInput()
	if err != nil {
		return err
	}
	if _, err := api.UpdateCertificate(ctx, input); err != nil {
		return err
	}
	m.PrivateKey = nil
	return nil
}

func deleteCertificate(ctx context.Context, api client.TransferAPI, m *models.Certificate) error {
	_, err := api.DeleteCertificate(ctx, m.DeleteInput())
	return err
}

func listCertificates(ctx context.Context, api client.TransferAPI, _ *models.Certificate, nextToken *string) ([]*models.Certificate, *string, error) {
	out, err := api.ListCertificates(ctx, models.CertificateListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	page := make([]*models.Certificate, 0, len(out.Certificates))
	for _, l := range out.Certificates {
		page = append(page, models.CertificateFromListed(l))
	}
	return page, out.NextToken, nil
}
