package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the ImportCertificate request
func (m *Certificate) CreateInput(desiredTags map[string]string) (*transfer.ImportCertificateInput, error) {
	activeDate, err := parseTime("ActiveDate", m.ActiveDate)
	if err != nil {
		return nil, err
	}
	inactiveDate, err := parseTime("InactiveDate", m.InactiveDate)
	if err != nil {
		return nil, err
	}

	return &transfer.ImportCertificateInput{
		Certificate:      m.Certificate,
		CertificateChain: m.CertificateChain,
		PrivateKey:       m.PrivateKey,
		Usage:            types.CertificateUsageType(aws.ToString(m.Usage)),
		ActiveDate:       activeDate,
		InactiveDate:     inactiveDate,
		Description:      m.Description,
		Tags:             tags.ToWire(desiredTags),
	}, nil
}

// DescribeInput builds the DescribeCertificate request
func (m *Certificate) DescribeInput() *transfer.DescribeCertificateInput {
	return &transfer.DescribeCertificateInput{CertificateId: m.CertificateID}
}

// UpdateInput builds the UpdateCertificate request. Only the dates and the
// description are mutable in place.
func (m *Certificate) UpdateInput() (*transfer.UpdateCertificateInput, error) {
	activeDate, err := parseTime("ActiveDate", m.ActiveDate)
	if err != nil {
		return nil, err
	}
	inactiveDate, err := parseTime("InactiveDate", m.InactiveDate)
	if err != nil {
		return nil, err
	}

	return &transfer.UpdateCertificateInput{
		CertificateId: m.CertificateID,
		ActiveDate:    activeDate,
		InactiveDate:  inactiveDate,
		Description:   m.Description,
	}, nil
}

// DeleteInput builds the DeleteCertificate request
func (m *Certificate) DeleteInput() *transfer.DeleteCertificateInput {
	return &transfer.DeleteCertificateInput{CertificateId: m.CertificateID}
}

// CertificateListInput builds one page of the ListCertificates request
func CertificateListInput(pageSize int32, nextToken *string) *transfer.ListCertificatesInput {
	return &transfer.ListCertificatesInput{
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// CertificateFromDescribed translates a DescribeCertificate response
func CertificateFromDescribed(d *types.DescribedCertificate) *Certificate {
	if d == nil {
		return nil
	}
	return &Certificate{
		CertificateID:    d.CertificateId,
		Arn:              d.Arn,
		Certificate:      d.Certificate,
		CertificateChain: d.CertificateChain,
		Usage:            stringOrNil(string(d.Usage)),
		ActiveDate:       formatTime(d.ActiveDate),
		InactiveDate:     formatTime(d.InactiveDate),
		Description:      d.Description,
		Tags:             TagsFromWire(d.Tags),
		Status:           stringOrNil(string(d.Status)),
		Type:             stringOrNil(string(d.Type)),
		Serial:           d.Serial,
		NotBeforeDate:    formatTime(d.NotBeforeDate),
		NotAfterDate:     formatTime(d.NotAfterDate),
	}
}

// CertificateFromListed translates a ListCertificates summary
func CertificateFromListed(l types.ListedCertificate) *Certificate {
	return &Certificate{
		CertificateID: l.CertificateId,
		Arn:           l.Arn,
		Usage:         stringOrNil(string(l.Usage)),
		ActiveDate:    formatTime(l.ActiveDate),
		InactiveDate:  formatTime(l.InactiveDate),
		Description:   l.Description,
		Status:        stringOrNil(string(l.Status)),
		Type:          stringOrNil(string(l.Type)),
	}
}
