// Package arn builds and parses Transfer Family resource ARNs.
//
// Every ARN has the shape
//
//	arn:<partition>:transfer:<region>:<account>:<type>/<relative id>
//
// where the relative id is one or two parts joined with "/", fixed per resource type.
package arn

import (
	"fmt"
	"strings"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Service is the ARN service segment shared by all Transfer resources
const Service = "transfer"

// ResourceType is the resource type token at the start of the ARN resource segment
type ResourceType string

const (
	ResourceTypeAgreement   ResourceType = "agreement"
	ResourceTypeCertificate ResourceType = "certificate"
	ResourceTypeProfile     ResourceType = "profile"
	ResourceTypeServer      ResourceType = "server"
	ResourceTypeUser        ResourceType = "user"
	ResourceTypeWebApp      ResourceType = "webapp"
)

// arity is the number of relative id parts per resource type
var arity = map[ResourceType]int{
	ResourceTypeAgreement:   2, // serverId/agreementId
	ResourceTypeCertificate: 1,
	ResourceTypeProfile:     1,
	ResourceTypeServer:      1,
	ResourceTypeUser:        2, // serverId/userName
	ResourceTypeWebApp:      1,
}

// Arity returns the number of relative id parts for the resource type, or 0 if unknown
func (rt ResourceType) Arity() int {
	return arity[rt]
}

// InvalidARNError reports an ARN that does not match the expected Transfer resource shape
type InvalidARNError struct {
	ARN    string
	Reason string
}

func (e *InvalidARNError) Error() string {
	return fmt.Sprintf("invalid ARN '%s': %s", e.ARN, e.Reason)
}

// ARN is the structured form of a Transfer resource ARN
type ARN struct {
	Partition    string
	Region       string
	AccountID    string
	ResourceType ResourceType
	IDParts      []string
}

// String assembles the ARN string
func (a ARN) String() string {
	return awsarn.ARN{
		Partition: a.Partition,
		Service:   Service,
		Region:    a.Region,
		AccountID: a.AccountID,
		Resource:  string(a.ResourceType) + "/" + BuildRelativeID(a.IDParts...),
	}.String()
}

// Build assembles arn:<partition>:transfer:<region>:<account>:<type>/<idParts...>
func Build(partition, region, accountID string, resourceType ResourceType, idParts ...string) string {
	return ARN{
		Partition:    partition,
		Region:       region,
		AccountID:    accountID,
		ResourceType: resourceType,
		IDParts:      idParts,
	}.String()
}

// Parse parses s and checks that it names a resource of the expected type
// with the expected number of relative id parts
func Parse(s string, expected ResourceType) (ARN, error) {
	want := expected.Arity()
	if want == 0 {
		return ARN{}, &InvalidARNError{ARN: s, Reason: fmt.Sprintf("unknown resource type '%s'", expected)}
	}

	parsed, err := awsarn.Parse(s)
	if err != nil {
		return ARN{}, &InvalidARNError{ARN: s, Reason: err.Error()}
	}
	if parsed.Service != Service {
		return ARN{}, &InvalidARNError{ARN: s, Reason: fmt.Sprintf("expected service '%s', got '%s'", Service, parsed.Service)}
	}

	token, relativeID, found := strings.Cut(parsed.Resource, "/")
	if !found {
		return ARN{}, &InvalidARNError{ARN: s, Reason: "resource segment has no relative id"}
	}
	if token != string(expected) {
		return ARN{}, &InvalidARNError{ARN: s, Reason: fmt.Sprintf("expected resource type '%s', got '%s'", expected, token)}
	}

	parts, err := ParseRelativeID(relativeID, want)
	if err != nil {
		return ARN{}, &InvalidARNError{ARN: s, Reason: err.Error()}
	}

	return ARN{
		Partition:    parsed.Partition,
		Region:       parsed.Region,
		AccountID:    parsed.AccountID,
		ResourceType: expected,
		IDParts:      parts,
	}, nil
}

// PartitionForRegion derives the partition for a region name
func PartitionForRegion(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	case strings.HasPrefix(region, "us-iso-"):
		return "aws-iso"
	case strings.HasPrefix(region, "us-isob-"):
		return "aws-iso-b"
	default:
		return "aws"
	}
}

// AgreementARN identifies an agreement: agreement/<serverId>/<agreementId>
type AgreementARN struct{ ARN }

func (a AgreementARN) ServerID() string    { return a.IDParts[0] }
func (a AgreementARN) AgreementID() string { return a.IDParts[1] }

// ParseAgreementARN parses an agreement ARN
func ParseAgreementARN(s string) (AgreementARN, error) {
	a, err := Parse(s, ResourceTypeAgreement)
	return AgreementARN{a}, err
}

// CertificateARN identifies a certificate: certificate/<certificateId>
type CertificateARN struct{ ARN }

func (a CertificateARN) CertificateID() string { return a.IDParts[0] }

// ParseCertificateARN parses a certificate ARN
func ParseCertificateARN(s string) (CertificateARN, error) {
	a, err := Parse(s, ResourceTypeCertificate)
	return CertificateARN{a}, err
}

// ProfileARN identifies a profile: profile/<profileId>
type ProfileARN struct{ ARN }

func (a ProfileARN) ProfileID() string { return a.IDParts[0] }

// ParseProfileARN parses a profile ARN
func ParseProfileARN(s string) (ProfileARN, error) {
	a, err := Parse(s, ResourceTypeProfile)
	return ProfileARN{a}, err
}

// ServerARN identifies a server: server/<serverId>
type ServerARN struct{ ARN }

func (a ServerARN) ServerID() string { return a.IDParts[0] }

// ParseServerARN parses a server ARN
func ParseServerARN(s string) (ServerARN, error) {
	a, err := Parse(s, ResourceTypeServer)
	return ServerARN{a}, err
}

// UserARN identifies a user: user/<serverId>/<userName>
type UserARN struct{ ARN }

func (a UserARN) ServerID() string { return a.IDParts[0] }
func (a UserARN) UserName() string { return a.IDParts[1] }

// ParseUserARN parses a user ARN
func ParseUserARN(s string) (UserARN, error) {
	a, err := Parse(s, ResourceTypeUser)
	return UserARN{a}, err
}

// WebAppARN identifies a web app: webapp/<webAppId>
type WebAppARN struct{ ARN }

func (a WebAppARN) WebAppID() string { return a.IDParts[0] }

// ParseWebAppARN parses a web app ARN
func ParseWebAppARN(s string) (WebAppARN, error) {
	a, err := Parse(s, ResourceTypeWebApp)
	return WebAppARN{a}, err
}
