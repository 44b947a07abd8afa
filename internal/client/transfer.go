package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// TransferAPI is the subset of the Transfer control-plane API used by the handlers
type TransferAPI interface {
	CreateAgreement(ctx context.Context, params *transfer.CreateAgreementInput, optFns ...func(*transfer.Options)) (*transfer.CreateAgreementOutput, error)
	DescribeAgreement(ctx context.Context, params *transfer.DescribeAgreementInput, optFns ...func(*transfer.Options)) (*transfer.DescribeAgreementOutput, error)
	UpdateAgreement(ctx context.Context, params *transfer.UpdateAgreementInput, optFns ...func(*transfer.Options)) (*transfer.UpdateAgreementOutput, error)
	DeleteAgreement(ctx context.Context, params *transfer.DeleteAgreementInput, optFns ...func(*transfer.Options)) (*transfer.DeleteAgreementOutput, error)
	ListAgreements(ctx context.Context, params *transfer.ListAgreementsInput, optFns ...func(*transfer.Options)) (*transfer.ListAgreementsOutput, error)

	ImportCertificate(ctx context.Context, params *transfer.ImportCertificateInput, optFns ...func(*transfer.Options)) (*transfer.ImportCertificateOutput, error)
	DescribeCertificate(ctx context.Context, params *transfer.DescribeCertificateInput, optFns ...func(*transfer.Options)) (*transfer.DescribeCertificateOutput, error)
	UpdateCertificate(ctx context.Context, params *transfer.UpdateCertificateInput, optFns ...func(*transfer.Options)) (*transfer.UpdateCertificateOutput, error)
	DeleteCertificate(ctx context.Context, params *transfer.DeleteCertificateInput, optFns ...func(*transfer.Options)) (*transfer.DeleteCertificateOutput, error)
	ListCertificates(ctx context.Context, params *transfer.ListCertificatesInput, optFns ...func(*transfer.Options)) (*transfer.ListCertificatesOutput, error)

	CreateProfile(ctx context.Context, params *transfer.CreateProfileInput, optFns ...func(*transfer.Options)) (*transfer.CreateProfileOutput, error)
	DescribeProfile(ctx context.Context, params *transfer.DescribeProfileInput, optFns ...func(*transfer.Options)) (*transfer.DescribeProfileOutput, error)
	UpdateProfile(ctx context.Context, params *transfer.UpdateProfileInput, optFns ...func(*transfer.Options)) (*transfer.UpdateProfileOutput, error)
	DeleteProfile(ctx context.Context, params *transfer.DeleteProfileInput, optFns ...func(*transfer.Options)) (*transfer.DeleteProfileOutput, error)
	ListProfiles(ctx context.Context, params *transfer.ListProfilesInput, optFns ...func(*transfer.Options)) (*transfer.ListProfilesOutput, error)

	CreateServer(ctx context.Context, params *transfer.CreateServerInput, optFns ...func(*transfer.Options)) (*transfer.CreateServerOutput, error)
	DescribeServer(ctx context.Context, params *transfer.DescribeServerInput, optFns ...func(*transfer.Options)) (*transfer.DescribeServerOutput, error)
	UpdateServer(ctx context.Context, params *transfer.UpdateServerInput, optFns ...func(*transfer.Options)) (*transfer.UpdateServerOutput, error)
	DeleteServer(ctx context.Context, params *transfer.DeleteServerInput, optFns ...func(*transfer.Options)) (*transfer.DeleteServerOutput, error)
	ListServers(ctx context.Context, params *transfer.ListServersInput, optFns ...func(*transfer.Options)) (*transfer.ListServersOutput, error)

	CreateUser(ctx context.Context, params *transfer.CreateUserInput, optFns ...func(*transfer.Options)) (*transfer.CreateUserOutput, error)
	DescribeUser(ctx context.Context, params *transfer.DescribeUserInput, optFns ...func(*transfer.Options)) (*transfer.DescribeUserOutput, error)
	UpdateUser(ctx context.Context, params *transfer.UpdateUserInput, optFns ...func(*transfer.Options)) (*transfer.UpdateUserOutput, error)
	DeleteUser(ctx context.Context, params *transfer.DeleteUserInput, optFns ...func(*transfer.Options)) (*transfer.DeleteUserOutput, error)
	ListUsers(ctx context.Context, params *transfer.ListUsersInput, optFns ...func(*transfer.Options)) (*transfer.ListUsersOutput, error)
	ImportSshPublicKey(ctx context.Context, params *transfer.ImportSshPublicKeyInput, optFns ...func(*transfer.Options)) (*transfer.ImportSshPublicKeyOutput, error)
	DeleteSshPublicKey(ctx context.Context, params *transfer.DeleteSshPublicKeyInput, optFns ...func(*transfer.Options)) (*transfer.DeleteSshPublicKeyOutput, error)

	CreateWebApp(ctx context.Context, params *transfer.CreateWebAppInput, optFns ...func(*transfer.Options)) (*transfer.CreateWebAppOutput, error)
	DescribeWebApp(ctx context.Context, params *transfer.DescribeWebAppInput, optFns ...func(*transfer.Options)) (*transfer.DescribeWebAppOutput, error)
	UpdateWebApp(ctx context.Context, params *transfer.UpdateWebAppInput, optFns ...func(*transfer.Options)) (*transfer.UpdateWebAppOutput, error)
	DeleteWebApp(ctx context.Context, params *transfer.DeleteWebAppInput, optFns ...func(*transfer.Options)) (*transfer.DeleteWebAppOutput, error)
	ListWebApps(ctx context.Context, params *transfer.ListWebAppsInput, optFns ...func(*transfer.Options)) (*transfer.ListWebAppsOutput, error)

	TagResource(ctx context.Context, params *transfer.TagResourceInput, optFns ...func(*transfer.Options)) (*transfer.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *transfer.UntagResourceInput, optFns ...func(*transfer.Options)) (*transfer.UntagResourceOutput, error)
}

var _ TransferAPI = (*transfer.Client)(nil)

// Credentials are the caller credentials delivered with a handler request
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Options configures a Transfer API client
type Options struct {
	Region      string
	Endpoint    string // overrides the resolved endpoint when set
	MaxAttempts int    // SDK retryer attempts; 0 keeps the SDK default
	Credentials *Credentials
}

// NewTransferClient creates a Transfer API client for one handler invocation.
// Static caller credentials take precedence over the default credential chain.
func NewTransferClient(ctx context.Context, opts Options) (*transfer.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.MaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.MaxAttempts))
	}
	if c := opts.Credentials; c != nil && c.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	tflog.Debug(ctx, "Creating Transfer API client", map[string]interface{}{
		"region":           cfg.Region,
		"endpoint":         opts.Endpoint,
		"max_attempts":     opts.MaxAttempts,
		"with_caller_cred": opts.Credentials != nil && opts.Credentials.AccessKeyID != "",
	})

	return transfer.NewFromConfig(cfg, func(o *transfer.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}
