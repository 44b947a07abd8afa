// Package clienttest provides an in-memory TransferAPI for handler tests
package clienttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/transfer"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
)

var _ client.TransferAPI = (*Fake)(nil)

// Fake implements client.TransferAPI. Each method calls the matching func field
// when set and otherwise returns an empty output. Every call is recorded by
// operation name with its input.
type Fake struct {
	CreateAgreementFn   func(*transfer.CreateAgreementInput) (*transfer.CreateAgreementOutput, error)
	DescribeAgreementFn func(*transfer.DescribeAgreementInput) (*transfer.DescribeAgreementOutput, error)
	UpdateAgreementFn   func(*transfer.UpdateAgreementInput) (*transfer.UpdateAgreementOutput, error)
	DeleteAgreementFn   func(*transfer.DeleteAgreementInput) (*transfer.DeleteAgreementOutput, error)
	ListAgreementsFn    func(*transfer.ListAgreementsInput) (*transfer.ListAgreementsOutput, error)

	ImportCertificateFn   func(*transfer.ImportCertificateInput) (*transfer.ImportCertificateOutput, error)
	DescribeCertificateFn func(*transfer.DescribeCertificateInput) (*transfer.DescribeCertificateOutput, error)
	UpdateCertificateFn   func(*transfer.UpdateCertificateInput) (*transfer.UpdateCertificateOutput, error)
	DeleteCertificateFn   func(*transfer.DeleteCertificateInput) (*transfer.DeleteCertificateOutput, error)
	ListCertificatesFn    func(*transfer.ListCertificatesInput) (*transfer.ListCertificatesOutput, error)

	CreateProfileFn   func(*transfer.CreateProfileInput) (*transfer.CreateProfileOutput, error)
	DescribeProfileFn func(*transfer.DescribeProfileInput) (*transfer.DescribeProfileOutput, error)
	UpdateProfileFn   func(*transfer.UpdateProfileInput) (*transfer.UpdateProfileOutput, error)
	DeleteProfileFn   func(*transfer.DeleteProfileInput) (*transfer.DeleteProfileOutput, error)
	ListProfilesFn    func(*transfer.ListProfilesInput) (*transfer.ListProfilesOutput, error)

	CreateServerFn   func(*transfer.CreateServerInput) (*transfer.CreateServerOutput, error)
	DescribeServerFn func(*transfer.DescribeServerInput) (*transfer.DescribeServerOutput, error)
	UpdateServerFn   func(*transfer.UpdateServerInput) (*transfer.UpdateServerOutput, error)
	DeleteServerFn   func(*transfer.DeleteServerInput) (*transfer.DeleteServerOutput, error)
	ListServersFn    func(*transfer.ListServersInput) (*transfer.ListServersOutput, error)

	CreateUserFn         func(*transfer.CreateUserInput) (*transfer.CreateUserOutput, error)
	DescribeUserFn       func(*transfer.DescribeUserInput) (*transfer.DescribeUserOutput, error)
	UpdateUserFn         func(*transfer.UpdateUserInput) (*transfer.UpdateUserOutput, error)
	DeleteUserFn         func(*transfer.DeleteUserInput) (*transfer.DeleteUserOutput, error)
	ListUsersFn          func(*transfer.ListUsersInput) (*transfer.ListUsersOutput, error)
	ImportSshPublicKeyFn func(*transfer.ImportSshPublicKeyInput) (*transfer.ImportSshPublicKeyOutput, error)
	DeleteSshPublicKeyFn func(*transfer.DeleteSshPublicKeyInput) (*transfer.DeleteSshPublicKeyOutput, error)

	CreateWebAppFn   func(*transfer.CreateWebAppInput) (*transfer.CreateWebAppOutput, error)
	DescribeWebAppFn func(*transfer.DescribeWebAppInput) (*transfer.DescribeWebAppOutput, error)
	UpdateWebAppFn   func(*transfer.UpdateWebAppInput) (*transfer.UpdateWebAppOutput, error)
	DeleteWebAppFn   func(*transfer.DeleteWebAppInput) (*transfer.DeleteWebAppOutput, error)
	ListWebAppsFn    func(*transfer.ListWebAppsInput) (*transfer.ListWebAppsOutput, error)

	TagResourceFn   func(*transfer.TagResourceInput) (*transfer.TagResourceOutput, error)
	UntagResourceFn func(*transfer.UntagResourceInput) (*transfer.UntagResourceOutput, error)

	mu    sync.Mutex
	calls []Call
}

// Call is one recorded API call
type Call struct {
	Operation string
	Input     interface{}
}

// Calls returns the recorded calls in order
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Operations returns the names of the recorded calls in order
func (f *Fake) Operations() []string {
	calls := f.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Operation
	}
	return ops
}

// Input returns the input of the nth call to operation, or nil
func (f *Fake) Input(operation string, n int) interface{} {
	seen := 0
	for _, c := range f.Calls() {
		if c.Operation != operation {
			continue
		}
		if seen == n {
			return c.Input
		}
		seen++
	}
	return nil
}

func (f *Fake) record(operation string, input interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Operation: operation, Input: input})
}

// call records the invocation and dispatches to fn, or returns a zero output
func call[I any, O any](ctx context.Context, f *Fake, operation string, fn func(*I) (*O, error), input *I) (*O, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	f.record(operation, input)
	if fn == nil {
		return new(O), nil
	}
	return fn(input)
}

func (f *Fake) CreateAgreement(ctx context.Context, in *transfer.CreateAgreementInput, _ ...func(*transfer.Options)) (*transfer.CreateAgreementOutput, error) {
	return call(ctx, f, "CreateAgreement", f.CreateAgreementFn, in)
}

func (f *Fake) DescribeAgreement(ctx context.Context, in *transfer.DescribeAgreementInput, _ ...func(*transfer.Options)) (*transfer.DescribeAgreementOutput, error) {
	return call(ctx, f, "DescribeAgreement", f.DescribeAgreementFn, in)
}

func (f *Fake) UpdateAgreement(ctx context.Context, in *transfer.UpdateAgreementInput, _ ...func(*transfer.Options)) (*transfer.UpdateAgreementOutput, error) {
	return call(ctx, f, "UpdateAgreement", f.UpdateAgreementFn, in)
}

func (f *Fake) DeleteAgreement(ctx context.Context, in *transfer.DeleteAgreementInput, _ ...func(*transfer.Options)) (*transfer.DeleteAgreementOutput, error) {
	return call(ctx, f, "DeleteAgreement", f.DeleteAgreementFn, in)
}

func (f *Fake) ListAgreements(ctx context.Context, in *transfer.ListAgreementsInput, _ ...func(*transfer.Options)) (*transfer.ListAgreementsOutput, error) {
	return call(ctx, f, "ListAgreements", f.ListAgreementsFn, in)
}

func (f *Fake) ImportCertificate(ctx context.Context, in *transfer.ImportCertificateInput, _ ...func(*transfer.Options)) (*transfer.ImportCertificateOutput, error) {
	return call(ctx, f, "ImportCertificate", f.ImportCertificateFn, in)
}

func (f *Fake) DescribeCertificate(ctx context.Context, in *transfer.DescribeCertificateInput, _ ...func(*transfer.Options)) (*transfer.DescribeCertificateOutput, error) {
	return call(ctx, f, "DescribeCertificate", f.DescribeCertificateFn, in)
}

func (f *Fake) UpdateCertificate(ctx context.Context, in *transfer.UpdateCertificateInput, _ ...func(*transfer.Options)) (*transfer.UpdateCertificateOutput, error) {
	return call(ctx, f, "UpdateCertificate", f.UpdateCertificateFn, in)
}

func (f *Fake) DeleteCertificate(ctx context.Context, in *transfer.DeleteCertificateInput, _ ...func(*transfer.Options)) (*transfer.DeleteCertificateOutput, error) {
	return call(ctx, f, "DeleteCertificate", f.DeleteCertificateFn, in)
}

func (f *Fake) ListCertificates(ctx context.Context, in *transfer.ListCertificatesInput, _ ...func(*transfer.Options)) (*transfer.ListCertificatesOutput, error) {
	return call(ctx, f, "ListCertificates", f.ListCertificatesFn, in)
}

func (f *Fake) CreateProfile(ctx context.Context, in *transfer.CreateProfileInput, _ ...func(*transfer.Options)) (*transfer.CreateProfileOutput, error) {
	return call(ctx, f, "CreateProfile", f.CreateProfileFn, in)
}

func (f *Fake) DescribeProfile(ctx context.Context, in *transfer.DescribeProfileInput, _ ...func(*transfer.Options)) (*transfer.DescribeProfileOutput, error) {
	return call(ctx, f, "DescribeProfile", f.DescribeProfileFn, in)
}

func (f *Fake) UpdateProfile(ctx context.Context, in *transfer.UpdateProfileInput, _ ...func(*transfer.Options)) (*transfer.UpdateProfileOutput, error) {
	return call(ctx, f, "UpdateProfile", f.UpdateProfileFn, in)
}

func (f *Fake) DeleteProfile(ctx context.Context, in *transfer.DeleteProfileInput, _ ...func(*transfer.Options)) (*transfer.DeleteProfileOutput, error) {
	return call(ctx, f, "DeleteProfile", f.DeleteProfileFn, in)
}

func (f *Fake) ListProfiles(ctx context.Context, in *transfer.ListProfilesInput, _ ...func(*transfer.Options)) (*transfer.ListProfilesOutput, error) {
	return call(ctx, f, "ListProfiles", f.ListProfilesFn, in)
}

func (f *Fake) CreateServer(ctx context.Context, in *transfer.CreateServerInput, _ ...func(*transfer.Options)) (*transfer.CreateServerOutput, error) {
	return call(ctx, f, "CreateServer", f.CreateServerFn, in)
}

func (f *Fake) DescribeServer(ctx context.Context, in *transfer.DescribeServerInput, _ ...func(*transfer.Options)) (*transfer.DescribeServerOutput, error) {
	return call(ctx, f, "DescribeServer", f.DescribeServerFn, in)
}

func (f *Fake) UpdateServer(ctx context.Context, in *transfer.UpdateServerInput, _ ...func(*transfer.Options)) (*transfer.UpdateServerOutput, error) {
	return call(ctx, f, "UpdateServer", f.UpdateServerFn, in)
}

func (f *Fake) DeleteServer(ctx context.Context, in *transfer.DeleteServerInput, _ ...func(*transfer.Options)) (*transfer.DeleteServerOutput, error) {
	return call(ctx, f, "DeleteServer", f.DeleteServerFn, in)
}

func (f *Fake) ListServers(ctx context.Context, in *transfer.ListServersInput, _ ...func(*transfer.Options)) (*transfer.ListServersOutput, error) {
	return call(ctx, f, "ListServers", f.ListServersFn, in)
}

func (f *Fake) CreateUser(ctx context.Context, in *transfer.CreateUserInput, _ ...func(*transfer.Options)) (*transfer.CreateUserOutput, error) {
	return call(ctx, f, "CreateUser", f.CreateUserFn, in)
}

func (f *Fake) DescribeUser(ctx context.Context, in *transfer.DescribeUserInput, _ ...func(*transfer.Options)) (*transfer.DescribeUserOutput, error) {
	return call(ctx, f, "DescribeUser", f.DescribeUserFn, in)
}

func (f *Fake) UpdateUser(ctx context.Context, in *transfer.UpdateUserInput, _ ...func(*transfer.Options)) (*transfer.UpdateUserOutput, error) {
	return call(ctx, f, "UpdateUser", f.UpdateUserFn, in)
}

func (f *Fake) DeleteUser(ctx context.Context, in *transfer.DeleteUserInput, _ ...func(*transfer.Options)) (*transfer.DeleteUserOutput, error) {
	return call(ctx, f, "DeleteUser", f.DeleteUserFn, in)
}

func (f *Fake) ListUsers(ctx context.Context, in *transfer.ListUsersInput, _ ...func(*transfer.Options)) (*transfer.ListUsersOutput, error) {
	return call(ctx, f, "ListUsers", f.ListUsersFn, in)
}

func (f *Fake) ImportSshPublicKey(ctx context.Context, in *transfer.ImportSshPublicKeyInput, _ ...func(*transfer.Options)) (*transfer.ImportSshPublicKeyOutput, error) {
	return call(ctx, f, "ImportSshPublicKey", f.ImportSshPublicKeyFn, in)
}

func (f *Fake) DeleteSshPublicKey(ctx context.Context, in *transfer.DeleteSshPublicKeyInput, _ ...func(*transfer.Options)) (*transfer.DeleteSshPublicKeyOutput, error) {
	return call(ctx, f, "DeleteSshPublicKey", f.DeleteSshPublicKeyFn, in)
}

func (f *Fake) CreateWebApp(ctx context.Context, in *transfer.CreateWebAppInput, _ ...func(*transfer.Options)) (*transfer.CreateWebAppOutput, error) {
	return call(ctx, f, "CreateWebApp", f.CreateWebAppFn, in)
}

func (f *Fake) DescribeWebApp(ctx context.Context, in *transfer.DescribeWebAppInput, _ ...func(*transfer.Options)) (*transfer.DescribeWebAppOutput, error) {
	return call(ctx, f, "DescribeWebApp", f.DescribeWebAppFn, in)
}

func (f *Fake) UpdateWebApp(ctx context.Context, in *transfer.UpdateWebAppInput, _ ...func(*transfer.Options)) (*transfer.UpdateWebAppOutput, error) {
	return call(ctx, f, "UpdateWebApp", f.UpdateWebAppFn, in)
}

func (f *Fake) DeleteWebApp(ctx context.Context, in *transfer.DeleteWebAppInput, _ ...func(*transfer.Options)) (*transfer.DeleteWebAppOutput, error) {
	return call(ctx, f, "DeleteWebApp", f.DeleteWebAppFn, in)
}

func (f *Fake) ListWebApps(ctx context.Context, in *transfer.ListWebAppsInput, _ ...func(*transfer.Options)) (*transfer.ListWebAppsOutput, error) {
	return call(ctx, f, "ListWebApps", f.ListWebAppsFn, in)
}

func (f *Fake) TagResource(ctx context.Context, in *transfer.TagResourceInput, _ ...func(*transfer.Options)) (*transfer.TagResourceOutput, error) {
	return call(ctx, f, "TagResource", f.TagResourceFn, in)
}

func (f *Fake) UntagResource(ctx context.Context, in *transfer.UntagResourceInput, _ ...func(*transfer.Options)) (*transfer.UntagResourceOutput, error) {
	return call(ctx, f, "UntagResource", f.UntagResourceFn, in)
}
