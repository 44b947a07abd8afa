package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client/clienttest"
	"github.com/aaearon/cloudformation-transfer-providers/internal/handler"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

const (
	testUserRole = "arn:aws:iam::123456789012:role/transfer-user"
	testKeyOne   = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIOne alice@laptop"
	testKeyTwo   = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAITwo alice@desktop"
	testKeyThree = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIThree alice@ci"
)

func userState(keys ...string) map[string]interface{} {
	bodies := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		bodies = append(bodies, k)
	}
	return map[string]interface{}{
		"ServerId":      testServerID,
		"UserName":      "alice",
		"Role":          testUserRole,
		"SshPublicKeys": bodies,
	}
}

func TestUserCreateImportsAdditionalKeys(t *testing.T) {
	fake := &clienttest.Fake{
		CreateUserFn: func(in *transfer.CreateUserInput) (*transfer.CreateUserOutput, error) {
			return &transfer.CreateUserOutput{ServerId: in.ServerId, UserName: in.UserName}, nil
		},
	}

	event := NewUserResource().Handle(context.Background(), fake, newRequest(handler.ActionCreate, UserTypeName, userState(testKeyOne, testKeyTwo)))
	if !event.Succeeded() {
		t.Fatalf("Create() status = %s, message = %q", event.Status, event.Message)
	}

	if diff := cmp.Diff([]string{"CreateUser", "ImportSshPublicKey"}, fake.Operations()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	create := fake.Input("CreateUser", 0).(*transfer.CreateUserInput)
	if aws.ToString(create.SshPublicKeyBody) != testKeyOne {
		t.Errorf("CreateUser key = %q, want the first key", aws.ToString(create.SshPublicKeyBody))
	}
	imported := fake.Input("ImportSshPublicKey", 0).(*transfer.ImportSshPublicKeyInput)
	if aws.ToString(imported.SshPublicKeyBody) != testKeyTwo {
		t.Errorf("imported key = %q, want the second key", aws.ToString(imported.SshPublicKeyBody))
	}

	model := event.ResourceModel.(*models.User)
	want := "arn:aws:transfer:us-east-1:123456789012:user/" + testServerID + "/alice"
	if aws.ToString(model.Arn) != want {
		t.Errorf("Arn = %q, want %q", aws.ToString(model.Arn), want)
	}
}

func TestUserCreateDuplicateKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		wantOps  []string
		wantCode cftypes.HandlerErrorCode
	}{
		{
			name:    "whitespace variant imported once",
			keys:    []string{testKeyOne, testKeyOne + " "},
			wantOps: []string{"CreateUser"},
		},
		{
			name:     "exact duplicate rejected before any call",
			keys:     []string{testKeyOne, testKeyOne},
			wantCode: cftypes.HandlerErrorCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &clienttest.Fake{
				CreateUserFn: func(in *transfer.CreateUserInput) (*transfer.CreateUserOutput, error) {
					return &transfer.CreateUserOutput{ServerId: in.ServerId, UserName: in.UserName}, nil
				},
			}

			event := NewUserResource().Handle(context.Background(), fake, newRequest(handler.ActionCreate, UserTypeName, userState(tt.keys...)))
			if event.ErrorCode != tt.wantCode {
				t.Errorf("ErrorCode = %q, want %q (message %q)", event.ErrorCode, tt.wantCode, event.Message)
			}
			if diff := cmp.Diff(tt.wantOps, fake.Operations(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserCreateKeyImportFailureNamesUser(t *testing.T) {
	fake := &clienttest.Fake{
		CreateUserFn: func(in *transfer.CreateUserInput) (*transfer.CreateUserOutput, error) {
			return &transfer.CreateUserOutput{ServerId: in.ServerId, UserName: in.UserName}, nil
		},
		ImportSshPublicKeyFn: func(*transfer.ImportSshPublicKeyInput) (*transfer.ImportSshPublicKeyOutput, error) {
			return nil, &types.InvalidRequestException{Message: aws.String("unsupported key type")}
		},
	}

	event := NewUserResource().Handle(context.Background(), fake, newRequest(handler.ActionCreate, UserTypeName, userState(testKeyOne, testKeyTwo)))
	if event.ErrorCode != cftypes.HandlerErrorCodeInvalidRequest {
		t.Errorf("ErrorCode = %q, want InvalidRequest", event.ErrorCode)
	}
	if !strings.Contains(event.Message, "user "+testServerID+"/alice was created") {
		t.Errorf("Message = %q, want it to name the created user", event.Message)
	}
}

func TestUserUpdateReconcilesKeys(t *testing.T) {
	fake := &clienttest.Fake{
		DescribeUserFn: func(in *transfer.DescribeUserInput) (*transfer.DescribeUserOutput, error) {
			return &transfer.DescribeUserOutput{
				ServerId: in.ServerId,
				User: &types.DescribedUser{
					Arn:      aws.String("arn:aws:transfer:us-east-1:123456789012:user/" + testServerID + "/alice"),
					UserName: in.UserName,
					SshPublicKeys: []types.SshPublicKey{
						{SshPublicKeyId: aws.String("key-0123456789abcdef1"), SshPublicKeyBody: aws.String(testKeyOne + "\n")},
						{SshPublicKeyId: aws.String("key-0123456789abcdef2"), SshPublicKeyBody: aws.String(testKeyTwo)},
					},
				},
			}, nil
		},
	}

	req := newRequest(handler.ActionUpdate, UserTypeName, userState(testKeyOne, "  "+testKeyThree+" "))
	req.PreviousResourceState = userState(testKeyOne, testKeyTwo)

	event := NewUserResource().Handle(context.Background(), fake, req)
	if !event.Succeeded() {
		t.Fatalf("Update() status = %s, message = %q", event.Status, event.Message)
	}

	wantOps := []string{"UpdateUser", "DescribeUser", "ImportSshPublicKey", "DeleteSshPublicKey"}
	if diff := cmp.Diff(wantOps, fake.Operations()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}

	imported := fake.Input("ImportSshPublicKey", 0).(*transfer.ImportSshPublicKeyInput)
	if aws.ToString(imported.SshPublicKeyBody) != testKeyThree {
		t.Errorf("imported key = %q, want %q", aws.ToString(imported.SshPublicKeyBody), testKeyThree)
	}
	deleted := fake.Input("DeleteSshPublicKey", 0).(*transfer.DeleteSshPublicKeyInput)
	if aws.ToString(deleted.SshPublicKeyId) != "key-0123456789abcdef2" {
		t.Errorf("deleted key id = %q, want key-0123456789abcdef2", aws.ToString(deleted.SshPublicKeyId))
	}
}

func TestUserErrorKinds(t *testing.T) {
	exists := &types.ResourceExistsException{
		Message:      aws.String("key already exists"),
		Resource:     aws.String("alice"),
		ResourceType: aws.String("User"),
	}

	tests := []struct {
		name     string
		action   handler.Action
		fake     *clienttest.Fake
		wantCode cftypes.HandlerErrorCode
	}{
		{
			name:   "duplicate key on update",
			action: handler.ActionUpdate,
			fake: &clienttest.Fake{
				DescribeUserFn: func(in *transfer.DescribeUserInput) (*transfer.DescribeUserOutput, error) {
					return &transfer.DescribeUserOutput{ServerId: in.ServerId, User: &types.DescribedUser{UserName: in.UserName}}, nil
				},
				ImportSshPublicKeyFn: func(*transfer.ImportSshPublicKeyInput) (*transfer.ImportSshPublicKeyOutput, error) {
					return nil, exists
				},
			},
			wantCode: cftypes.HandlerErrorCodeAlreadyExists,
		},
		{
			name:   "user exists on create",
			action: handler.ActionCreate,
			fake: &clienttest.Fake{
				CreateUserFn: func(*transfer.CreateUserInput) (*transfer.CreateUserOutput, error) {
					return nil, exists
				},
			},
			wantCode: cftypes.HandlerErrorCodeAlreadyExists,
		},
		{
			name:   "server missing on create",
			action: handler.ActionCreate,
			fake: &clienttest.Fake{
				CreateUserFn: func(*transfer.CreateUserInput) (*transfer.CreateUserOutput, error) {
					return nil, &types.ResourceNotFoundException{Message: aws.String("no server"), Resource: aws.String(testServerID), ResourceType: aws.String("Server")}
				},
			},
			wantCode: cftypes.HandlerErrorCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewUserResource().Handle(context.Background(), tt.fake, newRequest(tt.action, UserTypeName, userState(testKeyOne)))
			if event.ErrorCode != tt.wantCode {
				t.Errorf("ErrorCode = %q, want %q (message %q)", event.ErrorCode, tt.wantCode, event.Message)
			}
		})
	}
}

func TestUserPosixNarrowing(t *testing.T) {
	state := userState()
	state["PosixProfile"] = map[string]interface{}{"Uid": 1000.5, "Gid": 1000}

	fake := &clienttest.Fake{}
	event := NewUserResource().Handle(context.Background(), fake, newRequest(handler.ActionCreate, UserTypeName, state))
	if event.ErrorCode != cftypes.HandlerErrorCodeInvalidRequest {
		t.Errorf("ErrorCode = %q, want InvalidRequest", event.ErrorCode)
	}
	if len(fake.Calls()) != 0 {
		t.Errorf("remote calls = %v, want none", fake.Operations())
	}
}
