package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/aaearon/cloudformation-transfer-providers/internal/arn"
	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/models"
)

// UserTypeName is the CloudFormation type of a server user
const UserTypeName = "AWS::Transfer::User"

// NewUserResource returns the handlers for AWS::Transfer::User
func NewUserResource() *Resource[models.User] {
	return NewResource(Descriptor[models.User]{
		TypeName:             UserTypeName,
		ResourceType:         arn.ResourceTypeUser,
		IdentifierProperties: []string{"ServerId", "UserName"},
		Identifier: func(m *models.User) []*string {
			return []*string{m.ServerID, m.UserName}
		},
		SetArn: func(m *models.User, resourceARN string) { m.Arn = &resourceARN },
		Tags:   func(m *models.User) []models.Tag { return m.Tags },
		ParseARN: func(s string) ([]string, error) {
			a, err := arn.ParseUserARN(s)
			if err != nil {
				return nil, err
			}
			return []string{a.ServerID(), a.UserName()}, nil
		},
		// A key imported during update that the user already holds
		ErrorRules: []client.Rule{
			{Code: client.CodeResourceExists, Operations: []client.Operation{client.OperationUpdate}, Kind: client.ErrorKindAlreadyExists},
		},
		Create: createUser,
		Read:   readUser,
		Update: updateUser,
		Delete: deleteUser,
		List:   listUsers,
	})
}

func createUser(ctx context.Context, api client.TransferAPI, m *models.User, desiredTags map[string]string) error {
	input, err := m.CreateInput(desiredTags)
	if err != nil {
		return err
	}
	out, err := api.CreateUser(ctx, input)
	if err != nil {
		return err
	}
	if out.ServerId != nil {
		m.ServerID = out.ServerId
	}
	if out.UserName != nil {
		m.UserName = out.UserName
	}

	for _, keyInput := range m.AdditionalKeyInputs() {
		if _, err := api.ImportSshPublicKey(ctx, keyInput); err != nil {
			created := arn.BuildRelativeID(aws.ToString(m.ServerID), aws.ToString(m.UserName))
			tflog.Warn(ctx, "User created but SSH public key import failed, the user must be deleted manually", map[string]interface{}{
				"user":  created,
				"error": err.Error(),
			})
			return fmt.Errorf("user %s was created but importing an SSH public key failed: %w", created, err)
		}
	}
	return nil
}

func readUser(ctx context.Context, api client.TransferAPI, m *models.User) (*models.User, error) {
	out, err := api.DescribeUser(ctx, m.DescribeInput())
	if err != nil {
		return nil, err
	}
	serverID := out.ServerId
	if serverID == nil {
		serverID = m.ServerID
	}
	return models.UserFromDescribed(serverID, out.User), nil
}

// updateUser updates the user, then makes the registered SSH keys match SshPublicKeys
func updateUser(ctx context.Context, api client.TransferAPI, m *models.User) error {
	input, err := m.UpdateInput()
	if err != nil {
		return err
	}
	if _, err := api.UpdateUser(ctx, input); err != nil {
		return err
	}

	described, err := api.DescribeUser(ctx, m.DescribeInput())
	if err != nil {
		return err
	}
	if described.User == nil {
		return nil
	}

	imports, deletes := m.SshKeyChanges(described.User.SshPublicKeys)
	tflog.Debug(ctx, "Reconciling SSH public keys", map[string]interface{}{
		"keys_imported": len(imports),
		"keys_deleted":  len(deletes),
	})

	for _, in := range imports {
		if _, err := api.ImportSshPublicKey(ctx, in); err != nil {
			return fmt.Errorf("failed to import SSH public key: %w", err)
		}
	}
	for _, in := range deletes {
		if _, err := api.DeleteSshPublicKey(ctx, in); err != nil {
			return fmt.Errorf("failed to delete SSH public key %s: %w", *in.SshPublicKeyId, err)
		}
	}
	return nil
}

func deleteUser(ctx context.Context, api client.TransferAPI, m *models.User) error {
	_, err := api.DeleteUser(ctx, m.DeleteInput())
	return err
}

func listUsers(ctx context.Context, api client.TransferAPI, m *models.User, nextToken *string) ([]*models.User, *string, error) {
	if m.ServerID == nil || *m.ServerID == "" {
		return nil, nil, client.NewHandlerError(client.ErrorKindInvalidRequest, client.OperationList,
			"ServerId is required to list %s resources", UserTypeName)
	}

	out, err := api.ListUsers(ctx, m.ListInput(listPageSize, nextToken))
	if err != nil {
		return nil, nil, err
	}

	serverID := out.ServerId
	if serverID == nil {
		serverID = m.ServerID
	}
	page := make([]*models.User, 0, len(out.Users))
	for _, l := range out.Users {
		page = append(page, models.UserFromListed(serverID, l))
	}
	return page, out.NextToken, nil
}
