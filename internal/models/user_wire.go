package models

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// CreateInput builds the CreateUser request. CreateUser accepts a single public
// key; the remaining SshPublicKeys are imported after the user exists.
func (m *User) CreateInput(desiredTags map[string]string) (*transfer.CreateUserInput, error) {
	posix, err := m.PosixProfile.toWire()
	if err != nil {
		return nil, err
	}

	var firstKey *string
	if keys := m.keyBodies(); len(keys) > 0 {
		firstKey = aws.String(keys[0])
	}

	return &transfer.CreateUserInput{
		ServerId:              m.ServerID,
		UserName:              m.UserName,
		Role:                  m.Role,
		HomeDirectory:         m.HomeDirectory,
		HomeDirectoryType:     types.HomeDirectoryType(aws.ToString(m.HomeDirectoryType)),
		HomeDirectoryMappings: homeDirectoryMappingsToWire(m.HomeDirectoryMappings),
		Policy:                m.Policy,
		PosixProfile:          posix,
		SshPublicKeyBody:      firstKey,
		Tags:                  tags.ToWire(desiredTags),
	}, nil
}

// AdditionalKeyInputs builds ImportSshPublicKey requests for every distinct key after the first
func (m *User) AdditionalKeyInputs() []*transfer.ImportSshPublicKeyInput {
	keys := m.keyBodies()
	if len(keys) < 2 {
		return nil
	}
	inputs := make([]*transfer.ImportSshPublicKeyInput, 0, len(keys)-1)
	for _, body := range keys[1:] {
		inputs = append(inputs, m.importKeyInput(body))
	}
	return inputs
}

// keyBodies returns the trimmed SshPublicKeys in order, without blanks or
// duplicates. The service rejects a key the user already holds.
func (m *User) keyBodies() []string {
	seen := make(map[string]bool, len(m.SshPublicKeys))
	keys := make([]string, 0, len(m.SshPublicKeys))
	for _, body := range m.SshPublicKeys {
		trimmed := strings.TrimSpace(body)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		keys = append(keys, trimmed)
	}
	return keys
}

func (m *User) importKeyInput(body string) *transfer.ImportSshPublicKeyInput {
	return &transfer.ImportSshPublicKeyInput{
		ServerId:         m.ServerID,
		UserName:         m.UserName,
		SshPublicKeyBody: aws.String(body),
	}
}

// DescribeInput builds the DescribeUser request
func (m *User) DescribeInput() *transfer.DescribeUserInput {
	return &transfer.DescribeUserInput{
		ServerId: m.ServerID,
		UserName: m.UserName,
	}
}

// UpdateInput builds the UpdateUser request. Mappings are sent as [] when empty
// so that removed mappings are cleared.
func (m *User) UpdateInput() (*transfer.UpdateUserInput, error) {
	posix, err := m.PosixProfile.toWire()
	if err != nil {
		return nil, err
	}

	return &transfer.UpdateUserInput{
		ServerId:              m.ServerID,
		UserName:              m.UserName,
		Role:                  m.Role,
		HomeDirectory:         m.HomeDirectory,
		HomeDirectoryType:     types.HomeDirectoryType(aws.ToString(m.HomeDirectoryType)),
		HomeDirectoryMappings: nonNil(homeDirectoryMappingsToWire(m.HomeDirectoryMappings)),
		Policy:                m.Policy,
		PosixProfile:          posix,
	}, nil
}

// DeleteInput builds the DeleteUser request
func (m *User) DeleteInput() *transfer.DeleteUserInput {
	return &transfer.DeleteUserInput{
		ServerId: m.ServerID,
		UserName: m.UserName,
	}
}

// ListInput builds one page of the ListUsers request for the model's server
func (m *User) ListInput(pageSize int32, nextToken *string) *transfer.ListUsersInput {
	return &transfer.ListUsersInput{
		ServerId:   m.ServerID,
		MaxResults: aws.Int32(pageSize),
		NextToken:  nextToken,
	}
}

// SshKeyChanges compares the desired key bodies with the keys registered on the
// user. It returns import requests for new bodies and delete requests for
// registered keys whose body is no longer desired. Bodies are compared after
// trimming surrounding whitespace.
func (m *User) SshKeyChanges(registered []types.SshPublicKey) ([]*transfer.ImportSshPublicKeyInput, []*transfer.DeleteSshPublicKeyInput) {
	desired := m.keyBodies()
	wanted := make(map[string]bool, len(desired))
	for _, body := range desired {
		wanted[body] = true
	}

	existing := make(map[string]bool, len(registered))
	var deletes []*transfer.DeleteSshPublicKeyInput
	for _, key := range registered {
		body := strings.TrimSpace(aws.ToString(key.SshPublicKeyBody))
		existing[body] = true
		if !wanted[body] {
			deletes = append(deletes, &transfer.DeleteSshPublicKeyInput{
				ServerId:       m.ServerID,
				UserName:       m.UserName,
				SshPublicKeyId: key.SshPublicKeyId,
			})
		}
	}

	var imports []*transfer.ImportSshPublicKeyInput
	for _, body := range desired {
		if existing[body] {
			continue
		}
		imports = append(imports, m.importKeyInput(body))
	}

	return imports, deletes
}

// UserFromDescribed translates a DescribeUser response
func UserFromDescribed(serverID *string, d *types.DescribedUser) *User {
	if d == nil {
		return nil
	}

	var keys []string
	for _, k := range d.SshPublicKeys {
		keys = append(keys, aws.ToString(k.SshPublicKeyBody))
	}

	return &User{
		ServerID:              serverID,
		UserName:              d.UserName,
		Arn:                   d.Arn,
		Role:                  d.Role,
		HomeDirectory:         d.HomeDirectory,
		HomeDirectoryType:     stringOrNil(string(d.HomeDirectoryType)),
		HomeDirectoryMappings: homeDirectoryMappingsFromWire(d.HomeDirectoryMappings),
		Policy:                d.Policy,
		PosixProfile:          posixProfileFromWire(d.PosixProfile),
		SshPublicKeys:         keys,
		Tags:                  TagsFromWire(d.Tags),
	}
}

// UserFromListed translates a ListUsers summary
func UserFromListed(serverID *string, l types.ListedUser) *User {
	return &User{
		ServerID:          serverID,
		UserName:          l.UserName,
		Arn:               l.Arn,
		Role:              l.Role,
		HomeDirectory:     l.HomeDirectory,
		HomeDirectoryType: stringOrNil(string(l.HomeDirectoryType)),
	}
}

func (p *PosixProfile) toWire() (*types.PosixProfile, error) {
	if p == nil {
		return nil, nil
	}

	out := &types.PosixProfile{}
	if p.UID != nil {
		uid, err := ToInt64("PosixProfile.Uid", *p.UID)
		if err != nil {
			return nil, err
		}
		out.Uid = aws.Int64(uid)
	}
	if p.GID != nil {
		gid, err := ToInt64("PosixProfile.Gid", *p.GID)
		if err != nil {
			return nil, err
		}
		out.Gid = aws.Int64(gid)
	}
	for i, g := range p.SecondaryGIDs {
		gid, err := ToInt64(fmt.Sprintf("PosixProfile.SecondaryGids[%d]", i), g)
		if err != nil {
			return nil, err
		}
		out.SecondaryGids = append(out.SecondaryGids, gid)
	}
	return out, nil
}

func posixProfileFromWire(p *types.PosixProfile) *PosixProfile {
	if p == nil {
		return nil
	}

	out := &PosixProfile{}
	if p.Uid != nil {
		out.UID = Float64Ptr(float64(*p.Uid))
	}
	if p.Gid != nil {
		out.GID = Float64Ptr(float64(*p.Gid))
	}
	for _, g := range p.SecondaryGids {
		out.SecondaryGIDs = append(out.SecondaryGIDs, float64(g))
	}
	return out
}

func homeDirectoryMappingsToWire(entries []HomeDirectoryMapEntry) []types.HomeDirectoryMapEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]types.HomeDirectoryMapEntry, len(entries))
	for i, e := range entries {
		out[i] = types.HomeDirectoryMapEntry{
			Entry:  e.Entry,
			Target: e.Target,
			Type:   types.MapType(aws.ToString(e.Type)),
		}
	}
	return out
}

func homeDirectoryMappingsFromWire(entries []types.HomeDirectoryMapEntry) []HomeDirectoryMapEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]HomeDirectoryMapEntry, len(entries))
	for i, e := range entries {
		out[i] = HomeDirectoryMapEntry{
			Entry:  e.Entry,
			Target: e.Target,
			Type:   stringOrNil(string(e.Type)),
		}
	}
	return out
}
