package models

import (
	"errors"
	"math"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"github.com/google/go-cmp/cmp"
)

func testUser() *User {
	return &User{
		ServerID: StringPtr("s-01234567890abcdef"),
		UserName: StringPtr("alice"),
		Role:     StringPtr("arn:aws:iam::123456789012:role/transfer-access"),
	}
}

func TestUserCreateInputPosixProfile(t *testing.T) {
	tests := []struct {
		name    string
		posix   *PosixProfile
		want    *types.PosixProfile
		wantErr bool
	}{
		{
			name:  "Absent",
			posix: nil,
			want:  nil,
		},
		{
			name:  "Uid, gid and secondary gids",
			posix: &PosixProfile{UID: Float64Ptr(1000), GID: Float64Ptr(100), SecondaryGIDs: []float64{200, 300}},
			want:  &types.PosixProfile{Uid: aws.Int64(1000), Gid: aws.Int64(100), SecondaryGids: []int64{200, 300}},
		},
		{
			name:    "Fractional uid",
			posix:   &PosixProfile{UID: Float64Ptr(1.5), GID: Float64Ptr(100)},
			wantErr: true,
		},
		{
			name:    "Gid of 2^63",
			posix:   &PosixProfile{UID: Float64Ptr(1000), GID: Float64Ptr(math.Pow(2, 63))},
			wantErr: true,
		},
		{
			name:    "Fractional secondary gid",
			posix:   &PosixProfile{UID: Float64Ptr(1000), GID: Float64Ptr(100), SecondaryGIDs: []float64{200, 0.25}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testUser()
			m.PosixProfile = tt.posix

			input, err := m.CreateInput(nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafeNarrowing) {
					t.Errorf("CreateInput() error = %v, want ErrUnsafeNarrowing", err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, input.PosixProfile, ignoreWire); diff != "" {
				t.Errorf("PosixProfile mismatch (-want +got):\n%s", diff)
			}
			if input.Tags != nil {
				t.Errorf("Tags = %#v, want nil", input.Tags)
			}
		})
	}
}

func TestUserCreateInputSshKeys(t *testing.T) {
	m := testUser()
	m.SshPublicKeys = []string{"ssh-ed25519 AAAA1", "ssh-ed25519 AAAA2", "ssh-rsa BBBB3"}

	input, err := m.CreateInput(nil)
	if err != nil {
		t.Fatalf("CreateInput() error = %v", err)
	}
	if aws.ToString(input.SshPublicKeyBody) != "ssh-ed25519 AAAA1" {
		t.Errorf("SshPublicKeyBody = %q, want first key", aws.ToString(input.SshPublicKeyBody))
	}

	extra := m.AdditionalKeyInputs()
	if len(extra) != 2 {
		t.Fatalf("AdditionalKeyInputs() returned %d inputs, want 2", len(extra))
	}
	if aws.ToString(extra[1].SshPublicKeyBody) != "ssh-rsa BBBB3" || aws.ToString(extra[1].UserName) != "alice" {
		t.Errorf("AdditionalKeyInputs()[1] = %+v", extra[1])
	}
}

func TestUserCreateInputDeduplicatesSshKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		wantFirst string
		wantExtra []string
	}{
		{
			name:      "trailing space duplicate",
			keys:      []string{"ssh-ed25519 AAAA1", "ssh-ed25519 AAAA1 "},
			wantFirst: "ssh-ed25519 AAAA1",
		},
		{
			name:      "blank and repeated keys",
			keys:      []string{" ", "ssh-ed25519 AAAA1\n", "ssh-rsa BBBB3", "ssh-ed25519 AAAA1"},
			wantFirst: "ssh-ed25519 AAAA1",
			wantExtra: []string{"ssh-rsa BBBB3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testUser()
			m.SshPublicKeys = tt.keys

			input, err := m.CreateInput(nil)
			if err != nil {
				t.Fatalf("CreateInput() error = %v", err)
			}
			if got := aws.ToString(input.SshPublicKeyBody); got != tt.wantFirst {
				t.Errorf("SshPublicKeyBody = %q, want %q", got, tt.wantFirst)
			}

			var extra []string
			for _, in := range m.AdditionalKeyInputs() {
				extra = append(extra, aws.ToString(in.SshPublicKeyBody))
			}
			if diff := cmp.Diff(tt.wantExtra, extra); diff != "" {
				t.Errorf("AdditionalKeyInputs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserUpdateInputClearsMappings(t *testing.T) {
	input, err := testUser().UpdateInput()
	if err != nil {
		t.Fatalf("UpdateInput() error = %v", err)
	}
	if input.HomeDirectoryMappings == nil || len(input.HomeDirectoryMappings) != 0 {
		t.Errorf("HomeDirectoryMappings = %#v, want empty non-nil list", input.HomeDirectoryMappings)
	}
}

func TestUserSshKeyChanges(t *testing.T) {
	m := testUser()
	m.SshPublicKeys = []string{"ssh-ed25519 KEEP", "ssh-ed25519 NEW ", "ssh-ed25519 NEW"}

	registered := []types.SshPublicKey{
		{SshPublicKeyId: aws.String("key-keep"), SshPublicKeyBody: aws.String("ssh-ed25519 KEEP\n")},
		{SshPublicKeyId: aws.String("key-stale"), SshPublicKeyBody: aws.String("ssh-rsa STALE")},
	}

	imports, deletes := m.SshKeyChanges(registered)

	if len(imports) != 1 || aws.ToString(imports[0].SshPublicKeyBody) != "ssh-ed25519 NEW" {
		t.Errorf("imports = %+v, want one import of the new key", imports)
	}
	if len(deletes) != 1 || aws.ToString(deletes[0].SshPublicKeyId) != "key-stale" {
		t.Errorf("deletes = %+v, want one delete of key-stale", deletes)
	}
}

func TestUserFromDescribed(t *testing.T) {
	d := &types.DescribedUser{
		Arn:               aws.String("arn:aws:transfer:us-east-1:123456789012:user/s-01234567890abcdef/alice"),
		UserName:          aws.String("alice"),
		Role:              aws.String("arn:aws:iam::123456789012:role/transfer-access"),
		HomeDirectoryType: types.HomeDirectoryTypeLogical,
		HomeDirectoryMappings: []types.HomeDirectoryMapEntry{
			{Entry: aws.String("/"), Target: aws.String("/bucket/alice"), Type: types.MapTypeDirectory},
		},
		PosixProfile: &types.PosixProfile{Uid: aws.Int64(1000), Gid: aws.Int64(100)},
		SshPublicKeys: []types.SshPublicKey{
			{SshPublicKeyId: aws.String("key-1"), SshPublicKeyBody: aws.String("ssh-ed25519 AAAA1")},
		},
	}

	want := &User{
		ServerID:          aws.String("s-01234567890abcdef"),
		UserName:          aws.String("alice"),
		Arn:               aws.String("arn:aws:transfer:us-east-1:123456789012:user/s-01234567890abcdef/alice"),
		Role:              aws.String("arn:aws:iam::123456789012:role/transfer-access"),
		HomeDirectoryType: aws.String("LOGICAL"),
		HomeDirectoryMappings: []HomeDirectoryMapEntry{
			{Entry: aws.String("/"), Target: aws.String("/bucket/alice"), Type: aws.String("DIRECTORY")},
		},
		PosixProfile:  &PosixProfile{UID: Float64Ptr(1000), GID: Float64Ptr(100)},
		SshPublicKeys: []string{"ssh-ed25519 AAAA1"},
	}

	if diff := cmp.Diff(want, UserFromDescribed(aws.String("s-01234567890abcdef"), d)); diff != "" {
		t.Errorf("UserFromDescribed() mismatch (-want +got):\n%s", diff)
	}
}
