package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
)

func TestAgreementCreateInputTags(t *testing.T) {
	m := &Agreement{
		ServerID:         StringPtr("s-01234567890abcdef"),
		LocalProfileID:   StringPtr("p-01234567890abcdef"),
		PartnerProfileID: StringPtr("p-fedcba09876543210"),
		BaseDirectory:    StringPtr("/bucket/inbox"),
		AccessRole:       StringPtr("arn:aws:iam::123456789012:role/as2"),
	}

	tests := []struct {
		name     string
		tags     map[string]string
		wantNil  bool
		wantKeys []string
	}{
		{name: "Nil tags", tags: nil, wantNil: true},
		{name: "Empty tags", tags: map[string]string{}, wantNil: true},
		{name: "Sorted tags", tags: map[string]string{"b": "2", "a": "1"}, wantKeys: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := m.CreateInput(tt.tags)
			if tt.wantNil {
				if input.Tags != nil {
					t.Errorf("Tags = %#v, want nil", input.Tags)
				}
				return
			}
			if len(input.Tags) != len(tt.wantKeys) {
				t.Fatalf("Tags has %d entries, want %d", len(input.Tags), len(tt.wantKeys))
			}
			for i, key := range tt.wantKeys {
				if aws.ToString(input.Tags[i].Key) != key {
					t.Errorf("Tags[%d].Key = %q, want %q", i, aws.ToString(input.Tags[i].Key), key)
				}
			}
		})
	}
}

func TestAgreementFromListed(t *testing.T) {
	got := AgreementFromListed(types.ListedAgreement{
		AgreementId: aws.String("a-01234567890abcdef"),
		ServerId:    aws.String("s-01234567890abcdef"),
		Status:      types.AgreementStatusTypeActive,
	})

	if aws.ToString(got.Status) != "ACTIVE" {
		t.Errorf("Status = %q, want ACTIVE", aws.ToString(got.Status))
	}
	if got.BaseDirectory != nil || got.Tags != nil {
		t.Errorf("AgreementFromListed() set fields not present in list output: %+v", got)
	}
}
