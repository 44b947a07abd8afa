package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"github.com/google/go-cmp/cmp"
)

func TestProfileUpdateInputDetachesCertificates(t *testing.T) {
	tests := []struct {
		name  string
		certs []string
		want  []string
	}{
		{name: "absent", certs: nil, want: []string{}},
		{name: "kept", certs: []string{"cert-01234567890abcdef"}, want: []string{"cert-01234567890abcdef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Profile{ProfileID: aws.String("p-01234567890abcdef"), CertificateIDs: tt.certs}

			got := m.UpdateInput().CertificateIds
			if got == nil {
				t.Fatal("UpdateInput() CertificateIds = nil, want a list")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UpdateInput() CertificateIds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfileCreateInput(t *testing.T) {
	m := &Profile{As2ID: aws.String("partner-as2"), ProfileType: aws.String("PARTNER")}

	in := m.CreateInput(nil)
	if in.ProfileType != types.ProfileTypePartner {
		t.Errorf("ProfileType = %q, want PARTNER", in.ProfileType)
	}
	if in.Tags != nil {
		t.Errorf("Tags = %#v, want nil", in.Tags)
	}
}
