package validators

import (
	"testing"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		value     string
		expectErr bool
	}{
		{name: "valid server id", tag: "serverid", value: "s-01234567890abcdef", expectErr: false},
		{name: "server id too short", tag: "serverid", value: "s-0123456789", expectErr: true},
		{name: "server id uppercase hex", tag: "serverid", value: "s-01234567890ABCDEF", expectErr: true},
		{name: "server id wrong prefix", tag: "serverid", value: "p-01234567890abcdef", expectErr: true},
		{name: "valid agreement id", tag: "agreementid", value: "a-01234567890abcdef", expectErr: false},
		{name: "invalid agreement id", tag: "agreementid", value: "a-xyz", expectErr: true},
		{name: "valid profile id", tag: "profileid", value: "p-01234567890abcdef", expectErr: false},
		{name: "valid certificate id", tag: "certificateid", value: "cert-01234567890abcdef", expectErr: false},
		{name: "certificate id missing prefix", tag: "certificateid", value: "01234567890abcdef", expectErr: true},
		{name: "valid web app id", tag: "webappid", value: "webapp-01234567890abcdef", expectErr: false},
		{name: "valid user name", tag: "transferusername", value: "alice.smith@example", expectErr: false},
		{name: "user name too short", tag: "transferusername", value: "al", expectErr: true},
		{name: "user name leading dash", tag: "transferusername", value: "-alice", expectErr: true},
		{name: "user name with space", tag: "transferusername", value: "alice smith", expectErr: true},
		{name: "valid role ARN", tag: "iamrolearn", value: "arn:aws:iam::123456789012:role/transfer-access", expectErr: false},
		{name: "role ARN with path", tag: "iamrolearn", value: "arn:aws-cn:iam::123456789012:role/service/transfer", expectErr: false},
		{name: "user ARN is not a role", tag: "iamrolearn", value: "arn:aws:iam::123456789012:user/alice", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Var(tt.value, tt.tag)
			if (err != nil) != tt.expectErr {
				t.Errorf("Var(%q, %q) error = %v, expectErr %v", tt.value, tt.tag, err, tt.expectErr)
			}
		})
	}
}
