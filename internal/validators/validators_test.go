package validators

import (
	"errors"
	"strings"
	"testing"
)

type testNested struct {
	Role *string `json:"Role,omitempty" validate:"required,iamrolearn"`
}

type testModel struct {
	ServerID *string     `json:"ServerId,omitempty" validate:"required,serverid"`
	Status   *string     `json:"Status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Nested   *testNested `json:"Nested,omitempty"`
	Ignored  string      `json:"-"`
}

func strPtr(s string) *string { return &s }

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		model       testModel
		wantFields  []string
		errContains string
	}{
		{
			name:  "valid model",
			model: testModel{ServerID: strPtr("s-01234567890abcdef"), Status: strPtr("ACTIVE")},
		},
		{
			name:        "missing required",
			model:       testModel{},
			wantFields:  []string{"ServerId"},
			errContains: "ServerId failed 'required'",
		},
		{
			name:        "bad enum",
			model:       testModel{ServerID: strPtr("s-01234567890abcdef"), Status: strPtr("PAUSED")},
			wantFields:  []string{"Status"},
			errContains: "Status failed 'oneof=ACTIVE INACTIVE'",
		},
		{
			name: "nested field uses property path",
			model: testModel{
				ServerID: strPtr("s-01234567890abcdef"),
				Nested:   &testNested{Role: strPtr("not-a-role")},
			},
			wantFields:  []string{"Nested.Role"},
			errContains: "Nested.Role failed 'iamrolearn'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.model)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Struct() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Struct() error = %v (%T), want *ValidationError", err, err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("Struct() reported %d fields, want %d: %v", len(verr.Fields), len(tt.wantFields), verr)
			}
			for i, f := range tt.wantFields {
				if verr.Fields[i].Field != f {
					t.Errorf("Fields[%d] = %q, want %q", i, verr.Fields[i].Field, f)
				}
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Struct() error = %q, want error containing %q", err.Error(), tt.errContains)
			}
		})
	}
}
