package models

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    int64
		wantErr bool
	}{
		{name: "Zero", value: 0, want: 0},
		{name: "Typical uid", value: 1000, want: 1000},
		{name: "Negative integral", value: -5, want: -5},
		{name: "Largest safe integer", value: 1 << 53, want: 1 << 53},
		{name: "Fraction", value: 1.5, wantErr: true},
		{name: "2^63", value: math.Pow(2, 63), wantErr: true},
		{name: "Just beyond safe range", value: 1<<53 + 2, wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "Infinity", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64("Uid", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInt64(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsafeNarrowing) {
					t.Errorf("ToInt64(%v) error = %v, want ErrUnsafeNarrowing", tt.value, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ToInt64(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestToInt32(t *testing.T) {
	if got, err := ToInt32("WebAppUnits.Provisioned", 4); err != nil || got != 4 {
		t.Errorf("ToInt32(4) = %d, %v; want 4, nil", got, err)
	}
	if _, err := ToInt32("WebAppUnits.Provisioned", math.MaxInt32+1); !errors.Is(err, ErrUnsafeNarrowing) {
		t.Errorf("ToInt32(MaxInt32+1) error = %v, want ErrUnsafeNarrowing", err)
	}
}

func TestDecode(t *testing.T) {
	properties := map[string]interface{}{
		"ServerId": "s-01234567890abcdef",
		"UserName": "alice",
		"Role":     "arn:aws:iam::123456789012:role/transfer-access",
		"PosixProfile": map[string]interface{}{
			"Uid":           "1000",
			"Gid":           1000,
			"SecondaryGids": []interface{}{"2000", 3000.0},
		},
		"HomeDirectoryMappings": []interface{}{
			map[string]interface{}{"Entry": "/", "Target": "/bucket/alice"},
		},
		"Tags": []interface{}{
			map[string]interface{}{"Key": "team", "Value": "payments"},
		},
		"UnknownProperty": "ignored",
	}

	var got User
	if err := Decode(properties, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := User{
		ServerID: StringPtr("s-01234567890abcdef"),
		UserName: StringPtr("alice"),
		Role:     StringPtr("arn:aws:iam::123456789012:role/transfer-access"),
		PosixProfile: &PosixProfile{
			UID:           Float64Ptr(1000),
			GID:           Float64Ptr(1000),
			SecondaryGIDs: []float64{2000, 3000},
		},
		HomeDirectoryMappings: []HomeDirectoryMapEntry{
			{Entry: StringPtr("/"), Target: StringPtr("/bucket/alice")},
		},
		Tags: []Tag{{Key: "team", Value: "payments"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNilProperties(t *testing.T) {
	var got Server
	if err := Decode(nil, &got); err != nil {
		t.Fatalf("Decode(nil) error = %v", err)
	}
	if diff := cmp.Diff(Server{}, got); diff != "" {
		t.Errorf("Decode(nil) mismatch (-want +got):\n%s", diff)
	}
}
