package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mitchellh/mapstructure"
)

// ErrUnsafeNarrowing is returned when a model number cannot be represented
// exactly by the integer type the Transfer API expects
var ErrUnsafeNarrowing = errors.New("unsafe numeric narrowing")

// maxSafeInteger is the largest integer a float64 holds exactly (2^53)
const maxSafeInteger = 1 << 53

// StringPtr returns a pointer to the string value passed in
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to the float64 value passed in
func Float64Ptr(f float64) *float64 {
	return &f
}

// stringOrNil returns nil for the empty string, used for optional enum members
func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil returns s, or an empty non-nil slice when s is nil.
// Update-style requests send [] to clear a list member.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ToInt64 narrows a model number to int64, rejecting fractions and values
// outside the exactly representable range
func ToInt64(field string, v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s: %v is not an integer: %w", field, v, ErrUnsafeNarrowing)
	}
	if v > maxSafeInteger || v < -maxSafeInteger {
		return 0, fmt.Errorf("%s: %v is out of range: %w", field, v, ErrUnsafeNarrowing)
	}
	return int64(v), nil
}

// ToInt32 narrows a model number to int32
func ToInt32(field string, v float64) (int32, error) {
	i, err := ToInt64(field, v)
	if err != nil {
		return 0, err
	}
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, fmt.Errorf("%s: %v is out of range: %w", field, v, ErrUnsafeNarrowing)
	}
	return int32(i), nil
}

// parseTime parses an optional RFC 3339 timestamp
func parseTime(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

// formatTime renders an optional timestamp as RFC 3339 in UTC
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return StringPtr(t.UTC().Format(time.RFC3339))
}

// Decode populates a resource model from CloudFormation resource properties.
// CloudFormation may deliver scalars as strings ("1000", "true"), so decoding is
// weakly typed. Unknown properties are ignored.
func Decode(properties map[string]interface{}, out interface{}) error {
	if properties == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(properties); err != nil {
		return fmt.Errorf("failed to decode resource properties: %w", err)
	}
	return nil
}

// toEnums converts model strings to a remote enum slice; empty input yields nil
func toEnums[E ~string](values []string) []E {
	if len(values) == 0 {
		return nil
	}
	out := make([]E, len(values))
	for i, v := range values {
		out[i] = E(v)
	}
	return out
}

// fromEnums converts a remote enum slice to model strings; empty input yields nil
func fromEnums[E ~string](values []E) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
