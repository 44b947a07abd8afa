package tags

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		layers []map[string]string
		want   map[string]string
	}{
		{
			name:   "No layers",
			layers: nil,
			want:   map[string]string{},
		},
		{
			name:   "Nil layers are skipped",
			layers: []map[string]string{nil, {"key": "value"}, nil},
			want:   map[string]string{"key": "value"},
		},
		{
			name: "Resource tags then system tags",
			layers: []map[string]string{
				{"key": "value"},
				{"aws:cloudformation:stack-name": "StackName"},
			},
			want: map[string]string{
				"key":                           "value",
				"aws:cloudformation:stack-name": "StackName",
			},
		},
		{
			name: "Later layer wins on collision",
			layers: []map[string]string{
				{"env": "dev", "team": "a"},
				{"env": "prod"},
			},
			want: map[string]string{"env": "prod", "team": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.layers...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	in := map[string]string{"a": "1"}
	out := Merge(in)
	out["b"] = "2"
	if _, ok := in["b"]; ok {
		t.Error("Merge() returned a map aliasing its input")
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		previous   map[string]string
		desired    map[string]string
		wantAdd    map[string]string
		wantRemove map[string]string
		wantKeys   []string
	}{
		{
			name:     "Create from nothing with system tags",
			previous: nil,
			desired: Merge(
				map[string]string{"key": "value"},
				map[string]string{"aws:cloudformation:stack-name": "StackName"},
			),
			wantAdd: map[string]string{
				"key":                           "value",
				"aws:cloudformation:stack-name": "StackName",
			},
			wantRemove: map[string]string{},
			wantKeys:   []string{},
		},
		{
			name:       "Removed key",
			previous:   map[string]string{"keep": "1", "drop": "2"},
			desired:    map[string]string{"keep": "1"},
			wantAdd:    map[string]string{},
			wantRemove: map[string]string{"drop": "2"},
			wantKeys:   []string{"drop"},
		},
		{
			name:       "Changed value appears in both",
			previous:   map[string]string{"env": "dev"},
			desired:    map[string]string{"env": "prod"},
			wantAdd:    map[string]string{"env": "prod"},
			wantRemove: map[string]string{"env": "dev"},
			wantKeys:   []string{"env"},
		},
		{
			name:       "Mixed add, remove and change",
			previous:   map[string]string{"a": "1", "b": "2", "c": "3"},
			desired:    map[string]string{"a": "1", "b": "20", "d": "4"},
			wantAdd:    map[string]string{"b": "20", "d": "4"},
			wantRemove: map[string]string{"b": "2", "c": "3"},
			wantKeys:   []string{"b", "c"},
		},
		{
			name:       "Both empty",
			previous:   map[string]string{},
			desired:    nil,
			wantAdd:    map[string]string{},
			wantRemove: map[string]string{},
			wantKeys:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff(tt.previous, tt.desired)
			if diff := cmp.Diff(tt.wantAdd, d.ToAdd); diff != "" {
				t.Errorf("ToAdd mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRemove, d.ToRemove); diff != "" {
				t.Errorf("ToRemove mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantKeys, d.RemoveKeys()); diff != "" {
				t.Errorf("RemoveKeys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffDisjointWhenNoValueChanged(t *testing.T) {
	previous := map[string]string{"a": "1", "b": "2", "c": "3"}
	desired := map[string]string{"b": "2", "c": "3", "d": "4", "e": "5"}

	d := Diff(previous, desired)
	for k := range d.ToAdd {
		if _, ok := d.ToRemove[k]; ok {
			t.Errorf("key %q present in both ToAdd and ToRemove", k)
		}
	}
}

func TestDiffIdempotent(t *testing.T) {
	pairs := []struct {
		previous map[string]string
		desired  map[string]string
	}{
		{nil, map[string]string{"a": "1"}},
		{map[string]string{"a": "1"}, nil},
		{map[string]string{"a": "1", "b": "2"}, map[string]string{"a": "10", "c": "3"}},
	}

	for _, p := range pairs {
		d := Diff(p.previous, p.desired)

		// Apply the delta the way the update handler does
		applied := Merge(p.previous)
		for _, k := range d.RemoveKeys() {
			delete(applied, k)
		}
		for k, v := range d.ToAdd {
			applied[k] = v
		}

		if diff := cmp.Diff(Merge(p.desired), applied); diff != "" {
			t.Errorf("applied state mismatch (-want +got):\n%s", diff)
		}
		if again := Diff(applied, p.desired); !again.Empty() {
			t.Errorf("Diff after apply = %+v, want empty", again)
		}
	}
}

func TestToWire(t *testing.T) {
	if got := ToWire(nil); got != nil {
		t.Errorf("ToWire(nil) = %v, want nil", got)
	}
	if got := ToWire(map[string]string{}); got != nil {
		t.Errorf("ToWire(empty) = %v, want nil", got)
	}

	got := ToWire(map[string]string{"b": "2", "a": "1"})
	want := []types.Tag{
		{Key: aws.String("a"), Value: aws.String("1")},
		{Key: aws.String("b"), Value: aws.String("2")},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(types.Tag{})); diff != "" {
		t.Errorf("ToWire() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromWireLastWriteWins(t *testing.T) {
	got := FromWire([]types.Tag{
		{Key: aws.String("env"), Value: aws.String("dev")},
		{Key: aws.String("env"), Value: aws.String("prod")},
	})
	if diff := cmp.Diff(map[string]string{"env": "prod"}, got); diff != "" {
		t.Errorf("FromWire() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithoutSystemTags(t *testing.T) {
	got := WithoutSystemTags(map[string]string{
		"aws:cloudformation:stack-name": "StackName",
		"key":                           "value",
	})
	if diff := cmp.Diff(map[string]string{"key": "value"}, got); diff != "" {
		t.Errorf("WithoutSystemTags() mismatch (-want +got):\n%s", diff)
	}
}
