// Package tags merges tag maps and computes the tag delta between two resource states
package tags

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"golang.org/x/exp/slices"
)

// SystemTagPrefix marks tags owned by AWS (aws:cloudformation:stack-name and friends)
const SystemTagPrefix = "aws:"

// Merge combines tag maps into a new map. Layers are applied in order, so a later
// layer overwrites an earlier one on key collision. Nil layers are skipped.
func Merge(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Delta is the difference between a previous and a desired tag state.
// Tags are compared as whole key+value pairs, so a key whose value changed
// appears in both ToAdd and ToRemove.
type Delta struct {
	ToAdd    map[string]string
	ToRemove map[string]string
}

// Diff computes desired − previous (ToAdd) and previous − desired (ToRemove).
// A nil map is treated as empty.
func Diff(previous, desired map[string]string) Delta {
	d := Delta{
		ToAdd:    make(map[string]string),
		ToRemove: make(map[string]string),
	}

	for k, v := range desired {
		if pv, ok := previous[k]; !ok || pv != v {
			d.ToAdd[k] = v
		}
	}
	for k, v := range previous {
		if dv, ok := desired[k]; !ok || dv != v {
			d.ToRemove[k] = v
		}
	}

	return d
}

// Empty reports whether no tag calls are needed
func (d Delta) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// RemoveKeys returns the sorted keys of ToRemove. A key whose value changed is
// included; the tag call that follows sets its new value.
func (d Delta) RemoveKeys() []string {
	keys := make([]string, 0, len(d.ToRemove))
	for k := range d.ToRemove {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ToWire converts a tag map to the Transfer API tag list, sorted by key.
// An empty or nil map yields nil so create-style requests omit the Tags member.
func ToWire(m map[string]string) []types.Tag {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(m[k])})
	}
	return out
}

// FromWire converts a Transfer API tag list to a map. Later duplicates win.
func FromWire(wire []types.Tag) map[string]string {
	m := make(map[string]string, len(wire))
	for _, t := range wire {
		m[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

// WithoutSystemTags returns a copy of m without aws: prefixed keys
func WithoutSystemTags(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if strings.HasPrefix(k, SystemTagPrefix) {
			continue
		}
		out[k] = v
	}
	return out
}
