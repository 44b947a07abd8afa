package models

import (
	"github.com/aws/aws-sdk-go-v2/service/transfer/types"
	"golang.org/x/exp/slices"

	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// Tag is a resource tag as declared in the resource model
type Tag struct {
	Key   string `json:"Key" mapstructure:"Key" validate:"required,max=128"`
	Value string `json:"Value" mapstructure:"Value" validate:"max=256"`
}

// TagsToMap converts a tag list to a map. Later duplicates win.
func TagsToMap(list []Tag) map[string]string {
	m := make(map[string]string, len(list))
	for _, t := range list {
		m[t.Key] = t.Value
	}
	return m
}

// TagsFromWire converts Transfer API tags to model tags sorted by key.
// aws: prefixed system tags are dropped; an empty result is nil.
func TagsFromWire(wire []types.Tag) []Tag {
	m := tags.WithoutSystemTags(tags.FromWire(wire))
	if len(m) == 0 {
		return nil
	}

	list := make([]Tag, 0, len(m))
	for k, v := range m {
		list = append(list, Tag{Key: k, Value: v})
	}
	slices.SortFunc(list, func(a, b Tag) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return list
}
