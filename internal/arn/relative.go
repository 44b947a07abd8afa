package arn

import (
	"fmt"
	"strings"
)

// relativeIDSeparator joins the parts of an ARN's relative id (serverId/userName)
const relativeIDSeparator = "/"

// BuildRelativeID joins id parts into the relative id that follows the resource type token
func BuildRelativeID(parts ...string) string {
	return strings.Join(parts, relativeIDSeparator)
}

// ParseRelativeID splits a relative id into exactly expectedParts non-empty parts
func ParseRelativeID(id string, expectedParts int) ([]string, error) {
	parts := strings.Split(id, relativeIDSeparator)
	if len(parts) != expectedParts {
		return nil, fmt.Errorf("expected %d parts separated by '%s', got %d parts in '%s'",
			expectedParts, relativeIDSeparator, len(parts), id)
	}

	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("part %d is empty in '%s'", i+1, id)
		}
	}

	return parts, nil
}
