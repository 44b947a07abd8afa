package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transfer"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/tags"
)

// applyTagDelta untags every key of ToRemove, then tags ToAdd. A key whose
// value changed is in both calls and ends with its new value. Nothing is rolled
// back if the second call fails.
func applyTagDelta(ctx context.Context, api client.TransferAPI, resourceARN string, delta tags.Delta) error {
	removeKeys := delta.RemoveKeys()
	LogTagDelta(ctx, resourceARN, len(delta.ToAdd), len(removeKeys))

	if len(removeKeys) > 0 {
		_, err := api.UntagResource(ctx, &transfer.UntagResourceInput{
			Arn:     aws.String(resourceARN),
			TagKeys: removeKeys,
		})
		if err != nil {
			return fmt.Errorf("failed to untag %s: %w", resourceARN, err)
		}
	}

	if len(delta.ToAdd) > 0 {
		_, err := api.TagResource(ctx, &transfer.TagResourceInput{
			Arn:  aws.String(resourceARN),
			Tags: tags.ToWire(delta.ToAdd),
		})
		if err != nil {
			return fmt.Errorf("failed to tag %s: %w", resourceARN, err)
		}
	}

	return nil
}
