package checks

import (
	"context"
	"fmt"

	"order-items/core/storage"

	"go.uber.org/zap"
)

// CheckBucket reports whether the snapshot bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return exists, nil
}

// FixBucket creates the snapshot bucket.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}
	logger.Info("Snapshot bucket ready", zap.String("bucket", bucket))
	return nil
}
