package lineitems

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"order-items/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotKey is the object key of a document's exported summary.
func (s *Service) SnapshotKey(documentID uint64) string {
	return path.Join(s.cfg.ExportPrefix, strconv.FormatUint(documentID, 10), "items.json")
}

// Export writes the document summary as JSON to object storage for the
// PDF and email renderers and returns the object key.
func (s *Service) Export(ctx context.Context, documentID uint64) (string, error) {
	if s.client == nil {
		return "", ErrExportDisabled
	}

	sum, err := s.Summary(ctx, documentID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, ""); err != nil {
		return "", s.fail("export", "", documentID, err)
	}

	key := s.SnapshotKey(documentID)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", s.fail("export", "", documentID, fmt.Errorf("failed to upload snapshot: %w", err))
	}

	s.logger.Info("Snapshot exported", zap.Uint64("document_id", documentID), zap.String("key", key))
	return key, nil
}
