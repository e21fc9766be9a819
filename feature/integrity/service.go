package integrity

import (
	"context"

	"order-items/core/storage"
	"order-items/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	prefix string
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when export is disabled.
func NewService(db *gorm.DB, prefix string, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		prefix: prefix,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckSchema compares the item tables with the row models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.prefix)
}

// CheckBucket reports whether the snapshot bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (bool, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the snapshot bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	return checks.FixBucket(ctx, s.client, s.bucket, "", s.logger)
}
