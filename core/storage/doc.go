// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface. The line-item
// feature uses it to publish read-only document snapshots (items and totals) for
// the external PDF and email renderers, and to remove them on document teardown.
// Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface makes storage interactions mockable in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
