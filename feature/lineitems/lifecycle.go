package lineitems

import (
	"context"
	"errors"

	"order-items/feature/lineitems/models"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SeedInitialItem gives a new document one blank, editable invoice row.
// It reports false and writes nothing when the document already has invoice rows.
func (s *Service) SeedInitialItem(ctx context.Context, documentID uint64) (uint64, bool, error) {
	var id uint64
	err := s.store.Transaction(ctx, func(tx *Store) error {
		repo := tx.Items(models.KindInvoice)
		existing, err := repo.List(ctx, documentID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		id, err = repo.Insert(ctx, documentID, models.Fields{
			ProductName: "",
			Price:       decimal.Zero,
			Quantity:    decimal.NewFromInt(1),
			Unit:        s.cfg.DefaultUnit,
			Amount:      decimal.Zero,
			SortOrder:   1,
		})
		return err
	})
	if err != nil {
		return 0, false, s.fail("seed", models.KindInvoice, documentID, err)
	}
	return id, id != 0, nil
}

// TeardownResult counts the rows removed per collection.
type TeardownResult struct {
	DocumentID    uint64 `json:"document_id"`
	InvoiceItems  int64  `json:"invoice_items"`
	CostItems     int64  `json:"cost_items"`
	SnapshotError string `json:"snapshot_error,omitempty"`
}

// Teardown deletes every invoice and cost row of a document in one transaction.
// The exported snapshot, if any, is removed afterwards on a best-effort basis.
func (s *Service) Teardown(ctx context.Context, documentID uint64) (*TeardownResult, error) {
	result := &TeardownResult{DocumentID: documentID}

	err := s.withLock(ctx, documentID, models.Kinds, func() error {
		return s.store.Transaction(ctx, func(tx *Store) error {
			var err error
			if result.InvoiceItems, err = tx.Items(models.KindInvoice).DeleteAll(ctx, documentID); err != nil {
				return err
			}
			result.CostItems, err = tx.Items(models.KindCost).DeleteAll(ctx, documentID)
			return err
		})
	})
	if err != nil {
		return nil, s.fail("teardown", "", documentID, err)
	}

	if s.client != nil {
		err := s.client.RemoveObject(ctx, s.bucket, s.SnapshotKey(documentID), minio.RemoveObjectOptions{})
		if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
			result.SnapshotError = err.Error()
			s.logger.Warn("Failed to remove snapshot",
				zap.Uint64("document_id", documentID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Document items removed",
		zap.Uint64("document_id", documentID),
		zap.Int64("invoice_items", result.InvoiceItems),
		zap.Int64("cost_items", result.CostItems),
	)
	return result, nil
}

// DeleteItem removes one row after checking it belongs to documentID.
func (s *Service) DeleteItem(ctx context.Context, kind models.Kind, id, documentID uint64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.store.Items(kind).DeleteOne(ctx, id, documentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return s.fail("delete", kind, documentID, err)
	}
	return nil
}
