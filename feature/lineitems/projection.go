package lineitems

import (
	"context"
	"strconv"

	"order-items/feature/lineitems/models"
)

// List returns a document's rows of one kind in display order.
func (s *Service) List(ctx context.Context, kind models.Kind, documentID uint64) ([]models.LineItem, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return s.store.Items(kind).List(ctx, documentID)
}

// Summary loads both collections with their rounded-up totals and the profit.
// Concurrent calls for the same document share one load; the result is read-only.
func (s *Service) Summary(ctx context.Context, documentID uint64) (*models.Summary, error) {
	v, err, _ := s.reads.Do(strconv.FormatUint(documentID, 10), func() (any, error) {
		sum := &models.Summary{DocumentID: documentID}
		err := s.store.Transaction(ctx, func(tx *Store) error {
			var err error
			if sum.InvoiceItems, err = tx.Items(models.KindInvoice).List(ctx, documentID); err != nil {
				return err
			}
			sum.CostItems, err = tx.Items(models.KindCost).List(ctx, documentID)
			return err
		})
		if err != nil {
			return nil, err
		}
		sum.InvoiceTotal = models.Total(sum.InvoiceItems)
		sum.CostTotal = models.Total(sum.CostItems)
		sum.Profit = sum.InvoiceTotal.Sub(sum.CostTotal)
		return sum, nil
	})
	if err != nil {
		return nil, s.fail("summary", "", documentID, err)
	}
	return v.(*models.Summary), nil
}
