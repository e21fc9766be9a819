package lineitems

import (
	"context"
	"fmt"

	"order-items/feature/lineitems/models"
)

// Reorder writes the given positions in one transaction. Each update is scoped
// to documentID, so ids of other documents match nothing and are left untouched.
// Positions are applied as given; density is the caller's contract.
// It returns the number of rows moved.
func (s *Service) Reorder(ctx context.Context, kind models.Kind, documentID uint64, positions []models.Position) (int64, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}

	var moved int64
	err := s.withLock(ctx, documentID, []models.Kind{kind}, func() error {
		return s.store.Transaction(ctx, func(tx *Store) error {
			repo := tx.Items(kind)
			moved = 0
			for _, p := range positions {
				n, err := repo.UpdateSortOrder(ctx, p.ID, documentID, p.SortOrder)
				if err != nil {
					return fmt.Errorf("failed to reorder item %d: %w", p.ID, err)
				}
				moved += n
			}
			return nil
		})
	})
	if err != nil {
		return 0, s.fail("reorder", kind, documentID, err)
	}
	return moved, nil
}
