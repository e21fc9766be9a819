package lineitems

import (
	"context"
	"fmt"

	"order-items/core/utils"
	"order-items/feature/lineitems/models"

	"go.uber.org/zap"
)

type fieldType int

const (
	textField fieldType = iota
	decimalField
	nonNegativeField
)

// patchable is the autosave allow-list.
var patchable = map[string]fieldType{
	"product_name": textField,
	"unit":         textField,
	"remarks":      textField,
	"price":        nonNegativeField,
	"quantity":     nonNegativeField,
	"amount":       decimalField,
}

// PatchField updates one allow-listed column of a row and stamps updated_at.
// sort_order and sibling rows are left alone.
func (s *Service) PatchField(ctx context.Context, kind models.Kind, id uint64, field string, value any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	ft, ok := patchable[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	var v any
	switch ft {
	case textField:
		v = utils.ToString(value)
	default:
		d, err := utils.ToDecimal(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, field, err)
		}
		if ft == nonNegativeField && d.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidValue, field)
		}
		v = d
	}

	err := s.store.Transaction(ctx, func(tx *Store) error {
		repo := tx.Items(kind)
		item, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		_, err = repo.UpdateField(ctx, item.ID, field, v)
		return err
	})
	if err != nil {
		s.logger.Warn("Patch failed",
			zap.String("kind", string(kind)),
			zap.Uint64("id", id),
			zap.String("field", field),
			zap.Error(err),
		)
		return err
	}
	return nil
}
