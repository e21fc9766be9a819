package lineitems

import (
	"context"
	"testing"

	"order-items/feature/lineitems/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchField(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	prior := seedItems(t, svc, models.KindInvoice, 1, "A", "B")

	t.Run("TextField", func(t *testing.T) {
		require.NoError(t, svc.PatchField(ctx, models.KindInvoice, prior[1].ID, "product_name", "Renamed"))
		items, err := svc.List(ctx, models.KindInvoice, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "Renamed"}, names(items))
		assert.Equal(t, []int{1, 2}, sortOrders(items))
	})

	t.Run("NumericFieldFromFormValue", func(t *testing.T) {
		require.NoError(t, svc.PatchField(ctx, models.KindInvoice, prior[0].ID, "price", "1,250.5"))
		items, err := svc.List(ctx, models.KindInvoice, 1)
		require.NoError(t, err)
		assert.True(t, items[0].Price.Equal(decimal.RequireFromString("1250.5")))
	})

	t.Run("FieldOutsideAllowList", func(t *testing.T) {
		err := svc.PatchField(ctx, models.KindInvoice, prior[0].ID, "sort_order", 9)
		assert.ErrorIs(t, err, ErrInvalidField)
		err = svc.PatchField(ctx, models.KindInvoice, prior[0].ID, "document_id", 2)
		assert.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		assert.ErrorIs(t, svc.PatchField(ctx, models.KindInvoice, prior[0].ID, "quantity", "abc"), ErrInvalidValue)
		assert.ErrorIs(t, svc.PatchField(ctx, models.KindInvoice, prior[0].ID, "quantity", -1.0), ErrInvalidValue)
	})

	t.Run("UnknownID", func(t *testing.T) {
		assert.ErrorIs(t, svc.PatchField(ctx, models.KindInvoice, 999, "remarks", "x"), ErrNotFound)
	})

	t.Run("WrongCollection", func(t *testing.T) {
		assert.ErrorIs(t, svc.PatchField(ctx, models.KindCost, prior[0].ID, "remarks", "x"), ErrNotFound)
	})
}
