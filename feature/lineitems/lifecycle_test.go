package lineitems

import (
	"context"
	"errors"
	"testing"

	"order-items/core/storage/mocks"
	"order-items/feature/lineitems/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedInitialItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, seeded, err := svc.SeedInitialItem(ctx, 10)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.NotZero(t, id)

	items, err := svc.List(ctx, models.KindInvoice, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].ProductName)
	assert.Equal(t, "式", items[0].Unit)
	assert.Equal(t, 1, items[0].SortOrder)
	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(1)))

	_, seeded, err = svc.SeedInitialItem(ctx, 10)
	require.NoError(t, err)
	assert.False(t, seeded)

	items, err = svc.List(ctx, models.KindInvoice, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	cost, err := svc.List(ctx, models.KindCost, 10)
	require.NoError(t, err)
	assert.Empty(t, cost)
}

func TestSeededRowSurvivesFirstSave(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	id, _, err := svc.SeedInitialItem(ctx, 3)
	require.NoError(t, err)

	_, err = svc.Save(ctx, models.KindInvoice, 3, []models.SubmittedLineItem{
		withID(id, item("Filled in", "10", "1")),
		item("", "0", "1"),
	}, SaveOptions{})
	require.NoError(t, err)

	items, err := svc.List(ctx, models.KindInvoice, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, itemIDs(items))
	assert.Equal(t, "Filled in", items[0].ProductName)
}

func TestTeardown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "documents", "snapshots/1/items.json", mock.Anything).
		Return(errors.New("network down"))
	svc = NewService(svc.store, svc.cfg, nil, client, "documents", zap.NewNop())

	seedItems(t, svc, models.KindInvoice, 1, "A", "B")
	seedItems(t, svc, models.KindCost, 1, "C")
	keep := seedItems(t, svc, models.KindCost, 2, "D")

	res, err := svc.Teardown(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.InvoiceItems)
	assert.Equal(t, int64(1), res.CostItems)
	assert.Equal(t, "network down", res.SnapshotError)

	for _, kind := range models.Kinds {
		items, err := svc.List(ctx, kind, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	}

	other, err := svc.List(ctx, models.KindCost, 2)
	require.NoError(t, err)
	assert.Equal(t, itemIDs(keep), itemIDs(other))
	client.AssertExpectations(t)
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mine := seedItems(t, svc, models.KindCost, 1, "A", "B")
	theirs := seedItems(t, svc, models.KindCost, 2, "X")

	err := svc.DeleteItem(ctx, models.KindCost, theirs[0].ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteItem(ctx, models.KindCost, mine[0].ID, 1))

	items, err := svc.List(ctx, models.KindCost, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{mine[1].ID}, itemIDs(items))

	other, err := svc.List(ctx, models.KindCost, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
