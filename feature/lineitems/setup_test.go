package lineitems

import (
	"context"
	"strconv"
	"testing"
	"time"

	"order-items/core/database"
	"order-items/feature/lineitems/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	store := NewStore(db, "wp_ktp_")
	store.now = func() time.Time { return testNow }
	require.NoError(t, store.EnsureSchema(context.Background()))
	return NewService(store, Config{DefaultUnit: "式", ExportPrefix: "snapshots"}, nil, nil, "documents", zap.NewNop()), db
}

func item(name, price, qty string) models.SubmittedLineItem {
	return models.SubmittedLineItem{
		ProductName: name,
		Price:       decimal.RequireFromString(price),
		Quantity:    decimal.RequireFromString(qty),
		Unit:        "個",
	}
}

func withID(id uint64, s models.SubmittedLineItem) models.SubmittedLineItem {
	s.ID = id
	return s
}

func names(items []models.LineItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductName
	}
	return out
}

func sortOrders(items []models.LineItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.SortOrder
	}
	return out
}

func itemIDs(items []models.LineItem) []uint64 {
	out := make([]uint64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// seedItems saves named rows for a document and returns them as persisted.
func seedItems(t *testing.T, svc *Service, kind models.Kind, documentID uint64, productNames ...string) []models.LineItem {
	t.Helper()
	subs := make([]models.SubmittedLineItem, len(productNames))
	for i, n := range productNames {
		subs[i] = item(n, "100", "1")
	}
	res, err := svc.Save(context.Background(), kind, documentID, subs, SaveOptions{})
	require.NoError(t, err)
	require.Len(t, res.Items, len(productNames))
	return res.Items
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
