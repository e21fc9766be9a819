package lineitems

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"order-items/core/storage/mocks"
	"order-items/feature/lineitems/models"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func saveSummaryFixture(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Save(ctx, models.KindInvoice, 5, []models.SubmittedLineItem{
		item("Design", "100.2", "1"),
		item("Print", "50.1", "1"),
	}, SaveOptions{})
	require.NoError(t, err)
	_, err = svc.Save(ctx, models.KindCost, 5, []models.SubmittedLineItem{
		item("Paper", "30.5", "1"),
	}, SaveOptions{})
	require.NoError(t, err)
}

func TestSummary(t *testing.T) {
	svc, _ := newTestService(t)
	saveSummaryFixture(t, svc)

	sum, err := svc.Summary(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, sum.InvoiceItems, 2)
	assert.Len(t, sum.CostItems, 1)
	assert.True(t, sum.InvoiceTotal.Equal(decimal.NewFromInt(151)))
	assert.True(t, sum.CostTotal.Equal(decimal.NewFromInt(31)))
	assert.True(t, sum.Profit.Equal(decimal.NewFromInt(120)))
}

func TestSummary_EmptyDocument(t *testing.T) {
	svc, _ := newTestService(t)

	sum, err := svc.Summary(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, sum.InvoiceItems)
	assert.Empty(t, sum.CostItems)
	assert.True(t, sum.Profit.IsZero())
}

func TestExport(t *testing.T) {
	svc, _ := newTestService(t)
	saveSummaryFixture(t, svc)

	var uploaded []byte
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "documents").Return(true, nil)
	client.On("PutObject", mock.Anything, "documents", "snapshots/5/items.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	svc = NewService(svc.store, svc.cfg, nil, client, "documents", zap.NewNop())

	key, err := svc.Export(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "snapshots/5/items.json", key)

	var snap models.Summary
	require.NoError(t, json.NewDecoder(bytes.NewReader(uploaded)).Decode(&snap))
	assert.Equal(t, uint64(5), snap.DocumentID)
	assert.True(t, snap.Profit.Equal(decimal.NewFromInt(120)))
	client.AssertExpectations(t)
}

func TestExport_Disabled(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Export(context.Background(), 5)
	assert.ErrorIs(t, err, ErrExportDisabled)
}
