package integrity

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"order-items/core/database"
	"order-items/core/storage"
	"order-items/core/storage/mocks"
	"order-items/feature/lineitems/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Table("wp_ktp_order_invoice_items").AutoMigrate(&models.InvoiceItem{}))
	require.NoError(t, db.Table("wp_ktp_order_cost_items").AutoMigrate(&models.LineItem{}))

	// Keep the interface nil rather than a nil *mocks.Client.
	var sc storage.Client
	if client != nil {
		sc = client
	}

	app := fiber.New()
	require.NoError(t, NewFeature(db, "wp_ktp_", sc, "documents", zap.NewNop()).Load(app))
	return app
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "sqlite", body["driver"])
}

func TestHandleStorageCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "documents").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "documents", mock.Anything).Return(nil)
	app := setupTestApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["bucket_exists"])
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	client.AssertCalled(t, "MakeBucket", mock.Anything, "documents", mock.Anything)
}

func TestHandleStorageCheck_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "documents").Return(false, errors.New("connection refused"))
	app := setupTestApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck_StorageDisabled(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "disabled", body["storage"]["status"])
	assert.Equal(t, true, body["schema"]["matched"])
}

func TestCheckSchema_NilDatabase(t *testing.T) {
	svc := NewService((*gorm.DB)(nil), "wp_ktp_", nil, "", zap.NewNop())
	_, err := svc.CheckSchema()
	assert.Error(t, err)
}

func TestFeature(t *testing.T) {
	f := NewFeature(nil, "wp_ktp_", nil, "", zap.NewNop())
	assert.Equal(t, "integrity", f.Name())
	assert.True(t, f.IsEnabled())
}
