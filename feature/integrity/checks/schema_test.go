package checks

import (
	"testing"

	"order-items/core/database"
	"order-items/feature/lineitems/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(kind models.Kind) *sqlmock.Rows {
	types := map[string]string{
		"id": "bigint(20) unsigned", "document_id": "bigint(20) unsigned",
		"product_name": "varchar(255)", "price": "decimal(20,2)", "unit": "varchar(50)",
		"quantity": "decimal(20,2)", "amount": "decimal(20,2)", "remarks": "text",
		"sort_order": "int(11)", "created_at": "datetime", "updated_at": "datetime",
		"supplier_id": "bigint(20) unsigned",
	}
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, col := range models.Columns(kind) {
		rows.AddRow(col, types[col], "NO", "", nil, "")
	}
	return rows
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, "wp_ktp_")
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MySQLMatch(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_invoice_items`").WillReturnRows(columnRows(models.KindInvoice))
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_cost_items`").WillReturnRows(columnRows(models.KindCost))

	report, err := CheckSchema(db, "wp_ktp_")
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
	assert.Equal(t, "ok", report.Tables["wp_ktp_order_cost_items"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_SupplierOnInvoiceTable(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_invoice_items`").WillReturnRows(columnRows(models.KindCost))
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_cost_items`").WillReturnRows(columnRows(models.KindInvoice))

	report, err := CheckSchema(db, "wp_ktp_")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"supplier_id"}, report.Tables["wp_ktp_order_invoice_items"].UnexpectedColumns)
	assert.Equal(t, []string{"supplier_id"}, report.Tables["wp_ktp_order_cost_items"].MissingColumns)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, col := range models.Columns(models.KindInvoice) {
		typ := "varchar(255)"
		if col == "price" {
			typ = "int(11)"
		}
		rows.AddRow(col, typ, "NO", "", nil, "")
	}
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_invoice_items`").WillReturnRows(rows)
	mock.ExpectQuery("SHOW COLUMNS FROM `wp_ktp_order_cost_items`").WillReturnRows(columnRows(models.KindCost))

	report, err := CheckSchema(db, "wp_ktp_")
	require.NoError(t, err)
	assert.Contains(t, report.Tables["wp_ktp_order_invoice_items"].TypeMismatches,
		"price: expected decimal(20,2), got int(11)")
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Table("wp_ktp_order_invoice_items").AutoMigrate(&models.InvoiceItem{}))

	report, err := CheckSchema(db, "wp_ktp_")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["wp_ktp_order_invoice_items"].Status)
	assert.Equal(t, "error", report.Tables["wp_ktp_order_cost_items"].Status)
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, typeMatches("decimal(20,2)", "decimal(20,2)"))
	assert.True(t, typeMatches("decimal(20,2)", "numeric"))
	assert.True(t, typeMatches("varchar(255)", "character varying"))
	assert.True(t, typeMatches("varchar(50)", "varchar(64)"))
	assert.False(t, typeMatches("decimal(20,2)", "int(11)"))
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "price", parseGormColumn("type:decimal(20,2);column:price"))
	assert.Equal(t, "text", parseGormType("column:remarks;type:text;not null"))
	assert.Equal(t, "", parseGormType("column:id"))
}
