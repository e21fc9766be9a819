package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one persisted row of either collection.
// Invoice tables have no supplier_id column; SupplierID stays nil there.
type LineItem struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DocumentID  uint64          `gorm:"column:document_id;not null" json:"document_id"`
	ProductName string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,2);not null" json:"price"`
	Unit        string          `gorm:"column:unit;type:varchar(50);not null" json:"unit"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(20,2);not null" json:"quantity"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Remarks     string          `gorm:"column:remarks;type:text;not null" json:"remarks"`
	SortOrder   int             `gorm:"column:sort_order;not null" json:"sort_order"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
	SupplierID  *uint64         `gorm:"column:supplier_id" json:"supplier_id,omitempty"`
}

// InvoiceItem mirrors the invoice table, which lacks supplier_id.
// It is used to create and check that table only; reads and writes go through LineItem.
type InvoiceItem struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	DocumentID  uint64          `gorm:"column:document_id;not null"`
	ProductName string          `gorm:"column:product_name;type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,2);not null"`
	Unit        string          `gorm:"column:unit;type:varchar(50);not null"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(20,2);not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(20,2);not null"`
	Remarks     string          `gorm:"column:remarks;type:text;not null"`
	SortOrder   int             `gorm:"column:sort_order;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

// Columns returns the persisted column set of a collection in table order.
func Columns(k Kind) []string {
	cols := []string{
		"id", "document_id", "product_name", "price", "unit", "quantity",
		"amount", "remarks", "sort_order", "created_at", "updated_at",
	}
	if k.HasSupplier() {
		cols = append(cols, "supplier_id")
	}
	return cols
}

// Fields are the writable values of a row.
type Fields struct {
	ProductName string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	Unit        string
	Amount      decimal.Decimal
	Remarks     string
	SortOrder   int
	SupplierID  *uint64
}

// Position moves one row to a new sort order.
type Position struct {
	ID        uint64 `json:"id"`
	SortOrder int    `json:"sort_order"`
}
