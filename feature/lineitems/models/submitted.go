package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SubmittedLineItem is one row of a full replacement submission.
// ID zero means the row is new.
type SubmittedLineItem struct {
	ID          uint64           `json:"id"`
	ProductName string           `json:"product_name"`
	Price       decimal.Decimal  `json:"price"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Remarks     string           `json:"remarks"`
	SupplierID  *uint64          `json:"supplier_id,omitempty"`
}

// IsBlank reports an empty (or whitespace-only) product name.
func (s SubmittedLineItem) IsBlank() bool {
	return strings.TrimSpace(s.ProductName) == ""
}

// ResolvedAmount is the supplied amount when present, else price × quantity.
func (s SubmittedLineItem) ResolvedAmount() decimal.Decimal {
	if s.Amount != nil {
		return *s.Amount
	}
	return s.Price.Mul(s.Quantity)
}

// Fields converts the submission to writable values at the given position.
func (s SubmittedLineItem) Fields(sortOrder int) Fields {
	return Fields{
		ProductName: s.ProductName,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Unit:        s.Unit,
		Amount:      s.ResolvedAmount(),
		Remarks:     s.Remarks,
		SortOrder:   sortOrder,
		SupplierID:  s.SupplierID,
	}
}
