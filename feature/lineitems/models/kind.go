package models

import "strings"

// Kind selects one of the two item collections attached to a document.
type Kind string

const (
	// KindInvoice holds revenue rows.
	KindInvoice Kind = "invoice"
	// KindCost holds expense rows; they may point at a supplier.
	KindCost Kind = "cost"
)

// Kinds lists every collection in teardown order.
var Kinds = []Kind{KindInvoice, KindCost}

// ParseKind accepts "invoice", "cost" and their "_items" table forms.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invoice", "invoice_items":
		return KindInvoice, true
	case "cost", "cost_items":
		return KindCost, true
	default:
		return "", false
	}
}

// TableSuffix is the table name without the installation prefix.
func (k Kind) TableSuffix() string {
	return "order_" + string(k) + "_items"
}

// HasSupplier reports whether the collection carries the supplier_id column.
func (k Kind) HasSupplier() bool {
	return k == KindCost
}
