package models

import "github.com/shopspring/decimal"

// Summary is the read-only projection consumed by table, invoice and email renderers.
type Summary struct {
	DocumentID   uint64          `json:"document_id"`
	InvoiceItems []LineItem      `json:"invoice_items"`
	CostItems    []LineItem      `json:"cost_items"`
	InvoiceTotal decimal.Decimal `json:"invoice_total"`
	CostTotal    decimal.Decimal `json:"cost_total"`
	Profit       decimal.Decimal `json:"profit"`
}

// Total sums the amounts of items and rounds up to a whole unit.
func Total(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum.Ceil()
}
