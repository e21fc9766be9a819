// Package lineitems manages the invoice and cost rows attached to an order
// document.
//
// A submission is a full replacement set: rows carrying an id are updated,
// named rows without an id are inserted, rows whose id is missing from the
// submission are deleted and sort_order is rewritten densely from 1. A row
// whose product name was cleared is kept; only the absence of its id deletes
// it. New rows with an empty name are ignored, and a submission made only of
// such rows deletes nothing. The load, writes and cleanup run in one
// transaction.
//
// # Components
//
//   - Store / Repository: typed access to the two item tables.
//   - Service: Save, PatchField, Reorder, SeedInitialItem, Teardown, DeleteItem,
//     List, Summary and Export.
//   - Handler: HTTP endpoints under /documents/:documentID and /items.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - GET    /documents/:documentID/items/:kind        : list items
//   - PUT    /documents/:documentID/items/:kind        : save a full set
//   - PUT    /documents/:documentID/items/:kind/order  : reorder
//   - DELETE /documents/:documentID/items/:kind/:id    : delete one item
//   - PATCH  /items/:kind/:id                          : autosave one field
//   - POST   /documents/:documentID/seed               : seed the blank row
//   - DELETE /documents/:documentID                    : teardown
//   - GET    /documents/:documentID/summary            : totals and profit
//   - POST   /documents/:documentID/export             : snapshot to storage
package lineitems
