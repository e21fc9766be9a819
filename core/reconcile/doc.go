// Package reconcile plans and applies the reconciliation of a submitted,
// complete replacement set of rows against the rows already persisted for one
// owner.
//
// # Architecture
//
// The work is split in two steps:
//
// 1. BuildPlan: a pure function that walks the submission in order and decides,
//    per row, whether to insert, update or skip it, assigning dense 1-based sort
//    positions to the rows that are written. It also records which existing ids
//    the submission carried.
//
// 2. ApplyPlan: executes the plan through a Mutator (the storage adapter), then
//    removes persisted rows that are neither carried nor newly inserted.
//
// # Deletion rules
//
//   - A row is removed only when its id is absent from the submission.
//     Emptying its fields is an edit.
//   - A new row (no id) without a product name is never written and takes no
//     sort position.
//   - An empty submission clears the collection.
//   - A non-empty submission that writes nothing (only blank new rows) deletes
//     nothing.
//
// # Transactions
//
// ApplyPlan does not open transactions. Callers run it inside one and roll back
// on error, so a failed apply leaves no partial writes.
//
// # Usage
//
//	plan := reconcile.BuildPlan(candidates, persistedIDs)
//	result, err := reconcile.ApplyPlan(ctx, plan, mutator)
package reconcile
