package lineitems

import (
	"context"
	"fmt"

	"order-items/core/reconcile"
	"order-items/feature/lineitems/models"

	"go.uber.org/zap"
)

// SaveOptions tune a Save call.
type SaveOptions struct {
	// DryRun computes the plan against the persisted rows and writes nothing.
	DryRun bool
}

// SaveResult reports a reconciliation.
type SaveResult struct {
	Kind       models.Kind              `json:"kind"`
	DocumentID uint64                   `json:"document_id"`
	DryRun     bool                     `json:"dry_run"`
	Plan       *reconcile.ReconcilePlan `json:"plan"`
	Applied    *reconcile.ApplyResult   `json:"applied,omitempty"`
	Items      []models.LineItem        `json:"items,omitempty"`
}

// Save reconciles a full replacement submission against the persisted rows of
// a document: existing ids are updated, new named rows inserted, omitted ids
// deleted and sort_order rewritten densely in submission order. The load, the
// writes and the cleanup share one transaction.
func (s *Service) Save(ctx context.Context, kind models.Kind, documentID uint64, items []models.SubmittedLineItem, opts SaveOptions) (*SaveResult, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if err := validateSubmission(items); err != nil {
		return nil, err
	}

	result := &SaveResult{Kind: kind, DocumentID: documentID, DryRun: opts.DryRun}

	if opts.DryRun {
		persisted, err := s.store.Items(kind).List(ctx, documentID)
		if err != nil {
			return nil, s.fail("save", kind, documentID, err)
		}
		result.Plan = reconcile.BuildPlan(candidates(items), idSet(persisted))
		return result, nil
	}

	err := s.withLock(ctx, documentID, []models.Kind{kind}, func() error {
		return s.store.Transaction(ctx, func(tx *Store) error {
			repo := tx.Items(kind)

			persisted, err := repo.List(ctx, documentID)
			if err != nil {
				return err
			}

			result.Plan = reconcile.BuildPlan(candidates(items), idSet(persisted))
			result.Applied, err = reconcile.ApplyPlan(ctx, result.Plan, &itemMutator{
				repo:       repo,
				documentID: documentID,
				items:      items,
			})
			if err != nil {
				return err
			}

			result.Items, err = repo.List(ctx, documentID)
			return err
		})
	})
	if err != nil {
		return nil, s.fail("save", kind, documentID, err)
	}

	s.logger.Info("Items saved",
		zap.String("kind", string(kind)),
		zap.Uint64("document_id", documentID),
		zap.Int("inserted", len(result.Applied.InsertedIDs)),
		zap.Int("updated", result.Plan.Summary.Updates),
		zap.Int("skipped_blank", result.Plan.Summary.SkippedBlank),
		zap.Int("skipped_unknown", result.Plan.Summary.SkippedUnknown),
		zap.String("delete_mode", string(result.Applied.DeleteMode)),
		zap.Int64("deleted", result.Applied.Deleted),
	)
	return result, nil
}

func validateSubmission(items []models.SubmittedLineItem) error {
	for i, it := range items {
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: item %d has negative price", ErrInvalidValue, i)
		}
		if it.Quantity.IsNegative() {
			return fmt.Errorf("%w: item %d has negative quantity", ErrInvalidValue, i)
		}
	}
	return nil
}

func candidates(items []models.SubmittedLineItem) []reconcile.Candidate {
	out := make([]reconcile.Candidate, len(items))
	for i, it := range items {
		out[i] = reconcile.Candidate{ID: it.ID, Blank: it.IsBlank()}
	}
	return out
}

func idSet(items []models.LineItem) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(items))
	for _, it := range items {
		set[it.ID] = struct{}{}
	}
	return set
}

// itemMutator writes plan actions through a transaction-bound repository.
type itemMutator struct {
	repo       *Repository
	documentID uint64
	items      []models.SubmittedLineItem
}

func (m *itemMutator) Insert(ctx context.Context, index int, sortOrder int) (uint64, error) {
	return m.repo.Insert(ctx, m.documentID, m.items[index].Fields(sortOrder))
}

// Update ignores the affected-row count: MySQL reports 0 for an unchanged row,
// and the planner has already checked that the id belongs to the document.
func (m *itemMutator) Update(ctx context.Context, index int, id uint64, sortOrder int) error {
	_, err := m.repo.Update(ctx, id, m.documentID, m.items[index].Fields(sortOrder))
	return err
}

func (m *itemMutator) DeleteNotIn(ctx context.Context, keep []uint64) (int64, error) {
	return m.repo.DeleteWhereNotIn(ctx, m.documentID, keep)
}

func (m *itemMutator) DeleteAll(ctx context.Context) (int64, error) {
	return m.repo.DeleteAll(ctx, m.documentID)
}
