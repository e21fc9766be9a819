package reconcile

import (
	"context"
	"fmt"
	"sort"
)

// ApplyPlan executes a plan through the mutator: writes in submission order,
// then the cleanup. It stops at the first error; the caller owns the
// transaction and is expected to roll back.
func ApplyPlan(ctx context.Context, plan *ReconcilePlan, m Mutator) (*ApplyResult, error) {
	result := &ApplyResult{
		InsertedIDs: []uint64{},
		DeleteMode:  DeleteNone,
	}

	keep := make(map[uint64]struct{}, len(plan.Actions))
	for _, id := range plan.Retained {
		keep[id] = struct{}{}
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionInsert:
			id, err := m.Insert(ctx, action.Index, action.SortOrder)
			if err != nil {
				return nil, fmt.Errorf("failed to insert item %d: %w", action.Index, err)
			}
			result.InsertedIDs = append(result.InsertedIDs, id)
			keep[id] = struct{}{}
		case ActionUpdate:
			if err := m.Update(ctx, action.Index, action.ID, action.SortOrder); err != nil {
				return nil, fmt.Errorf("failed to update item %d (id %d): %w", action.Index, action.ID, err)
			}
			keep[action.ID] = struct{}{}
		}
	}

	result.KeptIDs = make([]uint64, 0, len(keep))
	for id := range keep {
		result.KeptIDs = append(result.KeptIDs, id)
	}
	sort.Slice(result.KeptIDs, func(i, j int) bool { return result.KeptIDs[i] < result.KeptIDs[j] })

	result.DeleteMode = deleteMode(len(result.KeptIDs), plan.EmptySubmission)

	var err error
	switch result.DeleteMode {
	case DeleteNotKept:
		result.Deleted, err = m.DeleteNotIn(ctx, result.KeptIDs)
	case DeleteAll:
		result.Deleted, err = m.DeleteAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete removed items: %w", err)
	}

	return result, nil
}
