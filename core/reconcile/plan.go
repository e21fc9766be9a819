package reconcile

// BuildPlan computes the actions for a submission against the ids currently
// persisted for the document. It performs no I/O.
//
// Sort positions are handed out in submission order to inserts and updates only,
// so skipped rows never leave a gap.
func BuildPlan(candidates []Candidate, persisted map[uint64]struct{}) *ReconcilePlan {
	plan := &ReconcilePlan{
		Actions:         make([]Action, 0, len(candidates)),
		Retained:        []uint64{},
		EmptySubmission: len(candidates) == 0,
	}

	seen := make(map[uint64]struct{}, len(candidates))
	sortOrder := 1

	for i, c := range candidates {
		if c.ID > 0 {
			if _, ok := persisted[c.ID]; !ok {
				plan.Actions = append(plan.Actions, Action{
					Type:   ActionSkipUnknown,
					Index:  i,
					ID:     c.ID,
					Reason: "id is not persisted under this document",
				})
				plan.Summary.SkippedUnknown++
				continue
			}
			if _, dup := seen[c.ID]; dup {
				plan.Actions = append(plan.Actions, Action{
					Type:   ActionSkipDuplicate,
					Index:  i,
					ID:     c.ID,
					Reason: "id submitted more than once",
				})
				continue
			}
			seen[c.ID] = struct{}{}
			plan.Retained = append(plan.Retained, c.ID)

			// An emptied product name on an existing row is an edit, not a removal.
			plan.Actions = append(plan.Actions, Action{Type: ActionUpdate, Index: i, ID: c.ID, SortOrder: sortOrder})
			plan.Summary.Updates++
			sortOrder++
			continue
		}

		if c.Blank {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionSkipBlank,
				Index:  i,
				Reason: "new row without product name",
			})
			plan.Summary.SkippedBlank++
			continue
		}

		plan.Actions = append(plan.Actions, Action{Type: ActionInsert, Index: i, SortOrder: sortOrder})
		plan.Summary.Inserts++
		sortOrder++
	}

	plan.Summary.Submitted = len(candidates)
	plan.Summary.Persisted = len(persisted)
	plan.Summary.DeleteMode = deleteMode(len(plan.Retained)+plan.Summary.Inserts, plan.EmptySubmission)

	switch plan.Summary.DeleteMode {
	case DeleteAll:
		plan.Summary.Deletes = len(persisted)
	case DeleteNotKept:
		plan.Summary.Deletes = len(persisted) - len(plan.Retained)
	}

	return plan
}

// deleteMode decides the cleanup. A non-empty submission that kept nothing
// (only new blank rows) must not wipe what is already stored.
func deleteMode(kept int, emptySubmission bool) DeleteMode {
	switch {
	case kept > 0:
		return DeleteNotKept
	case emptySubmission:
		return DeleteAll
	default:
		return DeleteNone
	}
}
