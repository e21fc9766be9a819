package reconcile

import "context"

// Candidate is one submitted row as the planner sees it.
type Candidate struct {
	// ID is the persisted id the row claims; zero means a new row.
	ID uint64

	// Blank is true when the row's product name is empty.
	Blank bool
}

// ActionType represents the type of planned action.
type ActionType string

const (
	// ActionInsert creates a new row.
	ActionInsert ActionType = "insert"
	// ActionUpdate rewrites an existing row.
	ActionUpdate ActionType = "update"
	// ActionSkipBlank drops a new row with no product name.
	ActionSkipBlank ActionType = "skip_blank"
	// ActionSkipUnknown drops a row whose id is not persisted under the document.
	ActionSkipUnknown ActionType = "skip_unknown"
	// ActionSkipDuplicate drops a repeated id; the first occurrence wins.
	ActionSkipDuplicate ActionType = "skip_duplicate"
)

// Action represents a planned step for one submitted row.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Index is the row's position in the submission.
	Index int `json:"index"`

	// ID is the target row for updates (and skipped ids).
	ID uint64 `json:"id,omitempty"`

	// SortOrder is the position assigned to inserts and updates.
	SortOrder int `json:"sort_order,omitempty"`

	// Reason explains skips.
	Reason string `json:"reason,omitempty"`
}

// DeleteMode selects the cleanup that follows the writes.
type DeleteMode string

const (
	// DeleteNone leaves every persisted row in place.
	DeleteNone DeleteMode = "none"
	// DeleteNotKept removes persisted rows outside the keep set.
	DeleteNotKept DeleteMode = "delete_not_kept"
	// DeleteAll clears the collection.
	DeleteAll DeleteMode = "delete_all"
)

// ReconcilePlan contains the planned actions for one submission.
type ReconcilePlan struct {
	// Actions has one entry per submitted row, in submission order.
	Actions []Action `json:"actions"`

	// Retained holds the existing ids the submission carried.
	// They survive cleanup whatever their field values.
	Retained []uint64 `json:"retained"`

	// EmptySubmission is true when nothing at all was submitted.
	EmptySubmission bool `json:"empty_submission"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	Submitted      int        `json:"submitted"`
	Persisted      int        `json:"persisted"`
	Inserts        int        `json:"inserts"`
	Updates        int        `json:"updates"`
	SkippedBlank   int        `json:"skipped_blank"`
	SkippedUnknown int        `json:"skipped_unknown"`
	Deletes        int        `json:"deletes"`
	DeleteMode     DeleteMode `json:"delete_mode"`
}

// Mutator applies planned actions to the store. Index refers back to the
// submitted row so the implementation can read its field values.
type Mutator interface {
	Insert(ctx context.Context, index int, sortOrder int) (uint64, error)
	Update(ctx context.Context, index int, id uint64, sortOrder int) error
	DeleteNotIn(ctx context.Context, keep []uint64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ApplyResult reports what ApplyPlan executed.
type ApplyResult struct {
	// InsertedIDs are the new ids in submission order.
	InsertedIDs []uint64 `json:"inserted_ids"`

	// KeptIDs is the final keep set, ascending.
	KeptIDs []uint64 `json:"kept_ids"`

	// DeleteMode is the cleanup that ran.
	DeleteMode DeleteMode `json:"delete_mode"`

	// Deleted is the number of rows removed by cleanup.
	Deleted int64 `json:"deleted"`
}
