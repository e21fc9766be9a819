package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(v ...uint64) map[uint64]struct{} {
	m := make(map[uint64]struct{}, len(v))
	for _, id := range v {
		m[id] = struct{}{}
	}
	return m
}

func TestBuildPlan_AllNew(t *testing.T) {
	plan := BuildPlan([]Candidate{{}, {}, {}}, ids())

	require.Len(t, plan.Actions, 3)
	for i, a := range plan.Actions {
		assert.Equal(t, ActionInsert, a.Type)
		assert.Equal(t, i, a.Index)
		assert.Equal(t, i+1, a.SortOrder)
	}
	assert.Equal(t, 3, plan.Summary.Inserts)
	assert.Equal(t, DeleteNotKept, plan.Summary.DeleteMode)
	assert.Equal(t, 0, plan.Summary.Deletes)
	assert.False(t, plan.EmptySubmission)
}

func TestBuildPlan_SelectiveDeletion(t *testing.T) {
	plan := BuildPlan([]Candidate{{ID: 1}, {ID: 3}}, ids(1, 2, 3))

	assert.Equal(t, []uint64{1, 3}, plan.Retained)
	assert.Equal(t, Action{Type: ActionUpdate, Index: 0, ID: 1, SortOrder: 1}, plan.Actions[0])
	assert.Equal(t, Action{Type: ActionUpdate, Index: 1, ID: 3, SortOrder: 2}, plan.Actions[1])
	assert.Equal(t, DeleteNotKept, plan.Summary.DeleteMode)
	assert.Equal(t, 1, plan.Summary.Deletes)
}

func TestBuildPlan_BlankExistingRowIsKept(t *testing.T) {
	plan := BuildPlan([]Candidate{{ID: 1, Blank: true}}, ids(1))

	require.Len(t, plan.Actions, 1)
	assert.Equal(t, ActionUpdate, plan.Actions[0].Type)
	assert.Equal(t, 1, plan.Actions[0].SortOrder)
	assert.Equal(t, 0, plan.Summary.Deletes)
}

func TestBuildPlan_BlankNewRowTakesNoSlot(t *testing.T) {
	plan := BuildPlan([]Candidate{{ID: 5}, {Blank: true}, {}}, ids(5))

	assert.Equal(t, ActionUpdate, plan.Actions[0].Type)
	assert.Equal(t, 1, plan.Actions[0].SortOrder)
	assert.Equal(t, ActionSkipBlank, plan.Actions[1].Type)
	assert.Equal(t, 0, plan.Actions[1].SortOrder)
	assert.Equal(t, ActionInsert, plan.Actions[2].Type)
	assert.Equal(t, 2, plan.Actions[2].SortOrder)
	assert.Equal(t, 1, plan.Summary.SkippedBlank)
}

func TestBuildPlan_DeleteModes(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		persisted  map[uint64]struct{}
		wantMode   DeleteMode
		wantDelete int
	}{
		{"empty submission clears", nil, ids(1, 2), DeleteAll, 2},
		{"empty submission on empty document", []Candidate{}, ids(), DeleteAll, 0},
		{"only blank new rows keep history", []Candidate{{Blank: true}}, ids(1, 2), DeleteNone, 0},
		{"unknown ids alone delete nothing", []Candidate{{ID: 99}}, ids(1, 2), DeleteNone, 0},
		{"new row replaces everything", []Candidate{{}}, ids(1, 2), DeleteNotKept, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(tt.candidates, tt.persisted)
			assert.Equal(t, tt.wantMode, plan.Summary.DeleteMode)
			assert.Equal(t, tt.wantDelete, plan.Summary.Deletes)
		})
	}
}

func TestBuildPlan_UnknownAndDuplicateIDs(t *testing.T) {
	plan := BuildPlan([]Candidate{{ID: 7}, {ID: 1}, {ID: 1}, {}}, ids(1))

	assert.Equal(t, ActionSkipUnknown, plan.Actions[0].Type)
	assert.Equal(t, uint64(7), plan.Actions[0].ID)
	assert.Equal(t, ActionUpdate, plan.Actions[1].Type)
	assert.Equal(t, 1, plan.Actions[1].SortOrder)
	assert.Equal(t, ActionSkipDuplicate, plan.Actions[2].Type)
	assert.Equal(t, ActionInsert, plan.Actions[3].Type)
	assert.Equal(t, 2, plan.Actions[3].SortOrder)
	assert.Equal(t, []uint64{1}, plan.Retained)
	assert.Equal(t, 1, plan.Summary.SkippedUnknown)
}
