package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string
}

func TestNewIsIdle(t *testing.T) {
	c := New[record]()

	_, open := c.Active()
	assert.False(t, open)
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestOpenSelectsRecordAndWorkflow(t *testing.T) {
	c := New[record]()
	c.Open(WorkflowEdit, record{ID: "CS001"})

	workflow, open := c.Active()
	require.True(t, open)
	assert.Equal(t, WorkflowEdit, workflow)

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "CS001", selected.ID)
}

func TestOpenLastWins(t *testing.T) {
	c := New[record]()
	c.Open(WorkflowEdit, record{ID: "CS001"})
	c.Open(WorkflowDeleteConfirm, record{ID: "CS002"})

	// The second open replaced both the workflow and the selection; the
	// single selection slot never holds two records.
	workflow, open := c.Active()
	require.True(t, open)
	assert.Equal(t, WorkflowDeleteConfirm, workflow)

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "CS002", selected.ID)
}

func TestOpenUnknownWorkflowIgnored(t *testing.T) {
	c := New[record]()
	c.Open("rename", record{ID: "CS001"})

	_, open := c.Active()
	assert.False(t, open)

	// An unknown open does not disturb an already-open workflow either.
	c.Open(WorkflowAddFee, record{ID: "CS002"})
	c.Open("rename", record{ID: "CS003"})

	workflow, open := c.Active()
	require.True(t, open)
	assert.Equal(t, WorkflowAddFee, workflow)
	selected, _ := c.Selected()
	assert.Equal(t, "CS002", selected.ID)
}

func TestCloseReturnsToIdle(t *testing.T) {
	c := New[record]()
	c.Open(WorkflowRelatedRecords, record{ID: "CS001"})
	c.Close()

	_, open := c.Active()
	assert.False(t, open)

	selected, ok := c.Selected()
	assert.False(t, ok)
	assert.Zero(t, selected)
}

func TestCloseWhenIdleIsNoOp(t *testing.T) {
	c := New[record]()
	c.Close()

	_, open := c.Active()
	assert.False(t, open)
}

func TestValidWorkflow(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{WorkflowEdit, true},
		{WorkflowDeleteConfirm, true},
		{WorkflowRelatedRecords, true},
		{WorkflowAddFee, true},
		{WorkflowAddTime, true},
		{"", false},
		{"rename", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidWorkflow(tt.name))
		})
	}
}
