// Package dialog tracks which record is selected and which modal workflow
// is active for one page. A coordinator holds no reference to the stores:
// closing or cancelling a workflow can never touch the underlying data.
package dialog

// Workflow names. Exactly one workflow is active per coordinator at a time.
const (
	WorkflowEdit           = "edit"
	WorkflowDeleteConfirm  = "delete-confirm"
	WorkflowRelatedRecords = "related-records"
	WorkflowAddFee         = "add-fee"
	WorkflowAddTime        = "add-time"
)

var validWorkflows = map[string]bool{
	WorkflowEdit:           true,
	WorkflowDeleteConfirm:  true,
	WorkflowRelatedRecords: true,
	WorkflowAddFee:         true,
	WorkflowAddTime:        true,
}

// ValidWorkflow reports whether name is a recognized workflow.
func ValidWorkflow(name string) bool { return validWorkflows[name] }

// Coordinator is the exclusive-selection state machine for one page: Idle
// with no selection, or exactly one open workflow against one selected
// record. Opening while another workflow is open replaces both the workflow
// and the selection (last-open-wins on the single selection slot).
type Coordinator[T any] struct {
	selected T
	workflow string
	open     bool
}

// New returns an idle coordinator.
func New[T any]() *Coordinator[T] {
	return &Coordinator[T]{}
}

// Open selects record and marks workflow active, replacing any previously
// open workflow. Unknown workflow names are ignored and leave the
// coordinator unchanged.
func (c *Coordinator[T]) Open(workflow string, record T) {
	if !validWorkflows[workflow] {
		return
	}
	c.selected = record
	c.workflow = workflow
	c.open = true
}

// Close returns the coordinator to Idle, clearing the selected record.
func (c *Coordinator[T]) Close() {
	var zero T
	c.selected = zero
	c.workflow = ""
	c.open = false
}

// Active returns the open workflow name, or ok=false when idle.
func (c *Coordinator[T]) Active() (string, bool) {
	return c.workflow, c.open
}

// Selected returns the currently selected record, or ok=false when idle.
func (c *Coordinator[T]) Selected() (T, bool) {
	return c.selected, c.open
}
