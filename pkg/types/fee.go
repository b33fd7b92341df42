package types

// Fee directions. Receivables are billed to clients; payables are owed by
// the firm (court fees, expert fees, and similar).
const (
	FeeReceivable = "receivable"
	FeePayable    = "payable"
)

// Fee statuses. Overdue applies to receivables only.
const (
	FeeStatusUnpaid  = "unpaid"
	FeeStatusPaid    = "paid"
	FeeStatusOverdue = "overdue"
)

// ValidFeeStatus reports whether status is recognized for the given
// direction. Payables never go overdue.
func ValidFeeStatus(direction, status string) bool {
	switch status {
	case FeeStatusUnpaid, FeeStatusPaid:
		return direction == FeeReceivable || direction == FeePayable
	case FeeStatusOverdue:
		return direction == FeeReceivable
	default:
		return false
	}
}

// FeeRecord represents one ledger entry against a case.
type FeeRecord struct {
	ID         string `json:"id"`             // Padded sequence id, e.g. "FEE012".
	CaseNumber string `json:"case_number"`    // Business number of the related case.
	Direction  string `json:"direction"`      // FeeReceivable or FeePayable.
	Category   string `json:"category"`       // Free-form fee category.
	Amount     int64  `json:"amount"`         // Whole New Taiwan dollars.
	RecordDate string `json:"record_date"`    // Entry date, YYYY-MM-DD.
	DueDate    string `json:"due_date"`       // Payment due date, YYYY-MM-DD.
	Note       string `json:"note,omitempty"` // Optional free-form note.
	Status     string `json:"status"`         // One of the FeeStatus constants.
}

// FeeDraft is the caller-supplied portion of a new fee record.
type FeeDraft struct {
	CaseNumber string
	Direction  string
	Category   string
	Amount     int64
	RecordDate string
	DueDate    string
	Note       string
	Status     string
}

// FeePatch is a partial update to an existing fee record.
type FeePatch struct {
	Category *string
	Amount   *int64
	DueDate  *string
	Note     *string
	Status   *string
}

// Apply overlays the non-nil patch fields onto f.
func (p FeePatch) Apply(f *FeeRecord) {
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.DueDate != nil {
		f.DueDate = *p.DueDate
	}
	if p.Note != nil {
		f.Note = *p.Note
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
}
