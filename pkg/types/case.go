package types

// Case statuses. Transitions are unconstrained: a case may move from any
// status to any other.
const (
	CaseStatusConsultation = "consultation"
	CaseStatusActive       = "active"
	CaseStatusSuspended    = "suspended"
	CaseStatusClosed       = "closed"
)

// validCaseStatuses is the set of recognized case status values.
var validCaseStatuses = map[string]bool{
	CaseStatusConsultation: true,
	CaseStatusActive:       true,
	CaseStatusSuspended:    true,
	CaseStatusClosed:       true,
}

// ValidCaseStatus reports whether s is a recognized case status.
func ValidCaseStatus(s string) bool { return validCaseStatuses[s] }

// Case represents one matter handled by the firm.
// ID and Number are assigned by the store at creation time, never by the
// caller; Number is unique within the collection.
type Case struct {
	ID              string `json:"id"`                     // Padded sequence id, e.g. "CS007".
	Number          string `json:"case_number"`            // Business number, e.g. "C-2025-043".
	Title           string `json:"title"`                  // Human-readable title (required).
	Client          string `json:"client"`                 // Client display name.
	ResponsibleUser string `json:"responsible_user"`       // Display name of the handling user.
	Category        string `json:"category"`               // Free-form practice area.
	Status          string `json:"status"`                 // One of the CaseStatus constants.
	Date            string `json:"date"`                   // Commission date, YYYY-MM-DD.
	CourtNumber     string `json:"court_number,omitempty"` // Optional court docket number.
}

// CaseDraft is the caller-supplied portion of a new case. The store fills
// in ID and Number when the draft is finalized.
type CaseDraft struct {
	Title           string
	Client          string
	ResponsibleUser string
	Category        string
	Status          string
	Date            string
	CourtNumber     string
}

// CasePatch is a partial update to an existing case. Nil fields are left
// unchanged. ID and Number are not patchable.
type CasePatch struct {
	Title           *string
	Client          *string
	ResponsibleUser *string
	Category        *string
	Status          *string
	Date            *string
	CourtNumber     *string
}

// Apply overlays the non-nil patch fields onto c.
func (p CasePatch) Apply(c *Case) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Client != nil {
		c.Client = *p.Client
	}
	if p.ResponsibleUser != nil {
		c.ResponsibleUser = *p.ResponsibleUser
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.CourtNumber != nil {
		c.CourtNumber = *p.CourtNumber
	}
}
