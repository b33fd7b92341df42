package types

// TimeRecord represents billable or administrative time logged against a
// case by one user.
type TimeRecord struct {
	ID          string `json:"id"`          // Padded sequence id, e.g. "TR004".
	CaseNumber  string `json:"case_number"` // Business number of the related case.
	User        string `json:"user"`        // Display name of the user who logged the time.
	Date        string `json:"date"`        // Work date, YYYY-MM-DD.
	Minutes     int    `json:"minutes"`     // Duration in minutes.
	Description string `json:"description"` // What the time was spent on.
}

// TimeDraft is the caller-supplied portion of a new time record.
type TimeDraft struct {
	CaseNumber  string
	User        string
	Date        string
	Minutes     int
	Description string
}

// TimePatch is a partial update to an existing time record.
type TimePatch struct {
	Date        *string
	Minutes     *int
	Description *string
}

// Apply overlays the non-nil patch fields onto t.
func (p TimePatch) Apply(t *TimeRecord) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Minutes != nil {
		t.Minutes = *p.Minutes
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}
