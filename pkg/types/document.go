package types

// Document represents a file attached to a case. Only metadata is tracked;
// document content lives outside the system.
type Document struct {
	ID         string `json:"id"`          // UUID v7, generated on creation.
	CaseID     string `json:"case_id"`     // Owning case id.
	Title      string `json:"title"`       // Display title (required).
	Type       string `json:"type"`        // Free-form category, e.g. "pleading".
	UploadedAt string `json:"uploaded_at"` // Upload date, YYYY-MM-DD.
	Size       int64  `json:"size"`        // Size in bytes as reported at upload.
}

// DocumentDraft is the caller-supplied portion of a new document record.
type DocumentDraft struct {
	CaseID     string
	Title      string
	Type       string
	UploadedAt string
	Size       int64
}

// DocumentPatch is a partial update to an existing document record.
type DocumentPatch struct {
	Title *string
	Type  *string
}

// Apply overlays the non-nil patch fields onto d.
func (p DocumentPatch) Apply(d *Document) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
}
