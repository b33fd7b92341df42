package practice

import (
	"github.com/google/uuid"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// newDocumentID generates a UUID v7 for document records. Documents have no
// business-facing number, so they skip the padded-sequence scheme.
func newDocumentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

var documentDescriptor = store.Descriptor[types.Document, types.DocumentDraft]{
	Slot: "documents",
	Seed: nil,
	ID:   func(d types.Document) string { return d.ID },
	Finalize: func(d types.DocumentDraft, _ *store.Seq) types.Document {
		return types.Document{
			ID:         newDocumentID(),
			CaseID:     d.CaseID,
			Title:      d.Title,
			Type:       d.Type,
			UploadedAt: d.UploadedAt,
			Size:       d.Size,
		}
	},
}

// DocumentFilter narrows documents by free text over title, with the type
// as the tab selector.
var DocumentFilter = filter.Engine[types.Document]{
	Text: []func(types.Document) string{
		func(d types.Document) string { return d.Title },
	},
	Category: func(d types.Document) string { return d.Type },
}

// DocumentForm validates document metadata input.
var DocumentForm = form.Schema{
	Fields: []form.Field{
		{Name: "case_id", Label: "case id", Kind: form.KindText, Required: true, MaxLen: 50},
		{Name: "title", Label: "title", Kind: form.KindText, Required: true, MaxLen: 200},
		{Name: "type", Label: "type", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "uploaded_at", Label: "upload date", Kind: form.KindDate, Required: true},
		{Name: "size", Label: "size", Kind: form.KindNumber},
	},
}

// DocumentsForCase returns the documents owned by the given case id, in
// storage order.
func DocumentsForCase(p *Practice, caseID string) []types.Document {
	var out []types.Document
	for _, d := range p.Documents.Snapshot() {
		if d.CaseID == caseID {
			out = append(out, d)
		}
	}
	return out
}
