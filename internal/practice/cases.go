package practice

import (
	"fmt"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// Case number scheme: constant year prefix plus a zero-padded sequence
// continuing from the seed collection's highest number.
const caseNumberPrefix = "C-2025-"

// seedCases is the built-in default case collection, persisted on first
// load of an empty cases slot.
var seedCases = []types.Case{
	{
		ID: "CS001", Number: "C-2025-042",
		Title: "王大明 v. 台北市政府", Client: "王大明", ResponsibleUser: "張大律師",
		Category: "行政訴訟", Status: types.CaseStatusActive, Date: "2025-05-02",
		CourtNumber: "110-訴-123",
	},
	{
		ID: "CS002", Number: "C-2025-041",
		Title: "林小華專利糾紛", Client: "林小華", ResponsibleUser: "李小律師",
		Category: "智慧財產", Status: types.CaseStatusActive, Date: "2025-04-28",
		CourtNumber: "110-智財-456",
	},
	{
		ID: "CS003", Number: "C-2025-039",
		Title: "張三商標侵權", Client: "張三", ResponsibleUser: "張大律師",
		Category: "智慧財產", Status: types.CaseStatusActive, Date: "2025-04-25",
		CourtNumber: "110-智財-789",
	},
	{
		ID: "CS004", Number: "C-2025-036",
		Title: "李四繼承案", Client: "李四", ResponsibleUser: "李小律師",
		Category: "民事", Status: types.CaseStatusSuspended, Date: "2025-04-20",
		CourtNumber: "110-民-321",
	},
	{
		ID: "CS005", Number: "C-2025-032",
		Title: "陳五房產訴訟", Client: "陳五", ResponsibleUser: "張大律師",
		Category: "民事", Status: types.CaseStatusClosed, Date: "2025-04-15",
		CourtNumber: "110-民-654",
	},
	{
		ID: "CS006", Number: "C-2025-030",
		Title: "趙六諮詢案件", Client: "趙六", ResponsibleUser: "李小律師",
		Category: "勞資糾紛", Status: types.CaseStatusConsultation, Date: "2025-04-10",
	},
}

// caseDescriptor configures the case store. Two named sequences: "case"
// drives the record id, "number" the business number.
var caseDescriptor = store.Descriptor[types.Case, types.CaseDraft]{
	Slot:    "cases",
	Seed:    seedCases,
	SeedSeq: map[string]int{"case": 6, "number": 42},
	ID:      func(c types.Case) string { return c.ID },
	Finalize: func(d types.CaseDraft, seq *store.Seq) types.Case {
		return types.Case{
			ID:              fmt.Sprintf("CS%03d", seq.Next("case")),
			Number:          fmt.Sprintf("%s%03d", caseNumberPrefix, seq.Next("number")),
			Title:           d.Title,
			Client:          d.Client,
			ResponsibleUser: d.ResponsibleUser,
			Category:        d.Category,
			Status:          d.Status,
			Date:            d.Date,
			CourtNumber:     d.CourtNumber,
		}
	},
}

// CaseFilter narrows the case collection by free text over title, number,
// client, and category, with the status as the tab selector.
var CaseFilter = filter.Engine[types.Case]{
	Text: []func(types.Case) string{
		func(c types.Case) string { return c.Title },
		func(c types.Case) string { return c.Number },
		func(c types.Case) string { return c.Client },
		func(c types.Case) string { return c.Category },
	},
	Category: func(c types.Case) string { return c.Status },
}

// CaseForm validates case add/edit input.
var CaseForm = form.Schema{
	Fields: []form.Field{
		{Name: "title", Label: "title", Kind: form.KindText, Required: true, MaxLen: 200},
		{Name: "client", Label: "client", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "responsible_user", Label: "responsible user", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "category", Label: "category", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "status", Label: "status", Kind: form.KindEnum, Required: true, Options: []string{
			types.CaseStatusConsultation, types.CaseStatusActive,
			types.CaseStatusSuspended, types.CaseStatusClosed,
		}},
		{Name: "date", Label: "commission date", Kind: form.KindDate, Required: true},
		{Name: "court_number", Label: "court number", Kind: form.KindText, MaxLen: 100},
	},
}

// CountCasesByStatus returns the number of cases in the given status, or
// the whole collection size when status is empty.
func CountCasesByStatus(p *Practice, status string) int {
	if status == "" {
		return p.Cases.Count()
	}
	return p.Cases.CountWhere(func(c types.Case) bool { return c.Status == status })
}
