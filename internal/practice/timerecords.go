package practice

import (
	"fmt"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

var timeDescriptor = store.Descriptor[types.TimeRecord, types.TimeDraft]{
	Slot:    "time_records",
	Seed:    nil,
	SeedSeq: map[string]int{"time": 0},
	ID:      func(t types.TimeRecord) string { return t.ID },
	Finalize: func(d types.TimeDraft, seq *store.Seq) types.TimeRecord {
		return types.TimeRecord{
			ID:          fmt.Sprintf("TR%03d", seq.Next("time")),
			CaseNumber:  d.CaseNumber,
			User:        d.User,
			Date:        d.Date,
			Minutes:     d.Minutes,
			Description: d.Description,
		}
	},
}

// TimeFilter narrows time records by free text over case number, user, and
// description. Time records carry no tab selector.
var TimeFilter = filter.Engine[types.TimeRecord]{
	Text: []func(types.TimeRecord) string{
		func(t types.TimeRecord) string { return t.CaseNumber },
		func(t types.TimeRecord) string { return t.User },
		func(t types.TimeRecord) string { return t.Description },
	},
}

// TimeForm validates time entry input.
var TimeForm = form.Schema{
	Fields: []form.Field{
		{Name: "case_number", Label: "case number", Kind: form.KindText, Required: true, MaxLen: 50},
		{Name: "user", Label: "user", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "date", Label: "work date", Kind: form.KindDate, Required: true},
		{Name: "minutes", Label: "minutes", Kind: form.KindNumber, Required: true},
		{Name: "description", Label: "description", Kind: form.KindText, Required: true, MaxLen: 500},
	},
}
