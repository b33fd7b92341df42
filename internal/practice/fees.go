package practice

import (
	"fmt"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// Fee records start from an empty collection; there is no built-in seed
// to carry forward.
var feeDescriptor = store.Descriptor[types.FeeRecord, types.FeeDraft]{
	Slot:    "fees",
	Seed:    nil,
	SeedSeq: map[string]int{"fee": 0},
	ID:      func(f types.FeeRecord) string { return f.ID },
	Finalize: func(d types.FeeDraft, seq *store.Seq) types.FeeRecord {
		return types.FeeRecord{
			ID:         fmt.Sprintf("FEE%03d", seq.Next("fee")),
			CaseNumber: d.CaseNumber,
			Direction:  d.Direction,
			Category:   d.Category,
			Amount:     d.Amount,
			RecordDate: d.RecordDate,
			DueDate:    d.DueDate,
			Note:       d.Note,
			Status:     d.Status,
		}
	},
}

// FeeFilter narrows the fee ledger by free text over case number, category,
// and note, with the status as the tab selector.
var FeeFilter = filter.Engine[types.FeeRecord]{
	Text: []func(types.FeeRecord) string{
		func(f types.FeeRecord) string { return f.CaseNumber },
		func(f types.FeeRecord) string { return f.Category },
		func(f types.FeeRecord) string { return f.Note },
	},
	Category: func(f types.FeeRecord) string { return f.Status },
}

// FeeForm validates fee entry input. Direction-dependent status rules
// (payables never go overdue) are checked by ValidateFeeDraft on top of
// the schema.
var FeeForm = form.Schema{
	Fields: []form.Field{
		{Name: "case_number", Label: "case number", Kind: form.KindText, Required: true, MaxLen: 50},
		{Name: "direction", Label: "direction", Kind: form.KindEnum, Required: true, Options: []string{
			types.FeeReceivable, types.FeePayable,
		}},
		{Name: "category", Label: "category", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "amount", Label: "amount", Kind: form.KindNumber, Required: true},
		{Name: "record_date", Label: "record date", Kind: form.KindDate, Required: true},
		{Name: "due_date", Label: "due date", Kind: form.KindDate, Required: true},
		{Name: "note", Label: "note", Kind: form.KindText, MaxLen: 500},
		{Name: "status", Label: "status", Kind: form.KindEnum, Required: true, Options: []string{
			types.FeeStatusUnpaid, types.FeeStatusPaid, types.FeeStatusOverdue,
		}},
	},
}

// ValidateFeeDraft applies the cross-field rule the flat schema cannot
// express: overdue is a receivable-only status.
func ValidateFeeDraft(values map[string]string) form.Errors {
	errs := FeeForm.Validate(values)
	if errs.Ok() && !types.ValidFeeStatus(values["direction"], values["status"]) {
		errs["status"] = "status overdue applies to receivables only"
	}
	return errs
}
