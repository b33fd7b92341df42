package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Fields: []Field{
		{Name: "title", Label: "title", Kind: KindText, Required: true, MaxLen: 10},
		{Name: "status", Label: "status", Kind: KindEnum, Required: true, Options: []string{"active", "closed"}},
		{Name: "date", Label: "commission date", Kind: KindDate, Required: true},
		{Name: "amount", Label: "amount", Kind: KindNumber},
		{Name: "note", Label: "note", Kind: KindText},
	},
}

func validValues() map[string]string {
	return map[string]string{
		"title":  "訴訟案",
		"status": "active",
		"date":   "2025-05-02",
		"amount": "500",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(map[string]string)
		wantField string
	}{
		{name: "valid input", mutate: func(map[string]string) {}},
		{
			name:      "missing required field",
			mutate:    func(v map[string]string) { delete(v, "title") },
			wantField: "title",
		},
		{
			name:      "whitespace-only counts as empty",
			mutate:    func(v map[string]string) { v["title"] = "   " },
			wantField: "title",
		},
		{
			name:      "enum rejects unknown option",
			mutate:    func(v map[string]string) { v["status"] = "archived" },
			wantField: "status",
		},
		{
			name:      "date rejects malformed value",
			mutate:    func(v map[string]string) { v["date"] = "02/05/2025" },
			wantField: "date",
		},
		{
			name:      "date rejects impossible day",
			mutate:    func(v map[string]string) { v["date"] = "2025-02-30" },
			wantField: "date",
		},
		{
			name:      "number rejects non-numeric",
			mutate:    func(v map[string]string) { v["amount"] = "fifty" },
			wantField: "amount",
		},
		{
			name:      "number rejects negative",
			mutate:    func(v map[string]string) { v["amount"] = "-1" },
			wantField: "amount",
		},
		{
			name:      "text over max length",
			mutate:    func(v map[string]string) { v["title"] = "一二三四五六七八九十十一" },
			wantField: "title",
		},
		{
			name:   "optional field may be absent",
			mutate: func(v map[string]string) { delete(v, "amount") },
		},
		{
			name:   "unknown value keys are ignored",
			mutate: func(v map[string]string) { v["extra"] = "whatever" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			tt.mutate(values)

			errs := testSchema.Validate(values)
			if tt.wantField == "" {
				assert.True(t, errs.Ok(), "unexpected errors: %v", errs)
				return
			}
			require.False(t, errs.Ok())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateMaxLenCountsRunes(t *testing.T) {
	// Ten CJK characters are ten runes, not thirty bytes.
	errs := testSchema.Validate(map[string]string{
		"title":  "一二三四五六七八九十",
		"status": "active",
		"date":   "2025-05-02",
	})
	assert.True(t, errs.Ok(), "unexpected errors: %v", errs)
}

func TestValidatePartial(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		wantField string
	}{
		{name: "absent fields are skipped", values: map[string]string{"note": "fine"}},
		{name: "empty map is valid", values: map[string]string{}},
		{
			name:   "present fields are checked",
			values: map[string]string{"status": "closed"},
		},
		{
			name:      "present invalid field fails",
			values:    map[string]string{"status": "archived"},
			wantField: "status",
		},
		{
			name:      "present empty required field fails",
			values:    map[string]string{"title": ""},
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := testSchema.ValidatePartial(tt.values)
			if tt.wantField == "" {
				assert.True(t, errs.Ok(), "unexpected errors: %v", errs)
				return
			}
			require.False(t, errs.Ok())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestErrorsError(t *testing.T) {
	errs := Errors{
		"title":  "title is required",
		"status": "status must be one of: active, closed",
	}
	// Fields come out sorted so the message is deterministic.
	assert.Equal(t, "status: status must be one of: active, closed; title: title is required", errs.Error())
}

func TestErrorsOk(t *testing.T) {
	assert.True(t, Errors{}.Ok())
	assert.False(t, Errors{"x": "bad"}.Ok())
}
