// Package form provides declarative, schema-driven validation for record
// input. One schema per entity replaces hand-duplicated per-dialog
// validation; errors are per-field and never fatal.
package form

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field kinds.
const (
	KindText   = "text"
	KindEnum   = "enum"
	KindDate   = "date" // YYYY-MM-DD
	KindNumber = "number"
)

// dateLayout is the accepted date format.
const dateLayout = "2006-01-02"

// Field describes one input in a record form.
type Field struct {
	Name     string   // Field name, matches the draft/patch field.
	Label    string   // Human-readable label used in error messages.
	Kind     string   // One of the Kind constants.
	Required bool     // Empty value rejected when set.
	Options  []string // Allowed values for KindEnum.
	MaxLen   int      // Maximum length for KindText; 0 means unlimited.
}

// Schema is the ordered field list for one entity's form.
type Schema struct {
	Fields []Field
}

// Errors maps field names to validation messages. An empty map means the
// input is valid.
type Errors map[string]string

// Ok reports whether validation produced no errors.
func (e Errors) Ok() bool { return len(e) == 0 }

// Error renders the per-field messages as a single string, for callers
// that surface validation through an error value.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range sortedKeys(e) {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Validate checks values against the schema and returns per-field errors.
// Unknown value keys are ignored; a schema field with no value entry is
// treated as empty.
func (s Schema) Validate(values map[string]string) Errors {
	errs := make(Errors)
	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.Name])
		if v == "" {
			if f.Required {
				errs[f.Name] = fmt.Sprintf("%s is required", f.Label)
			}
			continue
		}
		if msg := f.check(v); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// ValidatePartial checks only the fields present in values, for patch-style
// updates where absent fields mean "leave unchanged". A present-but-empty
// value still violates Required.
func (s Schema) ValidatePartial(values map[string]string) Errors {
	errs := make(Errors)
	for _, f := range s.Fields {
		raw, present := values[f.Name]
		if !present {
			continue
		}
		v := strings.TrimSpace(raw)
		if v == "" {
			if f.Required {
				errs[f.Name] = fmt.Sprintf("%s is required", f.Label)
			}
			continue
		}
		if msg := f.check(v); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// check validates a non-empty value against the field's kind.
func (f Field) check(v string) string {
	switch f.Kind {
	case KindEnum:
		for _, opt := range f.Options {
			if v == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", f.Label, strings.Join(f.Options, ", "))
	case KindDate:
		if _, err := time.Parse(dateLayout, v); err != nil {
			return fmt.Sprintf("%s must be a date in YYYY-MM-DD form", f.Label)
		}
	case KindNumber:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return fmt.Sprintf("%s must be a non-negative number", f.Label)
		}
	case KindText, "":
		if f.MaxLen > 0 && len([]rune(v)) > f.MaxLen {
			return fmt.Sprintf("%s must be at most %d characters", f.Label, f.MaxLen)
		}
	}
	return ""
}

func sortedKeys(e Errors) []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
