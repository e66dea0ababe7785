package reconcile

import (
	"strings"

	"github.com/sells-group/loanpack/internal/model"
)

// Reconciler matches extracted document values onto form fields using an
// ordered mapping table. It holds no mutable state; Reconcile is a pure
// function of its inputs.
type Reconciler struct {
	table model.MappingTable
}

// New creates a Reconciler over the given mapping table. Table order matters:
// when several entries satisfy the substring match for a key, the first
// declared entry wins.
func New(table model.MappingTable) *Reconciler {
	return &Reconciler{table: table}
}

// Reconcile produces one ReconciledField per input form field, in input
// order. Resolution per field:
//
//  1. Normalize the form-field name (NormalizeKey).
//  2. Mapping lookup: the first table entry whose normalized key equals,
//     contains, or is contained by the form key supplies candidate
//     extracted-field names; the first extracted field (document order,
//     field order) matching any candidate by the same equals/contains test
//     wins.
//  3. Fallback: the first extracted field whose name, stripped to lowercase
//     alphanumerics, exactly equals the similarly-stripped form key.
//  4. Address-line-2 fields whose resolved value duplicates the sibling
//     line-1 value are suppressed rather than filled twice.
//
// Only fields of completed documents carry values, so failed documents never
// contribute matches.
func (r *Reconciler) Reconcile(formFields []model.FormField, documents []model.DocumentResult) []model.ReconciledField {
	extracted := collectFields(documents)

	out := make([]model.ReconciledField, 0, len(formFields))
	for _, f := range formFields {
		key := NormalizeKey(f.Name)

		match := r.resolve(key, extracted)

		value := ""
		hasMatch := false
		if match != nil {
			value = match.Value.Value
			hasMatch = true
		}

		if hasMatch && value != "" && isAddressLine2(key) {
			if line1 := r.resolveLine1Value(key, formFields, extracted); line1 == value {
				value = ""
				hasMatch = false
			}
		}

		out = append(out, model.ReconciledField{
			FormField:      f,
			ExtractedValue: value,
			HasMatch:       hasMatch,
		})
	}
	return out
}

// resolve runs the two-phase lookup for one normalized form key. Returns nil
// when nothing matches. An empty key never matches: Contains is trivially
// true for the empty string, which would otherwise hand every prefix-only
// field the first table entry.
func (r *Reconciler) resolve(key string, extracted []model.ExtractedField) *model.ExtractedField {
	if key == "" {
		return nil
	}

	if entry := r.lookupEntry(key); entry != nil {
		if m := matchCandidates(entry.ExtractedFields, extracted); m != nil {
			return m
		}
	}

	// Fallback: exact equality only, hyphens stripped on both sides.
	want := stripAlphaNum(key)
	for i := range extracted {
		if stripAlphaNum(extracted[i].FieldName) == want {
			return &extracted[i]
		}
	}
	return nil
}

// lookupEntry finds the first mapping entry whose normalized key equals,
// contains, or is contained by the form key. Declaration order is the
// tie-break.
func (r *Reconciler) lookupEntry(key string) *model.FieldMapping {
	for i := range r.table {
		mk := normalizeMappingKey(r.table[i].Key)
		if mk == "" {
			continue
		}
		if mk == key || strings.Contains(key, mk) || strings.Contains(mk, key) {
			return &r.table[i]
		}
	}
	return nil
}

// matchCandidates finds the first extracted field whose lowercased name
// equals, contains, or is contained by any candidate name.
func matchCandidates(candidates []string, extracted []model.ExtractedField) *model.ExtractedField {
	for i := range extracted {
		name := strings.ToLower(extracted[i].FieldName)
		for _, c := range candidates {
			cand := strings.ToLower(c)
			if name == cand || strings.Contains(name, cand) || strings.Contains(cand, name) {
				return &extracted[i]
			}
		}
	}
	return nil
}

// isAddressLine2 reports whether a normalized key names a second address
// line, in either hyphenated or concatenated form. Line 3 and beyond are not
// de-duplicated.
func isAddressLine2(key string) bool {
	return strings.Contains(key, "addressline2") || strings.Contains(key, "address-line-2")
}

// resolveLine1Value finds the sibling line-1 form field and resolves its
// extracted value with the same two-phase lookup. Returns "" when no sibling
// exists or the sibling has no match.
func (r *Reconciler) resolveLine1Value(line2Key string, formFields []model.FormField, extracted []model.ExtractedField) string {
	line1Key := strings.NewReplacer(
		"address-line-2", "address-line-1",
		"addressline2", "addressline1",
	).Replace(line2Key)

	for _, f := range formFields {
		k := NormalizeKey(f.Name)
		if k == "" {
			continue
		}
		if k == line1Key || strings.Contains(k, "addressline1") || strings.Contains(k, "address-line-1") {
			if m := r.resolve(k, extracted); m != nil {
				return m.Value.Value
			}
			return ""
		}
	}
	return ""
}

// collectFields flattens extracted fields across documents, preserving
// document order then field order. Failed documents carry no fields.
func collectFields(documents []model.DocumentResult) []model.ExtractedField {
	var fields []model.ExtractedField
	for _, d := range documents {
		fields = append(fields, d.Fields...)
	}
	return fields
}
