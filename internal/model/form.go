package model

// FormFieldType is the capability tag for a form field, as reported by the
// form surface adapter.
type FormFieldType string

const (
	FormFieldText      FormFieldType = "TextField"
	FormFieldCheckbox  FormFieldType = "Checkbox"
	FormFieldRadio     FormFieldType = "RadioButton"
	FormFieldComboBox  FormFieldType = "ComboBox"
	FormFieldListBox   FormFieldType = "ListBox"
	FormFieldButton    FormFieldType = "Button"
	FormFieldSignature FormFieldType = "Signature"
	FormFieldUnknown   FormFieldType = "Unknown"
)

// FormField is one named, typed input slot exposed by the target form.
// Names are form-surface-assigned and often carry machine-generated prefixes.
type FormField struct {
	Name     string        `json:"name"`
	Type     FormFieldType `json:"type"`
	Required bool          `json:"required"`
	Value    string        `json:"value,omitempty"`
}

// ReconciledField is a FormField plus the value assignment computed by the
// reconciler. ExtractedValue is empty and HasMatch false when no extracted
// field matched (or the assignment was suppressed as a duplicate).
type ReconciledField struct {
	FormField
	ExtractedValue string `json:"extractedValue,omitempty"`
	HasMatch       bool   `json:"hasMatch"`
}
