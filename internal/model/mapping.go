package model

// FieldMapping associates one normalized form-field-name key with the
// extracted-field names that may populate it. Entries are static
// configuration; declaration order is the tie-break when several keys satisfy
// the substring match, so the table is kept as an ordered slice rather than a
// map.
type FieldMapping struct {
	Key             string   `yaml:"key" json:"key"`
	ExtractedFields []string `yaml:"extracted_fields" json:"extractedFields"`
	Documents       []string `yaml:"documents,omitempty" json:"documents,omitempty"`
	Type            string   `yaml:"type,omitempty" json:"type,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// MappingTable is the ordered field-mapping configuration consumed by the
// reconciler.
type MappingTable []FieldMapping
