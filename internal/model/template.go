package model

// ValidationMethod names a consistency check the extraction service runs on
// an extracted value.
type ValidationMethod string

const (
	ValidatePostalAddress ValidationMethod = "PostalAddressIntegrity"
	ValidateDate          ValidationMethod = "DateIntegrity"
	ValidateCurrency      ValidationMethod = "CurrencyIntegrity"
	ValidateNumber        ValidationMethod = "NumberIntegrity"
	ValidatePhoneNumber   ValidationMethod = "PhoneNumberIntegrity"
	ValidateVIN           ValidationMethod = "VehicleIdentificationNumberIntegrity"
)

// TemplateField is one expected field in a document template.
// ValidationMethod is empty when the service should not validate the value.
type TemplateField struct {
	Name                string           `yaml:"name" json:"name"`
	SemanticDescription string           `yaml:"semantic_description" json:"semanticDescription"`
	Format              FieldFormat      `yaml:"format" json:"format"`
	ValidationMethod    ValidationMethod `yaml:"validation_method,omitempty" json:"validationMethod,omitempty"`
}

// DocumentTemplate is a named schema registered with the extraction service
// to steer classification and extraction.
type DocumentTemplate struct {
	Name                string          `yaml:"name" json:"name"`
	Identifier          string          `yaml:"identifier" json:"identifier"`
	SemanticDescription string          `yaml:"semantic_description" json:"semanticDescription"`
	Fields              []TemplateField `yaml:"fields" json:"fields"`
}
