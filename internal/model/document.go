package model

import "time"

// FieldFormat is the data format tag the extraction service assigns to a value.
type FieldFormat string

const (
	FormatText     FieldFormat = "Text"
	FormatNumber   FieldFormat = "Number"
	FormatDate     FieldFormat = "Date"
	FormatCurrency FieldFormat = "Currency"
)

// ValidationState is the per-field confidence tag returned by the extraction
// service. Undefined means the field could not be populated with confidence;
// VerificationNeeded means a value was found but failed an internal
// consistency check.
type ValidationState string

const (
	ValidationValid              ValidationState = "Valid"
	ValidationVerificationNeeded ValidationState = "VerificationNeeded"
	ValidationUndefined          ValidationState = "Undefined"
)

// FieldValue is an extracted raw value plus its format tag.
type FieldValue struct {
	Value  string      `json:"value"`
	Format FieldFormat `json:"format"`
}

// ExtractedField is one recognized data point from one source document.
// Immutable once created.
type ExtractedField struct {
	FieldName       string          `json:"fieldName"`
	Value           FieldValue      `json:"value"`
	ValidationState ValidationState `json:"validationState"`
}

// DocumentStatus is the outcome of processing one source file.
type DocumentStatus string

const (
	DocumentCompleted DocumentStatus = "completed"
	DocumentFailed    DocumentStatus = "failed"
)

// DocumentCategory classifies a source document's role in the package.
type DocumentCategory string

const (
	CategoryIdentification DocumentCategory = "identification"
	CategoryIncome         DocumentCategory = "income"
	CategoryFinancial      DocumentCategory = "financial"
	CategoryVehicle        DocumentCategory = "vehicle"
	CategoryApplication    DocumentCategory = "application"
)

// DocumentResult is the outcome of processing one source file.
// Exactly one of Fields (completed) or Error (failed) is populated.
type DocumentResult struct {
	ID               string           `json:"id"`
	FileName         string           `json:"fileName"`
	DocumentType     string           `json:"documentType"`
	Category         DocumentCategory `json:"category"`
	Status           DocumentStatus   `json:"status"`
	DetectedTemplate string           `json:"detectedTemplate,omitempty"`
	Fields           []ExtractedField `json:"fields,omitempty"`
	Error            string           `json:"error,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
}

// PackageStatus describes whether every document in a package processed.
type PackageStatus string

const (
	PackageCompleted PackageStatus = "completed"
	PackagePartial   PackageStatus = "partial"
)

// PackageSummary aggregates one package's DocumentResults. Field counts are
// computed only over fields of completed documents; MissingFields counts
// fields whose validation state is Undefined.
//
// Invariant: TotalFields == ValidFields + VerificationNeededFields + MissingFields.
type PackageSummary struct {
	PackageID                string        `json:"packageId"`
	TotalDocuments           int           `json:"totalDocuments"`
	SuccessfulDocuments      int           `json:"successfulDocuments"`
	FailedDocuments          int           `json:"failedDocuments"`
	TotalFields              int           `json:"totalFields"`
	ValidFields              int           `json:"validFields"`
	VerificationNeededFields int           `json:"verificationNeededFields"`
	MissingFields            int           `json:"missingFields"`
	OverallStatus            PackageStatus `json:"overallStatus"`
	Timestamp                time.Time     `json:"timestamp"`
}

// PackageResult is the full output of processing one package.
type PackageResult struct {
	Summary   PackageSummary   `json:"summary"`
	Documents []DocumentResult `json:"documents"`
}
