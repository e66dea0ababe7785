package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/loanpack/internal/model"
)

func doc(docType string, cat model.DocumentCategory, status model.DocumentStatus) model.DocumentResult {
	return model.DocumentResult{
		ID:           docType,
		FileName:     docType,
		DocumentType: docType,
		Category:     cat,
		Status:       status,
	}
}

func allCategoriesCompleted() []model.DocumentResult {
	return []model.DocumentResult{
		doc("Driver's License", model.CategoryIdentification, model.DocumentCompleted),
		doc("Pay Stub", model.CategoryIncome, model.DocumentCompleted),
		doc("Bank Statement", model.CategoryFinancial, model.DocumentCompleted),
	}
}

func TestSummarize_Valid(t *testing.T) {
	t.Parallel()

	got := Summarize(model.PackageSummary{TotalFields: 10, ValidFields: 10}, allCategoriesCompleted())

	assert.Equal(t, StatusValid, got.Status)
	assert.Empty(t, got.Issues)
	assert.Equal(t, "Application is complete and ready for approval review.", got.Recommendation)
}

func TestSummarize_ReviewRequired(t *testing.T) {
	t.Parallel()

	got := Summarize(model.PackageSummary{
		TotalFields:              10,
		ValidFields:              8,
		VerificationNeededFields: 2,
	}, allCategoriesCompleted())

	assert.Equal(t, StatusReviewRequired, got.Status)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "2 fields require verification", got.Issues[0])
	assert.Contains(t, got.Recommendation, "2 fields require verification")
}

func TestSummarize_MissingFieldsInvalid(t *testing.T) {
	t.Parallel()

	got := Summarize(model.PackageSummary{
		TotalFields:   10,
		ValidFields:   9,
		MissingFields: 1,
	}, allCategoriesCompleted())

	assert.Equal(t, StatusInvalid, got.Status)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "1 field could not be extracted", got.Issues[0])
	assert.Equal(t, "Application requires additional documentation or correction before approval.", got.Recommendation)
}

func TestSummarize_FailedDocumentInvalid(t *testing.T) {
	t.Parallel()

	docs := []model.DocumentResult{
		doc("Driver's License", model.CategoryIdentification, model.DocumentFailed),
		doc("Pay Stub", model.CategoryIncome, model.DocumentCompleted),
		doc("Bank Statement", model.CategoryFinancial, model.DocumentCompleted),
	}
	got := Summarize(model.PackageSummary{TotalFields: 5, ValidFields: 5}, docs)

	assert.Equal(t, StatusInvalid, got.Status)
	require.Len(t, got.Issues, 2)
	assert.Equal(t, "1 document failed to process: Driver's License", got.Issues[0])
	assert.Equal(t, "Missing required document types: identification document", got.Issues[1])
}

func TestSummarize_ApplicationDocumentsExcluded(t *testing.T) {
	t.Parallel()

	// A failed application form must not flip the status: it is the target
	// form, not source evidence.
	docs := append(allCategoriesCompleted(),
		doc("Auto Loan Application", model.CategoryApplication, model.DocumentFailed))
	got := Summarize(model.PackageSummary{TotalFields: 3, ValidFields: 3}, docs)

	assert.Equal(t, StatusValid, got.Status)
	assert.Empty(t, got.Issues)
}

func TestSummarize_IssueOrderIsFixed(t *testing.T) {
	t.Parallel()

	docs := []model.DocumentResult{
		doc("Pay Stub", model.CategoryIncome, model.DocumentFailed),
		doc("Bank Statement", model.CategoryFinancial, model.DocumentFailed),
	}
	got := Summarize(model.PackageSummary{
		TotalFields:              10,
		ValidFields:              5,
		VerificationNeededFields: 3,
		MissingFields:            2,
	}, docs)

	assert.Equal(t, StatusInvalid, got.Status)
	require.Len(t, got.Issues, 4)
	assert.Equal(t, "2 documents failed to process: Pay Stub, Bank Statement", got.Issues[0])
	assert.Equal(t, "3 fields require verification", got.Issues[1])
	assert.Equal(t, "2 fields could not be extracted", got.Issues[2])
	assert.Equal(t, "Missing required document types: identification document, income verification, financial statements", got.Issues[3])
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	result := model.PackageResult{
		Summary: model.PackageSummary{
			PackageID:           "package1",
			TotalDocuments:      2,
			SuccessfulDocuments: 1,
			FailedDocuments:     1,
			TotalFields:         3,
			ValidFields:         3,
			OverallStatus:       model.PackagePartial,
		},
		Documents: []model.DocumentResult{
			{
				FileName:         "license.jpg",
				DocumentType:     "Driver's License",
				Category:         model.CategoryIdentification,
				Status:           model.DocumentCompleted,
				DetectedTemplate: "Driver License",
				Fields:           make([]model.ExtractedField, 3),
			},
			{
				FileName:     "pay-stub.pdf",
				DocumentType: "Pay Stub",
				Category:     model.CategoryIncome,
				Status:       model.DocumentFailed,
				Error:        "extraction timed out",
			},
		},
	}
	assessment := Summarize(result.Summary, result.Documents)

	report := FormatReport(result, assessment)

	assert.True(t, strings.HasPrefix(report, "# Package Report: package1\n"))
	assert.Contains(t, report, "Status: Invalid")
	assert.Contains(t, report, "- Documents: 1/2 processed")
	assert.Contains(t, report, `detected "Driver License"`)
	assert.Contains(t, report, "Error: extraction timed out")
}
