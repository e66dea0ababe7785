// Package summary derives an application-level status from a processed
// package's counters and per-document outcomes.
package summary

import (
	"fmt"
	"strings"

	"github.com/sells-group/loanpack/internal/model"
)

// Status is the coarse application status shown to reviewers.
type Status string

const (
	StatusValid          Status = "Valid"
	StatusReviewRequired Status = "ValidReviewRequired"
	StatusInvalid        Status = "Invalid"
)

// Assessment is the summarizer output: a status, human-readable issue lines,
// and a canned recommendation sentence selected by status.
type Assessment struct {
	Status         Status   `json:"status"`
	Issues         []string `json:"issues"`
	Recommendation string   `json:"recommendation"`
}

// requiredCategories are the source-evidence categories every application
// needs at least one completed document for.
var requiredCategories = []model.DocumentCategory{
	model.CategoryIdentification,
	model.CategoryIncome,
	model.CategoryFinancial,
}

// Summarize computes the application status for one processed package.
// Documents of category application are target forms being filled, not
// source evidence, and are excluded from the validity computation.
//
// Status rules: Invalid when any non-application document failed or any
// field came back Undefined; ValidReviewRequired when fields need
// verification; Valid otherwise.
func Summarize(s model.PackageSummary, documents []model.DocumentResult) Assessment {
	var failed []model.DocumentResult
	completedCategories := make(map[model.DocumentCategory]bool)
	for _, d := range documents {
		if d.Category == model.CategoryApplication {
			continue
		}
		switch d.Status {
		case model.DocumentFailed:
			failed = append(failed, d)
		case model.DocumentCompleted:
			completedCategories[d.Category] = true
		}
	}

	var status Status
	switch {
	case len(failed) > 0 || s.MissingFields > 0:
		status = StatusInvalid
	case s.VerificationNeededFields > 0:
		status = StatusReviewRequired
	default:
		status = StatusValid
	}

	var issues []string
	if len(failed) > 0 {
		types := make([]string, len(failed))
		for i, d := range failed {
			types[i] = d.DocumentType
		}
		issues = append(issues, fmt.Sprintf("%d document%s failed to process: %s",
			len(failed), plural(len(failed)), strings.Join(types, ", ")))
	}
	if s.VerificationNeededFields > 0 {
		issues = append(issues, fmt.Sprintf("%d field%s require verification",
			s.VerificationNeededFields, plural(s.VerificationNeededFields)))
	}
	if s.MissingFields > 0 {
		issues = append(issues, fmt.Sprintf("%d field%s could not be extracted",
			s.MissingFields, plural(s.MissingFields)))
	}
	if missing := missingCategoryNames(completedCategories); len(missing) > 0 {
		issues = append(issues, "Missing required document types: "+strings.Join(missing, ", "))
	}

	return Assessment{
		Status:         status,
		Issues:         issues,
		Recommendation: recommendation(status, s.VerificationNeededFields),
	}
}

func missingCategoryNames(completed map[model.DocumentCategory]bool) []string {
	var names []string
	for _, cat := range requiredCategories {
		if completed[cat] {
			continue
		}
		switch cat {
		case model.CategoryIdentification:
			names = append(names, "identification document")
		case model.CategoryIncome:
			names = append(names, "income verification")
		case model.CategoryFinancial:
			names = append(names, "financial statements")
		}
	}
	return names
}

func recommendation(status Status, verificationNeeded int) string {
	switch status {
	case StatusValid:
		return "Application is complete and ready for approval review."
	case StatusReviewRequired:
		return fmt.Sprintf("Application data extracted successfully. %d field%s require verification.",
			verificationNeeded, plural(verificationNeeded))
	default:
		return "Application requires additional documentation or correction before approval."
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
