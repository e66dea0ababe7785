package summary

import (
	"fmt"
	"strings"

	"github.com/sells-group/loanpack/internal/model"
)

// FormatReport generates a human-readable processing report for one package.
func FormatReport(result model.PackageResult, assessment Assessment) string {
	var b strings.Builder

	s := result.Summary
	fmt.Fprintf(&b, "# Package Report: %s\n", s.PackageID)
	fmt.Fprintf(&b, "Status: %s\n\n", assessment.Status)
	fmt.Fprintf(&b, "%s\n\n", assessment.Recommendation)

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Documents: %d/%d processed\n", s.SuccessfulDocuments, s.TotalDocuments)
	fmt.Fprintf(&b, "- Fields: %d total, %d valid, %d need review, %d missing\n",
		s.TotalFields, s.ValidFields, s.VerificationNeededFields, s.MissingFields)
	fmt.Fprintf(&b, "- Overall: %s\n\n", s.OverallStatus)

	if len(assessment.Issues) > 0 {
		b.WriteString("## Issues\n")
		for _, issue := range assessment.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Documents\n")
	for _, d := range result.Documents {
		if d.Status == model.DocumentFailed {
			fmt.Fprintf(&b, "- %s (%s): failed\n  Error: %s\n", d.FileName, d.DocumentType, d.Error)
			continue
		}
		fmt.Fprintf(&b, "- %s (%s): %d fields", d.FileName, d.DocumentType, len(d.Fields))
		if d.DetectedTemplate != "" {
			fmt.Fprintf(&b, ", detected %q", d.DetectedTemplate)
		}
		b.WriteString("\n")
	}

	return b.String()
}
