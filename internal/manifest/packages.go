// Package manifest holds the static configuration tables the processor and
// reconciler consume: package manifests, document templates, and the
// field-mapping table. Everything here is immutable data loaded at startup
// and injected into the components that need it, so tests can substitute
// fixtures.
package manifest

import "github.com/sells-group/loanpack/internal/model"

// DefaultPackages returns the built-in demo package manifests. Document
// order is the order results are emitted in.
func DefaultPackages() []model.PackageManifest {
	return []model.PackageManifest{
		{
			ID:          "package1",
			Name:        "Auto Loan Package",
			Description: "Auto loan application package with identification, income verification, and vehicle documentation",
			Directory:   "package-1",
			Documents: []model.ManifestDocument{
				{FileName: "ima-cardholder-california-drivers-license.jpg", DocumentType: "California Driver's License", Category: model.CategoryIdentification},
				{FileName: "ima-cardholder-sample-pay-stub.pdf", DocumentType: "Pay Stub", Category: model.CategoryIncome},
				{FileName: "ima-cardholder-bank-statement.pdf", DocumentType: "Bank Statement", Category: model.CategoryFinancial},
				{FileName: "ima-cardholder-vehicle-bill-of-sale.pdf", DocumentType: "Vehicle Bill of Sale", Category: model.CategoryVehicle},
				{FileName: "ima-cardholder-auto-loan-application.pdf", DocumentType: "Auto Loan Application", Category: model.CategoryApplication},
			},
		},
		{
			ID:          "package2",
			Name:        "Personal Loan Package",
			Description: "Extended document set with multiple identification options",
			Directory:   "package-2",
			Documents: []model.ManifestDocument{
				{FileName: "joseph-sample-florida-driver-license.png", DocumentType: "Florida Driver's License", Category: model.CategoryIdentification},
				{FileName: "joseph-sample-sample-pay-stub.pdf", DocumentType: "Pay Stub", Category: model.CategoryIncome},
				{FileName: "joseph-sample-employment-letter.pdf", DocumentType: "Employment Letter", Category: model.CategoryIncome},
				{FileName: "joseph-sample-bank-statement.pdf", DocumentType: "Bank Statement", Category: model.CategoryFinancial},
				{FileName: "joseph-sample-personal-loan-application.pdf", DocumentType: "Personal Loan Application", Category: model.CategoryApplication},
			},
		},
		{
			ID:          "package3",
			Name:        "Home Improvement Package",
			Description: "Complete document set including formal application forms",
			Directory:   "package-3",
			Documents: []model.ManifestDocument{
				{FileName: "sarah-martin-canada-passport.jpg", DocumentType: "Canadian Passport", Category: model.CategoryIdentification},
				{FileName: "sarah-martin-sample-pay-stub.pdf", DocumentType: "Pay Stub", Category: model.CategoryIncome},
				{FileName: "sarah-martin-employment-letter.pdf", DocumentType: "Employment Letter", Category: model.CategoryIncome},
				{FileName: "sarah-martin-bank-statement.pdf", DocumentType: "Bank Statement", Category: model.CategoryFinancial},
				{FileName: "sarah-martin-home-improvement-loan-application.pdf", DocumentType: "Home Improvement Loan Application", Category: model.CategoryApplication},
			},
		},
	}
}
