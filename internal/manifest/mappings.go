package manifest

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/loanpack/internal/model"
)

// DefaultMappings returns the built-in field-mapping table. Entry order
// matters: the reconciler resolves substring-match ties by declaration order,
// so more specific keys must come before keys they contain.
func DefaultMappings() model.MappingTable {
	return model.MappingTable{
		{
			Key:             "first-name",
			ExtractedFields: []string{"firstName"},
			Documents:       []string{"Driver License"},
			Type:            "text",
			Description:     "Applicant first name",
		},
		{
			Key:             "last-name",
			ExtractedFields: []string{"lastName"},
			Documents:       []string{"Driver License"},
			Type:            "text",
			Description:     "Applicant last name",
		},
		{
			Key:             "full-name",
			ExtractedFields: []string{"fullName", "employeeName", "accountHolder", "buyerName"},
			Documents:       []string{"Driver License", "Passport", "Pay Stub", "Bank Statement"},
			Type:            "text",
			Description:     "Applicant full legal name",
		},
		{
			Key:             "date-of-birth",
			ExtractedFields: []string{"dateOfBirth"},
			Documents:       []string{"Driver License", "Passport"},
			Type:            "date",
			Description:     "Applicant date of birth",
		},
		{
			Key:             "address-line-2",
			ExtractedFields: []string{"address", "employeeAddress", "buyerAddress"},
			Documents:       []string{"Driver License", "Pay Stub"},
			Type:            "text",
			Description:     "Second line of the applicant home address",
		},
		{
			Key:             "address-line-1",
			ExtractedFields: []string{"address", "employeeAddress", "buyerAddress"},
			Documents:       []string{"Driver License", "Pay Stub"},
			Type:            "text",
			Description:     "First line of the applicant home address",
		},
		{
			Key:             "license-number",
			ExtractedFields: []string{"licenseNumber"},
			Documents:       []string{"Driver License"},
			Type:            "text",
			Description:     "Driver license number",
		},
		{
			Key:             "employer",
			ExtractedFields: []string{"employer"},
			Documents:       []string{"Pay Stub", "Employment Letter"},
			Type:            "text",
			Description:     "Current employer name",
		},
		{
			Key:             "job-title",
			ExtractedFields: []string{"jobTitle"},
			Documents:       []string{"Pay Stub"},
			Type:            "text",
			Description:     "Applicant job title",
		},
		{
			Key:             "gross-pay",
			ExtractedFields: []string{"grossPay"},
			Documents:       []string{"Pay Stub", "Employment Letter"},
			Type:            "currency",
			Description:     "Gross pay for the most recent pay period",
		},
		{
			Key:             "net-pay",
			ExtractedFields: []string{"netPay"},
			Documents:       []string{"Pay Stub", "Employment Letter"},
			Type:            "currency",
			Description:     "Net pay for the most recent pay period",
		},
		{
			Key:             "annual-income",
			ExtractedFields: []string{"yearToDateGross", "grossPay"},
			Documents:       []string{"Pay Stub", "Employment Letter"},
			Type:            "currency",
			Description:     "Annualized gross income",
		},
		{
			Key:             "bank-name",
			ExtractedFields: []string{"bankName"},
			Documents:       []string{"Bank Statement"},
			Type:            "text",
			Description:     "Name of the applicant's financial institution",
		},
		{
			Key:             "account-number",
			ExtractedFields: []string{"accountNumber"},
			Documents:       []string{"Bank Statement"},
			Type:            "text",
			Description:     "Bank account number",
		},
		{
			Key:             "routing-number",
			ExtractedFields: []string{"routingNumber"},
			Documents:       []string{"Bank Statement"},
			Type:            "text",
			Description:     "Bank routing number",
		},
		{
			Key:             "account-balance",
			ExtractedFields: []string{"currentBalance", "closingBalance"},
			Documents:       []string{"Bank Statement"},
			Type:            "currency",
			Description:     "Current account balance",
		},
		{
			Key:             "loan-amount",
			ExtractedFields: []string{"loanAmount", "requestedAmount"},
			Documents:       []string{"Vehicle Bill of Sale", "Loan Application Form"},
			Type:            "currency",
			Description:     "Amount to be financed",
		},
		{
			Key:             "down-payment",
			ExtractedFields: []string{"downPayment"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "currency",
			Description:     "Down payment amount",
		},
		{
			Key:             "purchase-price",
			ExtractedFields: []string{"salePrice"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "currency",
			Description:     "Total vehicle purchase price",
		},
		{
			Key:             "vehicle-year",
			ExtractedFields: []string{"vehicleYear"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "number",
			Description:     "Vehicle model year",
		},
		{
			Key:             "vehicle-make",
			ExtractedFields: []string{"vehicleMake"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "text",
			Description:     "Vehicle manufacturer",
		},
		{
			Key:             "vehicle-model",
			ExtractedFields: []string{"vehicleModel"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "text",
			Description:     "Vehicle model",
		},
		{
			Key:             "vin",
			ExtractedFields: []string{"vehicleVin"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "text",
			Description:     "Vehicle identification number",
		},
		{
			Key:             "mileage",
			ExtractedFields: []string{"vehicleMileage"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "number",
			Description:     "Vehicle odometer reading",
		},
		{
			Key:             "seller-name",
			ExtractedFields: []string{"sellerName"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "text",
			Description:     "Vehicle seller or dealership name",
		},
		{
			Key:             "sale-date",
			ExtractedFields: []string{"saleDate"},
			Documents:       []string{"Vehicle Bill of Sale"},
			Type:            "date",
			Description:     "Date of the vehicle sale",
		},
	}
}

// LoadMappings reads a field-mapping table from a YAML file. The file has a
// top-level "mappings" key holding the ordered entry list.
func LoadMappings(path string) (model.MappingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "manifest: read mappings %s", path)
	}

	var wrapper struct {
		Mappings model.MappingTable `yaml:"mappings"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrapf(err, "manifest: parse mappings %s", path)
	}
	if len(wrapper.Mappings) == 0 {
		return nil, eris.Errorf("manifest: mappings file %s has no entries", path)
	}
	for i, m := range wrapper.Mappings {
		if m.Key == "" {
			return nil, eris.Errorf("manifest: mappings file %s: entry %d has empty key", path, i)
		}
		if len(m.ExtractedFields) == 0 {
			return nil, eris.Errorf("manifest: mappings file %s: entry %q has no extracted fields", path, m.Key)
		}
	}
	return wrapper.Mappings, nil
}
