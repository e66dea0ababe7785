package manifest

import "github.com/sells-group/loanpack/internal/model"

// DefaultTemplates returns the document templates registered with the
// extraction service for every package run. The semantic descriptions steer
// the remote extractor, so extraction quality is sensitive to their wording.
func DefaultTemplates() []model.DocumentTemplate {
	return []model.DocumentTemplate{
		{
			Name:                "Driver License",
			Identifier:          "driver_license",
			SemanticDescription: "Government issued driver's license for identification and verification",
			Fields: []model.TemplateField{
				{Name: "fullName", SemanticDescription: "Full name of the license holder as printed on the license", Format: model.FormatText},
				{Name: "firstName", SemanticDescription: "First name of the license holder (appears after 'FN' on the license, extract only the name value, not the 'FN' prefix)", Format: model.FormatText},
				{Name: "lastName", SemanticDescription: "Last name of the license holder (appears after 'LN' on the license, extract only the name value, not the 'LN' prefix)", Format: model.FormatText},
				{Name: "dateOfBirth", SemanticDescription: "Date of birth or birth date as shown on the license", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "address", SemanticDescription: "Full residential address of the license holder", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "licenseNumber", SemanticDescription: "Driver license number or identification number", Format: model.FormatText},
				{Name: "state", SemanticDescription: "State or province that issued the license", Format: model.FormatText},
				{Name: "expirationDate", SemanticDescription: "License expiration date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "issueDate", SemanticDescription: "Date the license was issued", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "class", SemanticDescription: "License class or type (Class C, Class A, etc.)", Format: model.FormatText},
			},
		},
		{
			Name:                "Passport",
			Identifier:          "passport",
			SemanticDescription: "Government issued passport for identification",
			Fields: []model.TemplateField{
				{Name: "fullName", SemanticDescription: "Full name of the passport holder", Format: model.FormatText},
				{Name: "dateOfBirth", SemanticDescription: "Date of birth", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "address", SemanticDescription: "Full address of the passport holder", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
			},
		},
		{
			Name:                "Pay Stub",
			Identifier:          "pay_stub",
			SemanticDescription: "Recent pay stub for income verification",
			Fields: []model.TemplateField{
				{Name: "employer", SemanticDescription: "Employer or company name", Format: model.FormatText},
				{Name: "employerAddress", SemanticDescription: "Employer address or company address", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "employeeName", SemanticDescription: "Employee full name", Format: model.FormatText},
				{Name: "employeeAddress", SemanticDescription: "Employee address", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "socialSecurityNumber", SemanticDescription: "Employee SSN or social security number (may be partially masked)", Format: model.FormatText},
				{Name: "employeeId", SemanticDescription: "Employee ID or employee number", Format: model.FormatText},
				{Name: "jobTitle", SemanticDescription: "Employee job title or position (appears after 'Position:' or 'Title:' on the pay stub)", Format: model.FormatText},
				{Name: "payPeriodStart", SemanticDescription: "Pay period start date or beginning date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "payPeriodEnd", SemanticDescription: "Pay period end date or ending date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "payDate", SemanticDescription: "Pay date or check date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "grossPay", SemanticDescription: "Current gross pay amount for this pay period (numeric dollar amount like 3,500.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "netPay", SemanticDescription: "Current net pay amount for this pay period (numeric dollar amount like 2,800.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "regularPay", SemanticDescription: "Regular hours pay amount (numeric dollar amount like 2,800.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "overtimePay", SemanticDescription: "Overtime pay amount (numeric dollar amount like 700.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "regularHours", SemanticDescription: "Regular hours worked", Format: model.FormatNumber, ValidationMethod: model.ValidateNumber},
				{Name: "overtimeHours", SemanticDescription: "Overtime hours worked", Format: model.FormatNumber, ValidationMethod: model.ValidateNumber},
				{Name: "hourlyRate", SemanticDescription: "Hourly pay rate or wage rate", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "payPeriodFrequency", SemanticDescription: "Pay frequency (Weekly, Bi-Weekly, Monthly, etc.)", Format: model.FormatText},
				{Name: "yearToDateGross", SemanticDescription: "Year-to-date gross pay total (numeric dollar amount like 42,000.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "yearToDateNet", SemanticDescription: "Year-to-date net pay total (numeric dollar amount like 33,600.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "federalTaxWithheld", SemanticDescription: "Federal income tax withheld this period", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "stateTaxWithheld", SemanticDescription: "State income tax withheld this period", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "socialSecurityTax", SemanticDescription: "Social Security tax withheld this period", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "medicareTax", SemanticDescription: "Medicare tax withheld this period", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "totalDeductions", SemanticDescription: "Total deductions for this pay period", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
			},
		},
		{
			Name:                "Employment Letter",
			Identifier:          "employment_letter",
			SemanticDescription: "Employment verification letter",
			Fields: []model.TemplateField{
				{Name: "employer", SemanticDescription: "Employer name", Format: model.FormatText},
				{Name: "grossPay", SemanticDescription: "Annual gross salary", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "netPay", SemanticDescription: "Annual net salary", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "payPeriod", SemanticDescription: "Salary payment frequency", Format: model.FormatText},
			},
		},
		{
			Name:                "Bank Statement",
			Identifier:          "bank_statement",
			SemanticDescription: "Recent bank statement for financial verification",
			Fields: []model.TemplateField{
				{Name: "accountHolder", SemanticDescription: "Account holder name on the bank statement", Format: model.FormatText},
				{Name: "accountNumber", SemanticDescription: "Bank account number or partial account number", Format: model.FormatText},
				{Name: "routingNumber", SemanticDescription: "Bank routing number or transit number", Format: model.FormatText},
				{Name: "bankName", SemanticDescription: "Name of the financial institution or bank", Format: model.FormatText},
				{Name: "bankAddress", SemanticDescription: "Bank branch address or mailing address", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "statementDate", SemanticDescription: "Statement date or statement period end date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "statementPeriodStart", SemanticDescription: "Statement period beginning date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "statementPeriodEnd", SemanticDescription: "Statement period ending date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "openingBalance", SemanticDescription: "Opening balance dollar amount at start of statement period (numeric value like 5,234.67, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "closingBalance", SemanticDescription: "Closing balance dollar amount at end of statement period (numeric value like 3,456.78, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "currentBalance", SemanticDescription: "Current account balance dollar amount (numeric value with decimals, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "totalDeposits", SemanticDescription: "Total deposits dollar amount during statement period (numeric value like 1,250.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "totalWithdrawals", SemanticDescription: "Total withdrawals dollar amount during statement period (numeric value like 2,100.50, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "currency", SemanticDescription: "Currency type or currency code (USD, CAD, etc.)", Format: model.FormatText},
				{Name: "accountType", SemanticDescription: "Type of bank account - look for words like 'CHECKING', 'SAVINGS', 'Money Market' in headers or near 'Account Summary' (extract just the account type like 'Checking' or 'Savings')", Format: model.FormatText},
			},
		},
		{
			Name:                "Loan Application Form",
			Identifier:          "loan_application",
			SemanticDescription: "Formal loan application document",
			Fields: []model.TemplateField{
				{Name: "requestedAmount", SemanticDescription: "Requested loan amount", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "purpose", SemanticDescription: "Purpose of the loan", Format: model.FormatText},
			},
		},
		{
			Name:                "Vehicle Bill of Sale",
			Identifier:          "vehicle_bill_of_sale",
			SemanticDescription: "Vehicle purchase documentation with buyer, seller, and vehicle information",
			Fields: []model.TemplateField{
				{Name: "billOfSaleNumber", SemanticDescription: "Bill of sale number or document reference number", Format: model.FormatText},
				{Name: "saleDate", SemanticDescription: "Date of vehicle sale or transaction date", Format: model.FormatDate, ValidationMethod: model.ValidateDate},
				{Name: "sellerName", SemanticDescription: "Name of the vehicle seller or dealer", Format: model.FormatText},
				{Name: "sellerAddress", SemanticDescription: "Address of the vehicle seller or dealership", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "sellerPhone", SemanticDescription: "Phone number of the seller or dealership", Format: model.FormatText, ValidationMethod: model.ValidatePhoneNumber},
				{Name: "buyerName", SemanticDescription: "Name of the vehicle buyer or purchaser", Format: model.FormatText},
				{Name: "buyerAddress", SemanticDescription: "Address of the vehicle buyer", Format: model.FormatText, ValidationMethod: model.ValidatePostalAddress},
				{Name: "buyerPhone", SemanticDescription: "Phone number of the buyer", Format: model.FormatText, ValidationMethod: model.ValidatePhoneNumber},
				{Name: "vehicleYear", SemanticDescription: "Year the vehicle was manufactured", Format: model.FormatNumber, ValidationMethod: model.ValidateNumber},
				{Name: "vehicleMake", SemanticDescription: "Vehicle manufacturer or make (Honda, Toyota, Ford, etc.)", Format: model.FormatText},
				{Name: "vehicleModel", SemanticDescription: "Vehicle model name", Format: model.FormatText},
				{Name: "vehicleTrim", SemanticDescription: "Vehicle trim level or style", Format: model.FormatText},
				{Name: "vehicleVin", SemanticDescription: "Vehicle Identification Number (VIN)", Format: model.FormatText, ValidationMethod: model.ValidateVIN},
				{Name: "vehicleMileage", SemanticDescription: "Vehicle mileage or odometer reading", Format: model.FormatNumber, ValidationMethod: model.ValidateNumber},
				{Name: "vehicleColor", SemanticDescription: "Vehicle color or paint color", Format: model.FormatText},
				{Name: "vehicleEngine", SemanticDescription: "Engine type or engine description", Format: model.FormatText},
				{Name: "vehicleTransmission", SemanticDescription: "Transmission type (automatic, manual, CVT)", Format: model.FormatText},
				{Name: "vehicleCondition", SemanticDescription: "Vehicle condition (new, used, excellent, good, fair)", Format: model.FormatText},
				{Name: "salePrice", SemanticDescription: "Total sale price of the vehicle (numeric dollar amount like 25,000.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "downPayment", SemanticDescription: "Down payment amount (numeric dollar amount like 5,000.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "loanAmount", SemanticDescription: "Loan amount or financed amount (numeric dollar amount like 20,000.00, not currency symbol)", Format: model.FormatCurrency, ValidationMethod: model.ValidateCurrency},
				{Name: "paymentMethod", SemanticDescription: "Method of payment (cash, financing, loan, etc.)", Format: model.FormatText},
				{Name: "titleStatus", SemanticDescription: "Title status (clean, salvage, lien, etc.)", Format: model.FormatText},
				{Name: "warranty", SemanticDescription: "Warranty information or warranty type", Format: model.FormatText},
			},
		},
	}
}
