package domain

// Customer is the banking relationship the applicant business belongs to.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Segment    string `json:"segment"`
}

// Business is the legal identity of the applicant entity. It is shared by
// reference across checking and lending applications and owned by neither.
type Business struct {
	BusinessID         string `json:"businessID"`
	CustomerID         string `json:"customerID"`
	LegalName          string `json:"legalName"`
	TradeName          string `json:"tradeName"`
	EntityType         string `json:"entityType"`
	TaxID              string `json:"taxID"`
	RegistrationNumber string `json:"registrationNumber"`
	IndustryCode       string `json:"industryCode"`
	Country            string `json:"country"`
	State              string `json:"state"`
	City               string `json:"city"`
	Address            string `json:"address"`
	YearsInBusiness    *int   `json:"yearsInBusiness"` // nil when not declared
}

// restrictedIndustryCodes are MCC-style codes blocked from onboarding and
// weighted in risk scoring.
var restrictedIndustryCodes = map[string]struct{}{
	"7995": {},
	"9999": {},
}

// IsRestrictedIndustry reports whether the business operates in a restricted
// industry code.
func (b Business) IsRestrictedIndustry() bool {
	_, ok := restrictedIndustryCodes[b.IndustryCode]
	return ok
}

// IsNewBusiness reports whether the business has declared less than one full
// year of operation. Undeclared tenure is not treated as new.
func (b Business) IsNewBusiness() bool {
	return b.YearsInBusiness != nil && *b.YearsInBusiness < 1
}
