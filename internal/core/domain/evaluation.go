package domain

// Reason codes produced by the completeness evaluator.
const (
	CodeBusinessTaxID       = "BUSINESS_TAX_ID"
	CodeBusinessAddress     = "BUSINESS_ADDRESS"
	CodeOwnersMissing       = "OWNERS_MISSING"
	CodeOwnerDOB            = "OWNER_DOB"
	CodeOwnerIDNumber       = "OWNER_ID_NUMBER"
	CodeOwnershipPercentage = "OWNERSHIP_PERCENTAGE"
	CodeUsageProfileMissing = "USAGE_PROFILE_MISSING"
)

// Reason codes produced by eligibility evaluators.
const (
	CodeIndustryNotAllowed = "INDUSTRY_NOT_ALLOWED"
	CodeMinAgeOfBusiness   = "MIN_AGE_OF_BUSINESS_NOT_MET"
	CodeInsufficientTenure = "INSUFFICIENT_TENURE_FOR_REQUESTED_AMOUNT"
	CodeLowBureauScore     = "LOW_BUREAU_SCORE"
)

// Reason codes produced by verification providers.
const (
	CodeRegistrationNotFound  = "REGISTRATION_NOT_FOUND"
	CodeRegistryDataAmbiguous = "REGISTRY_DATA_AMBIGUOUS"
	CodeMissingNationalID     = "MISSING_NATIONAL_ID"
	CodeMissingDOB            = "MISSING_DOB"
)

// Driver codes attached to scoring artifacts.
const (
	DriverNewBusiness           = "NEW_BUSINESS"
	DriverHighCashVolume        = "HIGH_CASH_VOLUME"
	DriverHighRiskIndustry      = "HIGH_RISK_INDUSTRY"
	DriverGoodBureauScore       = "GOOD_BUREAU_SCORE"
	DriverLowBureauScore        = "LOW_BUREAU_SCORE"
	DriverShortOperatingHistory = "SHORT_OPERATING_HISTORY"
	DriverBaseline              = "BASELINE"
)

// CompletenessEvaluation is the read-only verdict on whether an application
// has the mandatory fields for automated decisioning.
type CompletenessEvaluation struct {
	CanProceed        bool     `json:"canProceed"`
	MissingFieldCodes []string `json:"missingFieldCodes"`
	Comments          string   `json:"comments,omitempty"`
}

// EligibilityEvaluation is the read-only verdict of a policy rule set.
type EligibilityEvaluation struct {
	Eligible    bool     `json:"eligible"`
	ReasonCodes []string `json:"reasonCodes"`
}

// DocumentEvaluation reports missing required documents and rejected uploads.
type DocumentEvaluation struct {
	DocsOK          bool     `json:"docsOK"`
	MissingDocTypes []string `json:"missingDocTypes"`
	InvalidDocTypes []string `json:"invalidDocTypes"`
	ReasonCodes     []string `json:"reasonCodes"`
}
