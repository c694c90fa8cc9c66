package domain

// VerificationStatus is the three-way outcome of an identity check.
// MANUAL_REVIEW is produced when registry data exists but cannot be
// cross-checked automatically.
type VerificationStatus string

const (
	VerificationPassed       VerificationStatus = "PASSED"
	VerificationFailed       VerificationStatus = "FAILED"
	VerificationManualReview VerificationStatus = "MANUAL_REVIEW"
)

// BusinessVerification is the result of checking the business against the
// company registry.
type BusinessVerification struct {
	Status                    VerificationStatus `json:"status"`
	ReasonCodes               []string           `json:"reasonCodes"`
	MatchedRegistryName       string             `json:"matchedRegistryName,omitempty"`
	MatchedRegistrationNumber string             `json:"matchedRegistrationNumber,omitempty"`
}

// OwnerVerification is the identity-check result for a single beneficial owner.
type OwnerVerification struct {
	OwnerID     string             `json:"ownerID"`
	Status      VerificationStatus `json:"status"`
	ReasonCodes []string           `json:"reasonCodes"`
}

// OwnerVerificationSet aggregates per-owner results. OverallStatus is FAILED
// if any owner failed; an application without owners fails with an empty list.
type OwnerVerificationSet struct {
	OverallStatus VerificationStatus  `json:"overallStatus"`
	Owners        []OwnerVerification `json:"owners"`
}
