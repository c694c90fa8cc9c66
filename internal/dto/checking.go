package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// CheckingApplicationResponse is the full application aggregate returned by
// the reference lookup.
type CheckingApplicationResponse struct {
	ApplicationID      string                     `json:"applicationID"`
	Reference          string                     `json:"reference"`
	BusinessID         string                     `json:"businessID"`
	CustomerID         string                     `json:"customerID"`
	ProductID          string                     `json:"productID"`
	SubmittedAt        time.Time                  `json:"submittedAt"`
	Status             domain.ApplicationStatus   `json:"status"`
	UsageProfile       *domain.UsageProfile       `json:"usageProfile"`
	FundingPreferences *domain.FundingPreferences `json:"fundingPreferences"`
	Business           BusinessResponse           `json:"business"`
	Owners             []OwnerResponse            `json:"owners"`
	Documents          []DocumentResponse         `json:"documents"`
}

// BusinessResponse mirrors domain.Business.
type BusinessResponse struct {
	BusinessID         string `json:"businessID"`
	LegalName          string `json:"legalName"`
	TradeName          string `json:"tradeName,omitempty"`
	EntityType         string `json:"entityType,omitempty"`
	TaxID              string `json:"taxID,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	IndustryCode       string `json:"industryCode,omitempty"`
	Country            string `json:"country,omitempty"`
	State              string `json:"state,omitempty"`
	City               string `json:"city,omitempty"`
	Address            string `json:"address,omitempty"`
	YearsInBusiness    *int   `json:"yearsInBusiness"`
}

// OwnerResponse mirrors domain.Owner.
type OwnerResponse struct {
	OwnerID             string           `json:"ownerID"`
	FullName            string           `json:"fullName"`
	DOB                 *time.Time       `json:"dob"`
	NationalID          string           `json:"nationalID,omitempty"`
	OwnershipPercentage *decimal.Decimal `json:"ownershipPercentage"`
	Address             string           `json:"address,omitempty"`
}

// DocumentResponse mirrors domain.Document.
type DocumentResponse struct {
	DocumentID  string                `json:"documentID"`
	DocType     string                `json:"docType"`
	Status      domain.DocumentStatus `json:"status"`
	ReasonCodes []string              `json:"reasonCodes"`
	UploadedAt  time.Time             `json:"uploadedAt"`
}

// ToBusinessResponse converts a domain.Business to its DTO.
func ToBusinessResponse(b domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:         b.BusinessID,
		LegalName:          b.LegalName,
		TradeName:          b.TradeName,
		EntityType:         b.EntityType,
		TaxID:              b.TaxID,
		RegistrationNumber: b.RegistrationNumber,
		IndustryCode:       b.IndustryCode,
		Country:            b.Country,
		State:              b.State,
		City:               b.City,
		Address:            b.Address,
		YearsInBusiness:    b.YearsInBusiness,
	}
}

// ToCheckingApplicationResponse converts the aggregate to its DTO.
func ToCheckingApplicationResponse(app *domain.CheckingApplication) CheckingApplicationResponse {
	owners := make([]OwnerResponse, len(app.Owners))
	for i, o := range app.Owners {
		owners[i] = OwnerResponse{
			OwnerID:             o.OwnerID,
			FullName:            o.FullName,
			DOB:                 o.DOB,
			NationalID:          o.NationalID,
			OwnershipPercentage: o.OwnershipPercentage,
			Address:             o.Address,
		}
	}
	documents := make([]DocumentResponse, len(app.Documents))
	for i, d := range app.Documents {
		documents[i] = DocumentResponse{
			DocumentID:  d.DocumentID,
			DocType:     d.DocType,
			Status:      d.Status,
			ReasonCodes: d.ReasonCodes,
			UploadedAt:  d.UploadedAt,
		}
	}
	return CheckingApplicationResponse{
		ApplicationID:      app.ApplicationID,
		Reference:          app.Reference,
		BusinessID:         app.BusinessID,
		CustomerID:         app.CustomerID,
		ProductID:          app.ProductID,
		SubmittedAt:        app.SubmittedAt,
		Status:             app.Status,
		UsageProfile:       app.UsageProfile,
		FundingPreferences: app.FundingPreferences,
		Business:           ToBusinessResponse(app.Business),
		Owners:             owners,
		Documents:          documents,
	}
}

// EvaluateEligibilityRequest carries the product the applicant asked for.
type EvaluateEligibilityRequest struct {
	ProductID string `json:"productID" binding:"required"`
}

// CompletenessResponse is the verdict of the completeness evaluator.
type CompletenessResponse struct {
	CanProceed        bool     `json:"canProceed"`
	MissingFieldCodes []string `json:"missingFieldCodes"`
	Comments          string   `json:"comments,omitempty"`
}

// ToCompletenessResponse converts the evaluation to its DTO.
func ToCompletenessResponse(e *domain.CompletenessEvaluation) CompletenessResponse {
	return CompletenessResponse{
		CanProceed:        e.CanProceed,
		MissingFieldCodes: emptyIfNil(e.MissingFieldCodes),
		Comments:          e.Comments,
	}
}

// EligibilityResponse is the verdict of a policy rule set.
type EligibilityResponse struct {
	Eligible    bool     `json:"eligible"`
	ReasonCodes []string `json:"reasonCodes"`
}

// ToEligibilityResponse converts the evaluation to its DTO.
func ToEligibilityResponse(e *domain.EligibilityEvaluation) EligibilityResponse {
	return EligibilityResponse{
		Eligible:    e.Eligible,
		ReasonCodes: emptyIfNil(e.ReasonCodes),
	}
}

// DocumentEvaluationResponse is the verdict of the document evaluator.
type DocumentEvaluationResponse struct {
	DocsOK          bool     `json:"docsOK"`
	MissingDocTypes []string `json:"missingDocTypes"`
	InvalidDocTypes []string `json:"invalidDocTypes"`
	ReasonCodes     []string `json:"reasonCodes"`
}

// ToDocumentEvaluationResponse converts the evaluation to its DTO.
func ToDocumentEvaluationResponse(e *domain.DocumentEvaluation) DocumentEvaluationResponse {
	return DocumentEvaluationResponse{
		DocsOK:          e.DocsOK,
		MissingDocTypes: emptyIfNil(e.MissingDocTypes),
		InvalidDocTypes: emptyIfNil(e.InvalidDocTypes),
		ReasonCodes:     emptyIfNil(e.ReasonCodes),
	}
}

// BusinessVerificationResponse is the registry check verdict.
type BusinessVerificationResponse struct {
	Status                    domain.VerificationStatus `json:"status"`
	ReasonCodes               []string                  `json:"reasonCodes"`
	MatchedRegistryName       string                    `json:"matchedRegistryName,omitempty"`
	MatchedRegistrationNumber string                    `json:"matchedRegistrationNumber,omitempty"`
}

// ToBusinessVerificationResponse converts the verification to its DTO.
func ToBusinessVerificationResponse(v *domain.BusinessVerification) BusinessVerificationResponse {
	return BusinessVerificationResponse{
		Status:                    v.Status,
		ReasonCodes:               emptyIfNil(v.ReasonCodes),
		MatchedRegistryName:       v.MatchedRegistryName,
		MatchedRegistrationNumber: v.MatchedRegistrationNumber,
	}
}

// OwnerVerificationResponse is one per-owner identity check verdict.
type OwnerVerificationResponse struct {
	OwnerID     string                    `json:"ownerID"`
	Status      domain.VerificationStatus `json:"status"`
	ReasonCodes []string                  `json:"reasonCodes"`
}

// OwnerVerificationSetResponse aggregates per-owner verdicts.
type OwnerVerificationSetResponse struct {
	OverallStatus domain.VerificationStatus   `json:"overallStatus"`
	Owners        []OwnerVerificationResponse `json:"owners"`
}

// ToOwnerVerificationSetResponse converts the verification set to its DTO.
func ToOwnerVerificationSetResponse(v *domain.OwnerVerificationSet) OwnerVerificationSetResponse {
	owners := make([]OwnerVerificationResponse, len(v.Owners))
	for i, o := range v.Owners {
		owners[i] = OwnerVerificationResponse{
			OwnerID:     o.OwnerID,
			Status:      o.Status,
			ReasonCodes: emptyIfNil(o.ReasonCodes),
		}
	}
	return OwnerVerificationSetResponse{
		OverallStatus: v.OverallStatus,
		Owners:        owners,
	}
}

// RiskScoreResponse is one scoring artifact.
type RiskScoreResponse struct {
	RiskScoreID   string          `json:"riskScoreID"`
	ApplicationID string          `json:"applicationID"`
	Score         int             `json:"score"`
	Band          domain.RiskBand `json:"band"`
	DriverCodes   []string        `json:"driverCodes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToRiskScoreResponse converts a domain.RiskScore to its DTO.
func ToRiskScoreResponse(s *domain.RiskScore) RiskScoreResponse {
	return RiskScoreResponse{
		RiskScoreID:   s.RiskScoreID,
		ApplicationID: s.ApplicationID,
		Score:         s.Score,
		Band:          s.Band,
		DriverCodes:   emptyIfNil(s.DriverCodes),
		CreatedAt:     s.CreatedAt,
	}
}

// CheckingAccountResponse is the funded account artifact.
type CheckingAccountResponse struct {
	AccountID     string               `json:"accountID"`
	ApplicationID string               `json:"applicationID"`
	AccountNumber string               `json:"accountNumber"`
	RoutingNumber string               `json:"routingNumber"`
	Status        domain.AccountStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToCheckingAccountResponse converts a domain.CheckingAccount to its DTO.
func ToCheckingAccountResponse(a *domain.CheckingAccount) CheckingAccountResponse {
	return CheckingAccountResponse{
		AccountID:     a.AccountID,
		ApplicationID: a.ApplicationID,
		AccountNumber: a.AccountNumber,
		RoutingNumber: a.RoutingNumber,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

// emptyIfNil keeps list fields as [] rather than null in JSON responses.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
