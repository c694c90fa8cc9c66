package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageProfile captures the expected account usage declared by the applicant.
// Stored as a semi-structured JSONB column.
type UsageProfile struct {
	ExpectedMonthlyCredits    *decimal.Decimal `json:"expectedMonthlyCredits,omitempty"`
	ExpectedMonthlyDebits     *decimal.Decimal `json:"expectedMonthlyDebits,omitempty"`
	CashDepositVolumePerMonth *decimal.Decimal `json:"cashDepositVolumePerMonth,omitempty"`
	DigitalPaymentShare       *decimal.Decimal `json:"digitalPaymentShare,omitempty"`
	MinimumBalanceComfort     *decimal.Decimal `json:"minimumBalanceComfort,omitempty"`
}

// FundingPreferences captures how the applicant intends to fund the account.
type FundingPreferences struct {
	Method string           `json:"method,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// CheckingApplication is the unit of work for the checking onboarding
// workflow. It owns its child collections; deleting the application cascades.
type CheckingApplication struct {
	ApplicationID      string              `json:"applicationID"`
	Reference          string              `json:"reference"` // globally unique, immutable
	BusinessID         string              `json:"businessID"`
	CustomerID         string              `json:"customerID"`
	ProductID          string              `json:"productID"`
	SubmittedAt        time.Time           `json:"submittedAt"` // immutable once set
	Status             ApplicationStatus   `json:"status"`
	UsageProfile       *UsageProfile       `json:"usageProfile"`
	FundingPreferences *FundingPreferences `json:"fundingPreferences"`

	Business  Business   `json:"business"`
	Owners    []Owner    `json:"owners"`
	Documents []Document `json:"documents"`
}

// Owner is a beneficial owner of the business within one checking application.
type Owner struct {
	OwnerID             string           `json:"ownerID"`
	ApplicationID       string           `json:"applicationID"`
	FullName            string           `json:"fullName"`
	DOB                 *time.Time       `json:"dob"`
	NationalID          string           `json:"nationalID"`
	OwnershipPercentage *decimal.Decimal `json:"ownershipPercentage"` // 0-100, not enforced
	Address             string           `json:"address"`
}

// DocumentStatus is the validation state of an uploaded document.
type DocumentStatus string

const (
	DocumentUploaded  DocumentStatus = "UPLOADED"
	DocumentValidated DocumentStatus = "VALIDATED"
	DocumentRejected  DocumentStatus = "REJECTED"
)

// Document is one uploaded artifact attached to an application.
type Document struct {
	DocumentID    string         `json:"documentID"`
	ApplicationID string         `json:"applicationID"`
	DocType       string         `json:"docType"`
	Status        DocumentStatus `json:"status"`
	ReasonCodes   []string       `json:"reasonCodes"`
	UploadedAt    time.Time      `json:"uploadedAt"`
}

// RequiredDocumentTypes is the fixed set of document types every application
// must provide before automated decisioning.
var RequiredDocumentTypes = []string{
	"BUSINESS_REG_CERT",
	"TAX_ID_PROOF",
	"OWNER_ID_PROOF",
}
