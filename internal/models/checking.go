package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckingApplication is the DB shape of a checking application row. The
// usage_profile and funding_preferences JSONB columns are carried as raw bytes
// and decoded at the repository boundary.
type CheckingApplication struct {
	ApplicationID      string    `db:"application_id"`
	Reference          string    `db:"reference"`
	BusinessID         string    `db:"business_id"`
	CustomerID         string    `db:"customer_id"`
	ProductID          string    `db:"product_id"`
	SubmittedAt        time.Time `db:"submitted_at"`
	Status             string    `db:"status"`
	UsageProfile       []byte    `db:"usage_profile"`
	FundingPreferences []byte    `db:"funding_preferences"`
}

// Owner is the DB shape of a beneficial owner row.
type Owner struct {
	OwnerID             string           `db:"owner_id"`
	ApplicationID       string           `db:"application_id"`
	FullName            string           `db:"full_name"`
	DOB                 *time.Time       `db:"dob"`
	NationalID          string           `db:"national_id"`
	OwnershipPercentage *decimal.Decimal `db:"ownership_percentage"`
	Address             string           `db:"address"`
}

// Document is the DB shape of an uploaded document row.
type Document struct {
	DocumentID    string    `db:"document_id"`
	ApplicationID string    `db:"application_id"`
	DocType       string    `db:"doc_type"`
	Status        string    `db:"status"`
	ReasonCodes   []string  `db:"reason_codes"`
	UploadedAt    time.Time `db:"uploaded_at"`
}

// RiskScore is the DB shape of one scoring artifact. Append only.
type RiskScore struct {
	RiskScoreID   string    `db:"risk_score_id"`
	ApplicationID string    `db:"application_id"`
	Score         int       `db:"score"`
	Band          string    `db:"band"`
	DriverCodes   []string  `db:"driver_codes"`
	CreatedAt     time.Time `db:"created_at"`
}

// CheckingAccount is the DB shape of the funded account row. The unique index
// on application_id enforces at most one per application.
type CheckingAccount struct {
	AccountID     string    `db:"account_id"`
	ApplicationID string    `db:"application_id"`
	AccountNumber string    `db:"account_number"`
	RoutingNumber string    `db:"routing_number"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}
