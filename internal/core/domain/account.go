package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the state of a funded account or facility.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
)

// CheckingAccount is the terminal artifact of the checking workflow. At most
// one exists per application.
type CheckingAccount struct {
	AccountID     string        `json:"accountID"`
	ApplicationID string        `json:"applicationID"`
	AccountNumber string        `json:"accountNumber"`
	RoutingNumber string        `json:"routingNumber"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// CreditFacility is the funded lending outcome. At most one exists per
// application; terms are copied from the selected-or-latest offer at opening.
type CreditFacility struct {
	FacilityID      string           `json:"facilityID"`
	ApplicationID   string           `json:"applicationID"`
	CustomerID      string           `json:"customerID"`
	BusinessID      string           `json:"businessID"`
	FacilityType    string           `json:"facilityType"`
	AccountNumber   string           `json:"accountNumber"`
	CreditLimit     decimal.Decimal  `json:"creditLimit"`
	APR             *decimal.Decimal `json:"apr"`
	Status          AccountStatus    `json:"status"`
	BillingCycleDay *int             `json:"billingCycleDay"`
	DrawdownTerms   string           `json:"drawdownTerms"`
	CreatedAt       time.Time        `json:"createdAt"`
}
