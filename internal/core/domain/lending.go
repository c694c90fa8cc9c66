package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LendingApplication is the unit of work for credit origination. It references
// the applicant's checking account for cash-flow underwriting and owns its
// child artifact collections (cascade on delete).
type LendingApplication struct {
	ApplicationID     string            `json:"applicationID"`
	Reference         string            `json:"reference"` // globally unique, immutable
	CustomerID        string            `json:"customerID"`
	BusinessID        string            `json:"businessID"`
	CheckingAccountID string            `json:"checkingAccountID"`
	ProductType       string            `json:"productType"` // CREDIT_CARD, REVOLVING_LOC, TERM_LOAN
	RequestedAmount   *decimal.Decimal  `json:"requestedAmount"`
	Status            ApplicationStatus `json:"status"`
	SubmittedAt       time.Time         `json:"submittedAt"`

	Customer Customer `json:"customer"`
	Business Business `json:"business"`
}

// TransactionSummary aggregates checking-account cash flow over a lookback
// window, used as underwriting input.
type TransactionSummary struct {
	SummaryID                    string           `json:"summaryID"`
	ApplicationID                string           `json:"applicationID"`
	CheckingAccountID            string           `json:"checkingAccountID"`
	LookbackMonths               int              `json:"lookbackMonths"`
	PeriodStart                  *time.Time       `json:"periodStart"`
	PeriodEnd                    *time.Time       `json:"periodEnd"`
	TotalCredits                 *decimal.Decimal `json:"totalCredits"`
	TotalDebits                  *decimal.Decimal `json:"totalDebits"`
	AvgMonthlyRevenue            *decimal.Decimal `json:"avgMonthlyRevenue"`
	RevenueVolatility            *decimal.Decimal `json:"revenueVolatility"`
	MaxSingleMonthRevenue        *decimal.Decimal `json:"maxSingleMonthRevenue"`
	MonthsWithNegativeEndBalance *int             `json:"monthsWithNegativeEndBalance"`
	AvgEndOfMonthBalance         *decimal.Decimal `json:"avgEndOfMonthBalance"`
	OverdraftCount               *int             `json:"overdraftCount"`
	CreatedAt                    time.Time        `json:"createdAt"`
}

// CreditReport is one bureau pull for a lending application.
type CreditReport struct {
	ReportID              string           `json:"reportID"`
	ApplicationID         string           `json:"applicationID"`
	Bureau                string           `json:"bureau"`
	Score                 *int             `json:"score"`
	ScoreBand             string           `json:"scoreBand"`
	DelinquenciesCount    *int             `json:"delinquenciesCount"`
	DelinquenciesLast24M  *int             `json:"delinquenciesLast24m"`
	BankruptciesCount     *int             `json:"bankruptciesCount"`
	PublicRecordsCount    *int             `json:"publicRecordsCount"`
	UtilizationRatio      *decimal.Decimal `json:"utilizationRatio"`
	LastUpdatedAt         time.Time        `json:"lastUpdatedAt"`
}

// Underwriting is one underwriting run. Rows are append only; the current
// result is the most recently created row.
type Underwriting struct {
	UnderwritingID         string          `json:"underwritingID"`
	ApplicationID          string          `json:"applicationID"`
	RiskGrade              string          `json:"riskGrade"`
	PDEstimate             decimal.Decimal `json:"pdEstimate"`
	LGDEstimate            decimal.Decimal `json:"lgdEstimate"`
	RecommendedMaxExposure decimal.Decimal `json:"recommendedMaxExposure"`
	AffordabilityBand      string          `json:"affordabilityBand"`
	KeyRiskDrivers         []string        `json:"keyRiskDrivers"`
	DSCR                   decimal.Decimal `json:"dscr"`
	DebtToRevenueRatio     decimal.Decimal `json:"debtToRevenueRatio"`
	CreatedAt              time.Time       `json:"createdAt"`
}

// Offer is one proposed credit product for a lending application. Append only;
// selection is persisted on the row.
type Offer struct {
	OfferID            string           `json:"offerID"`
	ApplicationID      string           `json:"applicationID"`
	OfferCode          string           `json:"offerCode"` // unique
	ProductType        string           `json:"productType"`
	CreditLimit        decimal.Decimal  `json:"creditLimit"`
	MinCreditLimit     *decimal.Decimal `json:"minCreditLimit"`
	MaxCreditLimit     *decimal.Decimal `json:"maxCreditLimit"`
	APR                *decimal.Decimal `json:"apr"`
	AnnualFee          *decimal.Decimal `json:"annualFee"`
	OriginationFee     *decimal.Decimal `json:"originationFee"`
	TenorMonths        *int             `json:"tenorMonths"`
	RepaymentTerms     string           `json:"repaymentTerms"`
	CollateralRequired bool             `json:"collateralRequired"`
	Notes              string           `json:"notes"`
	Selected           bool             `json:"selected"`
	SelectedAt         *time.Time       `json:"selectedAt"`
	CreatedAt          time.Time        `json:"createdAt"`
}
