package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LendingApplication is the DB shape of a lending application row.
type LendingApplication struct {
	ApplicationID     string           `db:"application_id"`
	Reference         string           `db:"reference"`
	CustomerID        string           `db:"customer_id"`
	BusinessID        string           `db:"business_id"`
	CheckingAccountID string           `db:"checking_account_id"`
	ProductType       string           `db:"product_type"`
	RequestedAmount   *decimal.Decimal `db:"requested_amount"`
	Status            string           `db:"status"`
	SubmittedAt       time.Time        `db:"submitted_at"`
}

// TransactionSummary is the DB shape of one cash-flow summary row.
type TransactionSummary struct {
	SummaryID                    string           `db:"summary_id"`
	ApplicationID                string           `db:"application_id"`
	CheckingAccountID            string           `db:"checking_account_id"`
	LookbackMonths               int              `db:"lookback_months"`
	PeriodStart                  *time.Time       `db:"period_start"`
	PeriodEnd                    *time.Time       `db:"period_end"`
	TotalCredits                 *decimal.Decimal `db:"total_credits"`
	TotalDebits                  *decimal.Decimal `db:"total_debits"`
	AvgMonthlyRevenue            *decimal.Decimal `db:"avg_monthly_revenue"`
	RevenueVolatility            *decimal.Decimal `db:"revenue_volatility"`
	MaxSingleMonthRevenue        *decimal.Decimal `db:"max_single_month_revenue"`
	MonthsWithNegativeEndBalance *int             `db:"months_with_negative_end_balance"`
	AvgEndOfMonthBalance         *decimal.Decimal `db:"avg_end_of_month_balance"`
	OverdraftCount               *int             `db:"overdraft_count"`
	CreatedAt                    time.Time        `db:"created_at"`
}

// CreditReport is the DB shape of one bureau pull.
type CreditReport struct {
	ReportID             string           `db:"report_id"`
	ApplicationID        string           `db:"application_id"`
	Bureau               string           `db:"bureau"`
	Score                *int             `db:"score"`
	ScoreBand            string           `db:"score_band"`
	DelinquenciesCount   *int             `db:"delinquencies_count"`
	DelinquenciesLast24M *int             `db:"delinquencies_last_24m"`
	BankruptciesCount    *int             `db:"bankruptcies_count"`
	PublicRecordsCount   *int             `db:"public_records_count"`
	UtilizationRatio     *decimal.Decimal `db:"utilization_ratio"`
	LastUpdatedAt        time.Time        `db:"last_updated_at"`
}

// Underwriting is the DB shape of one underwriting run. Append only.
type Underwriting struct {
	UnderwritingID         string          `db:"underwriting_id"`
	ApplicationID          string          `db:"application_id"`
	RiskGrade              string          `db:"risk_grade"`
	PDEstimate             decimal.Decimal `db:"pd_estimate"`
	LGDEstimate            decimal.Decimal `db:"lgd_estimate"`
	RecommendedMaxExposure decimal.Decimal `db:"recommended_max_exposure"`
	AffordabilityBand      string          `db:"affordability_band"`
	KeyRiskDrivers         []string        `db:"key_risk_drivers"`
	DSCR                   decimal.Decimal `db:"dscr"`
	DebtToRevenueRatio     decimal.Decimal `db:"debt_to_revenue_ratio"`
	CreatedAt              time.Time       `db:"created_at"`
}

// Offer is the DB shape of one generated offer. offer_code carries a unique
// constraint; selection is persisted in place.
type Offer struct {
	OfferID            string           `db:"offer_id"`
	ApplicationID      string           `db:"application_id"`
	OfferCode          string           `db:"offer_code"`
	ProductType        string           `db:"product_type"`
	CreditLimit        decimal.Decimal  `db:"credit_limit"`
	MinCreditLimit     *decimal.Decimal `db:"min_credit_limit"`
	MaxCreditLimit     *decimal.Decimal `db:"max_credit_limit"`
	APR                *decimal.Decimal `db:"apr"`
	AnnualFee          *decimal.Decimal `db:"annual_fee"`
	OriginationFee     *decimal.Decimal `db:"origination_fee"`
	TenorMonths        *int             `db:"tenor_months"`
	RepaymentTerms     string           `db:"repayment_terms"`
	CollateralRequired bool             `db:"collateral_required"`
	Notes              string           `db:"notes"`
	Selected           bool             `db:"selected"`
	SelectedAt         *time.Time       `db:"selected_at"`
	CreatedAt          time.Time        `db:"created_at"`
}

// CreditFacility is the DB shape of the funded facility row. The unique index
// on application_id enforces at most one per application.
type CreditFacility struct {
	FacilityID      string           `db:"facility_id"`
	ApplicationID   string           `db:"application_id"`
	CustomerID      string           `db:"customer_id"`
	BusinessID      string           `db:"business_id"`
	FacilityType    string           `db:"facility_type"`
	AccountNumber   string           `db:"account_number"`
	CreditLimit     decimal.Decimal  `db:"credit_limit"`
	APR             *decimal.Decimal `db:"apr"`
	Status          string           `db:"status"`
	BillingCycleDay *int             `db:"billing_cycle_day"`
	DrawdownTerms   string           `db:"drawdown_terms"`
	CreatedAt       time.Time        `db:"created_at"`
}
