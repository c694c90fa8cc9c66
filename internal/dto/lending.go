package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// LendingApplicationResponse is the application aggregate returned by the
// reference lookup.
type LendingApplicationResponse struct {
	ApplicationID     string                   `json:"applicationID"`
	Reference         string                   `json:"reference"`
	CustomerID        string                   `json:"customerID"`
	BusinessID        string                   `json:"businessID"`
	CheckingAccountID string                   `json:"checkingAccountID,omitempty"`
	ProductType       string                   `json:"productType"`
	RequestedAmount   *decimal.Decimal         `json:"requestedAmount"`
	Status            domain.ApplicationStatus `json:"status"`
	SubmittedAt       time.Time                `json:"submittedAt"`
	Customer          CustomerResponse         `json:"customer"`
	Business          BusinessResponse         `json:"business"`
}

// CustomerResponse mirrors domain.Customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Segment    string `json:"segment,omitempty"`
}

// ToLendingApplicationResponse converts the aggregate to its DTO.
func ToLendingApplicationResponse(app *domain.LendingApplication) LendingApplicationResponse {
	return LendingApplicationResponse{
		ApplicationID:     app.ApplicationID,
		Reference:         app.Reference,
		CustomerID:        app.CustomerID,
		BusinessID:        app.BusinessID,
		CheckingAccountID: app.CheckingAccountID,
		ProductType:       app.ProductType,
		RequestedAmount:   app.RequestedAmount,
		Status:            app.Status,
		SubmittedAt:       app.SubmittedAt,
		Customer: CustomerResponse{
			CustomerID: app.Customer.CustomerID,
			Name:       app.Customer.Name,
			Email:      app.Customer.Email,
			Phone:      app.Customer.Phone,
			Segment:    app.Customer.Segment,
		},
		Business: ToBusinessResponse(app.Business),
	}
}

// TransactionSummaryParams carries the lookback window query parameter.
type TransactionSummaryParams struct {
	LookbackMonths int `form:"lookbackMonths,default=12" binding:"omitempty,min=1,max=36"`
}

// TransactionSummaryResponse mirrors domain.TransactionSummary.
type TransactionSummaryResponse struct {
	SummaryID                    string           `json:"summaryID,omitempty"`
	ApplicationID                string           `json:"applicationID"`
	CheckingAccountID            string           `json:"checkingAccountID,omitempty"`
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
}

// ToTransactionSummaryResponse converts a domain.TransactionSummary to its DTO.
func ToTransactionSummaryResponse(s *domain.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		SummaryID:                    s.SummaryID,
		ApplicationID:                s.ApplicationID,
		CheckingAccountID:            s.CheckingAccountID,
		LookbackMonths:               s.LookbackMonths,
		PeriodStart:                  s.PeriodStart,
		PeriodEnd:                    s.PeriodEnd,
		TotalCredits:                 s.TotalCredits,
		TotalDebits:                  s.TotalDebits,
		AvgMonthlyRevenue:            s.AvgMonthlyRevenue,
		RevenueVolatility:            s.RevenueVolatility,
		MaxSingleMonthRevenue:        s.MaxSingleMonthRevenue,
		MonthsWithNegativeEndBalance: s.MonthsWithNegativeEndBalance,
		AvgEndOfMonthBalance:         s.AvgEndOfMonthBalance,
		OverdraftCount:               s.OverdraftCount,
	}
}

// PullCreditReportRequest names the bureau to pull from.
type PullCreditReportRequest struct {
	Bureau string `json:"bureau" binding:"required"`
}

// CreditReportResponse mirrors domain.CreditReport.
type CreditReportResponse struct {
	ReportID             string           `json:"reportID"`
	ApplicationID        string           `json:"applicationID"`
	Bureau               string           `json:"bureau"`
	Score                *int             `json:"score"`
	ScoreBand            string           `json:"scoreBand,omitempty"`
	DelinquenciesCount   *int             `json:"delinquenciesCount"`
	DelinquenciesLast24M *int             `json:"delinquenciesLast24m"`
	BankruptciesCount    *int             `json:"bankruptciesCount"`
	PublicRecordsCount   *int             `json:"publicRecordsCount"`
	UtilizationRatio     *decimal.Decimal `json:"utilizationRatio"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
}

// ToCreditReportResponse converts a domain.CreditReport to its DTO.
func ToCreditReportResponse(r *domain.CreditReport) CreditReportResponse {
	return CreditReportResponse{
		ReportID:             r.ReportID,
		ApplicationID:        r.ApplicationID,
		Bureau:               r.Bureau,
		Score:                r.Score,
		ScoreBand:            r.ScoreBand,
		DelinquenciesCount:   r.DelinquenciesCount,
		DelinquenciesLast24M: r.DelinquenciesLast24M,
		BankruptciesCount:    r.BankruptciesCount,
		PublicRecordsCount:   r.PublicRecordsCount,
		UtilizationRatio:     r.UtilizationRatio,
		LastUpdatedAt:        r.LastUpdatedAt,
	}
}

// UnderwritingResponse mirrors domain.Underwriting.
type UnderwritingResponse struct {
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

// ToUnderwritingResponse converts a domain.Underwriting to its DTO.
func ToUnderwritingResponse(u *domain.Underwriting) UnderwritingResponse {
	return UnderwritingResponse{
		UnderwritingID:         u.UnderwritingID,
		ApplicationID:          u.ApplicationID,
		RiskGrade:              u.RiskGrade,
		PDEstimate:             u.PDEstimate,
		LGDEstimate:            u.LGDEstimate,
		RecommendedMaxExposure: u.RecommendedMaxExposure,
		AffordabilityBand:      u.AffordabilityBand,
		KeyRiskDrivers:         emptyIfNil(u.KeyRiskDrivers),
		DSCR:                   u.DSCR,
		DebtToRevenueRatio:     u.DebtToRevenueRatio,
		CreatedAt:              u.CreatedAt,
	}
}

// OfferResponse mirrors domain.Offer.
type OfferResponse struct {
	OfferID            string           `json:"offerID"`
	ApplicationID      string           `json:"applicationID"`
	OfferCode          string           `json:"offerCode"`
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
	Notes              string           `json:"notes,omitempty"`
	Selected           bool             `json:"selected"`
	SelectedAt         *time.Time       `json:"selectedAt"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ToOfferResponse converts a domain.Offer to its DTO.
func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:            o.OfferID,
		ApplicationID:      o.ApplicationID,
		OfferCode:          o.OfferCode,
		ProductType:        o.ProductType,
		CreditLimit:        o.CreditLimit,
		MinCreditLimit:     o.MinCreditLimit,
		MaxCreditLimit:     o.MaxCreditLimit,
		APR:                o.APR,
		AnnualFee:          o.AnnualFee,
		OriginationFee:     o.OriginationFee,
		TenorMonths:        o.TenorMonths,
		RepaymentTerms:     o.RepaymentTerms,
		CollateralRequired: o.CollateralRequired,
		Notes:              o.Notes,
		Selected:           o.Selected,
		SelectedAt:         o.SelectedAt,
		CreatedAt:          o.CreatedAt,
	}
}

// ToListOfferResponse converts a slice of offers.
func ToListOfferResponse(offers []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i := range offers {
		res[i] = ToOfferResponse(&offers[i])
	}
	return res
}

// CreditFacilityResponse mirrors domain.CreditFacility.
type CreditFacilityResponse struct {
	FacilityID      string               `json:"facilityID"`
	ApplicationID   string               `json:"applicationID"`
	CustomerID      string               `json:"customerID"`
	BusinessID      string               `json:"businessID"`
	FacilityType    string               `json:"facilityType"`
	AccountNumber   string               `json:"accountNumber"`
	CreditLimit     decimal.Decimal      `json:"creditLimit"`
	APR             *decimal.Decimal     `json:"apr"`
	Status          domain.AccountStatus `json:"status"`
	BillingCycleDay *int                 `json:"billingCycleDay"`
	DrawdownTerms   string               `json:"drawdownTerms"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToCreditFacilityResponse converts a domain.CreditFacility to its DTO.
func ToCreditFacilityResponse(f *domain.CreditFacility) CreditFacilityResponse {
	return CreditFacilityResponse{
		FacilityID:      f.FacilityID,
		ApplicationID:   f.ApplicationID,
		CustomerID:      f.CustomerID,
		BusinessID:      f.BusinessID,
		FacilityType:    f.FacilityType,
		AccountNumber:   f.AccountNumber,
		CreditLimit:     f.CreditLimit,
		APR:             f.APR,
		Status:          f.Status,
		BillingCycleDay: f.BillingCycleDay,
		DrawdownTerms:   f.DrawdownTerms,
		CreatedAt:       f.CreatedAt,
	}
}
