package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	"github.com/smbanking/onboarding_backend/internal/models"
)

type PgxLendingRepository struct {
	BaseRepository
}

// newPgxLendingRepository creates the repository for the lending workflow.
func newPgxLendingRepository(pool *pgxpool.Pool) portsrepo.LendingRepositoryFacade {
	return &PgxLendingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LendingRepositoryFacade = (*PgxLendingRepository)(nil)

// FindApplicationByID retrieves the aggregate with customer and business.
func (r *PgxLendingRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.LendingApplication, error) {
	return r.findApplication(ctx, `application_id = $1`, applicationID)
}

// FindApplicationByReference retrieves the aggregate by unique reference.
func (r *PgxLendingRepository) FindApplicationByReference(ctx context.Context, reference string) (*domain.LendingApplication, error) {
	return r.findApplication(ctx, `reference = $1`, reference)
}

// findApplication loads the aggregate inside one transaction so the
// application row, customer and business come from a consistent snapshot.
func (r *PgxLendingRepository) findApplication(ctx context.Context, where string, arg any) (*domain.LendingApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	query := `
		SELECT application_id, reference, customer_id, business_id, COALESCE(checking_account_id, ''), product_type, requested_amount, status, submitted_at
		FROM lending_applications
		WHERE ` + where

	var m models.LendingApplication
	err = tx.QueryRow(ctx, query, arg).Scan(
		&m.ApplicationID,
		&m.Reference,
		&m.CustomerID,
		&m.BusinessID,
		&m.CheckingAccountID,
		&m.ProductType,
		&m.RequestedAmount,
		&m.Status,
		&m.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: lending application not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find lending application: %w", err)
	}

	app := domain.LendingApplication{
		ApplicationID:     m.ApplicationID,
		Reference:         m.Reference,
		CustomerID:        m.CustomerID,
		BusinessID:        m.BusinessID,
		CheckingAccountID: m.CheckingAccountID,
		ProductType:       m.ProductType,
		RequestedAmount:   m.RequestedAmount,
		Status:            domain.ApplicationStatus(m.Status),
		SubmittedAt:       m.SubmittedAt,
	}

	customer, err := r.findCustomer(ctx, tx, app.CustomerID)
	if err != nil {
		return nil, err
	}
	app.Customer = *customer

	business, err := (&PgxCheckingRepository{BaseRepository: r.BaseRepository}).findBusiness(ctx, tx, app.BusinessID)
	if err != nil {
		return nil, err
	}
	app.Business = *business

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *PgxLendingRepository) findCustomer(ctx context.Context, q querier, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(segment, '')
		FROM customers
		WHERE customer_id = $1
	`
	var m models.Customer
	err := q.QueryRow(ctx, query, customerID).Scan(&m.CustomerID, &m.Name, &m.Email, &m.Phone, &m.Segment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Segment:    m.Segment,
	}, nil
}

// UpdateApplicationStatus transitions the status conditionally on the current
// value, mirroring the checking-side semantics.
func (r *PgxLendingRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus) error {
	if !domain.CanTransition(from, to) {
		return fmt.Errorf("%w: status transition %s -> %s not allowed", apperrors.ErrValidation, from, to)
	}

	query := `UPDATE lending_applications SET status = $1 WHERE application_id = $2 AND status = $3`
	tag, err := r.Pool.Exec(ctx, query, string(to), applicationID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: application %s is not in status %s", apperrors.ErrValidation, applicationID, from)
	}
	return nil
}

// DeleteApplication removes the application row; children cascade.
func (r *PgxLendingRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM lending_applications WHERE application_id = $1`, applicationID)
	if err != nil {
		return fmt.Errorf("failed to delete lending application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lending application not found", apperrors.ErrNotFound)
	}
	return nil
}

// FindLatestTransactionSummary returns the newest stored summary.
func (r *PgxLendingRepository) FindLatestTransactionSummary(ctx context.Context, applicationID string) (*domain.TransactionSummary, error) {
	query := `
		SELECT summary_id, application_id, COALESCE(checking_account_id, ''), lookback_months, period_start, period_end,
		       total_credits, total_debits, avg_monthly_revenue, revenue_volatility, max_single_month_revenue,
		       months_with_negative_end_balance, avg_end_of_month_balance, overdraft_count, created_at
		FROM transaction_summaries
		WHERE application_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var m models.TransactionSummary
	err := r.Pool.QueryRow(ctx, query, applicationID).Scan(
		&m.SummaryID,
		&m.ApplicationID,
		&m.CheckingAccountID,
		&m.LookbackMonths,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.TotalCredits,
		&m.TotalDebits,
		&m.AvgMonthlyRevenue,
		&m.RevenueVolatility,
		&m.MaxSingleMonthRevenue,
		&m.MonthsWithNegativeEndBalance,
		&m.AvgEndOfMonthBalance,
		&m.OverdraftCount,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no transaction summary for application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find transaction summary: %w", err)
	}
	return &domain.TransactionSummary{
		SummaryID:                    m.SummaryID,
		ApplicationID:                m.ApplicationID,
		CheckingAccountID:            m.CheckingAccountID,
		LookbackMonths:               m.LookbackMonths,
		PeriodStart:                  m.PeriodStart,
		PeriodEnd:                    m.PeriodEnd,
		TotalCredits:                 m.TotalCredits,
		TotalDebits:                  m.TotalDebits,
		AvgMonthlyRevenue:            m.AvgMonthlyRevenue,
		RevenueVolatility:            m.RevenueVolatility,
		MaxSingleMonthRevenue:        m.MaxSingleMonthRevenue,
		MonthsWithNegativeEndBalance: m.MonthsWithNegativeEndBalance,
		AvgEndOfMonthBalance:         m.AvgEndOfMonthBalance,
		OverdraftCount:               m.OverdraftCount,
		CreatedAt:                    m.CreatedAt,
	}, nil
}

const creditReportColumns = `report_id, application_id, bureau, score, COALESCE(score_band, ''), delinquencies_count, delinquencies_last_24m, bankruptcies_count, public_records_count, utilization_ratio, last_updated_at`

// FindLatestCreditReport returns the newest report across bureaus.
func (r *PgxLendingRepository) FindLatestCreditReport(ctx context.Context, applicationID string) (*domain.CreditReport, error) {
	query := `
		SELECT ` + creditReportColumns + `
		FROM credit_reports
		WHERE application_id = $1
		ORDER BY last_updated_at DESC
		LIMIT 1
	`
	return r.scanCreditReport(ctx, query, applicationID)
}

// FindLatestCreditReportByBureau returns the newest report pulled from one bureau.
func (r *PgxLendingRepository) FindLatestCreditReportByBureau(ctx context.Context, applicationID string, bureau string) (*domain.CreditReport, error) {
	query := `
		SELECT ` + creditReportColumns + `
		FROM credit_reports
		WHERE application_id = $1 AND bureau = $2
		ORDER BY last_updated_at DESC
		LIMIT 1
	`
	return r.scanCreditReport(ctx, query, applicationID, bureau)
}

func (r *PgxLendingRepository) scanCreditReport(ctx context.Context, query string, args ...any) (*domain.CreditReport, error) {
	var m models.CreditReport
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.ReportID,
		&m.ApplicationID,
		&m.Bureau,
		&m.Score,
		&m.ScoreBand,
		&m.DelinquenciesCount,
		&m.DelinquenciesLast24M,
		&m.BankruptciesCount,
		&m.PublicRecordsCount,
		&m.UtilizationRatio,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no credit report found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find credit report: %w", err)
	}
	return &domain.CreditReport{
		ReportID:             m.ReportID,
		ApplicationID:        m.ApplicationID,
		Bureau:               m.Bureau,
		Score:                m.Score,
		ScoreBand:            m.ScoreBand,
		DelinquenciesCount:   m.DelinquenciesCount,
		DelinquenciesLast24M: m.DelinquenciesLast24M,
		BankruptciesCount:    m.BankruptciesCount,
		PublicRecordsCount:   m.PublicRecordsCount,
		UtilizationRatio:     m.UtilizationRatio,
		LastUpdatedAt:        m.LastUpdatedAt,
	}, nil
}

// SaveCreditReport appends one bureau pull.
func (r *PgxLendingRepository) SaveCreditReport(ctx context.Context, report domain.CreditReport) error {
	query := `
		INSERT INTO credit_reports (report_id, application_id, bureau, score, score_band, delinquencies_count, delinquencies_last_24m, bankruptcies_count, public_records_count, utilization_ratio, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.Pool.Exec(ctx, query,
		report.ReportID,
		report.ApplicationID,
		report.Bureau,
		report.Score,
		report.ScoreBand,
		report.DelinquenciesCount,
		report.DelinquenciesLast24M,
		report.BankruptciesCount,
		report.PublicRecordsCount,
		report.UtilizationRatio,
		report.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: credit report %s already exists", apperrors.ErrDuplicate, report.ReportID)
		}
		return fmt.Errorf("failed to save credit report: %w", err)
	}
	return nil
}

// SaveUnderwriting appends one underwriting artifact.
func (r *PgxLendingRepository) SaveUnderwriting(ctx context.Context, uw domain.Underwriting) error {
	query := `
		INSERT INTO underwritings (underwriting_id, application_id, risk_grade, pd_estimate, lgd_estimate, recommended_max_exposure, affordability_band, key_risk_drivers, dscr, debt_to_revenue_ratio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.Pool.Exec(ctx, query,
		uw.UnderwritingID,
		uw.ApplicationID,
		uw.RiskGrade,
		uw.PDEstimate,
		uw.LGDEstimate,
		uw.RecommendedMaxExposure,
		uw.AffordabilityBand,
		uw.KeyRiskDrivers,
		uw.DSCR,
		uw.DebtToRevenueRatio,
		uw.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: underwriting %s already exists", apperrors.ErrDuplicate, uw.UnderwritingID)
		}
		return fmt.Errorf("failed to save underwriting: %w", err)
	}
	return nil
}

// FindLatestUnderwriting returns the most recent underwriting run.
func (r *PgxLendingRepository) FindLatestUnderwriting(ctx context.Context, applicationID string) (*domain.Underwriting, error) {
	query := `
		SELECT underwriting_id, application_id, risk_grade, pd_estimate, lgd_estimate, recommended_max_exposure, COALESCE(affordability_band, ''), key_risk_drivers, dscr, debt_to_revenue_ratio, created_at
		FROM underwritings
		WHERE application_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var m models.Underwriting
	err := r.Pool.QueryRow(ctx, query, applicationID).Scan(
		&m.UnderwritingID,
		&m.ApplicationID,
		&m.RiskGrade,
		&m.PDEstimate,
		&m.LGDEstimate,
		&m.RecommendedMaxExposure,
		&m.AffordabilityBand,
		&m.KeyRiskDrivers,
		&m.DSCR,
		&m.DebtToRevenueRatio,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no underwriting for application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find latest underwriting: %w", err)
	}
	return &domain.Underwriting{
		UnderwritingID:         m.UnderwritingID,
		ApplicationID:          m.ApplicationID,
		RiskGrade:              m.RiskGrade,
		PDEstimate:             m.PDEstimate,
		LGDEstimate:            m.LGDEstimate,
		RecommendedMaxExposure: m.RecommendedMaxExposure,
		AffordabilityBand:      m.AffordabilityBand,
		KeyRiskDrivers:         m.KeyRiskDrivers,
		DSCR:                   m.DSCR,
		DebtToRevenueRatio:     m.DebtToRevenueRatio,
		CreatedAt:              m.CreatedAt,
	}, nil
}

const offerColumns = `offer_id, application_id, offer_code, product_type, credit_limit, min_credit_limit, max_credit_limit, apr, annual_fee, origination_fee, tenor_months, COALESCE(repayment_terms, ''), collateral_required, COALESCE(notes, ''), selected, selected_at, created_at`

// SaveOffer appends one offer. Offer codes collide across applications on the
// unique constraint.
func (r *PgxLendingRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	query := `
		INSERT INTO offers (offer_id, application_id, offer_code, product_type, credit_limit, min_credit_limit, max_credit_limit, apr, annual_fee, origination_fee, tenor_months, repayment_terms, collateral_required, notes, selected, selected_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.Pool.Exec(ctx, query,
		offer.OfferID,
		offer.ApplicationID,
		offer.OfferCode,
		offer.ProductType,
		offer.CreditLimit,
		offer.MinCreditLimit,
		offer.MaxCreditLimit,
		offer.APR,
		offer.AnnualFee,
		offer.OriginationFee,
		offer.TenorMonths,
		offer.RepaymentTerms,
		offer.CollateralRequired,
		offer.Notes,
		offer.Selected,
		offer.SelectedAt,
		offer.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: offer code %s already exists", apperrors.ErrDuplicate, offer.OfferCode)
		}
		return fmt.Errorf("failed to save offer: %w", err)
	}
	return nil
}

// FindOfferByID returns an offer only when it belongs to the application.
func (r *PgxLendingRepository) FindOfferByID(ctx context.Context, applicationID string, offerID string) (*domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE application_id = $1 AND offer_id = $2
	`
	return r.scanOffer(ctx, query, applicationID, offerID)
}

// FindLatestOffer returns the most recently created offer.
func (r *PgxLendingRepository) FindLatestOffer(ctx context.Context, applicationID string) (*domain.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE application_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOffer(ctx, query, applicationID)
}

func (r *PgxLendingRepository) scanOffer(ctx context.Context, query string, args ...any) (*domain.Offer, error) {
	var m models.Offer
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.OfferID,
		&m.ApplicationID,
		&m.OfferCode,
		&m.ProductType,
		&m.CreditLimit,
		&m.MinCreditLimit,
		&m.MaxCreditLimit,
		&m.APR,
		&m.AnnualFee,
		&m.OriginationFee,
		&m.TenorMonths,
		&m.RepaymentTerms,
		&m.CollateralRequired,
		&m.Notes,
		&m.Selected,
		&m.SelectedAt,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: offer not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}
	return &domain.Offer{
		OfferID:            m.OfferID,
		ApplicationID:      m.ApplicationID,
		OfferCode:          m.OfferCode,
		ProductType:        m.ProductType,
		CreditLimit:        m.CreditLimit,
		MinCreditLimit:     m.MinCreditLimit,
		MaxCreditLimit:     m.MaxCreditLimit,
		APR:                m.APR,
		AnnualFee:          m.AnnualFee,
		OriginationFee:     m.OriginationFee,
		TenorMonths:        m.TenorMonths,
		RepaymentTerms:     m.RepaymentTerms,
		CollateralRequired: m.CollateralRequired,
		Notes:              m.Notes,
		Selected:           m.Selected,
		SelectedAt:         m.SelectedAt,
		CreatedAt:          m.CreatedAt,
	}, nil
}

// MarkOfferSelected persists the selection flag and timestamp on an offer.
func (r *PgxLendingRepository) MarkOfferSelected(ctx context.Context, applicationID string, offerID string, selectedAt time.Time) error {
	query := `UPDATE offers SET selected = TRUE, selected_at = $1 WHERE application_id = $2 AND offer_id = $3`
	tag, err := r.Pool.Exec(ctx, query, selectedAt, applicationID, offerID)
	if err != nil {
		return fmt.Errorf("failed to mark offer selected: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: offer not found", apperrors.ErrNotFound)
	}
	return nil
}

// FindFacilityByApplicationID returns the funded facility for an application.
func (r *PgxLendingRepository) FindFacilityByApplicationID(ctx context.Context, applicationID string) (*domain.CreditFacility, error) {
	query := `
		SELECT facility_id, application_id, customer_id, business_id, facility_type, account_number, credit_limit, apr, status, billing_cycle_day, COALESCE(drawdown_terms, ''), created_at
		FROM credit_facilities
		WHERE application_id = $1
	`
	var m models.CreditFacility
	err := r.Pool.QueryRow(ctx, query, applicationID).Scan(
		&m.FacilityID,
		&m.ApplicationID,
		&m.CustomerID,
		&m.BusinessID,
		&m.FacilityType,
		&m.AccountNumber,
		&m.CreditLimit,
		&m.APR,
		&m.Status,
		&m.BillingCycleDay,
		&m.DrawdownTerms,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no facility for application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find credit facility: %w", err)
	}
	return &domain.CreditFacility{
		FacilityID:      m.FacilityID,
		ApplicationID:   m.ApplicationID,
		CustomerID:      m.CustomerID,
		BusinessID:      m.BusinessID,
		FacilityType:    m.FacilityType,
		AccountNumber:   m.AccountNumber,
		CreditLimit:     m.CreditLimit,
		APR:             m.APR,
		Status:          domain.AccountStatus(m.Status),
		BillingCycleDay: m.BillingCycleDay,
		DrawdownTerms:   m.DrawdownTerms,
		CreatedAt:       m.CreatedAt,
	}, nil
}

// CreateFacilityIfAbsent inserts the facility unless one exists, mirroring the
// checking-account insert-or-fetch semantics.
func (r *PgxLendingRepository) CreateFacilityIfAbsent(ctx context.Context, facility domain.CreditFacility) (*domain.CreditFacility, error) {
	query := `
		INSERT INTO credit_facilities (facility_id, application_id, customer_id, business_id, facility_type, account_number, credit_limit, apr, status, billing_cycle_day, drawdown_terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (application_id) DO NOTHING
	`
	_, err := r.Pool.Exec(ctx, query,
		facility.FacilityID,
		facility.ApplicationID,
		facility.CustomerID,
		facility.BusinessID,
		facility.FacilityType,
		facility.AccountNumber,
		facility.CreditLimit,
		facility.APR,
		string(facility.Status),
		facility.BillingCycleDay,
		facility.DrawdownTerms,
		facility.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create credit facility: %w", err)
	}
	return r.FindFacilityByApplicationID(ctx, facility.ApplicationID)
}
