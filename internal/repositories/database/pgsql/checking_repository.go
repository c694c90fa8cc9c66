package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	"github.com/smbanking/onboarding_backend/internal/models"
)

// uniqueViolation is the Postgres error code raised on unique constraint
// conflicts.
const uniqueViolation = "23505"

// querier is the query surface shared by the pool and a transaction, so
// aggregate loaders can run against either.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgxCheckingRepository struct {
	BaseRepository
}

// newPgxCheckingRepository creates the repository for the checking workflow.
func newPgxCheckingRepository(pool *pgxpool.Pool) portsrepo.CheckingRepositoryFacade {
	return &PgxCheckingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CheckingRepositoryFacade = (*PgxCheckingRepository)(nil)

func toDomainCheckingApplication(m models.CheckingApplication) (domain.CheckingApplication, error) {
	app := domain.CheckingApplication{
		ApplicationID: m.ApplicationID,
		Reference:     m.Reference,
		BusinessID:    m.BusinessID,
		CustomerID:    m.CustomerID,
		ProductID:     m.ProductID,
		SubmittedAt:   m.SubmittedAt,
		Status:        domain.ApplicationStatus(m.Status),
	}
	if len(m.UsageProfile) > 0 {
		var profile domain.UsageProfile
		if err := json.Unmarshal(m.UsageProfile, &profile); err != nil {
			return app, fmt.Errorf("failed to decode usage profile for application %s: %w", m.ApplicationID, err)
		}
		app.UsageProfile = &profile
	}
	if len(m.FundingPreferences) > 0 {
		var prefs domain.FundingPreferences
		if err := json.Unmarshal(m.FundingPreferences, &prefs); err != nil {
			return app, fmt.Errorf("failed to decode funding preferences for application %s: %w", m.ApplicationID, err)
		}
		app.FundingPreferences = &prefs
	}
	return app, nil
}

func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:         m.BusinessID,
		CustomerID:         m.CustomerID,
		LegalName:          m.LegalName,
		TradeName:          m.TradeName,
		EntityType:         m.EntityType,
		TaxID:              m.TaxID,
		RegistrationNumber: m.RegistrationNumber,
		IndustryCode:       m.IndustryCode,
		Country:            m.Country,
		State:              m.State,
		City:               m.City,
		Address:            m.Address,
		YearsInBusiness:    m.YearsInBusiness,
	}
}

// FindApplicationByID retrieves the full aggregate: the application row plus
// its business, owners and documents.
func (r *PgxCheckingRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.CheckingApplication, error) {
	return r.findApplication(ctx, `application_id = $1`, applicationID)
}

// FindApplicationByReference retrieves the full aggregate by unique reference.
func (r *PgxCheckingRepository) FindApplicationByReference(ctx context.Context, reference string) (*domain.CheckingApplication, error) {
	return r.findApplication(ctx, `reference = $1`, reference)
}

// findApplication loads the aggregate inside one transaction so the
// application row and its children come from a consistent snapshot.
func (r *PgxCheckingRepository) findApplication(ctx context.Context, where string, arg any) (*domain.CheckingApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	query := `
		SELECT application_id, reference, business_id, customer_id, product_id, submitted_at, status, usage_profile, funding_preferences
		FROM checking_applications
		WHERE ` + where

	var m models.CheckingApplication
	err = tx.QueryRow(ctx, query, arg).Scan(
		&m.ApplicationID,
		&m.Reference,
		&m.BusinessID,
		&m.CustomerID,
		&m.ProductID,
		&m.SubmittedAt,
		&m.Status,
		&m.UsageProfile,
		&m.FundingPreferences,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: checking application not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find checking application: %w", err)
	}

	app, err := toDomainCheckingApplication(m)
	if err != nil {
		return nil, err
	}

	business, err := r.findBusiness(ctx, tx, app.BusinessID)
	if err != nil {
		return nil, err
	}
	app.Business = *business

	owners, err := r.listOwners(ctx, tx, app.ApplicationID)
	if err != nil {
		return nil, err
	}
	app.Owners = owners

	documents, err := r.listDocuments(ctx, tx, app.ApplicationID)
	if err != nil {
		return nil, err
	}
	app.Documents = documents

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *PgxCheckingRepository) findBusiness(ctx context.Context, q querier, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, customer_id, legal_name, COALESCE(trade_name, ''), COALESCE(entity_type, ''),
		       COALESCE(tax_id, ''), COALESCE(registration_number, ''), COALESCE(industry_code, ''),
		       COALESCE(country, ''), COALESCE(state, ''), COALESCE(city, ''), COALESCE(address, ''),
		       years_in_business
		FROM businesses
		WHERE business_id = $1
	`
	var m models.Business
	err := q.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID,
		&m.CustomerID,
		&m.LegalName,
		&m.TradeName,
		&m.EntityType,
		&m.TaxID,
		&m.RegistrationNumber,
		&m.IndustryCode,
		&m.Country,
		&m.State,
		&m.City,
		&m.Address,
		&m.YearsInBusiness,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: business %s not found", apperrors.ErrNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}
	b := toDomainBusiness(m)
	return &b, nil
}

func (r *PgxCheckingRepository) listOwners(ctx context.Context, q querier, applicationID string) ([]domain.Owner, error) {
	query := `
		SELECT owner_id, application_id, full_name, dob, COALESCE(national_id, ''), ownership_percentage, COALESCE(address, '')
		FROM checking_application_owners
		WHERE application_id = $1
		ORDER BY full_name
	`
	rows, err := q.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	owners := []domain.Owner{}
	for rows.Next() {
		var m models.Owner
		if err := rows.Scan(&m.OwnerID, &m.ApplicationID, &m.FullName, &m.DOB, &m.NationalID, &m.OwnershipPercentage, &m.Address); err != nil {
			return nil, fmt.Errorf("failed to scan owner row: %w", err)
		}
		owners = append(owners, domain.Owner{
			OwnerID:             m.OwnerID,
			ApplicationID:       m.ApplicationID,
			FullName:            m.FullName,
			DOB:                 m.DOB,
			NationalID:          m.NationalID,
			OwnershipPercentage: m.OwnershipPercentage,
			Address:             m.Address,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating owner rows: %w", err)
	}
	return owners, nil
}

func (r *PgxCheckingRepository) listDocuments(ctx context.Context, q querier, applicationID string) ([]domain.Document, error) {
	query := `
		SELECT document_id, application_id, doc_type, status, COALESCE(reason_codes, '{}'), uploaded_at
		FROM checking_application_documents
		WHERE application_id = $1
		ORDER BY uploaded_at
	`
	rows, err := q.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		var m models.Document
		if err := rows.Scan(&m.DocumentID, &m.ApplicationID, &m.DocType, &m.Status, &m.ReasonCodes, &m.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, domain.Document{
			DocumentID:    m.DocumentID,
			ApplicationID: m.ApplicationID,
			DocType:       m.DocType,
			Status:        domain.DocumentStatus(m.Status),
			ReasonCodes:   m.ReasonCodes,
			UploadedAt:    m.UploadedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating document rows: %w", err)
	}
	return documents, nil
}

// UpdateApplicationStatus transitions the status conditionally on the current
// value. Zero rows affected means the row moved out of `from` concurrently or
// never existed; both surface as ErrValidation after an existence check.
func (r *PgxCheckingRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus) error {
	if !domain.CanTransition(from, to) {
		return fmt.Errorf("%w: status transition %s -> %s not allowed", apperrors.ErrValidation, from, to)
	}

	query := `UPDATE checking_applications SET status = $1 WHERE application_id = $2 AND status = $3`
	tag, err := r.Pool.Exec(ctx, query, string(to), applicationID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: application %s is not in status %s", apperrors.ErrValidation, applicationID, from)
	}
	return nil
}

// DeleteApplication removes the application row; children go with it through
// ON DELETE CASCADE.
func (r *PgxCheckingRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM checking_applications WHERE application_id = $1`, applicationID)
	if err != nil {
		return fmt.Errorf("failed to delete checking application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: checking application not found", apperrors.ErrNotFound)
	}
	return nil
}

// SaveRiskScore appends one scoring artifact.
func (r *PgxCheckingRepository) SaveRiskScore(ctx context.Context, score domain.RiskScore) error {
	query := `
		INSERT INTO risk_scores (risk_score_id, application_id, score, band, driver_codes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.Pool.Exec(ctx, query,
		score.RiskScoreID,
		score.ApplicationID,
		score.Score,
		string(score.Band),
		score.DriverCodes,
		score.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: risk score %s already exists", apperrors.ErrDuplicate, score.RiskScoreID)
		}
		return fmt.Errorf("failed to save risk score: %w", err)
	}
	return nil
}

// FindLatestRiskScore returns the newest scoring artifact.
func (r *PgxCheckingRepository) FindLatestRiskScore(ctx context.Context, applicationID string) (*domain.RiskScore, error) {
	query := `
		SELECT risk_score_id, application_id, score, band, driver_codes, created_at
		FROM risk_scores
		WHERE application_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	score, err := scanRiskScore(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no risk score for application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find latest risk score: %w", err)
	}
	return score, nil
}

// ListRiskScores returns all scoring artifacts, newest first.
func (r *PgxCheckingRepository) ListRiskScores(ctx context.Context, applicationID string) ([]domain.RiskScore, error) {
	query := `
		SELECT risk_score_id, application_id, score, band, driver_codes, created_at
		FROM risk_scores
		WHERE application_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.Pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk scores: %w", err)
	}
	defer rows.Close()

	scores := []domain.RiskScore{}
	for rows.Next() {
		score, err := scanRiskScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk score row: %w", err)
		}
		scores = append(scores, *score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating risk score rows: %w", err)
	}
	return scores, nil
}

func scanRiskScore(row pgx.Row) (*domain.RiskScore, error) {
	var m models.RiskScore
	if err := row.Scan(&m.RiskScoreID, &m.ApplicationID, &m.Score, &m.Band, &m.DriverCodes, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &domain.RiskScore{
		RiskScoreID:   m.RiskScoreID,
		ApplicationID: m.ApplicationID,
		Score:         m.Score,
		Band:          domain.RiskBand(m.Band),
		DriverCodes:   m.DriverCodes,
		CreatedAt:     m.CreatedAt,
	}, nil
}

// FindAccountByApplicationID returns the funded account for an application.
func (r *PgxCheckingRepository) FindAccountByApplicationID(ctx context.Context, applicationID string) (*domain.CheckingAccount, error) {
	query := `
		SELECT account_id, application_id, account_number, routing_number, status, created_at
		FROM checking_accounts
		WHERE application_id = $1
	`
	var m models.CheckingAccount
	err := r.Pool.QueryRow(ctx, query, applicationID).Scan(
		&m.AccountID, &m.ApplicationID, &m.AccountNumber, &m.RoutingNumber, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no account for application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find checking account: %w", err)
	}
	return &domain.CheckingAccount{
		AccountID:     m.AccountID,
		ApplicationID: m.ApplicationID,
		AccountNumber: m.AccountNumber,
		RoutingNumber: m.RoutingNumber,
		Status:        domain.AccountStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}, nil
}

// CreateAccountIfAbsent inserts the account unless one exists. The unique
// index on application_id makes the insert a no-op for the loser of a
// concurrent race; the surviving row is read back afterwards.
func (r *PgxCheckingRepository) CreateAccountIfAbsent(ctx context.Context, account domain.CheckingAccount) (*domain.CheckingAccount, error) {
	query := `
		INSERT INTO checking_accounts (account_id, application_id, account_number, routing_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (application_id) DO NOTHING
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.ApplicationID,
		account.AccountNumber,
		account.RoutingNumber,
		string(account.Status),
		account.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create checking account: %w", err)
	}
	return r.FindAccountByApplicationID(ctx, account.ApplicationID)
}
