// Package bureau implements a deterministic credit bureau provider returning
// a fixed mid-prime report for any applicant.
package bureau

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
)

// Fixed report values returned for every pull.
var (
	stubScore       = 80
	stubScoreBand   = "GOOD"
	stubUtilization = decimal.NewFromFloat(0.3)
)

type bureauProvider struct{}

// NewProvider creates the stub bureau provider.
func NewProvider() portsproviders.BureauProvider {
	return &bureauProvider{}
}

var _ portsproviders.BureauProvider = (*bureauProvider)(nil)

func (p *bureauProvider) PullReport(_ context.Context, app domain.LendingApplication, bureau string) (domain.CreditReport, error) {
	score := stubScore
	zero := 0
	utilization := stubUtilization
	return domain.CreditReport{
		ReportID:             uuid.NewString(),
		ApplicationID:        app.ApplicationID,
		Bureau:               bureau,
		Score:                &score,
		ScoreBand:            stubScoreBand,
		DelinquenciesCount:   &zero,
		DelinquenciesLast24M: &zero,
		BankruptciesCount:    &zero,
		PublicRecordsCount:   &zero,
		UtilizationRatio:     &utilization,
		LastUpdatedAt:        time.Now().UTC(),
	}, nil
}
