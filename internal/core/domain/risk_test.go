package domain_test

import (
	"testing"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRiskBandFor(t *testing.T) {
	testCases := []struct {
		score int
		band  domain.RiskBand
	}{
		{0, domain.RiskBandLow},
		{29, domain.RiskBandLow},
		{30, domain.RiskBandMedium},
		{69, domain.RiskBandMedium},
		{70, domain.RiskBandHigh},
		{100, domain.RiskBandHigh},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.band, domain.RiskBandFor(tc.score), "score %d", tc.score)
	}
}
