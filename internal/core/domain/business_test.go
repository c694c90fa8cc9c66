package domain_test

import (
	"testing"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsRestrictedIndustry(t *testing.T) {
	assert.True(t, domain.Business{IndustryCode: "7995"}.IsRestrictedIndustry())
	assert.True(t, domain.Business{IndustryCode: "9999"}.IsRestrictedIndustry())
	assert.False(t, domain.Business{IndustryCode: "5812"}.IsRestrictedIndustry())
	assert.False(t, domain.Business{}.IsRestrictedIndustry())
}

func TestIsNewBusiness(t *testing.T) {
	zero := 0
	one := 1
	assert.True(t, domain.Business{YearsInBusiness: &zero}.IsNewBusiness())
	assert.False(t, domain.Business{YearsInBusiness: &one}.IsNewBusiness())
	assert.False(t, domain.Business{}.IsNewBusiness(), "undeclared tenure is not new")
}
