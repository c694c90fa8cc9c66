package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/core/services"
	"github.com/smbanking/onboarding_backend/internal/providers/registry"
	"github.com/stretchr/testify/suite"
)

// The verification suite runs against the real registry provider; its
// outcomes are deterministic functions of the applicant data.
type VerificationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCheckingRepository
	service  portssvc.VerificationSvcFacade
	ctx      context.Context
}

func (s *VerificationServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCheckingRepository)
	s.service = services.NewVerificationService(s.mockRepo, registry.NewProvider(), nil)
	s.ctx = context.Background()
}

func (s *VerificationServiceTestSuite) TestVerifyBusiness_Passes() {
	app := completeApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyBusiness(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationPassed, result.Status)
	s.Empty(result.ReasonCodes)
	s.Equal(app.Business.LegalName, result.MatchedRegistryName)
	s.Equal(app.Business.RegistrationNumber, result.MatchedRegistrationNumber)
}

func (s *VerificationServiceTestSuite) TestVerifyBusiness_FailsWithoutRegistration() {
	app := completeApplication()
	app.Business.RegistrationNumber = ""
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyBusiness(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationFailed, result.Status)
	s.Equal([]string{domain.CodeRegistrationNotFound}, result.ReasonCodes)
}

func (s *VerificationServiceTestSuite) TestVerifyBusiness_ManualReviewWithoutTaxID() {
	app := completeApplication()
	app.Business.TaxID = ""
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyBusiness(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationManualReview, result.Status)
	s.Equal([]string{domain.CodeRegistryDataAmbiguous}, result.ReasonCodes)
}

func (s *VerificationServiceTestSuite) TestVerifyOwners_AllPass() {
	app := completeApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyOwners(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationPassed, result.OverallStatus)
	s.Require().Len(result.Owners, 1)
	s.Equal(app.Owners[0].OwnerID, result.Owners[0].OwnerID)
	s.Equal(domain.VerificationPassed, result.Owners[0].Status)
}

func (s *VerificationServiceTestSuite) TestVerifyOwners_PerOwnerFailureCodes() {
	app := completeApplication()
	app.Owners = append(app.Owners, domain.Owner{
		OwnerID:  uuid.NewString(),
		FullName: "Jo Park",
	})
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyOwners(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationFailed, result.OverallStatus)
	s.Require().Len(result.Owners, 2)
	s.Equal(domain.VerificationPassed, result.Owners[0].Status)
	s.Equal(domain.VerificationFailed, result.Owners[1].Status)
	s.Equal([]string{domain.CodeMissingNationalID, domain.CodeMissingDOB}, result.Owners[1].ReasonCodes)
}

func (s *VerificationServiceTestSuite) TestVerifyOwners_NoOwnersFailsWithEmptyList() {
	app := completeApplication()
	app.Owners = nil
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.VerifyOwners(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(domain.VerificationFailed, result.OverallStatus)
	s.NotNil(result.Owners)
	s.Empty(result.Owners)
}

func TestVerificationService(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
