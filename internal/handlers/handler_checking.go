package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/dto"
	"github.com/smbanking/onboarding_backend/internal/middleware"
)

// checkingHandler handles HTTP requests for the checking onboarding workflow.
type checkingHandler struct {
	checkingService     portssvc.CheckingSvcFacade
	verificationService portssvc.VerificationSvcFacade
	notificationService portssvc.NotificationSvcFacade
}

func newCheckingHandler(cs portssvc.CheckingSvcFacade, vs portssvc.VerificationSvcFacade, ns portssvc.NotificationSvcFacade) *checkingHandler {
	return &checkingHandler{
		checkingService:     cs,
		verificationService: vs,
		notificationService: ns,
	}
}

// registerCheckingRoutes registers routes for the checking workflow.
func registerCheckingRoutes(rg *gin.RouterGroup, cs portssvc.CheckingSvcFacade, vs portssvc.VerificationSvcFacade, ns portssvc.NotificationSvcFacade) {
	h := newCheckingHandler(cs, vs, ns)

	checking := rg.Group("/checking")
	{
		checking.GET("/applications/ref/:reference", h.getApplicationByReference)

		apps := checking.Group("/applications/:applicationID")
		{
			apps.POST("/evaluate/completeness", h.evaluateCompleteness)
			apps.POST("/evaluate/eligibility", h.evaluateEligibility)
			apps.POST("/evaluate/documents", h.evaluateDocuments)
			apps.POST("/verify/business", h.verifyBusiness)
			apps.POST("/verify/owners", h.verifyOwners)
			apps.POST("/score", h.scoreRisk)
			apps.POST("/account", h.openAccount)
			apps.POST("/notify", h.sendNotification)
		}
	}
}

// respondServiceError maps service errors to HTTP responses. Negative
// evaluation verdicts never reach here; they are 200 responses.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrPrerequisiteMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// getApplicationByReference godoc
// @Summary Get a checking application by reference
// @Description Retrieves the full application aggregate by its unique reference
// @Tags checking
// @Produce json
// @Param reference path string true "Application reference"
// @Success 200 {object} dto.CheckingApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/ref/{reference} [get]
func (h *checkingHandler) getApplicationByReference(c *gin.Context) {
	app, err := h.checkingService.GetApplicationByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckingApplicationResponse(app))
}

// evaluateCompleteness godoc
// @Summary Evaluate application completeness
// @Description Checks the mandatory business, owner and usage-profile fields
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.CompletenessResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/evaluate/completeness [post]
func (h *checkingHandler) evaluateCompleteness(c *gin.Context) {
	result, err := h.checkingService.EvaluateCompleteness(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompletenessResponse(result))
}

// evaluateEligibility godoc
// @Summary Evaluate product eligibility
// @Description Applies the product policy rules for the requested product
// @Tags checking
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param request body dto.EvaluateEligibilityRequest true "Product to evaluate"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/evaluate/eligibility [post]
func (h *checkingHandler) evaluateEligibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EvaluateEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for eligibility evaluation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.checkingService.EvaluateProductEligibility(c.Request.Context(), c.Param("applicationID"), req.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEligibilityResponse(result))
}

// evaluateDocuments godoc
// @Summary Evaluate uploaded documents
// @Description Checks the required document set and rejected uploads
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.DocumentEvaluationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/evaluate/documents [post]
func (h *checkingHandler) evaluateDocuments(c *gin.Context) {
	result, err := h.checkingService.EvaluateDocuments(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentEvaluationResponse(result))
}

// verifyBusiness godoc
// @Summary Verify the applicant business
// @Description Checks the business against the company registry
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.BusinessVerificationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/verify/business [post]
func (h *checkingHandler) verifyBusiness(c *gin.Context) {
	result, err := h.verificationService.VerifyBusiness(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessVerificationResponse(result))
}

// verifyOwners godoc
// @Summary Verify the beneficial owners
// @Description Checks each owner's identity data; overall status fails when any owner fails
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.OwnerVerificationSetResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/verify/owners [post]
func (h *checkingHandler) verifyOwners(c *gin.Context) {
	result, err := h.verificationService.VerifyOwners(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOwnerVerificationSetResponse(result))
}

// scoreRisk godoc
// @Summary Score application risk
// @Description Computes the additive risk score and appends a scoring artifact
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 201 {object} dto.RiskScoreResponse
// @Failure 400 {object} map[string]string "Application already decided"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/score [post]
func (h *checkingHandler) scoreRisk(c *gin.Context) {
	result, err := h.checkingService.ScoreRisk(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRiskScoreResponse(result))
}

// openAccount godoc
// @Summary Open the checking account
// @Description Creates the funded account once per application; repeat calls return the existing account
// @Tags checking
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 201 {object} dto.CheckingAccountResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/account [post]
func (h *checkingHandler) openAccount(c *gin.Context) {
	result, err := h.checkingService.OpenAccount(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCheckingAccountResponse(result))
}

// sendNotification godoc
// @Summary Send a decision notification
// @Description Records and delivers a decision notification for a checking application
// @Tags checking
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param request body dto.SendNotificationRequest true "Decision to communicate"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /checking/applications/{applicationID}/notify [post]
func (h *checkingHandler) sendNotification(c *gin.Context) {
	sendDecisionNotification(c, h.notificationService, domain.ContextCheckingApplication)
}

// sendDecisionNotification is shared between the checking and lending notify
// endpoints; only the context type differs. The authenticated caller is
// recorded on the notification row for the audit trail.
func sendDecisionNotification(c *gin.Context, ns portssvc.NotificationSvcFacade, contextType domain.NotificationContextType) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for notification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestedBy, _ := middleware.GetCallerIDFromContext(c)

	result, err := ns.SendDecision(c.Request.Context(), contextType, c.Param("applicationID"), req.Channel, req.Decision, req.ReasonCodes, requestedBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(result))
}
