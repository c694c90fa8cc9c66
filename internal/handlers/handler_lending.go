package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/dto"
	"github.com/smbanking/onboarding_backend/internal/middleware"
)

// lendingHandler handles HTTP requests for the lending origination workflow.
type lendingHandler struct {
	lendingService      portssvc.LendingSvcFacade
	notificationService portssvc.NotificationSvcFacade
}

func newLendingHandler(ls portssvc.LendingSvcFacade, ns portssvc.NotificationSvcFacade) *lendingHandler {
	return &lendingHandler{
		lendingService:      ls,
		notificationService: ns,
	}
}

// registerLendingRoutes registers routes for the lending workflow.
func registerLendingRoutes(rg *gin.RouterGroup, ls portssvc.LendingSvcFacade, ns portssvc.NotificationSvcFacade) {
	h := newLendingHandler(ls, ns)

	lending := rg.Group("/lending")
	{
		lending.GET("/applications/ref/:reference", h.getApplicationByReference)

		apps := lending.Group("/applications/:applicationID")
		{
			apps.GET("/transactions/summary", h.getTransactionSummary)
			apps.POST("/credit-report", h.pullCreditReport)
			apps.GET("/credit-report/latest", h.getLatestCreditReport)
			apps.POST("/evaluate/policy", h.evaluatePolicy)
			apps.POST("/underwrite", h.runUnderwriting)
			apps.POST("/offers", h.generateOffers)
			apps.POST("/offers/:offerID/select", h.selectOffer)
			apps.POST("/facility", h.openFacility)
			apps.POST("/notify", h.sendNotification)
		}
	}
}

// getApplicationByReference godoc
// @Summary Get a lending application by reference
// @Description Retrieves the application aggregate by its unique reference
// @Tags lending
// @Produce json
// @Param reference path string true "Application reference"
// @Success 200 {object} dto.LendingApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/ref/{reference} [get]
func (h *lendingHandler) getApplicationByReference(c *gin.Context) {
	app, err := h.lendingService.GetApplicationByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLendingApplicationResponse(app))
}

// getTransactionSummary godoc
// @Summary Get the checking-account transaction summary
// @Description Returns the latest stored cash-flow summary; an empty summary when none exists
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param lookbackMonths query int false "Lookback window in months" default(12)
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/transactions/summary [get]
func (h *lendingHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TransactionSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid transaction summary params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	result, err := h.lendingService.GetTransactionSummary(c.Request.Context(), c.Param("applicationID"), params.LookbackMonths)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(result))
}

// pullCreditReport godoc
// @Summary Pull a credit report
// @Description Reuses the newest stored report for the bureau or pulls and persists a fresh one
// @Tags lending
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param request body dto.PullCreditReportRequest true "Bureau to pull from"
// @Success 200 {object} dto.CreditReportResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/credit-report [post]
func (h *lendingHandler) pullCreditReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PullCreditReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for credit report pull", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.lendingService.PullCreditReport(c.Request.Context(), c.Param("applicationID"), req.Bureau)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditReportResponse(result))
}

// getLatestCreditReport godoc
// @Summary Get the latest credit report
// @Description Returns the newest stored report across bureaus, or null when none has been pulled
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.CreditReportResponse "Newest report, or null"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/credit-report/latest [get]
func (h *lendingHandler) getLatestCreditReport(c *gin.Context) {
	result, err := h.lendingService.GetLatestCreditReport(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditReportResponse(result))
}

// evaluatePolicy godoc
// @Summary Evaluate lending policy eligibility
// @Description Applies the lending policy rules; a negative verdict is a successful response
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/evaluate/policy [post]
func (h *lendingHandler) evaluatePolicy(c *gin.Context) {
	result, err := h.lendingService.EvaluatePolicy(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEligibilityResponse(result))
}

// runUnderwriting godoc
// @Summary Run underwriting
// @Description Computes grade and exposure from stored inputs and appends an underwriting artifact
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 201 {object} dto.UnderwritingResponse
// @Failure 400 {object} map[string]string "Application already decided"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/underwrite [post]
func (h *lendingHandler) runUnderwriting(c *gin.Context) {
	result, err := h.lendingService.RunUnderwriting(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUnderwritingResponse(result))
}

// generateOffers godoc
// @Summary Generate offers
// @Description Derives offers from the latest underwriting result; requires a prior underwriting run
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 201 {array} dto.OfferResponse
// @Failure 400 {object} map[string]string "No underwriting result found"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/offers [post]
func (h *lendingHandler) generateOffers(c *gin.Context) {
	result, err := h.lendingService.GenerateOffers(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToListOfferResponse(result))
}

// selectOffer godoc
// @Summary Select an offer
// @Description Marks an offer belonging to the application as selected
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param offerID path string true "Offer ID"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} map[string]string "Offer not found for this application"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/offers/{offerID}/select [post]
func (h *lendingHandler) selectOffer(c *gin.Context) {
	result, err := h.lendingService.SelectOffer(c.Request.Context(), c.Param("applicationID"), c.Param("offerID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(result))
}

// openFacility godoc
// @Summary Open the credit facility
// @Description Creates the funded facility once per application from the most recent offer
// @Tags lending
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 201 {object} dto.CreditFacilityResponse
// @Failure 400 {object} map[string]string "No offer available to open facility"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/facility [post]
func (h *lendingHandler) openFacility(c *gin.Context) {
	result, err := h.lendingService.OpenFacility(c.Request.Context(), c.Param("applicationID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreditFacilityResponse(result))
}

// sendNotification godoc
// @Summary Send a decision notification
// @Description Records and delivers a decision notification for a lending application
// @Tags lending
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param request body dto.SendNotificationRequest true "Decision to communicate"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /lending/applications/{applicationID}/notify [post]
func (h *lendingHandler) sendNotification(c *gin.Context) {
	sendDecisionNotification(c, h.notificationService, domain.ContextLendingApplication)
}
