package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// AnalyticsController serves the reporting endpoint
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
	logger           zerolog.Logger
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService, logger zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Get dispatches a report by the type query parameter
// @Summary Run an analytics report
// @Description Returns the aggregation named by the type parameter: overview, branch-wise, company-wise, monthly-trends or placement-report
// @Tags analytics
// @Produce json
// @Param type query string true "Report type" Enums(overview, branch-wise, company-wise, monthly-trends, placement-report)
// @Success 200 {object} dto.APIResponse "Report payload"
// @Failure 400 {object} dto.ErrorResponse "Unknown report type"
// @Failure 403 {object} dto.ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /analytics [get]
func (c *AnalyticsController) Get(ctx *gin.Context) {
	reportType := ctx.Query("type")
	if reportType == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Report type is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.analyticsService.Run(ctx.Request.Context(), reportType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
