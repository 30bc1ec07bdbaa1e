package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// AdminController handles approval decisions on pending profiles
type AdminController struct {
	approvalService *services.ApprovalService
	logger          zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(approvalService *services.ApprovalService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		approvalService: approvalService,
		logger:          logger,
	}
}

// ApproveCompany applies a decision to a pending company profile
// @Summary Approve or reject a company
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ApproveCompanyRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse} "Decision applied"
// @Failure 404 {object} dto.ErrorResponse "Company profile not found"
// @Failure 409 {object} dto.ErrorResponse "Profile already reviewed"
// @Security BearerAuth
// @Router /admin/approve-company [post]
func (c *AdminController) ApproveCompany(ctx *gin.Context) {
	var req dto.ApproveCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.review(ctx, req.CompanyID, models.RoleCompany, req.Action, req.Notes)
}

// ApproveFaculty applies a decision to a pending faculty profile
// @Summary Approve or reject a faculty member
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ApproveFacultyRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse} "Decision applied"
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Failure 409 {object} dto.ErrorResponse "Profile already reviewed"
// @Security BearerAuth
// @Router /admin/approve-faculty [post]
func (c *AdminController) ApproveFaculty(ctx *gin.Context) {
	var req dto.ApproveFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.review(ctx, req.FacultyID, models.RoleFaculty, req.Action, req.Notes)
}

// ApproveStudent applies a decision to a pending student profile.
// Faculty may review students as well as admins.
// @Summary Approve or reject a student
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ApproveStudentRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse} "Decision applied"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Failure 409 {object} dto.ErrorResponse "Profile already reviewed"
// @Security BearerAuth
// @Router /admin/approve-student [post]
func (c *AdminController) ApproveStudent(ctx *gin.Context) {
	var req dto.ApproveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.review(ctx, req.StudentID, models.RoleStudent, req.Action, req.Notes)
}

func (c *AdminController) review(ctx *gin.Context, targetID string, targetRole models.Role, action, notes string) {
	reviewerID := middleware.CallerProfileID(ctx)

	resp, err := c.approvalService.Review(ctx.Request.Context(), reviewerID, targetID, targetRole, action, notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
