package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// StudentController handles the student's self-scoped endpoints
type StudentController struct {
	studentService *services.StudentService
	jobService     *services.JobService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, jobService *services.JobService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		jobService:     jobService,
		logger:         logger,
	}
}

// GetProfile returns the caller's student record
// @Summary Get own student profile
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse}
// @Failure 404 {object} dto.ErrorResponse "Student record not found"
// @Security BearerAuth
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.CallerProfileID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StudentProfileResponse{Student: student}})
}

// UpdateProfile updates the caller's names and student record
// @Summary Update own student profile
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse}
// @Failure 404 {object} dto.ErrorResponse "Student record not found"
// @Security BearerAuth
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), middleware.CallerProfileID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StudentProfileResponse{Student: student}})
}

// ListApplications returns the caller's applications with job details
// @Summary List own applications
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse}
// @Security BearerAuth
// @Router /students/applications [get]
func (c *StudentController) ListApplications(ctx *gin.Context) {
	apps, err := c.jobService.ListStudentApplications(ctx.Request.Context(), middleware.CallerProfileID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.ApplicationListResponse{Applications: apps}})
}
