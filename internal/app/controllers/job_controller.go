package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/repositories"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// JobController handles job postings and the application pipeline
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// List returns jobs matching the query filters
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param status query string false "Job status filter"
// @Param jobType query string false "Job type filter"
// @Param location query string false "Location substring filter"
// @Param companyId query string false "Owning company filter"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse}
// @Security BearerAuth
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	filter := repositories.JobFilter{
		Status:    models.JobStatus(ctx.Query("status")),
		JobType:   models.JobType(ctx.Query("jobType")),
		Location:  ctx.Query("location"),
		CompanyID: ctx.Query("companyId"),
	}

	jobs, err := c.jobService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobListResponse{Jobs: jobs}})
}

// Get returns a single job
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	job, err := c.jobService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobResponse{Job: job}})
}

// Create posts a new job for the calling company
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller is not an approved company"
// @Security BearerAuth
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), middleware.CallerProfileID(ctx), middleware.CallerRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.JobResponse{
		Message: "Job created successfully",
		Job:     job,
	}})
}

// Update mutates a posting owned by the caller
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the posting"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.Update(ctx.Request.Context(), middleware.CallerProfileID(ctx), middleware.CallerRole(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.JobResponse{
		Message: "Job updated successfully",
		Job:     job,
	}})
}

// Delete removes a posting owned by the caller
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the posting"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	err := c.jobService.Delete(ctx.Request.Context(), middleware.CallerProfileID(ctx), middleware.CallerRole(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MessageResponse{Message: "Job deleted successfully"}})
}

// Apply creates an application from the calling student
// @Summary Apply to a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Job closed or deadline passed"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Security BearerAuth
// @Router /jobs/{id}/apply [post]
func (c *JobController) Apply(ctx *gin.Context) {
	app, err := c.jobService.Apply(ctx.Request.Context(), middleware.CallerProfileID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.ApplicationResponse{
		Message:     "Application submitted successfully",
		Application: app,
	}})
}

// ListApplications returns the applications a posting received
// @Summary List a job's applications
// @Tags jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the posting"
// @Security BearerAuth
// @Router /jobs/{id}/applications [get]
func (c *JobController) ListApplications(ctx *gin.Context) {
	apps, err := c.jobService.ListJobApplications(ctx.Request.Context(), middleware.CallerProfileID(ctx), middleware.CallerRole(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.ApplicationListResponse{Applications: apps}})
}

// UpdateApplicationStatus advances an application in the pipeline
// @Summary Update an application's status
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Backward or reopening transition"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/status [put]
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app, err := c.jobService.UpdateApplicationStatus(ctx.Request.Context(), middleware.CallerProfileID(ctx), middleware.CallerRole(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.ApplicationResponse{
		Message:     "Application status updated",
		Application: app,
	}})
}
