package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// NotificationController handles the caller's notifications
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// List returns the caller's notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse}
// @Security BearerAuth
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	unreadOnly := ctx.Query("unread_only") == "true"

	notifications, err := c.notificationService.List(ctx.Request.Context(), middleware.CallerProfileID(ctx), unreadOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NotificationListResponse{Notifications: notifications}})
}

// Create writes a notification for another profile (admin and faculty)
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.notificationService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.MessageResponse{Message: "Notification created"}})
}

// MarkRead flips the read flag on the caller's notifications
// @Summary Mark notifications read or unread
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.MarkNotificationsRequest true "Notification ids and target state"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Security BearerAuth
// @Router /notifications [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	var req dto.MarkNotificationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if _, err := c.notificationService.MarkRead(ctx.Request.Context(), middleware.CallerProfileID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MessageResponse{Message: "Notifications updated"}})
}
