package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
	"github.com/placemate/placemate/internal/pkg/logger"
)

// HandleAPIError translates service errors into the standard error
// envelope. The mapping is by sentinel, so services never pick status
// codes themselves.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details map[string]interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	respond := func(status int, code dto.ErrorCode) {
		detail := dto.NewErrorDetail(code, message)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials)
	case errors.Is(err, apperrors.ErrEmailNotVerified):
		detail := dto.NewErrorDetail(dto.ErrorCodeEmailNotVerified, message).
			WithDetails(map[string]interface{}{"requiresEmailVerification": true})
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken)

	case errors.Is(err, apperrors.ErrPendingApproval):
		detail := dto.NewErrorDetail(dto.ErrorCodePendingApproval, message).
			WithDetails(map[string]interface{}{"requiresApproval": true})
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)

	case errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound)

	case errors.Is(err, apperrors.ErrAlreadyReviewed),
		errors.Is(err, apperrors.ErrAlreadyApplied),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeConflict)

	case errors.Is(err, apperrors.ErrJobClosed),
		errors.Is(err, apperrors.ErrDeadlinePassed),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrProfileCreationFailed),
		errors.Is(err, apperrors.ErrRoleRecordCreationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	case errors.Is(err, apperrors.ErrUpstreamTimeout),
		errors.Is(err, apperrors.ErrUpstreamFailure):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Upstream store failure")
		respond(http.StatusInternalServerError, dto.ErrorCodeUpstreamError)

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}
