package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Upstream store errors
	ErrUpstreamFailure = errors.New("upstream store call failed")
	ErrUpstreamTimeout = errors.New("upstream store call timed out")
)

// Registration and sign-in errors
var (
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrProfileCreationFailed    = errors.New("failed to create profile")
	ErrRoleRecordCreationFailed = errors.New("failed to create role record")
	ErrProfileNotFound          = errors.New("profile not found")
	ErrEmailNotVerified         = errors.New("email not verified")
	ErrPendingApproval          = errors.New("account pending approval")
)

// Approval workflow errors
var (
	ErrAlreadyReviewed = errors.New("profile already reviewed")
)

// Job and application errors
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is not accepting applications")
	ErrDeadlinePassed      = errors.New("application deadline has passed")
	ErrAlreadyApplied      = errors.New("application already exists for this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidTransition   = errors.New("invalid application status transition")
)

// Role record errors
var (
	ErrStudentNotFound = errors.New("student record not found")
	ErrCompanyNotFound = errors.New("company record not found")
	ErrFacultyNotFound = errors.New("faculty record not found")
)

// CustomError carries an underlying sentinel plus a human-readable
// message and optional structured details for the response body.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with per-field problems
func NewValidationError(message string, fields map[string]interface{}) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
