package dto

import "github.com/placemate/placemate/internal/app/models"

// RegisterRequest represents a registration request for any
// self-registerable role. Role-specific fields are optional at the
// binding layer and checked per role by the service.
type RegisterRequest struct {
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=6"`
	Role      models.Role `json:"role" binding:"required"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`

	// Student fields
	RollNumber string `json:"rollNumber,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Year       int    `json:"year,omitempty"`

	// Faculty fields
	EmployeeID string `json:"employeeId,omitempty"`
	Department string `json:"department,omitempty"`

	// Company fields
	CompanyName   string `json:"companyName,omitempty"`
	Industry      string `json:"industry,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`

	// Shared optional fields
	Phone string `json:"phone,omitempty"`
}

// RegisterResponse represents a successful registration. No session is
// established; the caller must verify their email and sign in.
type RegisterResponse struct {
	ID      string      `json:"id"`
	Email   string      `json:"email"`
	Role    models.Role `json:"role"`
	Message string      `json:"message"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the issued session token
type SessionResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// UserResponse represents the signed-in user with their role record
type UserResponse struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	IsApproved bool        `json:"isApproved"`
	RoleData   interface{} `json:"roleData,omitempty"`
}

// LoginResponse represents a successful sign-in
type LoginResponse struct {
	User    UserResponse    `json:"user"`
	Session SessionResponse `json:"session"`
}

// VerifyEmailResponse confirms email verification
type VerifyEmailResponse struct {
	Message string `json:"message"`
}
