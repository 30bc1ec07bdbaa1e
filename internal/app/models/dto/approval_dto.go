package dto

// ApprovalRequest represents an admin approve/reject decision for a
// pending profile. The target field name differs per endpoint
// (companyId, facultyId, studentId) so each has its own request type.
type ApproveCompanyRequest struct {
	CompanyID string `json:"companyId" binding:"required,uuid"`
	Action    string `json:"action" binding:"required,oneof=approve reject"`
	Notes     string `json:"notes,omitempty"`
}

// ApproveFacultyRequest represents a faculty approval decision
type ApproveFacultyRequest struct {
	FacultyID string `json:"facultyId" binding:"required,uuid"`
	Action    string `json:"action" binding:"required,oneof=approve reject"`
	Notes     string `json:"notes,omitempty"`
}

// ApproveStudentRequest represents a student approval decision
type ApproveStudentRequest struct {
	StudentID string `json:"studentId" binding:"required,uuid"`
	Action    string `json:"action" binding:"required,oneof=approve reject"`
	Notes     string `json:"notes,omitempty"`
}

// ReviewedProfile summarizes the profile a decision was applied to
type ReviewedProfile struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

// ApprovalResponse represents the outcome of an approval decision
type ApprovalResponse struct {
	Message string          `json:"message"`
	Profile ReviewedProfile `json:"profile"`
}
