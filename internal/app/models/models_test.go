package models

import "testing"

func TestApplicationStatusTransitions(t *testing.T) {
	tests := []struct {
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{ApplicationApplied, ApplicationUnderReview, true},
		{ApplicationApplied, ApplicationShortlisted, true},
		{ApplicationApplied, ApplicationSelected, true},
		{ApplicationApplied, ApplicationRejected, true},
		{ApplicationUnderReview, ApplicationShortlisted, true},
		{ApplicationShortlisted, ApplicationUnderReview, false},
		{ApplicationUnderReview, ApplicationApplied, false},
		{ApplicationSelected, ApplicationRejected, false},
		{ApplicationRejected, ApplicationSelected, false},
		{ApplicationRejected, ApplicationApplied, false},
		{ApplicationApplied, ApplicationStatus("archived"), false},
		{ApplicationStatus("archived"), ApplicationSelected, false},
		{ApplicationApplied, ApplicationApplied, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	for _, status := range []ApplicationStatus{ApplicationSelected, ApplicationRejected} {
		if !status.Terminal() {
			t.Errorf("%s should be terminal", status)
		}
	}
	for _, status := range []ApplicationStatus{ApplicationApplied, ApplicationUnderReview, ApplicationShortlisted} {
		if status.Terminal() {
			t.Errorf("%s should not be terminal", status)
		}
	}
}

func TestProfileIsApproved(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{"pending student", Profile{Role: RoleStudent, ReviewStatus: ReviewPending}, false},
		{"rejected company", Profile{Role: RoleCompany, ReviewStatus: ReviewRejected}, false},
		{"approved faculty", Profile{Role: RoleFaculty, ReviewStatus: ReviewApproved}, true},
		{"admin bypasses the gate", Profile{Role: RoleAdmin, ReviewStatus: ReviewPending}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.IsApproved(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleSelfRegisterable(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleFaculty, RoleCompany} {
		if !role.SelfRegisterable() {
			t.Errorf("%s should be self-registerable", role)
		}
	}
	if RoleAdmin.SelfRegisterable() {
		t.Error("admin accounts are provisioned out of band")
	}
}
