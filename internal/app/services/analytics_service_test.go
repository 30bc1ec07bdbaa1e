package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/repositories"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// fakeAnalyticsSource serves canned row projections
type fakeAnalyticsSource struct {
	profiles     []repositories.ProfileRow
	students     []repositories.StudentRow
	companies    []repositories.CompanyRow
	jobs         []repositories.JobRow
	applications []repositories.ApplicationRow
	placements   []repositories.PlacementRow
}

func (f *fakeAnalyticsSource) Profiles(context.Context) ([]repositories.ProfileRow, error) {
	return f.profiles, nil
}
func (f *fakeAnalyticsSource) Students(context.Context) ([]repositories.StudentRow, error) {
	return f.students, nil
}
func (f *fakeAnalyticsSource) Companies(context.Context) ([]repositories.CompanyRow, error) {
	return f.companies, nil
}
func (f *fakeAnalyticsSource) Jobs(context.Context) ([]repositories.JobRow, error) {
	return f.jobs, nil
}
func (f *fakeAnalyticsSource) Applications(context.Context) ([]repositories.ApplicationRow, error) {
	return f.applications, nil
}
func (f *fakeAnalyticsSource) Placements(context.Context) ([]repositories.PlacementRow, error) {
	return f.placements, nil
}

func newTestAnalyticsService(source *fakeAnalyticsSource) *AnalyticsService {
	return NewAnalyticsService(source, zerolog.Nop())
}

func TestOverviewPlacementRate(t *testing.T) {
	source := &fakeAnalyticsSource{
		applications: []repositories.ApplicationRow{
			{Status: models.ApplicationSelected},
			{Status: models.ApplicationSelected},
			{Status: models.ApplicationSelected},
			{Status: models.ApplicationApplied},
			{Status: models.ApplicationShortlisted},
			{Status: models.ApplicationRejected},
			{Status: models.ApplicationUnderReview},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if resp.Applications.Total != 7 || resp.Applications.Selected != 3 {
		t.Errorf("unexpected application counts %+v", resp.Applications)
	}
	// 3/7*100 truncates nothing; formatting rounds to two places
	if resp.PlacementRate != "42.86" {
		t.Errorf("expected placement rate 42.86, got %s", resp.PlacementRate)
	}
}

func TestOverviewEmptyPortal(t *testing.T) {
	svc := newTestAnalyticsService(&fakeAnalyticsSource{})

	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if resp.PlacementRate != "0.00" {
		t.Errorf("rate with no applications must be 0.00, got %s", resp.PlacementRate)
	}
}

func TestOverviewRoleAndJobCounts(t *testing.T) {
	source := &fakeAnalyticsSource{
		profiles: []repositories.ProfileRow{
			{Role: models.RoleStudent, ReviewStatus: models.ReviewApproved},
			{Role: models.RoleStudent, ReviewStatus: models.ReviewPending},
			{Role: models.RoleStudent, ReviewStatus: models.ReviewRejected},
			{Role: models.RoleCompany, ReviewStatus: models.ReviewApproved},
			{Role: models.RoleAdmin, ReviewStatus: models.ReviewApproved},
		},
		jobs: []repositories.JobRow{
			{Status: models.JobActive},
			{Status: models.JobInactive},
			{Status: models.JobClosed},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	// Rejected students count toward the total but neither bucket;
	// admins are not reported at all.
	if resp.Students.Total != 3 || resp.Students.Approved != 1 || resp.Students.Pending != 1 {
		t.Errorf("unexpected student counts %+v", resp.Students)
	}
	if resp.Companies.Total != 1 {
		t.Errorf("unexpected company counts %+v", resp.Companies)
	}
	if resp.Jobs.Total != 3 || resp.Jobs.Active != 1 || resp.Jobs.Inactive != 1 || resp.Jobs.Closed != 1 {
		t.Errorf("unexpected job counts %+v", resp.Jobs)
	}
}

func TestBranchWiseAverageCGPAExcludesUnrecorded(t *testing.T) {
	source := &fakeAnalyticsSource{
		students: []repositories.StudentRow{
			{ID: "s1", Branch: "CSE", Year: 3, CGPA: 0, ReviewStatus: models.ReviewApproved},
			{ID: "s2", Branch: "CSE", Year: 3, CGPA: 7, ReviewStatus: models.ReviewApproved},
			{ID: "s3", Branch: "CSE", Year: 2, CGPA: 8, ReviewStatus: models.ReviewPending},
			{ID: "s4", Branch: "CSE", Year: 2, CGPA: 0, ReviewStatus: models.ReviewApproved},
			{ID: "s5", Branch: "CSE", Year: 4, CGPA: 9, ReviewStatus: models.ReviewApproved},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.BranchWise(context.Background())
	if err != nil {
		t.Fatalf("BranchWise returned error: %v", err)
	}
	if len(resp.Branches) != 1 {
		t.Fatalf("expected one branch, got %d", len(resp.Branches))
	}
	branch := resp.Branches[0]
	if branch.TotalStudents != 5 {
		t.Errorf("zero-CGPA students still count toward the total, got %d", branch.TotalStudents)
	}
	if branch.AverageCGPA != "8.00" {
		t.Errorf("expected average CGPA 8.00 over the three recorded values, got %s", branch.AverageCGPA)
	}
	if branch.YearDistribution[3] != 2 || branch.YearDistribution[2] != 2 || branch.YearDistribution[4] != 1 {
		t.Errorf("unexpected year distribution %v", branch.YearDistribution)
	}
}

func TestBranchWiseSortedAndJoinedWithApplications(t *testing.T) {
	source := &fakeAnalyticsSource{
		students: []repositories.StudentRow{
			{ID: "s1", Branch: "Mechanical", CGPA: 7.5},
			{ID: "s2", Branch: "Civil", CGPA: 8.5},
		},
		applications: []repositories.ApplicationRow{
			{StudentID: "s1", Branch: "Mechanical", Status: models.ApplicationSelected},
			{StudentID: "s1", Branch: "Mechanical", Status: models.ApplicationApplied},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.BranchWise(context.Background())
	if err != nil {
		t.Fatalf("BranchWise returned error: %v", err)
	}
	if len(resp.Branches) != 2 || resp.Branches[0].Branch != "Civil" || resp.Branches[1].Branch != "Mechanical" {
		t.Fatalf("branches must be sorted by name, got %+v", resp.Branches)
	}
	mech := resp.Branches[1]
	if mech.TotalApplications != 2 || mech.SelectedApplications != 1 {
		t.Errorf("unexpected application rollup %+v", mech)
	}
}

func TestCompanyWiseGroupsByIndustry(t *testing.T) {
	source := &fakeAnalyticsSource{
		companies: []repositories.CompanyRow{
			{ID: "c1", CompanyName: "Acme Systems", Industry: "Software", ReviewStatus: models.ReviewApproved},
			{ID: "c2", CompanyName: "Initech", Industry: "Software", ReviewStatus: models.ReviewPending},
			{ID: "c3", CompanyName: "Globex Motors", Industry: "Automotive", ReviewStatus: models.ReviewApproved},
		},
		jobs: []repositories.JobRow{
			{CompanyID: "c1", Industry: "Software", Status: models.JobActive},
			{CompanyID: "c2", Industry: "Software", Status: models.JobClosed},
		},
		applications: []repositories.ApplicationRow{
			{Industry: "Software", Status: models.ApplicationSelected},
			{Industry: "Software", Status: models.ApplicationApplied},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.CompanyWise(context.Background())
	if err != nil {
		t.Fatalf("CompanyWise returned error: %v", err)
	}
	if len(resp.Industries) != 2 || resp.Industries[0].Industry != "Automotive" || resp.Industries[1].Industry != "Software" {
		t.Fatalf("industries must be sorted by name, got %+v", resp.Industries)
	}
	software := resp.Industries[1]
	if software.TotalCompanies != 2 || software.ApprovedCompanies != 1 {
		t.Errorf("unexpected company counts %+v", software)
	}
	if software.TotalJobs != 2 || software.ActiveJobs != 1 {
		t.Errorf("unexpected job counts %+v", software)
	}
	if software.TotalApplications != 2 || software.SelectedApplications != 1 {
		t.Errorf("unexpected application counts %+v", software)
	}
	if len(software.Companies) != 2 {
		t.Errorf("expected both companies listed, got %+v", software.Companies)
	}
}

func TestMonthlyTrendsWindow(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	source := &fakeAnalyticsSource{
		profiles: []repositories.ProfileRow{
			// First day of the oldest in-window month
			{Role: models.RoleStudent, CreatedAt: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
			// Same calendar month as now
			{Role: models.RoleCompany, CreatedAt: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)},
			// Thirteen months back, outside the window
			{Role: models.RoleStudent, CreatedAt: time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC)},
		},
		jobs: []repositories.JobRow{
			{Status: models.JobActive, CreatedAt: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
		},
		applications: []repositories.ApplicationRow{
			{Status: models.ApplicationApplied, AppliedAt: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestAnalyticsService(source)
	svc.now = func() time.Time { return now }

	resp, err := svc.MonthlyTrends(context.Background())
	if err != nil {
		t.Fatalf("MonthlyTrends returned error: %v", err)
	}
	if len(resp.Months) != 12 {
		t.Fatalf("the series is always twelve months, got %d", len(resp.Months))
	}
	if resp.Months[0].Month != "2025-09" || resp.Months[11].Month != "2026-08" {
		t.Fatalf("unexpected window %s..%s", resp.Months[0].Month, resp.Months[11].Month)
	}

	if resp.Months[0].Students != 1 {
		t.Errorf("oldest in-window month should hold one student, got %d", resp.Months[0].Students)
	}
	if resp.Months[11].Companies != 1 {
		t.Errorf("current month should hold one company, got %d", resp.Months[11].Companies)
	}

	var total int
	for _, m := range resp.Months {
		total += m.Students + m.Faculty + m.Companies
	}
	if total != 2 {
		t.Errorf("out-of-window rows must be dropped, counted %d profiles", total)
	}

	for _, m := range resp.Months {
		if m.Month == "2026-03" {
			if m.Jobs != 1 || m.Applications != 1 {
				t.Errorf("unexpected 2026-03 bucket %+v", m)
			}
		}
	}
}

func TestMonthlyTrendsMonthEndClock(t *testing.T) {
	// On the 31st, naive month stepping would normalize (Jan 31 minus
	// 11 months is Feb 31, which rolls into March) and corrupt the
	// window with duplicate and missing keys.
	now := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)
	source := &fakeAnalyticsSource{
		profiles: []repositories.ProfileRow{
			// Oldest in-window month, reachable only without overflow
			{Role: models.RoleStudent, CreatedAt: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{Role: models.RoleFaculty, CreatedAt: time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestAnalyticsService(source)
	svc.now = func() time.Time { return now }

	resp, err := svc.MonthlyTrends(context.Background())
	if err != nil {
		t.Fatalf("MonthlyTrends returned error: %v", err)
	}

	want := []string{
		"2025-02", "2025-03", "2025-04", "2025-05", "2025-06", "2025-07",
		"2025-08", "2025-09", "2025-10", "2025-11", "2025-12", "2026-01",
	}
	for i, month := range want {
		if resp.Months[i].Month != month {
			t.Fatalf("bucket %d: expected %s, got %s", i, month, resp.Months[i].Month)
		}
	}

	if resp.Months[0].Students != 1 {
		t.Errorf("2025-02 should hold one student, got %d", resp.Months[0].Students)
	}
	if resp.Months[2].Faculty != 1 {
		t.Errorf("2025-04 should hold one faculty, got %d", resp.Months[2].Faculty)
	}
}

func TestPlacementReportAggregates(t *testing.T) {
	applied := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	selected := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)
	source := &fakeAnalyticsSource{
		placements: []repositories.PlacementRow{
			{
				FirstName: "Asha", LastName: "Verma", Email: "asha@campus.edu",
				Branch: "CSE", Year: 4, CGPA: 8.7,
				Company: "Acme Systems", JobTitle: "Backend Engineer", Location: "Pune",
				SalaryMin: 600000, SalaryMax: 800000,
				AppliedAt: applied, ReviewedAt: &selected,
			},
			{
				FirstName: "Ravi", LastName: "Nair", Email: "ravi@campus.edu",
				Branch: "CSE", Year: 4, CGPA: 7.9,
				Company: "Initech", JobTitle: "QA Engineer", Location: "Chennai",
				SalaryMin: 400000, SalaryMax: 500000,
				AppliedAt: applied,
			},
		},
	}
	svc := newTestAnalyticsService(source)

	resp, err := svc.PlacementReport(context.Background())
	if err != nil {
		t.Fatalf("PlacementReport returned error: %v", err)
	}
	if resp.TotalPlacements != 2 {
		t.Fatalf("expected 2 placements, got %d", resp.TotalPlacements)
	}
	if resp.SalaryRange.Min != 400000 || resp.SalaryRange.Max != 800000 {
		t.Errorf("unexpected salary range %+v", resp.SalaryRange)
	}
	// Midpoints 700000 and 450000 average to 575000
	if resp.AverageSalary != 575000 {
		t.Errorf("expected average salary 575000, got %d", resp.AverageSalary)
	}
	if resp.BranchTally["CSE"] != 2 || resp.CompanyTally["Acme Systems"] != 1 {
		t.Errorf("unexpected tallies branch=%v company=%v", resp.BranchTally, resp.CompanyTally)
	}

	first := resp.Placements[0]
	if first.StudentName != "Asha Verma" || first.AppliedAt != "2026-02-10" || first.SelectedAt != "2026-02-20" {
		t.Errorf("unexpected first record %+v", first)
	}
	if resp.Placements[1].SelectedAt != "" {
		t.Errorf("missing review date must stay empty, got %q", resp.Placements[1].SelectedAt)
	}
}

func TestPlacementReportEmpty(t *testing.T) {
	svc := newTestAnalyticsService(&fakeAnalyticsSource{})

	resp, err := svc.PlacementReport(context.Background())
	if err != nil {
		t.Fatalf("PlacementReport returned error: %v", err)
	}
	if resp.TotalPlacements != 0 {
		t.Errorf("expected zero placements, got %d", resp.TotalPlacements)
	}
	if resp.SalaryRange.Min != 0 || resp.SalaryRange.Max != 0 {
		t.Errorf("empty report must carry a zero salary range, got %+v", resp.SalaryRange)
	}
	if resp.AverageSalary != 0 {
		t.Errorf("empty report must carry a zero average salary, got %d", resp.AverageSalary)
	}
	if resp.Placements == nil || resp.BranchTally == nil || resp.CompanyTally == nil {
		t.Error("collections serialize as empty, never null")
	}
}

func TestRunDispatch(t *testing.T) {
	svc := newTestAnalyticsService(&fakeAnalyticsSource{})

	for _, reportType := range []string{"overview", "branch-wise", "company-wise", "monthly-trends", "placement-report"} {
		if _, err := svc.Run(context.Background(), reportType); err != nil {
			t.Errorf("Run(%q) returned error: %v", reportType, err)
		}
	}

	_, err := svc.Run(context.Background(), "weekly-digest")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for unknown report type, got %v", err)
	}
}
