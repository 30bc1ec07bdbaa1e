package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
	"github.com/placemate/placemate/internal/pkg/helpers"
)

// AnalyticsService reduces flat row projections into the reporting
// payloads. All aggregation happens in memory; the repository only
// joins and flattens. Rates stay float64 internally and become fixed
// precision strings at the DTO boundary.
type AnalyticsService struct {
	source AnalyticsSource
	logger zerolog.Logger

	// now is swapped in tests to pin the trends window
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(source AnalyticsSource, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// Overview returns portal-wide counts and the placement rate
func (s *AnalyticsService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	profiles, err := s.source.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.source.Applications(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.OverviewResponse{}
	for _, p := range profiles {
		var counts *dto.RoleCounts
		switch p.Role {
		case models.RoleStudent:
			counts = &resp.Students
		case models.RoleFaculty:
			counts = &resp.Faculty
		case models.RoleCompany:
			counts = &resp.Companies
		default:
			continue
		}
		counts.Total++
		switch p.ReviewStatus {
		case models.ReviewApproved:
			counts.Approved++
		case models.ReviewPending:
			counts.Pending++
		}
	}

	for _, j := range jobs {
		resp.Jobs.Total++
		switch j.Status {
		case models.JobActive:
			resp.Jobs.Active++
		case models.JobInactive:
			resp.Jobs.Inactive++
		case models.JobClosed:
			resp.Jobs.Closed++
		}
	}

	for _, a := range applications {
		resp.Applications.Total++
		if a.Status == models.ApplicationSelected {
			resp.Applications.Selected++
		}
	}

	rate := 0.0
	if resp.Applications.Total > 0 {
		rate = float64(resp.Applications.Selected) / float64(resp.Applications.Total) * 100
	}
	resp.PlacementRate = fmt.Sprintf("%.2f", rate)

	return resp, nil
}

// BranchWise returns per-branch student and application rollups
func (s *AnalyticsService) BranchWise(ctx context.Context) (*dto.BranchWiseResponse, error) {
	students, err := s.source.Students(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.source.Applications(ctx)
	if err != nil {
		return nil, err
	}

	type branchAcc struct {
		stats     dto.BranchStats
		cgpaSum   float64
		cgpaCount int
	}
	byBranch := map[string]*branchAcc{}
	get := func(branch string) *branchAcc {
		acc, ok := byBranch[branch]
		if !ok {
			acc = &branchAcc{stats: dto.BranchStats{
				Branch:           branch,
				YearDistribution: map[int]int{},
			}}
			byBranch[branch] = acc
		}
		return acc
	}

	for _, st := range students {
		acc := get(st.Branch)
		acc.stats.TotalStudents++
		if st.ReviewStatus == models.ReviewApproved {
			acc.stats.ApprovedStudents++
		}
		acc.stats.YearDistribution[st.Year]++
		// A zero CGPA means "not yet recorded" and is excluded from
		// the mean but still counted in the totals.
		if st.CGPA > 0 {
			acc.cgpaSum += st.CGPA
			acc.cgpaCount++
		}
	}

	for _, a := range applications {
		acc := get(a.Branch)
		acc.stats.TotalApplications++
		if a.Status == models.ApplicationSelected {
			acc.stats.SelectedApplications++
		}
	}

	resp := &dto.BranchWiseResponse{Branches: []dto.BranchStats{}}
	for _, acc := range byBranch {
		avg := 0.0
		if acc.cgpaCount > 0 {
			avg = acc.cgpaSum / float64(acc.cgpaCount)
		}
		acc.stats.AverageCGPA = fmt.Sprintf("%.2f", avg)
		resp.Branches = append(resp.Branches, acc.stats)
	}
	sort.Slice(resp.Branches, func(i, j int) bool {
		return resp.Branches[i].Branch < resp.Branches[j].Branch
	})

	return resp, nil
}

// CompanyWise returns per-industry company, job and application rollups
func (s *AnalyticsService) CompanyWise(ctx context.Context) (*dto.CompanyWiseResponse, error) {
	companies, err := s.source.Companies(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.source.Applications(ctx)
	if err != nil {
		return nil, err
	}

	byIndustry := map[string]*dto.IndustryStats{}
	get := func(industry string) *dto.IndustryStats {
		stats, ok := byIndustry[industry]
		if !ok {
			stats = &dto.IndustryStats{
				Industry:  industry,
				Companies: []dto.CompanyApprovalStatus{},
			}
			byIndustry[industry] = stats
		}
		return stats
	}

	for _, c := range companies {
		stats := get(c.Industry)
		stats.TotalCompanies++
		approved := c.ReviewStatus == models.ReviewApproved
		if approved {
			stats.ApprovedCompanies++
		}
		stats.Companies = append(stats.Companies, dto.CompanyApprovalStatus{
			CompanyName: c.CompanyName,
			Approved:    approved,
		})
	}

	for _, j := range jobs {
		stats := get(j.Industry)
		stats.TotalJobs++
		if j.Status == models.JobActive {
			stats.ActiveJobs++
		}
	}

	for _, a := range applications {
		stats := get(a.Industry)
		stats.TotalApplications++
		if a.Status == models.ApplicationSelected {
			stats.SelectedApplications++
		}
	}

	resp := &dto.CompanyWiseResponse{Industries: []dto.IndustryStats{}}
	for _, stats := range byIndustry {
		resp.Industries = append(resp.Industries, *stats)
	}
	sort.Slice(resp.Industries, func(i, j int) bool {
		return resp.Industries[i].Industry < resp.Industries[j].Industry
	})

	return resp, nil
}

// MonthlyTrends returns a fixed 12-month series of creation counts,
// oldest month first. Rows outside the window are dropped silently.
func (s *AnalyticsService) MonthlyTrends(ctx context.Context) (*dto.MonthlyTrendsResponse, error) {
	profiles, err := s.source.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.source.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.source.Applications(ctx)
	if err != nil {
		return nil, err
	}

	// Pre-seed the window so months with no activity still appear.
	// Month arithmetic starts from the first of the month: AddDate
	// normalizes overflow, so stepping from the 29th-31st would skip
	// and duplicate months.
	now := s.now()
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]dto.MonthBucket, 12)
	index := map[string]*dto.MonthBucket{}
	for i := 0; i < 12; i++ {
		month := helpers.MonthKey(base.AddDate(0, i-11, 0))
		buckets[i] = dto.MonthBucket{Month: month}
		index[month] = &buckets[i]
	}

	for _, p := range profiles {
		bucket, ok := index[helpers.MonthKey(p.CreatedAt)]
		if !ok {
			continue
		}
		switch p.Role {
		case models.RoleStudent:
			bucket.Students++
		case models.RoleFaculty:
			bucket.Faculty++
		case models.RoleCompany:
			bucket.Companies++
		}
	}
	for _, j := range jobs {
		if bucket, ok := index[helpers.MonthKey(j.CreatedAt)]; ok {
			bucket.Jobs++
		}
	}
	for _, a := range applications {
		if bucket, ok := index[helpers.MonthKey(a.AppliedAt)]; ok {
			bucket.Applications++
		}
	}

	return &dto.MonthlyTrendsResponse{Months: buckets}, nil
}

// PlacementReport returns the flattened selected applications with
// branch/company tallies and salary figures
func (s *AnalyticsService) PlacementReport(ctx context.Context) (*dto.PlacementReportResponse, error) {
	placements, err := s.source.Placements(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlacementReportResponse{
		Placements:   []dto.PlacementRecord{},
		BranchTally:  map[string]int{},
		CompanyTally: map[string]int{},
	}

	minSalary := math.Inf(1)
	maxSalary := int64(0)
	midpointSum := 0.0

	for _, p := range placements {
		record := dto.PlacementRecord{
			StudentName: p.FirstName + " " + p.LastName,
			Email:       p.Email,
			Branch:      p.Branch,
			Year:        p.Year,
			CGPA:        p.CGPA,
			Company:     p.Company,
			JobTitle:    p.JobTitle,
			Location:    p.Location,
			SalaryMin:   p.SalaryMin,
			SalaryMax:   p.SalaryMax,
			AppliedAt:   p.AppliedAt.Format("2006-01-02"),
		}
		if p.ReviewedAt != nil {
			record.SelectedAt = p.ReviewedAt.Format("2006-01-02")
		}
		resp.Placements = append(resp.Placements, record)
		resp.BranchTally[p.Branch]++
		resp.CompanyTally[p.Company]++

		if float64(p.SalaryMin) < minSalary {
			minSalary = float64(p.SalaryMin)
		}
		if p.SalaryMax > maxSalary {
			maxSalary = p.SalaryMax
		}
		midpointSum += float64(p.SalaryMin+p.SalaryMax) / 2
	}

	resp.TotalPlacements = len(resp.Placements)
	if resp.TotalPlacements > 0 {
		resp.SalaryRange = dto.SalaryRange{Min: int64(minSalary), Max: maxSalary}
		resp.AverageSalary = int64(math.Round(midpointSum / float64(resp.TotalPlacements)))
	}

	return resp, nil
}

// Run dispatches a report by its query name
func (s *AnalyticsService) Run(ctx context.Context, reportType string) (interface{}, error) {
	switch reportType {
	case "overview":
		return s.Overview(ctx)
	case "branch-wise":
		return s.BranchWise(ctx)
	case "company-wise":
		return s.CompanyWise(ctx)
	case "monthly-trends":
		return s.MonthlyTrends(ctx)
	case "placement-report":
		return s.PlacementReport(ctx)
	default:
		return nil, apperrors.NewValidationError("unknown report type", map[string]interface{}{
			"type": fmt.Sprintf("unsupported report type: %s", reportType),
		})
	}
}
