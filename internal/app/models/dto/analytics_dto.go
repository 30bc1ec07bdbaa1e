package dto

// RoleCounts holds total/approved/pending tallies for one role
type RoleCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

// JobCounts holds job tallies split by lifecycle status
type JobCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Closed   int `json:"closed"`
}

// ApplicationCounts holds application tallies
type ApplicationCounts struct {
	Total    int `json:"total"`
	Selected int `json:"selected"`
}

// OverviewResponse is the top-level analytics summary. PlacementRate is
// formatted at the serialization boundary; the raw float never leaves
// the service layer.
type OverviewResponse struct {
	Students      RoleCounts        `json:"students"`
	Faculty       RoleCounts        `json:"faculty"`
	Companies     RoleCounts        `json:"companies"`
	Jobs          JobCounts         `json:"jobs"`
	Applications  ApplicationCounts `json:"applications"`
	PlacementRate string            `json:"placementRate" example:"42.86"`
}

// BranchStats aggregates student and application figures for one branch
type BranchStats struct {
	Branch               string      `json:"branch"`
	TotalStudents        int         `json:"totalStudents"`
	ApprovedStudents     int         `json:"approvedStudents"`
	YearDistribution     map[int]int `json:"yearDistribution"`
	AverageCGPA          string      `json:"averageCgpa" example:"8.00"`
	TotalApplications    int         `json:"totalApplications"`
	SelectedApplications int         `json:"selectedApplications"`
}

// BranchWiseResponse is the branch rollup payload
type BranchWiseResponse struct {
	Branches []BranchStats `json:"branches"`
}

// CompanyApprovalStatus lists one company with its approval state
type CompanyApprovalStatus struct {
	CompanyName string `json:"companyName"`
	Approved    bool   `json:"approved"`
}

// IndustryStats aggregates company, job and application figures for one industry
type IndustryStats struct {
	Industry             string                  `json:"industry"`
	TotalCompanies       int                     `json:"totalCompanies"`
	ApprovedCompanies    int                     `json:"approvedCompanies"`
	Companies            []CompanyApprovalStatus `json:"companies"`
	TotalJobs            int                     `json:"totalJobs"`
	ActiveJobs           int                     `json:"activeJobs"`
	TotalApplications    int                     `json:"totalApplications"`
	SelectedApplications int                     `json:"selectedApplications"`
}

// CompanyWiseResponse is the industry rollup payload
type CompanyWiseResponse struct {
	Industries []IndustryStats `json:"industries"`
}

// MonthBucket holds per-entity counts for one calendar month
type MonthBucket struct {
	Month        string `json:"month" example:"2025-11"`
	Students     int    `json:"students"`
	Faculty      int    `json:"faculty"`
	Companies    int    `json:"companies"`
	Jobs         int    `json:"jobs"`
	Applications int    `json:"applications"`
}

// MonthlyTrendsResponse is the fixed 12-month series, oldest first
type MonthlyTrendsResponse struct {
	Months []MonthBucket `json:"months"`
}

// PlacementRecord is one selected application flattened for reporting
type PlacementRecord struct {
	StudentName string  `json:"studentName"`
	Email       string  `json:"email"`
	Branch      string  `json:"branch"`
	Year        int     `json:"year"`
	CGPA        float64 `json:"cgpa"`
	Company     string  `json:"company"`
	JobTitle    string  `json:"jobTitle"`
	Location    string  `json:"location"`
	SalaryMin   int64   `json:"salaryMin"`
	SalaryMax   int64   `json:"salaryMax"`
	AppliedAt   string  `json:"appliedAt"`
	SelectedAt  string  `json:"selectedAt,omitempty"`
}

// SalaryRange holds the min/max salary across reported placements
type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// PlacementReportResponse is the full placement report payload
type PlacementReportResponse struct {
	TotalPlacements int             `json:"totalPlacements"`
	Placements      []PlacementRecord `json:"placements"`
	BranchTally     map[string]int  `json:"branchWise"`
	CompanyTally    map[string]int  `json:"companyWise"`
	SalaryRange     SalaryRange     `json:"salaryRange"`
	AverageSalary   int64           `json:"averageSalary"`
}
