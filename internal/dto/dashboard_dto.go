package dto

// DashboardView carries the per-role stat counts. Applicants never see
// the jobs/applicants counters, so those stay nil for them.
type DashboardView struct {
	Jobs       *int `json:"jobs,omitempty"`
	Applicants *int `json:"applicants,omitempty"`
	Interviews int  `json:"interviews"`
	Offers     int  `json:"offers"`
}
