package dto

// CandidateMatch is one entry from /matching/jobs/{id}/candidates.
type CandidateMatch struct {
	ApplicantID     int      `json:"applicant_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
}

type JobCandidatesResponse struct {
	JobID           int              `json:"job_id"`
	JobTitle        string           `json:"job_title"`
	TotalCandidates int              `json:"total_candidates"`
	Candidates      []CandidateMatch `json:"candidates"`
}

// JobMatch is one entry from /matching/applicants/{id}/matches.
type JobMatch struct {
	JobID           int      `json:"job_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CompanyID       int      `json:"company_id"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
}

type ApplicantMatchesResponse struct {
	ApplicantID   int        `json:"applicant_id"`
	ApplicantName string     `json:"applicant_name"`
	TotalMatches  int        `json:"total_matches"`
	JobMatches    []JobMatch `json:"job_matches"`
}

// MatchResult is one merged row of the jobs-to-candidates aggregation,
// tagged with the job it came from. Rebuilt on every invocation.
type MatchResult struct {
	JobID           int      `json:"job_id"`
	JobTitle        string   `json:"job_title"`
	ApplicantID     int      `json:"applicant_id"`
	ApplicantName   string   `json:"applicant_name"`
	ApplicantEmail  string   `json:"applicant_email"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
}

type JobCandidateMatchesView struct {
	Total   int           `json:"total"`
	Matches []MatchResult `json:"matches"`
}

type CandidateJobMatchesView struct {
	CandidateName string     `json:"candidate_name"`
	Total         int        `json:"total"`
	Matches       []JobMatch `json:"matches"`
}

// MatchingView is the initial matching section state: candidates for the
// dropdown plus which tabs the role unlocks.
type MatchingView struct {
	Candidates       []Applicant `json:"candidates"`
	JobsToCandidates bool        `json:"jobs_to_candidates"`
	CandidatesToJobs bool        `json:"candidates_to_jobs"`
}
