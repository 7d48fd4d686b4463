package scopes

// ============================================================================
// RECRUITING SCOPES - jobs, resumes, candidates, interviews
// ============================================================================

const (
	ScopeJobsAll      = "jobs:*"
	ScopeJobsRead     = "jobs:read"
	ScopeJobsWrite    = "jobs:write"
	ScopeJobsDelete   = "jobs:delete"
	ScopeJobsWorkflow = "jobs:workflow" // phases and screening questions
	ScopeJobsExtract  = "jobs:extract"  // JD upload and AI extraction

	ScopeResumesAll    = "resumes:*"
	ScopeResumesRead   = "resumes:read"
	ScopeResumesWrite  = "resumes:write"
	ScopeResumesDelete = "resumes:delete"
	ScopeResumesUpload = "resumes:upload"
	ScopeResumesExport = "resumes:export"

	ScopeCandidatesAll   = "candidates:*"
	ScopeCandidatesRead  = "candidates:read"
	ScopeCandidatesWrite = "candidates:write"
	ScopeCandidatesScore = "candidates:score" // fitment scoring

	ScopeInterviewsAll        = "interviews:*"
	ScopeInterviewsRead       = "interviews:read"
	ScopeInterviewsSchedule   = "interviews:schedule"
	ScopeInterviewsDelete     = "interviews:delete"
	ScopeInterviewsRecordings = "interviews:recordings"
)

var DomainScopeCategories = map[string][]string{
	"Jobs": {
		ScopeJobsAll,
		ScopeJobsRead,
		ScopeJobsWrite,
		ScopeJobsDelete,
		ScopeJobsWorkflow,
		ScopeJobsExtract,
	},
	"Resumes": {
		ScopeResumesAll,
		ScopeResumesRead,
		ScopeResumesWrite,
		ScopeResumesDelete,
		ScopeResumesUpload,
		ScopeResumesExport,
	},
	"Candidates": {
		ScopeCandidatesAll,
		ScopeCandidatesRead,
		ScopeCandidatesWrite,
		ScopeCandidatesScore,
	},
	"Interviews": {
		ScopeInterviewsAll,
		ScopeInterviewsRead,
		ScopeInterviewsSchedule,
		ScopeInterviewsDelete,
		ScopeInterviewsRecordings,
	},
}

var DomainScopeDescriptions = map[string]string{
	ScopeJobsAll:      "Full access to job management",
	ScopeJobsRead:     "View jobs and job details",
	ScopeJobsWrite:    "Post and edit jobs",
	ScopeJobsDelete:   "Delete jobs",
	ScopeJobsWorkflow: "Edit workflow phases and screening questions",
	ScopeJobsExtract:  "Upload job descriptions for extraction",

	ScopeResumesAll:    "Full access to resumes",
	ScopeResumesRead:   "View resumes",
	ScopeResumesWrite:  "Edit resumes and their status",
	ScopeResumesDelete: "Delete resumes",
	ScopeResumesUpload: "Upload resume files",
	ScopeResumesExport: "Export resume lists",

	ScopeCandidatesAll:   "Full access to candidates",
	ScopeCandidatesRead:  "View candidates of a job",
	ScopeCandidatesWrite: "Update candidate status and comments",
	ScopeCandidatesScore: "Compute fitment scores",

	ScopeInterviewsAll:        "Full access to interviews",
	ScopeInterviewsRead:       "View interview rounds and assessments",
	ScopeInterviewsSchedule:   "Schedule and edit interview rounds",
	ScopeInterviewsDelete:     "Delete interview rounds",
	ScopeInterviewsRecordings: "Upload and transcribe interview recordings",
}

// DomainScopeGroups are the role templates of the recruiting screens.
// Keys match role names from the roles screen, lower-cased.
var DomainScopeGroups = map[string][]string{
	"recruiter": {
		ScopeJobsAll,
		ScopeResumesAll,
		ScopeCandidatesAll,
		ScopeInterviewsAll,
		ScopeReportsView,
		ScopeAnalyticsDashboard,
		ScopeViewsAll,
		ScopeEmployeesRead,
	},
	"qa": {
		ScopeJobsRead,
		ScopeResumesRead,
		ScopeCandidatesRead,
		ScopeInterviewsRead,
		ScopeReportsView,
		ScopeViewsRead,
	},
	"hiring_manager": {
		ScopeJobsRead,
		ScopeResumesRead,
		ScopeCandidatesRead,
		ScopeCandidatesWrite,
		ScopeInterviewsRead,
		ScopeInterviewsSchedule,
		ScopeReportsView,
		ScopeViewsRead,
	},
	"interviewer": {
		ScopeJobsRead,
		ScopeCandidatesRead,
		ScopeInterviewsRead,
		ScopeInterviewsRecordings,
	},
}
