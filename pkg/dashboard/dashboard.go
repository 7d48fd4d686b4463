// Package dashboard agrega estadísticas de currículums, puestos, candidatos y
// entrevistas para la pantalla principal y el resumen de cada puesto.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview/interviewsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
)

// TopLocations is how many locations the location chart names; the rest fold into Others
const TopLocations = 4

// Others labels every value folded out of a chart
const Others = "Others"

// Jobs counts postings by status
type Jobs struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	Applicants int `json:"applicants"`
}

// Overview is the main dashboard
type Overview struct {
	Resumes         int            `json:"resumes"`
	ResumeStatuses  []filter.Share `json:"resumeStatuses"`
	Locations       []filter.Share `json:"locations"`
	ExperienceTypes []filter.Share `json:"experienceTypes"`
	Genders         []filter.Share `json:"genders"`
	AgeGroups       []filter.Share `json:"ageGroups"`
	Jobs            Jobs           `json:"jobs"`
	Candidates      int            `json:"candidates"`
	Interviews      int            `json:"interviews"`
}

// JobSummary is the header of the job details screen
type JobSummary struct {
	Job                 job.Job        `json:"job"`
	TotalApplications   int            `json:"totalApplications"`
	Shortlisted         int            `json:"shortlisted"`
	InterviewsScheduled int            `json:"interviewsScheduled"`
	DaysActive          int            `json:"daysActive"`
	AverageFitment      float64        `json:"averageFitment"`
	Statuses            []filter.Share `json:"statuses"`
	Fitment             []filter.Share `json:"fitment"`
}

type Service struct {
	resumes    *resumesrv.Service
	jobs       *jobsrv.Service
	candidates *candidatesrv.Service
	interviews *interviewsrv.Service
}

func NewService(resumes *resumesrv.Service, jobs *jobsrv.Service, candidates *candidatesrv.Service, interviews *interviewsrv.Service) *Service {
	return &Service{resumes: resumes, jobs: jobs, candidates: candidates, interviews: interviews}
}

// ResumeAdapter filters the dashboard charts
func (s *Service) ResumeAdapter() *filter.Adapter {
	return s.resumes.Records().Adapter()
}

// CandidateAdapter filters a job summary
func (s *Service) CandidateAdapter() *filter.Adapter {
	return s.candidates.Records().Adapter()
}

// Overview computes the dashboard over the resumes matching c. Job,
// candidate and interview totals are never filtered.
func (s *Service) Overview(ctx context.Context, c filter.Criteria) (Overview, error) {
	resumes, err := s.resumes.Records().List(ctx, c)
	if err != nil {
		return Overview{}, err
	}
	jobs, err := s.jobs.Records().List(ctx, filter.Criteria{})
	if err != nil {
		return Overview{}, err
	}
	candidates, err := s.candidates.Records().List(ctx, filter.Criteria{})
	if err != nil {
		return Overview{}, err
	}
	rounds, err := s.interviews.Records().List(ctx, filter.Criteria{})
	if err != nil {
		return Overview{}, err
	}

	records := filter.Records(resumes)
	out := Overview{
		Resumes:         len(resumes),
		ResumeStatuses:  resumeStatuses(resumes),
		Locations:       Top(filter.Distribution(records, "location"), TopLocations),
		ExperienceTypes: experienceTypes(resumes),
		Genders:         filter.Distribution(records, "gender"),
		AgeGroups:       filter.BucketDistribution(records, "age", resume.AgeBuckets),
		Jobs:            countJobs(jobs),
		Candidates:      len(candidates),
		Interviews:      len(rounds),
	}
	return out, nil
}

func resumeStatuses(resumes []resume.Resume) []filter.Share {
	statuses := resume.Statuses()
	labels := make([]string, len(statuses))
	counts := make([]int, len(statuses))
	for i, st := range statuses {
		labels[i] = string(st)
	}
	for _, r := range resumes {
		for i, st := range statuses {
			if r.Status == st {
				counts[i]++
			}
		}
	}
	return filter.Shares(labels, counts)
}

func experienceTypes(resumes []resume.Resume) []filter.Share {
	labels := []string{recruiting.ExperienceFresher, recruiting.ExperienceExperienced, recruiting.ExperienceOthers}
	counts := make([]int, len(labels))
	for _, r := range resumes {
		kind := recruiting.ParseExperience(r.Experience).Type()
		for i, l := range labels {
			if l == kind {
				counts[i]++
			}
		}
	}
	return filter.Shares(labels, counts)
}

func countJobs(jobs []job.Job) Jobs {
	out := Jobs{Total: len(jobs)}
	for _, j := range jobs {
		if j.IsActive() {
			out.Active++
		} else {
			out.Inactive++
		}
		out.Applicants += j.Applicants
	}
	return out
}

// Top keeps the n largest shares and folds the rest into one Others share.
// Percentages are kept since the total does not change.
func Top(shares []filter.Share, n int) []filter.Share {
	if len(shares) <= n {
		return shares
	}
	sorted := make([]filter.Share, len(shares))
	copy(sorted, shares)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })

	total, rest := 0, 0
	for i, sh := range sorted {
		total += sh.Count
		if i >= n {
			rest += sh.Count
		}
	}
	out := append(sorted[:n:n], filter.Share{Label: Others, Count: rest, Percent: filter.Percent(rest, total)})
	return out
}

// JobSummary summarizes the candidates of a job matching c
func (s *Service) JobSummary(ctx context.Context, jobID kernel.RecordID, c filter.Criteria) (JobSummary, error) {
	j, err := s.jobs.Records().Get(ctx, jobID)
	if err != nil {
		return JobSummary{}, err
	}
	candidates, err := s.candidates.ForJob(ctx, jobID, c)
	if err != nil {
		return JobSummary{}, err
	}
	rounds, err := s.interviews.ForJob(ctx, jobID, filter.Criteria{})
	if err != nil {
		return JobSummary{}, err
	}

	records := filter.Records(candidates)
	out := JobSummary{
		Job:               j,
		TotalApplications: len(candidates),
		DaysActive:        DaysActive(j.DatePosted, s.jobs.Records().Now()),
		AverageFitment:    filter.Average(records, "fitment"),
		Fitment:           filter.BucketDistribution(records, "fitment", candidate.FitmentBuckets),
	}

	statuses := candidate.Statuses()
	counts := make([]int, len(statuses))
	for _, cand := range candidates {
		for i, st := range statuses {
			if cand.Status == st {
				counts[i]++
			}
		}
		if Shortlisted(cand) {
			out.Shortlisted++
		}
	}
	out.Statuses = filter.Shares(candidate.StatusNames(), counts)

	for _, r := range rounds {
		if r.Status == interview.StatusScheduled {
			out.InterviewsScheduled++
		}
	}
	return out, nil
}

// Shortlisted reports whether a candidate is still in the running
func Shortlisted(c candidate.Candidate) bool {
	return c.Status != candidate.StatusRejected && c.Status != candidate.StatusNoResponse
}

// DaysActive counts calendar days since posted, taking today from now's
// location; zero when the date is unknown or in the future
func DaysActive(posted string, now time.Time) int {
	t, err := time.Parse(kernel.DateLayout, posted)
	if err != nil {
		return 0
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
