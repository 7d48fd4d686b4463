package dashboard

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview/interviewsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 23, 9, 0, 0, 0, time.UTC) }

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	resumeRepo := store.NewMemoryRepository[resume.Resume](resume.Entity)
	require.NoError(t, resumeRepo.Seed(ctx,
		resume.Resume{ID: 118816, Name: "Arjun Mehta", Location: "Chennai", Experience: "5 years", Status: resume.StatusHired, Gender: "Male", Age: 28},
		resume.Resume{ID: 118817, Name: "Kavya Rao", Location: "Bangalore", Experience: "Fresher", Status: resume.StatusShortlisted, Gender: "Female", Age: 23},
		resume.Resume{ID: 118818, Name: "Rahul Iyer", Location: "Chennai", Experience: "3-5 years", Status: resume.StatusNew, Gender: "Male", Age: 31},
		resume.Resume{ID: 118819, Name: "Saguntaj Manj", Location: "Hyderabad", Status: resume.StatusHired},
		resume.Resume{ID: 118820, Name: "Sivasankaran S", Location: "Pune", Experience: "8+", Status: resume.StatusInterviewStage, Gender: "Male", Age: 40},
		resume.Resume{ID: 118821, Name: "Neha Gupta", Location: "Mumbai", Experience: "2 years", Status: resume.StatusNew, Gender: "Female", Age: 26},
	))

	jobRepo := store.NewMemoryRepository[job.Job](job.Entity)
	require.NoError(t, jobRepo.Seed(ctx,
		job.Job{ID: 4567, Title: "Azure - Senior Associate", EmploymentType: "Full Time, Permanent", Status: job.StatusActive, Applicants: 245, DatePosted: "2024-01-15"},
		job.Job{ID: 7832, Title: "Frontend Developer", EmploymentType: "Full Time, Permanent", Status: job.StatusInactive, Applicants: 156, DatePosted: "2024-01-10"},
	))

	candidateRepo := store.NewMemoryRepository[candidate.Candidate](candidate.Entity)
	require.NoError(t, candidateRepo.Seed(ctx,
		candidate.Candidate{ID: 1, JobID: 4567, Name: "John Doe", Fitment: 85, Status: candidate.StatusSelected},
		candidate.Candidate{ID: 2, JobID: 4567, Name: "Jane Smith", Fitment: 92, Status: candidate.StatusInProgress},
		candidate.Candidate{ID: 3, JobID: 4567, Name: "Mike Johnson", Fitment: 78, Status: candidate.StatusRejected},
		candidate.Candidate{ID: 4, JobID: 7832, Name: "Sarah Wilson", Fitment: 65, Status: candidate.StatusNoResponse},
	))

	roundRepo := store.NewMemoryRepository[interview.Round](interview.Entity)
	require.NoError(t, roundRepo.Seed(ctx,
		interview.Round{ID: 1, JobID: 4567, CandidateID: 1, Round: "HR Round", Status: interview.StatusCompleted},
		interview.Round{ID: 2, JobID: 4567, CandidateID: 2, Round: "Technical Round 1", Status: interview.StatusScheduled},
		interview.Round{ID: 3, JobID: 7832, CandidateID: 4, Round: "HR Round", Status: interview.StatusScheduled},
	))

	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)
	jobs := jobsrv.NewService(jobRepo, storesrv.WithClock[job.Job](fixedNow))
	resumes := resumesrv.NewService(resumeRepo, fs, 0)
	candidates := candidatesrv.NewService(candidateRepo, jobs, resumes, nil)
	interviews := interviewsrv.NewService(roundRepo, jobs, candidates, fs, nil, 0)
	return NewService(resumes, jobs, candidates, interviews)
}

func share(t *testing.T, shares []filter.Share, label string) filter.Share {
	t.Helper()
	for _, s := range shares {
		if s.Label == label {
			return s
		}
	}
	t.Fatalf("no share %q in %v", label, shares)
	return filter.Share{}
}

func TestOverview(t *testing.T) {
	svc := newService(t)

	o, err := svc.Overview(context.Background(), filter.Criteria{})
	require.NoError(t, err)

	assert.Equal(t, 6, o.Resumes)
	assert.Equal(t, Jobs{Total: 2, Active: 1, Inactive: 1, Applicants: 401}, o.Jobs)
	assert.Equal(t, 4, o.Candidates)
	assert.Equal(t, 3, o.Interviews)

	assert.Equal(t, filter.Share{Label: "NEW", Count: 2, Percent: 33}, share(t, o.ResumeStatuses, "NEW"))
	assert.Equal(t, filter.Share{Label: "DECLINED", Count: 0, Percent: 0}, share(t, o.ResumeStatuses, "DECLINED"))
	assert.Len(t, o.ResumeStatuses, len(resume.Statuses()))

	assert.Equal(t, []filter.Share{
		{Label: "Fresher", Count: 1, Percent: 17},
		{Label: "Experienced", Count: 4, Percent: 67},
		{Label: "Others", Count: 1, Percent: 17},
	}, o.ExperienceTypes)

	require.Len(t, o.Locations, TopLocations+1)
	assert.Equal(t, filter.Share{Label: "Chennai", Count: 2, Percent: 33}, o.Locations[0])
	assert.Equal(t, filter.Share{Label: Others, Count: 1, Percent: 17}, o.Locations[TopLocations])

	assert.Equal(t, 3, share(t, o.AgeGroups, "26-35").Count)
}

func TestOverview_Filtered(t *testing.T) {
	svc := newService(t)

	c := filter.NewBuilder().SetMembership("location", "chennai").MustBuild()
	o, err := svc.Overview(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, 2, o.Resumes)
	assert.Equal(t, []filter.Share{{Label: "Chennai", Count: 2, Percent: 100}}, o.Locations)
	assert.Equal(t, 2, o.Jobs.Total)
}

func TestJobSummary(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	s, err := svc.JobSummary(ctx, 4567, filter.Criteria{})
	require.NoError(t, err)

	assert.Equal(t, "Azure - Senior Associate", s.Job.Title)
	assert.Equal(t, 3, s.TotalApplications)
	assert.Equal(t, 2, s.Shortlisted)
	assert.Equal(t, 1, s.InterviewsScheduled)
	assert.Equal(t, 8, s.DaysActive)
	assert.Equal(t, 85.0, s.AverageFitment)
	assert.Equal(t, filter.Share{Label: "High (80-100%)", Count: 2, Percent: 67}, s.Fitment[0])
	assert.Equal(t, filter.Share{Label: "Rejected", Count: 1, Percent: 33}, share(t, s.Statuses, "Rejected"))

	c := filter.NewBuilder().SetMembership("status", "Rejected").MustBuild()
	s, err = svc.JobSummary(ctx, 4567, c)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalApplications)
	assert.Equal(t, 0, s.Shortlisted)

	_, err = svc.JobSummary(ctx, 1, filter.Criteria{})
	assert.True(t, store.IsNotFound(err))
}

func TestTop(t *testing.T) {
	shares := []filter.Share{
		{Label: "a", Count: 1}, {Label: "b", Count: 5}, {Label: "c", Count: 3}, {Label: "d", Count: 1},
	}
	out := Top(shares, 2)
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].Label)
	assert.Equal(t, "c", out[1].Label)
	assert.Equal(t, filter.Share{Label: Others, Count: 2, Percent: 20}, out[2])
	assert.Equal(t, "a", shares[0].Label)

	assert.Len(t, Top(shares, 10), 4)
}

func TestDaysActive(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		posted string
		want   int
	}{
		{"2024-01-23", 0},
		{"2024-01-15", 8},
		{"2023-12-24", 30},
		{"2024-02-01", 0},
		{"", 0},
		{"15/01/2024", 0},
	}
	for _, tt := range tests {
		t.Run(tt.posted, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysActive(tt.posted, now))
		})
	}
}

func TestDaysActive_AcrossDaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// clocks go forward on 2024-03-10, a 23 hour day
	assert.Equal(t, 1, DaysActive("2024-03-10", time.Date(2024, 3, 11, 9, 0, 0, 0, ny)))
	assert.Equal(t, 2, DaysActive("2024-03-09", time.Date(2024, 3, 11, 0, 30, 0, 0, ny)))
	// and back on 2024-11-03, a 25 hour day
	assert.Equal(t, 1, DaysActive("2024-11-03", time.Date(2024, 11, 4, 23, 59, 0, 0, ny)))
	assert.Equal(t, 0, DaysActive("2024-03-11", time.Date(2024, 3, 11, 23, 0, 0, 0, ny)))
}
