package candidateapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()

	jobRepo := store.NewMemoryRepository[job.Job](job.Entity)
	require.NoError(t, jobRepo.Seed(ctx,
		job.Job{ID: 4567, Title: "Azure - Senior Associate", EmploymentType: "Full Time, Permanent", Status: job.StatusActive, JobSource: job.SourceArcolab},
		job.Job{ID: 7832, Title: "Senior Data Engineer", EmploymentType: "Full Time, Permanent", Status: job.StatusActive, JobSource: job.SourceArcolab},
	))
	resumeRepo := store.NewMemoryRepository[resume.Resume](resume.Entity)
	require.NoError(t, resumeRepo.Seed(ctx, resume.Resume{ID: 118820, Name: "Sivasankaran S", Status: resume.StatusHired}))

	candidateRepo := store.NewMemoryRepository[candidate.Candidate](candidate.Entity)
	require.NoError(t, candidateRepo.Seed(ctx,
		candidate.Candidate{ID: 1, JobID: 4567, Name: "John Doe", Email: "john.doe@email.com", Fitment: 85, RoundsCompleted: 1, RoundsTotal: 4,
			Status: candidate.StatusInProgress, LastRound: "HR Interview", AppliedDate: "2024-01-15"},
		candidate.Candidate{ID: 2, JobID: 4567, Name: "Jane Smith", Email: "jane.smith@email.com", Fitment: 92, RoundsCompleted: 4, RoundsTotal: 4,
			Status: candidate.StatusSelected, LastRound: "Completed", AppliedDate: "2024-01-14"},
		candidate.Candidate{ID: 3, JobID: 4567, Name: "Mike Johnson", Email: "mike.j@email.com", Fitment: 78, RoundsCompleted: 2, RoundsTotal: 4,
			Status: candidate.StatusOnHold, LastRound: "Technical Interview", AppliedDate: "2024-01-16"},
		candidate.Candidate{ID: 4, JobID: 7832, Name: "Sarah Wilson", Email: "sarah@email.com", Fitment: 65, RoundsCompleted: 1, RoundsTotal: 4,
			Status: candidate.StatusRejected, LastRound: "Technical Screening", AppliedDate: "2024-01-13"},
	))

	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)
	svc := candidatesrv.NewService(candidateRepo, jobsrv.NewService(jobRepo), resumesrv.NewService(resumeRepo, fs, 0), nil)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler(false)})
	NewHandlers(svc, nil).RegisterRoutes(app.Group("/api/v1"), auth.NewMiddleware(nil, false, ""))
	return app
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

func TestJobCandidates_Fitment(t *testing.T) {
	app := newApp(t)

	q := url.Values{"fitment": {"High (80-100%)"}}
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/jobs/4567/candidates?"+q.Encode(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.EqualValues(t, 2, body["total"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/jobs/4567/candidates?status=rejected", nil))
	require.NoError(t, err)
	body = decode(t, resp.Body)
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["items"])
}

func TestJobCandidates_Search(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("POST", "/api/v1/jobs/4567/candidates/search",
		bytes.NewBufferString(`{"criteria":[{"kind":"text-contains-any","fields":["name","email"],"query":"JOHN"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.EqualValues(t, 2, body["total"])
}

func TestJobCandidates_UnknownJob(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/jobs/1/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApplyAndStatus(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest("POST", "/api/v1/candidates/apply", bytes.NewBufferString(`{"jobId":7832,"resumeId":118820}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode(t, resp.Body)
	assert.Equal(t, "Sivasankaran S", created["name"])
	assert.EqualValues(t, 5, created["id"])

	req = httptest.NewRequest("PATCH", "/api/v1/candidates/5/status", bytes.NewBufferString(`{"status":"selected","comment":"Offer approved"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode(t, resp.Body)
	assert.Equal(t, "Selected", updated["status"])
	assert.Len(t, updated["comments"], 1)
}
