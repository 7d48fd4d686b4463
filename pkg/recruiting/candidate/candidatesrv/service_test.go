package candidatesrv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/ai/embedding"
	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
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

type fixture struct {
	svc  *Service
	jobs *jobsrv.Service
}

func newFixture(t *testing.T, scorer Scorer) fixture {
	t.Helper()
	ctx := context.Background()

	jobRepo := store.NewMemoryRepository[job.Job](job.Entity)
	require.NoError(t, jobRepo.Seed(ctx,
		job.Job{ID: 4567, Title: "Azure - Senior Associate", EmploymentType: "Full Time, Permanent", Status: job.StatusActive,
			Applicants: 245, JobSource: job.SourceArcolab, Skills: []string{"Azure", "Logic Apps", "JavaScript"}, Phases: job.DefaultPhases()},
	))

	resumeRepo := store.NewMemoryRepository[resume.Resume](resume.Entity)
	require.NoError(t, resumeRepo.Seed(ctx,
		resume.Resume{ID: 118820, Name: "Sivasankaran S", Email: "sivasankaran773@gmail.com", Mobile: "+91 6370892917",
			Status: resume.StatusHired, MatchSkills: []string{"Azure", "Logic Apps", "JavaScript"}, ResumeDetails: "Senior Developer with Azure expertise"},
		resume.Resume{ID: 118819, Name: "Saguntaj Manj", Status: resume.StatusHired, MatchSkills: []string{"React", "Node.js", "MongoDB"}},
	))
	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	jobs := jobsrv.NewService(jobRepo)
	resumes := resumesrv.NewService(resumeRepo, fs, 0)
	repo := store.NewMemoryRepository[candidate.Candidate](candidate.Entity)
	return fixture{
		svc:  NewService(repo, jobs, resumes, scorer, storesrv.WithClock[candidate.Candidate](fixedNow)),
		jobs: jobs,
	}
}

func TestApply(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	c, err := f.svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Fitment)
	assert.Equal(t, "0/4", c.Rounds())
	assert.Equal(t, candidate.StatusInProgress, c.Status)
	assert.Equal(t, candidate.LastRoundApplied, c.LastRound)
	assert.Equal(t, "2024-01-23", c.AppliedDate)
	assert.Equal(t, "RSM118820", c.Code())
	assert.Equal(t, "+91 6370892917", c.Contact)

	j, err := f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 246, j.Applicants)

	_, err = f.svc.Apply(ctx, "Current User", 4567, 118820)
	assert.True(t, errx.HasCode(err, CodeAlreadyApplied))

	other, err := f.svc.Apply(ctx, "Current User", 4567, 118819)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Fitment)

	_, err = f.svc.Apply(ctx, "Current User", 1, 118819)
	assert.True(t, store.IsNotFound(err))
}

type fakeEmbedder struct {
	vectors [][]float32
	err     error
}

func (f fakeEmbedder) EmbedDocuments(_ context.Context, docs []string, _ ...embedding.Option) ([]embedding.Embedding, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]embedding.Embedding, len(docs))
	for i := range docs {
		out[i] = embedding.Embedding{Vector: f.vectors[i]}
	}
	return out, nil
}

func (f fakeEmbedder) EmbedQuery(ctx context.Context, text string, opts ...embedding.Option) (embedding.Embedding, error) {
	out, err := f.EmbedDocuments(ctx, []string{text}, opts...)
	if err != nil {
		return embedding.Embedding{}, err
	}
	return out[0], nil
}

func TestApply_EmbeddingScorer(t *testing.T) {
	ctx := context.Background()

	scorer := NewEmbeddingScorer(embedding.NewClient(fakeEmbedder{vectors: [][]float32{{1, 0}, {0.8, 0.6}}}), nil)
	c, err := newFixture(t, scorer).svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)
	assert.Equal(t, 80, c.Fitment)

	failing := NewEmbeddingScorer(embedding.NewClient(fakeEmbedder{err: errors.New("rate limited")}), nil)
	c, err = newFixture(t, failing).svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Fitment, "falls back to skill matching")
}

func TestScale(t *testing.T) {
	tests := []struct {
		sim  float64
		want int
	}{
		{-0.4, 0},
		{0, 0},
		{0.854, 85},
		{1, 100},
		{1.2, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Scale(tt.sim), "similarity %v", tt.sim)
	}
}

func TestForJob(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, "Current User", 4567, 118819)
	require.NoError(t, err)

	all, err := f.svc.ForJob(ctx, 4567, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	c, err := candidate.Adapter().Build(filter.NewBuilder().
		NumericRange("fitment", candidate.FitmentBuckets[0].Range).Specs())
	require.NoError(t, err)
	high, err := f.svc.ForJob(ctx, 4567, c)
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, "Sivasankaran S", high[0].Name)

	_, err = f.svc.ForJob(ctx, 9999, filter.Criteria{})
	assert.True(t, store.IsNotFound(err))
}

func TestUpdateStatusAndComments(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	c, err := f.svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)

	c, err = f.svc.UpdateStatus(ctx, "Savita Sharma", c.ID, "on hold", "Waiting for the client feedback")
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusOnHold, c.Status)
	require.Len(t, c.Comments, 1)
	assert.Equal(t, "Savita Sharma", c.Comments[0].Author)

	c, err = f.svc.UpdateStatus(ctx, "Savita Sharma", c.ID, "Selected", "  ")
	require.NoError(t, err)
	assert.Len(t, c.Comments, 1)

	_, err = f.svc.UpdateStatus(ctx, "Savita Sharma", c.ID, "Ghosted", "")
	assert.True(t, errx.HasCode(err, CodeInvalidStatus))

	_, err = f.svc.AddComment(ctx, "Savita Sharma", c.ID, "")
	assert.True(t, errx.HasCode(err, CodeEmptyComment))

	updated, err := f.svc.Records().Update(ctx, "Savita Sharma", c.ID, candidate.Candidate{Name: c.Name, Status: candidate.StatusSelected, RoundsTotal: 4})
	require.NoError(t, err)
	assert.Len(t, updated.Comments, 1)
	assert.Equal(t, kernel.RecordID(4567), updated.JobID)
}

func TestCompleteRoundAndDelete(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	c, err := f.svc.Apply(ctx, "Current User", 4567, 118820)
	require.NoError(t, err)

	c, err = f.svc.CompleteRound(ctx, "Sarah Johnson", c.ID, "Technical Screening")
	require.NoError(t, err)
	assert.Equal(t, "1/4", c.Rounds())
	assert.Equal(t, "Technical Screening", c.LastRound)

	profile, err := f.svc.Profile(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sivasankaran S", profile.Resume.Name)
	assert.Equal(t, "ARCOLAB_4567", profile.Job.Code())

	require.NoError(t, f.svc.Records().Delete(ctx, c.ID))
	j, err := f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 245, j.Applicants)
}

type slowScorer struct{ delay time.Duration }

func (s slowScorer) Score(context.Context, resume.Resume, job.Job) (int, error) {
	time.Sleep(s.delay)
	return 70, nil
}

func TestApply_ConcurrentRepeatCreatesOneCandidate(t *testing.T) {
	f := newFixture(t, slowScorer{delay: 20 * time.Millisecond})
	ctx := context.Background()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		errs   []error
		passed int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Apply(ctx, "Current User", 4567, 118820)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			passed++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, passed)
	for _, err := range errs {
		assert.True(t, errx.HasCode(err, CodeAlreadyApplied))
	}
	list, err := f.svc.ForJob(ctx, 4567, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	j, err := f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 246, j.Applicants)
}

func TestCreate_ChecksJobAndCountsApplicant(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Records().Create(ctx, "Current User", candidate.Candidate{JobID: 999999, Name: "Ghost"})
	assert.True(t, store.IsNotFound(err))

	c, err := f.svc.Records().Create(ctx, "Current User", candidate.Candidate{JobID: 4567, Name: "Walk In", RoundsTotal: 4})
	require.NoError(t, err)
	j, err := f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 246, j.Applicants)

	_, err = f.svc.Records().Create(ctx, "Current User", candidate.Candidate{JobID: 4567, ResumeID: 118820, Name: "Sivasankaran S"})
	require.NoError(t, err)
	_, err = f.svc.Records().Create(ctx, "Current User", candidate.Candidate{JobID: 4567, ResumeID: 118820, Name: "Sivasankaran S"})
	assert.True(t, errx.HasCode(err, CodeAlreadyApplied))

	require.NoError(t, f.svc.Records().Delete(ctx, c.ID))
	j, err = f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 246, j.Applicants)
}

func TestAddApplicants_ConcurrentDeltasAreExact(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		delta := 1
		if i%3 == 2 {
			delta = -1
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.jobs.AddApplicants(ctx, "system", 4567, delta)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	j, err := f.jobs.Records().Get(ctx, 4567)
	require.NoError(t, err)
	assert.Equal(t, 245+20-10, j.Applicants)
}
