package jobsrv

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/ai/llm"
	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/Abraxas-365/talentdesk/pkg/validatex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 23, 9, 0, 0, 0, time.UTC) }

func newService(t *testing.T) *Service {
	t.Helper()
	repo := store.NewMemoryRepository[job.Job](job.Entity)
	require.NoError(t, repo.Seed(context.Background(),
		job.Job{ID: 4567, Title: "Azure - Senior Associate", Department: "IT & Information Security", Location: "Bengaluru",
			EmploymentType: "Full Time, Permanent", Experience: "2-5 years", Status: job.StatusActive, Applicants: 245,
			Salary: job.Salary{Min: 500000, Max: 750000, Currency: "INR"}, JobSource: job.SourceArcolab, Phases: job.DefaultPhases()},
		job.Job{ID: 2847, Title: "Senior Executive - Formulation Development", Department: "Pharmaceutical & Life Sciences", Location: "Mumbai",
			EmploymentType: "Full Time, Permanent", Experience: "3-7 years", Status: job.StatusActive, Applicants: 189, JobSource: job.SourceStellis},
		job.Job{ID: 9102, Title: "Assistant Manager - Operations", Department: "Operations", Location: "Chennai",
			EmploymentType: "Full Time, Permanent", Experience: "2-4 years", Status: job.StatusInactive, Applicants: 132, JobSource: job.SourceStrides},
	))
	return NewService(repo, storesrv.WithClock[job.Job](fixedNow))
}

func TestCreate_Defaults(t *testing.T) {
	svc := newService(t)
	minExp, maxExp := 2, 5

	created, err := svc.Records().Create(context.Background(), "Current User", job.Job{
		Title:          "DevOps Engineer",
		EmploymentType: "Full Time, Permanent",
		MinExperience:  &minExp,
		MaxExperience:  &maxExp,
		Skills:         []string{"Terraform", " AWS", "terraform", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, job.StatusActive, created.Status)
	assert.Equal(t, "2024-01-23", created.DatePosted)
	assert.Equal(t, "MANUAL_9103", created.Code())
	assert.Equal(t, "2-5 years", created.Experience)
	assert.Equal(t, []string{"Terraform", "AWS"}, created.Skills)
	assert.Equal(t, job.DefaultCurrency, created.Salary.Currency)
}

func TestCreate_Rejections(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Records().Create(ctx, "Current User", job.Job{Title: "  "})
	assert.Contains(t, validatex.Fields(err), "title")
	assert.Contains(t, validatex.Fields(err), "employmentType")

	_, err = svc.Records().Create(ctx, "Current User", job.Job{Title: "QA", EmploymentType: "Contract",
		Salary: job.Salary{Min: 900000, Max: 600000}})
	assert.True(t, errx.HasCode(err, CodeInvalidSalary))

	_, err = svc.Records().Create(ctx, "Current User", job.Job{Title: "QA", EmploymentType: "Contract",
		Salary: job.Salary{Max: 1 << 62, Currency: "USD"}})
	assert.Equal(t, []string{"salary.max"}, validatex.Fields(err))

	lo, hi := 8, 3
	_, err = svc.Records().Create(ctx, "Current User", job.Job{Title: "QA", EmploymentType: "Contract", MinExperience: &lo, MaxExperience: &hi})
	assert.True(t, errx.HasCode(err, CodeInvalidExperience))
}

func TestUpdate_KeepsWorkflowAndApplicants(t *testing.T) {
	svc := newService(t)

	updated, err := svc.Records().Update(context.Background(), "Current User", 4567, job.Job{
		Title: "Azure - Associate", EmploymentType: "Contract", Department: "IT & Information Security", Location: "Bengaluru",
	})
	require.NoError(t, err)
	assert.Equal(t, 245, updated.Applicants)
	assert.Len(t, updated.Phases, 4)
	assert.Equal(t, job.StatusActive, updated.Status)
}

func TestListSplit(t *testing.T) {
	svc := newService(t)

	split, err := svc.ListSplit(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, split.Active, 2)
	assert.Len(t, split.Inactive, 1)

	c, err := job.Adapter().Build(filter.NewBuilder().TextContainsAny("chennai", job.Adapter().SearchFields()...).Specs())
	require.NoError(t, err)
	split, err = svc.ListSplit(context.Background(), c)
	require.NoError(t, err)
	assert.Empty(t, split.Active)
	require.Len(t, split.Inactive, 1)
	assert.Equal(t, "STRIDES_9102", split.Inactive[0].Code())

	activated, err := svc.SetStatus(context.Background(), "Current User", 9102, "active")
	require.NoError(t, err)
	assert.True(t, activated.IsActive())
}

func TestWorkflow(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	j, err := svc.CreateWorkflow(ctx, "Current User", 2847, []string{"hr-round", "resume-screening"})
	require.NoError(t, err)
	require.Len(t, j.Phases, 2)
	assert.Equal(t, "resume-screening", j.Phases[0].ID)

	_, err = svc.CreateWorkflow(ctx, "Current User", 2847, []string{"coffee-chat"})
	assert.True(t, errx.HasCode(err, CodePhaseNotFound))

	j, err = svc.AddQuestion(ctx, "Current User", 2847, "hr-round", job.Question{
		Text: "Notice period?", Type: job.QuestionMultipleChoice, Options: []string{"Immediate", " ", "30 days"}, Required: true,
	})
	require.NoError(t, err)
	q := j.Phases[1].Questions[0]
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, []string{"Immediate", "30 days"}, q.Options)

	_, err = svc.AddQuestion(ctx, "Current User", 2847, "hr-round", job.Question{
		Text: "Preferred shift?", Type: job.QuestionMultipleChoice, Options: []string{"Day", ""},
	})
	assert.True(t, errx.HasCode(err, CodeNotEnoughOptions))

	_, err = svc.AddQuestion(ctx, "Current User", 2847, "hr-round", job.Question{Text: "Why us?", Type: "essay"})
	assert.Contains(t, validatex.Fields(err), "phases[1].questions[1].type")

	j, err = svc.AddPhase(ctx, "Current User", 2847, job.Phase{Name: "Culture Fit"})
	require.NoError(t, err)
	require.Len(t, j.Phases, 3)
	custom := j.Phases[2].ID

	_, err = svc.AddPhase(ctx, "Current User", 2847, job.Phase{ID: custom, Name: "Again"})
	assert.True(t, errx.HasCode(err, CodeDuplicatePhase))

	j, err = svc.RemoveQuestion(ctx, "Current User", 2847, "hr-round", q.ID)
	require.NoError(t, err)
	assert.Empty(t, j.Phases[1].Questions)

	j, err = svc.RemovePhase(ctx, "Current User", 2847, custom)
	require.NoError(t, err)
	assert.Len(t, j.Phases, 2)

	_, err = svc.RemoveQuestion(ctx, "Current User", 2847, "hr-round", "missing")
	assert.True(t, errx.HasCode(err, CodeQuestionNotFound))
}

type scriptedLLM struct {
	reply  string
	prompt string
}

func (s *scriptedLLM) Chat(_ context.Context, messages []llm.Message, _ ...llm.Option) (llm.Response, error) {
	s.prompt = messages[len(messages)-1].Content
	return llm.Response{Message: llm.NewAssistantMessage(s.reply)}, nil
}

func TestExtract(t *testing.T) {
	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)
	model := &scriptedLLM{reply: `{
		"title": "DevOps Engineer",
		"experience": "3+ years of hands-on experience in DevOps or Site Reliability Engineering roles",
		"requiredSkills": "Docker and Kubernetes, Terraform, Python",
		"education": "Bachelor's degree in Computer Science, Engineering, or related field",
		"employmentType": "full time, permanent"
	}`}

	ex := NewExtractor(llm.NewClient(model), fs, 0)
	res, err := ex.Extract(context.Background(), recruiting.Upload{
		FileName: "devops.txt",
		Data:     []byte("We are hiring a DevOps Engineer with 3+ years of experience."),
	}, fixedNow())
	require.NoError(t, err)

	assert.Contains(t, model.prompt, "We are hiring a DevOps Engineer")
	assert.Equal(t, "DevOps Engineer", res.Draft.Title)
	assert.Equal(t, []string{"Docker and Kubernetes", "Terraform", "Python"}, res.Draft.Skills)
	assert.Equal(t, "Full Time, Permanent", res.Draft.EmploymentType)
	assert.Equal(t, 3.0, recruiting.ParseExperience(res.Draft.Experience).Min)
	require.NotNil(t, res.Draft.JD)
	assert.True(t, strings.HasPrefix(res.File.Key, "jds/"))
}

func TestExtract_Disabled(t *testing.T) {
	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	_, err = NewExtractor(nil, fs, 0).Extract(context.Background(), recruiting.Upload{FileName: "jd.txt", Data: []byte("text")}, fixedNow())
	assert.True(t, errx.HasCode(err, CodeAIDisabled))
}

func TestDocxText(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>DevOps</w:t></w:r><w:r><w:t xml:space="preserve"> Engineer</w:t></w:r></w:p>
<w:p><w:r><w:t>3+ years</w:t></w:r></w:p>
</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := documentText(recruiting.MimeDOCX, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "DevOps Engineer\n3+ years", text)

	_, err = documentText(recruiting.MimePDF, []byte("%PDF-1.4"))
	assert.True(t, errx.HasCode(err, CodeUnreadableJD))
}
