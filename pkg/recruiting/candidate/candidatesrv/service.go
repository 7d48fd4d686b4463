package candidatesrv

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

var (
	CodeInvalidStatus  = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown candidate status")
	CodeAlreadyApplied = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "Resume already applied to this job")
	CodeEmptyComment   = ErrRegistry.Register("EMPTY_COMMENT", errx.TypeValidation, http.StatusBadRequest, "Comment text is required")
)

func ErrInvalidStatus(status string) *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus).
		WithDetail("status", status).
		WithDetail("allowed", candidate.StatusNames())
}

// Service gestiona las candidaturas de currículums a ofertas
type Service struct {
	records *storesrv.Service[candidate.Candidate]
	jobs    *jobsrv.Service
	resumes *resumesrv.Service
	scorer  Scorer
}

// NewService wires candidates to the job and resume collections. A nil scorer
// falls back to skill matching.
func NewService(repo store.Repository[candidate.Candidate], jobs *jobsrv.Service, resumes *resumesrv.Service, scorer Scorer, opts ...storesrv.Option[candidate.Candidate]) *Service {
	if scorer == nil {
		scorer = SkillScorer{}
	}
	s := &Service{jobs: jobs, resumes: resumes, scorer: scorer}
	opts = append([]storesrv.Option[candidate.Candidate]{
		storesrv.WithCreateHook(s.onCreate),
		storesrv.WithCreatedHook(s.onCreated),
		storesrv.WithUpdateHook(checkStatus),
		storesrv.WithMerge(KeepHistory),
		storesrv.WithDeleteHook(s.onDelete),
	}, opts...)
	s.records = storesrv.NewService(repo, candidate.Adapter(), opts...)
	return s
}

func (s *Service) Records() *storesrv.Service[candidate.Candidate] {
	return s.records
}

// onCreate runs under the candidates write lock, so the duplicate lookup and
// the insert cannot interleave with another application
func (s *Service) onCreate(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if !c.JobID.IsZero() {
		if _, err := s.jobs.Records().Get(ctx, c.JobID); err != nil {
			return c, err
		}
		if !c.ResumeID.IsZero() {
			prev, found, err := s.applicationOf(ctx, c.JobID, c.ResumeID)
			if err != nil {
				return c, err
			}
			if found {
				return c, errAlreadyApplied(prev)
			}
		}
	}
	if c.Status == "" {
		c.Status = candidate.StatusInProgress
	}
	if c.LastRound == "" {
		c.LastRound = candidate.LastRoundApplied
	}
	if c.AppliedDate == "" {
		c.AppliedDate = kernel.Today(s.records.Now())
	}
	return checkStatus(ctx, c)
}

func checkStatus(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	st, ok := candidate.ParseStatus(string(c.Status))
	if !ok {
		return c, ErrInvalidStatus(string(c.Status))
	}
	c.Status = st
	return c, nil
}

// KeepHistory carries comments and the application links into a replacement
func KeepHistory(existing, incoming candidate.Candidate) candidate.Candidate {
	incoming.Comments = existing.Comments
	incoming.JobID = existing.JobID
	incoming.ResumeID = existing.ResumeID
	if incoming.AppliedDate == "" {
		incoming.AppliedDate = existing.AppliedDate
	}
	return incoming
}

func (s *Service) onCreated(ctx context.Context, c candidate.Candidate) {
	s.countApplicant(ctx, c.JobID, 1)
}

func (s *Service) onDelete(ctx context.Context, c candidate.Candidate) {
	s.countApplicant(ctx, c.JobID, -1)
}

func (s *Service) countApplicant(ctx context.Context, jobID kernel.RecordID, delta int) {
	if _, err := s.jobs.AddApplicants(ctx, "system", jobID, delta); err != nil && !store.IsNotFound(err) {
		logx.WithFields(logx.Fields{"job": int64(jobID), "delta": delta, "error": err}).Warn("failed to update applicant count")
	}
}

func errAlreadyApplied(c candidate.Candidate) *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied).
		WithDetail("job", int64(c.JobID)).
		WithDetail("resume", c.Code()).
		WithDetail("candidate", int64(c.ID))
}

// applicationOf finds the candidate created when resumeID applied to jobID
func (s *Service) applicationOf(ctx context.Context, jobID, resumeID kernel.RecordID) (candidate.Candidate, bool, error) {
	existing, err := s.records.List(ctx, jobCriteria(jobID))
	if err != nil {
		return candidate.Candidate{}, false, err
	}
	for _, c := range existing {
		if c.ResumeID == resumeID {
			return c, true, nil
		}
	}
	return candidate.Candidate{}, false, nil
}

// ForJob lists the candidates of one job under the given criteria
func (s *Service) ForJob(ctx context.Context, jobID kernel.RecordID, c filter.Criteria) ([]candidate.Candidate, error) {
	if _, err := s.jobs.Records().Get(ctx, jobID); err != nil {
		return nil, err
	}
	return s.records.List(ctx, c.And(jobCriteria(jobID)))
}

func jobCriteria(jobID kernel.RecordID) filter.Criteria {
	id := float64(jobID)
	return filter.NewBuilder().NumericRange("jobId", filter.Range{Min: id, Max: id}).MustBuild()
}

// Apply registra la candidatura de un currículum a una oferta y calcula el
// fitment. The job gains an applicant through the create hooks.
func (s *Service) Apply(ctx context.Context, actor string, jobID, resumeID kernel.RecordID) (candidate.Candidate, error) {
	j, err := s.jobs.Records().Get(ctx, jobID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	r, err := s.resumes.Records().Get(ctx, resumeID)
	if err != nil {
		return candidate.Candidate{}, err
	}

	// skip scoring for a repeat; onCreate rechecks under the lock
	prev, found, err := s.applicationOf(ctx, jobID, resumeID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if found {
		return candidate.Candidate{}, errAlreadyApplied(prev)
	}

	fitment, err := s.scorer.Score(ctx, r, j)
	if err != nil {
		return candidate.Candidate{}, err
	}

	created, err := s.records.Create(ctx, actor, candidate.Candidate{
		JobID:       jobID,
		ResumeID:    resumeID,
		Name:        r.Name,
		Email:       r.Email,
		Contact:     r.Mobile,
		Fitment:     fitment,
		RoundsTotal: len(j.Phases),
	})
	if err != nil {
		return candidate.Candidate{}, err
	}

	logx.WithFields(logx.Fields{
		"job":     j.Code(),
		"resume":  r.Code(),
		"fitment": fitment,
	}).Info("candidate applied")
	return created, nil
}

// Rescore recomputes the fitment against the current resume and job
func (s *Service) Rescore(ctx context.Context, actor string, id kernel.RecordID) (candidate.Candidate, error) {
	c, err := s.records.Get(ctx, id)
	if err != nil {
		return candidate.Candidate{}, err
	}
	j, err := s.jobs.Records().Get(ctx, c.JobID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	r, err := s.resumes.Records().Get(ctx, c.ResumeID)
	if err != nil {
		return candidate.Candidate{}, err
	}

	fitment, err := s.scorer.Score(ctx, r, j)
	if err != nil {
		return candidate.Candidate{}, err
	}
	return s.records.Mutate(ctx, actor, id, func(c candidate.Candidate) candidate.Candidate {
		c.Fitment = fitment
		return c
	})
}

// UpdateStatus moves the candidate and records the optional comment with it
func (s *Service) UpdateStatus(ctx context.Context, actor string, id kernel.RecordID, status, comment string) (candidate.Candidate, error) {
	st, ok := candidate.ParseStatus(status)
	if !ok {
		return candidate.Candidate{}, ErrInvalidStatus(status)
	}
	now := s.records.Now().UTC()
	return s.records.Mutate(ctx, actor, id, func(c candidate.Candidate) candidate.Candidate {
		c.Status = st
		c.Comments = withComment(c.Comments, actor, comment, now)
		return c
	})
}

func (s *Service) AddComment(ctx context.Context, actor string, id kernel.RecordID, text string) (candidate.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return candidate.Candidate{}, ErrRegistry.New(CodeEmptyComment)
	}
	now := s.records.Now().UTC()
	return s.records.Mutate(ctx, actor, id, func(c candidate.Candidate) candidate.Candidate {
		c.Comments = withComment(c.Comments, actor, text, now)
		return c
	})
}

func withComment(comments []candidate.Comment, actor, text string, at time.Time) []candidate.Comment {
	text = strings.TrimSpace(text)
	if text == "" {
		return comments
	}
	out := make([]candidate.Comment, len(comments), len(comments)+1)
	copy(out, comments)
	return append(out, candidate.Comment{Author: actor, Text: text, At: at})
}

// CompleteRound counts a finished interview round. The total grows when more
// rounds are held than the workflow planned.
func (s *Service) CompleteRound(ctx context.Context, actor string, id kernel.RecordID, round string) (candidate.Candidate, error) {
	return s.records.Mutate(ctx, actor, id, func(c candidate.Candidate) candidate.Candidate {
		c.RoundsCompleted++
		if c.RoundsTotal < c.RoundsCompleted {
			c.RoundsTotal = c.RoundsCompleted
		}
		if round = strings.TrimSpace(round); round != "" {
			c.LastRound = round
		}
		return c
	})
}

// Profile is everything the candidate details screen shows
type Profile struct {
	Candidate candidate.Candidate `json:"candidate"`
	Resume    resume.Resume       `json:"resume"`
	Job       job.Job             `json:"job"`
}

func (s *Service) Profile(ctx context.Context, id kernel.RecordID) (Profile, error) {
	c, err := s.records.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	j, err := s.jobs.Records().Get(ctx, c.JobID)
	if err != nil {
		return Profile{}, err
	}
	p := Profile{Candidate: c, Job: j}
	if !c.ResumeID.IsZero() {
		if p.Resume, err = s.resumes.Records().Get(ctx, c.ResumeID); err != nil && !store.IsNotFound(err) {
			return Profile{}, err
		}
	}
	return p, nil
}
