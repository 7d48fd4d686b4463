package jobsrv

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

var ErrRegistry = errx.NewRegistry("JOB")

var (
	CodeInvalidSalary     = ErrRegistry.Register("INVALID_SALARY", errx.TypeValidation, http.StatusBadRequest, "Minimum salary is above the maximum")
	CodeInvalidExperience = ErrRegistry.Register("INVALID_EXPERIENCE", errx.TypeValidation, http.StatusBadRequest, "Minimum experience is above the maximum")
	CodeInvalidStatus     = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Job status must be Active or Inactive")
	CodePhaseNotFound     = ErrRegistry.Register("PHASE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Workflow phase not found")
	CodeQuestionNotFound  = ErrRegistry.Register("QUESTION_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Question not found")
	CodeDuplicatePhase    = ErrRegistry.Register("DUPLICATE_PHASE", errx.TypeConflict, http.StatusConflict, "Phase is already part of the workflow")
	CodeNotEnoughOptions  = ErrRegistry.Register("NOT_ENOUGH_OPTIONS", errx.TypeValidation, http.StatusBadRequest, "Multiple-choice questions need at least two options")
	CodeEmptyWorkflow     = ErrRegistry.Register("EMPTY_WORKFLOW", errx.TypeValidation, http.StatusBadRequest, "Select at least one phase")
	CodeAIDisabled        = ErrRegistry.Register("AI_DISABLED", errx.TypeBusiness, http.StatusServiceUnavailable, "Job description extraction is not configured")
	CodeUnreadableJD      = ErrRegistry.Register("UNREADABLE_JD", errx.TypeValidation, http.StatusUnprocessableEntity, "Could not read text from the job description")
)

// Service gestiona las ofertas de trabajo y su flujo de selección
type Service struct {
	records *storesrv.Service[job.Job]
}

func NewService(repo store.Repository[job.Job], opts ...storesrv.Option[job.Job]) *Service {
	s := &Service{}
	opts = append([]storesrv.Option[job.Job]{
		storesrv.WithCreateHook(s.onCreate),
		storesrv.WithUpdateHook(s.onUpdate),
		storesrv.WithMerge(KeepServerFields),
	}, opts...)
	s.records = storesrv.NewService(repo, job.Adapter(), opts...)
	return s
}

func (s *Service) Records() *storesrv.Service[job.Job] {
	return s.records
}

func (s *Service) onCreate(ctx context.Context, j job.Job) (job.Job, error) {
	if j.Status == "" {
		j.Status = job.StatusActive
	}
	if j.DatePosted == "" {
		j.DatePosted = kernel.Today(s.records.Now())
	}
	if j.JobSource == "" {
		j.JobSource = job.SourceManual
	}
	if j.Salary.Currency == "" {
		j.Salary.Currency = job.DefaultCurrency
	}
	if j.Phases == nil {
		j.Phases = []job.Phase{}
	}
	return s.onUpdate(ctx, j)
}

// onUpdate checks the cross-field rules of the create job form
func (s *Service) onUpdate(_ context.Context, j job.Job) (job.Job, error) {
	if _, ok := job.ParseStatus(string(j.Status)); !ok {
		return j, ErrRegistry.New(CodeInvalidStatus).WithDetail("status", string(j.Status))
	}
	if j.Salary.Max > 0 && j.Salary.Min > j.Salary.Max {
		return j, ErrRegistry.New(CodeInvalidSalary).
			WithDetail("min", j.Salary.Min).
			WithDetail("max", j.Salary.Max)
	}
	if j.MinExperience != nil && j.MaxExperience != nil {
		if *j.MinExperience > *j.MaxExperience {
			return j, ErrRegistry.New(CodeInvalidExperience).
				WithDetail("min", *j.MinExperience).
				WithDetail("max", *j.MaxExperience)
		}
		if j.Experience == "" {
			j.Experience = fmt.Sprintf("%d-%d years", *j.MinExperience, *j.MaxExperience)
		}
	}
	return j, nil
}

// KeepServerFields carries the workflow, the uploaded JD and the applicant
// count into a replacement; they change through their own operations.
func KeepServerFields(existing, incoming job.Job) job.Job {
	incoming.Phases = existing.Phases
	incoming.JD = existing.JD
	incoming.Applicants = existing.Applicants
	if incoming.DatePosted == "" {
		incoming.DatePosted = existing.DatePosted
	}
	if incoming.Status == "" {
		incoming.Status = existing.Status
	}
	return incoming
}

// Split is the landing page: both tabs filtered by the same criteria
type Split struct {
	Active   []job.Job `json:"active"`
	Inactive []job.Job `json:"inactive"`
}

// ListSplit filtra las ofertas y las separa en activas e inactivas
func (s *Service) ListSplit(ctx context.Context, c filter.Criteria) (Split, error) {
	items, err := s.records.List(ctx, c)
	if err != nil {
		return Split{}, err
	}

	out := Split{Active: []job.Job{}, Inactive: []job.Job{}}
	for _, j := range items {
		if j.IsActive() {
			out.Active = append(out.Active, j)
		} else {
			out.Inactive = append(out.Inactive, j)
		}
	}
	return out, nil
}

// SetStatus activates or deactivates a job
func (s *Service) SetStatus(ctx context.Context, actor string, id kernel.RecordID, status string) (job.Job, error) {
	st, ok := job.ParseStatus(status)
	if !ok {
		return job.Job{}, ErrRegistry.New(CodeInvalidStatus).WithDetail("status", status)
	}
	return s.records.Mutate(ctx, actor, id, func(j job.Job) job.Job {
		j.Status = st
		return j
	})
}

// ByCode finds a job by its "<SOURCE>_<id>" code
func (s *Service) ByCode(ctx context.Context, code string) (job.Job, error) {
	id, ok := job.ParseCode(code)
	if !ok {
		return job.Job{}, store.ErrNotFound(job.Entity, 0).WithDetail("code", code)
	}
	return s.records.Get(ctx, id)
}

// AddApplicants adjusts the applicant counter; it never drops below zero
func (s *Service) AddApplicants(ctx context.Context, actor string, id kernel.RecordID, delta int) (job.Job, error) {
	return s.records.Mutate(ctx, actor, id, func(j job.Job) job.Job {
		j.Applicants = max(0, j.Applicants+delta)
		return j
	})
}
