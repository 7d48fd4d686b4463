package jobsrv

import (
	"context"
	"slices"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/google/uuid"
)

// CreateWorkflow replaces the workflow with the selected catalogue phases,
// kept in catalogue order.
func (s *Service) CreateWorkflow(ctx context.Context, actor string, id kernel.RecordID, phaseIDs []string) (job.Job, error) {
	if len(phaseIDs) == 0 {
		return job.Job{}, ErrRegistry.New(CodeEmptyWorkflow)
	}

	catalogue := job.DefaultPhases()
	var phases []job.Phase
	for _, p := range catalogue {
		if slices.Contains(phaseIDs, p.ID) {
			phases = append(phases, p)
		}
	}
	for _, pid := range phaseIDs {
		if !slices.ContainsFunc(catalogue, func(p job.Phase) bool { return p.ID == pid }) {
			return job.Job{}, ErrRegistry.New(CodePhaseNotFound).WithDetail("phase", pid)
		}
	}

	return s.records.Mutate(ctx, actor, id, func(j job.Job) job.Job {
		j.Phases = phases
		return j
	})
}

// AddPhase appends a phase; a phase without id gets a generated one
func (s *Service) AddPhase(ctx context.Context, actor string, id kernel.RecordID, phase job.Phase) (job.Job, error) {
	phase = phase.Normalized()
	if phase.ID == "" {
		phase.ID = uuid.NewString()
	}
	for i, q := range phase.Questions {
		q, err := prepareQuestion(q)
		if err != nil {
			return job.Job{}, err
		}
		phase.Questions[i] = q
	}

	return s.records.Change(ctx, actor, id, func(j job.Job) (job.Job, error) {
		if j.PhaseIndex(phase.ID) >= 0 {
			return j, ErrRegistry.New(CodeDuplicatePhase).WithDetail("phase", phase.ID)
		}
		j.Phases = append(slices.Clone(j.Phases), phase)
		return j, nil
	})
}

func (s *Service) RemovePhase(ctx context.Context, actor string, id kernel.RecordID, phaseID string) (job.Job, error) {
	return s.records.Change(ctx, actor, id, func(j job.Job) (job.Job, error) {
		i := j.PhaseIndex(phaseID)
		if i < 0 {
			return j, ErrRegistry.New(CodePhaseNotFound).WithDetail("phase", phaseID)
		}
		j.Phases = slices.Delete(slices.Clone(j.Phases), i, i+1)
		return j, nil
	})
}

// AddQuestion appends a screening question to a phase
func (s *Service) AddQuestion(ctx context.Context, actor string, id kernel.RecordID, phaseID string, q job.Question) (job.Job, error) {
	q, err := prepareQuestion(q)
	if err != nil {
		return job.Job{}, err
	}

	return s.records.Change(ctx, actor, id, func(j job.Job) (job.Job, error) {
		i := j.PhaseIndex(phaseID)
		if i < 0 {
			return j, ErrRegistry.New(CodePhaseNotFound).WithDetail("phase", phaseID)
		}
		j.Phases = clonePhases(j.Phases)
		j.Phases[i].Questions = append(j.Phases[i].Questions, q)
		return j, nil
	})
}

func (s *Service) RemoveQuestion(ctx context.Context, actor string, id kernel.RecordID, phaseID, questionID string) (job.Job, error) {
	return s.records.Change(ctx, actor, id, func(j job.Job) (job.Job, error) {
		i := j.PhaseIndex(phaseID)
		if i < 0 {
			return j, ErrRegistry.New(CodePhaseNotFound).WithDetail("phase", phaseID)
		}
		qi := slices.IndexFunc(j.Phases[i].Questions, func(q job.Question) bool { return q.ID == questionID })
		if qi < 0 {
			return j, ErrRegistry.New(CodeQuestionNotFound).
				WithDetail("phase", phaseID).
				WithDetail("question", questionID)
		}
		j.Phases = clonePhases(j.Phases)
		j.Phases[i].Questions = slices.Delete(j.Phases[i].Questions, qi, qi+1)
		return j, nil
	})
}

func prepareQuestion(q job.Question) (job.Question, error) {
	q = q.Normalized()
	if strings.TrimSpace(q.ID) == "" {
		q.ID = uuid.NewString()
	}
	if !q.HasEnoughChoices() {
		return q, ErrRegistry.New(CodeNotEnoughOptions).
			WithDetail("options", len(q.Options)).
			WithDetail("min", job.MinChoices)
	}
	return q, nil
}

// clonePhases copies phases deep enough that edits never reach the stored record
func clonePhases(phases []job.Phase) []job.Phase {
	out := make([]job.Phase, len(phases))
	for i, p := range phases {
		p.Questions = slices.Clone(p.Questions)
		out[i] = p
	}
	return out
}
