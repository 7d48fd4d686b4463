package job

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
)

// QuestionType of a screening question
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionText           QuestionType = "text"
	QuestionYesNo          QuestionType = "yes-no"
)

// MinChoices is the least number of options a multiple-choice question needs
const MinChoices = 2

type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text" validate:"notblank"`
	Type     QuestionType `json:"type" validate:"oneof=multiple-choice text yes-no"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Normalized trims the text and drops blank options; only multiple-choice
// questions keep options.
func (q Question) Normalized() Question {
	q.Text = strings.TrimSpace(q.Text)
	q.Type = QuestionType(strings.ToLower(strings.TrimSpace(string(q.Type))))
	if q.Type == QuestionMultipleChoice {
		q.Options = recruiting.CleanList(q.Options)
	} else {
		q.Options = nil
	}
	return q
}

// HasEnoughChoices is false for a multiple-choice question with fewer than two options
func (q Question) HasEnoughChoices() bool {
	return q.Type != QuestionMultipleChoice || len(q.Options) >= MinChoices
}

// Phase is one stage of a job's hiring workflow
type Phase struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"notblank"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions" validate:"dive"`
}

func (p Phase) Normalized() Phase {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if p.Questions == nil {
		p.Questions = []Question{}
	}
	return p
}

// DefaultPhases is the phase catalogue offered when a workflow is created
func DefaultPhases() []Phase {
	return []Phase{
		{ID: "resume-screening", Name: "Resume Screening", Description: "Check qualifications and role fit from the resume", Questions: []Question{}},
		{ID: "technical-assessment", Name: "Technical Assessment", Description: "Evaluate technical skills through assessment", Questions: []Question{}},
		{ID: "technical-interview", Name: "Technical Interview", Description: "In-depth technical discussion with candidates", Questions: []Question{}},
		{ID: "hr-round", Name: "HR Round", Description: "Final HR discussion and offer negotiation", Questions: []Question{}},
	}
}

// PhaseIndex returns the position of a phase, or -1
func (j Job) PhaseIndex(id string) int {
	for i, p := range j.Phases {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// QuestionCount across all phases
func (j Job) QuestionCount() int {
	n := 0
	for _, p := range j.Phases {
		n += len(p.Questions)
	}
	return n
}
