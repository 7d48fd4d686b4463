package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
)

const Entity = "candidates"

type Status string

const (
	StatusSelected   Status = "Selected"
	StatusInProgress Status = "In Progress"
	StatusOnHold     Status = "On Hold"
	StatusRejected   Status = "Rejected"
	StatusNoResponse Status = "No Response"
)

func Statuses() []Status {
	return []Status{StatusSelected, StatusInProgress, StatusOnHold, StatusRejected, StatusNoResponse}
}

func StatusNames() []string {
	out := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		out = append(out, string(s))
	}
	return out
}

func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// LastRoundApplied is the round shown before any interview took place
const LastRoundApplied = "Applied"

// FitmentBuckets are the fitment levels of the candidates summary
var FitmentBuckets = []filter.Bucket{
	{Label: "High (80-100%)", Range: filter.Range{Min: 80, Max: 100}},
	{Label: "Medium (60-79%)", Range: filter.Range{Min: 60, Max: 79}},
	{Label: "Low (0-59%)", Range: filter.Range{Min: 0, Max: 59}},
}

// Comment es una nota del reclutador sobre la candidatura
type Comment struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// Candidate is the application of one resume to one job
type Candidate struct {
	ID              kernel.RecordID `json:"id"`
	JobID           kernel.RecordID `json:"jobId" validate:"required"`
	ResumeID        kernel.RecordID `json:"resumeId"`
	Name            string          `json:"name" validate:"notblank"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Contact         string          `json:"contact"`
	Fitment         int             `json:"fitment" validate:"gte=0,lte=100"`
	RoundsCompleted int             `json:"roundsCompleted" validate:"gte=0"`
	RoundsTotal     int             `json:"roundsTotal" validate:"gte=0,gtefield=RoundsCompleted"`
	Status          Status          `json:"status"`
	LastRound       string          `json:"lastRound"`
	AppliedDate     string          `json:"appliedDate"`
	Comments        []Comment       `json:"comments"`
	kernel.Audit
}

func (c Candidate) GetID() kernel.RecordID { return c.ID }

func (c Candidate) WithID(id kernel.RecordID) Candidate {
	c.ID = id
	return c
}

func (c Candidate) WithAudit(a kernel.Audit) Candidate {
	c.Audit = a
	return c
}

func (c Candidate) Normalized() Candidate {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Contact = strings.TrimSpace(c.Contact)
	c.LastRound = strings.TrimSpace(c.LastRound)
	if st, ok := ParseStatus(string(c.Status)); ok {
		c.Status = st
	}
	return c
}

// Code is the resume code the candidate applied with
func (c Candidate) Code() string {
	if c.ResumeID.IsZero() {
		return ""
	}
	return resume.CodePrefix + c.ResumeID.String()
}

// Rounds is the progress shown on the summary ("2/4")
func (c Candidate) Rounds() string {
	return fmt.Sprintf("%d/%d", c.RoundsCompleted, c.RoundsTotal)
}

func (c Candidate) Fields() filter.Record {
	rec := filter.Record{
		"id":              int64(c.ID),
		"jobId":           int64(c.JobID),
		"resumeId":        int64(c.ResumeID),
		"code":            c.Code(),
		"name":            c.Name,
		"email":           c.Email,
		"contact":         c.Contact,
		"fitment":         c.Fitment,
		"rounds":          c.Rounds(),
		"roundsCompleted": c.RoundsCompleted,
		"roundsTotal":     c.RoundsTotal,
		"status":          string(c.Status),
		"lastRound":       c.LastRound,
		"appliedDate":     c.AppliedDate,
		"comments":        len(c.Comments),
	}
	for k, v := range c.Audit.Fields() {
		rec[k] = v
	}
	return rec
}

func Adapter() *filter.Adapter {
	return filter.NewAdapter(Entity).
		Search("name", "email", "code", "contact").
		Enum("status", "Status", StatusNames()...).
		Number("fitment", "Fitment Level", FitmentBuckets...).
		DerivedEnum("lastRound", "Last Round").
		Number("roundsCompleted", "Rounds Completed").
		Number("jobId", "Job").
		Expose("id", "resumeId", "rounds", "roundsTotal", "appliedDate").
		Columns(
			filter.Column{Field: "code", Header: "Resume ID"},
			filter.Column{Field: "name", Header: "Name"},
			filter.Column{Field: "email", Header: "Email"},
			filter.Column{Field: "contact", Header: "Contact"},
			filter.Column{Field: "fitment", Header: "Fitment"},
			filter.Column{Field: "rounds", Header: "Rounds Progress"},
			filter.Column{Field: "status", Header: "Status"},
			filter.Column{Field: "lastRound", Header: "Last Round"},
			filter.Column{Field: "appliedDate", Header: "Applied Date"},
		)
}
