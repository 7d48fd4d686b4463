package interview

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
)

const Entity = "interviews"

type Status string

const (
	StatusCompleted Status = "Completed"
	StatusScheduled Status = "Scheduled"
	StatusCancelled Status = "Cancelled"
	StatusPending   Status = "Pending"
)

func Statuses() []Status {
	return []Status{StatusCompleted, StatusScheduled, StatusCancelled, StatusPending}
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

// Closed reports whether the round can no longer change
func (s Status) Closed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ScoreBuckets grade completed rounds
var ScoreBuckets = []filter.Bucket{
	{Label: "Strong", Range: filter.Range{Min: 80, Max: 100}},
	{Label: "Average", Range: filter.Range{Min: 60, Max: 79}},
	{Label: "Weak", Range: filter.Range{Min: 0, Max: 59}},
}

// Round is one interview of a candidate for a job
type Round struct {
	ID            kernel.RecordID  `json:"id"`
	JobID         kernel.RecordID  `json:"jobId" validate:"required"`
	JobTitle      string           `json:"jobTitle"`
	CandidateID   kernel.RecordID  `json:"candidateId"`
	CandidateName string           `json:"candidateName"`
	Round         string           `json:"round" validate:"notblank"`
	Interviewer   string           `json:"interviewer"`
	Date          string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time          string           `json:"time"`
	Status        Status           `json:"status"`
	Remarks       string           `json:"remarks"`
	Score         *int             `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Duration      string           `json:"duration"`
	MeetingLink   string           `json:"meetingLink" validate:"omitempty,url"`
	Recording     *recruiting.File `json:"recording,omitempty"`
	Transcript    string           `json:"transcript,omitempty"`
	kernel.Audit
}

func (r Round) GetID() kernel.RecordID { return r.ID }

func (r Round) WithID(id kernel.RecordID) Round {
	r.ID = id
	return r
}

func (r Round) WithAudit(a kernel.Audit) Round {
	r.Audit = a
	return r
}

func (r Round) Normalized() Round {
	r.Round = strings.TrimSpace(r.Round)
	r.Interviewer = strings.TrimSpace(r.Interviewer)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Remarks = strings.TrimSpace(r.Remarks)
	r.MeetingLink = strings.TrimSpace(r.MeetingLink)
	if st, ok := ParseStatus(string(r.Status)); ok {
		r.Status = st
	}
	return r
}

func (r Round) HasRecording() bool {
	return r.Recording != nil && r.Recording.Key != ""
}

func (r Round) Fields() filter.Record {
	rec := filter.Record{
		"id":            int64(r.ID),
		"jobId":         int64(r.JobID),
		"jobTitle":      r.JobTitle,
		"candidateId":   int64(r.CandidateID),
		"candidateName": r.CandidateName,
		"round":         r.Round,
		"interviewer":   r.Interviewer,
		"date":          r.Date,
		"time":          r.Time,
		"status":        string(r.Status),
		"remarks":       r.Remarks,
		"hasRecording":  r.HasRecording(),
		"hasTranscript": r.Transcript != "",
	}
	if r.Score != nil {
		rec["score"] = *r.Score
	}
	for k, v := range r.Audit.Fields() {
		rec[k] = v
	}
	return rec
}

func Adapter() *filter.Adapter {
	return filter.NewAdapter(Entity).
		Search("round", "interviewer", "candidateName", "jobTitle").
		Enum("status", "Status", StatusNames()...).
		DerivedEnum("round", "Round").
		DerivedEnum("interviewer", "Interviewer").
		DerivedEnum("jobTitle", "Job").
		Number("jobId", "Job ID").
		Number("candidateId", "Candidate").
		Number("score", "Score", ScoreBuckets...).
		Bool("hasRecording", "Has Recording").
		Bool("hasTranscript", "Has Transcript").
		Expose("id", "date", "time").
		Columns(
			filter.Column{Field: "jobTitle", Header: "Job"},
			filter.Column{Field: "candidateName", Header: "Candidate"},
			filter.Column{Field: "round", Header: "Round"},
			filter.Column{Field: "interviewer", Header: "Interviewer"},
			filter.Column{Field: "date", Header: "Date"},
			filter.Column{Field: "time", Header: "Time"},
			filter.Column{Field: "status", Header: "Status"},
			filter.Column{Field: "remarks", Header: "Remarks"},
			filter.Column{Field: "hasRecording", Header: "Recording"},
		)
}
