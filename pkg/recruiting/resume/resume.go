package resume

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
)

const Entity = "resumes"

// CodePrefix precede al id en el código visible ("RSM118820")
const CodePrefix = "RSM"

// Status of a resume in the hiring pipeline
type Status string

const (
	StatusNew            Status = "NEW"
	StatusShortlisted    Status = "SHORTLISTED"
	StatusInterviewStage Status = "INTERVIEW STAGE"
	StatusOffered        Status = "OFFERED"
	StatusHired          Status = "HIRED"
	StatusOnHold         Status = "ON HOLD"
	StatusRejected       Status = "REJECTED"
	StatusDeclined       Status = "DECLINED"
)

func Statuses() []Status {
	return []Status{
		StatusNew, StatusShortlisted, StatusInterviewStage, StatusOffered,
		StatusHired, StatusOnHold, StatusRejected, StatusDeclined,
	}
}

func statusNames() []string {
	out := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		out = append(out, string(s))
	}
	return out
}

// ParseStatus accepts any casing and surrounding blanks
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// ScoreBuckets are the fitment levels of the resume screen
var ScoreBuckets = []filter.Bucket{
	{Label: "High", Range: filter.Range{Min: 80, Max: 100}},
	{Label: "Medium", Range: filter.Range{Min: 60, Max: 79}},
	{Label: "Low", Range: filter.Range{Min: 0, Max: 59}},
}

type Resume struct {
	ID             kernel.RecordID  `json:"id"`
	Name           string           `json:"name" validate:"notblank"`
	Email          string           `json:"email" validate:"omitempty,email"`
	Mobile         string           `json:"mobile"`
	Status         Status           `json:"status"`
	Location       string           `json:"location"`
	Experience     string           `json:"experience"`
	Gender         string           `json:"gender"`
	Age            int              `json:"age,omitempty" validate:"gte=0,lte=100"`
	CurrentCompany string           `json:"currentCompany"`
	Designation    string           `json:"designation"`
	ExpectedCTC    string           `json:"expectedCtc"`
	Score          int              `json:"score" validate:"gte=0,lte=100"`
	MatchSkills    []string         `json:"matchSkills"`
	ResumeDetails  string           `json:"resumeDetails"`
	UploadedBy     string           `json:"uploadedBy"`
	File           *recruiting.File `json:"file,omitempty"`
	kernel.Audit
}

func (r Resume) GetID() kernel.RecordID { return r.ID }

func (r Resume) WithID(id kernel.RecordID) Resume {
	r.ID = id
	return r
}

func (r Resume) WithAudit(a kernel.Audit) Resume {
	r.Audit = a
	return r
}

func (r Resume) Normalized() Resume {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Location = strings.TrimSpace(r.Location)
	r.Experience = strings.TrimSpace(r.Experience)
	r.Gender = strings.TrimSpace(r.Gender)
	r.UploadedBy = strings.TrimSpace(r.UploadedBy)
	r.MatchSkills = recruiting.CleanList(r.MatchSkills)
	if st, ok := ParseStatus(string(r.Status)); ok {
		r.Status = st
	}
	return r
}

// Code is the resume number shown on the list ("RSM118820")
func (r Resume) Code() string {
	return CodePrefix + r.ID.String()
}

// ParseCode accepts "RSM118820" as well as a bare "118820"
func ParseCode(s string) (kernel.RecordID, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= len(CodePrefix) && strings.EqualFold(s[:len(CodePrefix)], CodePrefix) {
		s = s[len(CodePrefix):]
	}
	return kernel.ParseRecordID(s)
}

func (r Resume) HasFile() bool {
	return r.File != nil && r.File.Key != ""
}

// Profile is the text compared against job descriptions when scoring
func (r Resume) Profile() string {
	parts := []string{r.Designation, r.Experience, strings.Join(r.MatchSkills, ", "), r.ResumeDetails}
	var b strings.Builder
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(p)
		}
	}
	return b.String()
}

func (r Resume) Fields() filter.Record {
	rec := filter.Record{
		"id":             int64(r.ID),
		"code":           r.Code(),
		"name":           r.Name,
		"email":          r.Email,
		"mobile":         r.Mobile,
		"status":         string(r.Status),
		"location":       r.Location,
		"experience":     r.Experience,
		"gender":         r.Gender,
		"currentCompany": r.CurrentCompany,
		"designation":    r.Designation,
		"expectedCtc":    r.ExpectedCTC,
		"score":          r.Score,
		"matchSkills":    strings.Join(r.MatchSkills, ", "),
		"uploadedBy":     r.UploadedBy,
		"hasFile":        r.HasFile(),
	}
	if r.Age > 0 {
		rec["age"] = r.Age
	}
	for k, v := range r.Audit.Fields() {
		rec[k] = v
	}
	return recruiting.ParseExperience(r.Experience).Fields(rec)
}

// AgeBuckets group candidates on the dashboard
var AgeBuckets = []filter.Bucket{
	{Label: "18-25", Range: filter.Range{Min: 18, Max: 25}},
	{Label: "26-35", Range: filter.Range{Min: 26, Max: 35}},
	{Label: "36-45", Range: filter.Range{Min: 36, Max: 45}},
	{Label: "46+", Range: filter.Range{Min: 46, Max: 100}},
}

func Adapter() *filter.Adapter {
	return filter.NewAdapter(Entity).
		Search("name", "email", "code").
		Enum("status", "Status", statusNames()...).
		DerivedEnum("location", "Location").
		Number("experienceMin", "Experience From", recruiting.ExperienceBuckets...).
		Number("experienceMax", "Experience To", recruiting.ExperienceBuckets...).
		Enum("experienceType", "Experience Type", recruiting.ExperienceFresher, recruiting.ExperienceExperienced, recruiting.ExperienceOthers).
		DerivedEnum("uploadedBy", "Uploaded By").
		DerivedEnum("gender", "Gender").
		Number("score", "Score", ScoreBuckets...).
		Number("age", "Age", AgeBuckets...).
		Text("matchSkills", "Skills").
		Bool("hasFile", "Has File").
		Expose("id", "mobile", "createdOn").
		Columns(
			filter.Column{Field: "code", Header: "Resume ID"},
			filter.Column{Field: "name", Header: "Name"},
			filter.Column{Field: "email", Header: "Email"},
			filter.Column{Field: "mobile", Header: "Mobile"},
			filter.Column{Field: "status", Header: "Status"},
			filter.Column{Field: "location", Header: "Location"},
			filter.Column{Field: "experience", Header: "Experience"},
			filter.Column{Field: "score", Header: "Score"},
			filter.Column{Field: "uploadedBy", Header: "Uploaded By"},
		)
}
