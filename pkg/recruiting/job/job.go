package job

import (
	"fmt"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Rhymond/go-money"
)

const Entity = "jobs"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// ParseStatus accepts any casing
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, true
	case "inactive":
		return StatusInactive, true
	}
	return "", false
}

// Job sources shown on the landing page
const (
	SourceArcolab = "Arcolab"
	SourceStellis = "Stellis"
	SourceStrides = "Strides"
	SourceManual  = "Manual"
)

var Sources = []string{SourceArcolab, SourceStellis, SourceStrides, SourceManual}

// Publishing channels of the job details screen
var Channels = []string{"Naukri", "LinkedIn", "Career"}

var EmploymentTypes = []string{"Full Time, Permanent", "Part Time", "Contract", "Internship"}

// MaxSalary bounds each side of a band so the amount in minor units fits an int64.
// Keep it in step with the lte tags of Salary.
const MaxSalary int64 = 1_000_000_000_000

// Salary is a yearly band
type Salary struct {
	Min      int64  `json:"min" validate:"gte=0,lte=1000000000000"`
	Max      int64  `json:"max" validate:"gte=0,lte=1000000000000"`
	Currency string `json:"currency"`
	Hidden   bool   `json:"hidden"`
}

// DefaultCurrency of the create job form
const DefaultCurrency = "INR"

const lakh = 100000

// Amount formats one bound: INR amounts from one lakh up as "7.5 LPA",
// everything else with the currency formatter.
func (s Salary) Amount(v int64) string {
	code := strings.ToUpper(s.Currency)
	if code == "" {
		code = DefaultCurrency
	}
	if code == DefaultCurrency && v >= lakh {
		return fmt.Sprintf("%.1f LPA", float64(v)/lakh)
	}
	if v > MaxSalary || v < -MaxSalary {
		return fmt.Sprintf("%d %s", v, code)
	}
	return money.New(v*100, code).Display()
}

// Display is the salary band as shown on a job card
func (s Salary) Display() string {
	if s.Hidden {
		return "Not disclosed"
	}
	if s.Min == 0 && s.Max == 0 {
		return ""
	}
	return s.Amount(s.Min) + " - " + s.Amount(s.Max)
}

type Job struct {
	ID               kernel.RecordID  `json:"id"`
	Title            string           `json:"title" validate:"notblank"`
	Description      string           `json:"description"`
	Department       string           `json:"department"`
	Location         string           `json:"location"`
	EmploymentType   string           `json:"employmentType" validate:"notblank"`
	Experience       string           `json:"experience"`
	MinExperience    *int             `json:"minExperience,omitempty" validate:"omitempty,gte=0,lte=50"`
	MaxExperience    *int             `json:"maxExperience,omitempty" validate:"omitempty,gte=0,lte=50"`
	Salary           Salary           `json:"salary"`
	Status           Status           `json:"status"`
	Applicants       int              `json:"applicants" validate:"gte=0"`
	DatePosted       string           `json:"datePosted"`
	Requirements     []string         `json:"requirements"`
	Benefits         []string         `json:"benefits"`
	Skills           []string         `json:"skills"`
	Qualifications   []string         `json:"qualifications"`
	CourseType       string           `json:"courseType"`
	Qualification    string           `json:"qualification"`
	Specialization   string           `json:"specialization"`
	NotifyEmail      string           `json:"notifyEmail" validate:"omitempty,email"`
	OrganizationName string           `json:"organizationName"`
	Website          string           `json:"website" validate:"omitempty,url"`
	PromoteWomen     bool             `json:"promoteWomen"`
	JobSource        string           `json:"jobSource"`
	OpenPositions    int              `json:"openPositions" validate:"gte=0"`
	Channels         []string         `json:"channels"`
	Phases           []Phase          `json:"phases" validate:"dive"`
	JD               *recruiting.File `json:"jd,omitempty"`
	kernel.Audit
}

func (j Job) GetID() kernel.RecordID { return j.ID }

func (j Job) WithID(id kernel.RecordID) Job {
	j.ID = id
	return j
}

func (j Job) WithAudit(a kernel.Audit) Job {
	j.Audit = a
	return j
}

func (j Job) Normalized() Job {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	j.Department = strings.TrimSpace(j.Department)
	j.Location = strings.TrimSpace(j.Location)
	j.EmploymentType = strings.TrimSpace(j.EmploymentType)
	j.Experience = strings.TrimSpace(j.Experience)
	j.NotifyEmail = strings.TrimSpace(j.NotifyEmail)
	j.Website = strings.TrimSpace(j.Website)
	j.JobSource = strings.TrimSpace(j.JobSource)
	j.Salary.Currency = strings.ToUpper(strings.TrimSpace(j.Salary.Currency))
	j.Skills = recruiting.CleanList(j.Skills)
	j.Requirements = recruiting.CleanList(j.Requirements)
	j.Benefits = recruiting.CleanList(j.Benefits)
	j.Qualifications = recruiting.CleanList(j.Qualifications)
	j.Channels = recruiting.CleanList(j.Channels)
	if st, ok := ParseStatus(string(j.Status)); ok {
		j.Status = st
	}
	return j
}

// Code is the job number shown on the cards ("ARCOLAB_4567")
func (j Job) Code() string {
	source := j.JobSource
	if source == "" {
		source = SourceManual
	}
	return strings.ToUpper(source) + "_" + j.ID.String()
}

// ParseCode accepts "ARCOLAB_4567" or a bare "4567"
func ParseCode(s string) (kernel.RecordID, bool) {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		s = s[i+1:]
	}
	return kernel.ParseRecordID(s)
}

func (j Job) IsActive() bool {
	return j.Status == StatusActive
}

// Profile is the text compared against resumes when scoring fitment
func (j Job) Profile() string {
	parts := []string{j.Title, j.Experience, strings.Join(j.Skills, ", "), strings.Join(j.Requirements, ", "), j.Description}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

func (j Job) Fields() filter.Record {
	rec := filter.Record{
		"id":             int64(j.ID),
		"code":           j.Code(),
		"title":          j.Title,
		"department":     j.Department,
		"location":       j.Location,
		"employmentType": j.EmploymentType,
		"experience":     j.Experience,
		"salaryMin":      j.Salary.Min,
		"salaryMax":      j.Salary.Max,
		"salary":         j.Salary.Display(),
		"status":         string(j.Status),
		"isActive":       j.IsActive(),
		"applicants":     j.Applicants,
		"datePosted":     j.DatePosted,
		"skills":         strings.Join(j.Skills, ", "),
		"jobSource":      j.JobSource,
		"openPositions":  j.OpenPositions,
		"phases":         len(j.Phases),
		"hasJD":          j.JD != nil,
	}
	for k, v := range j.Audit.Fields() {
		rec[k] = v
	}
	return recruiting.ParseExperience(j.Experience).Fields(rec)
}

// ApplicantBuckets group jobs by response volume
var ApplicantBuckets = []filter.Bucket{
	{Label: "0-100", Range: filter.Range{Min: 0, Max: 100}},
	{Label: "101-200", Range: filter.Range{Min: 101, Max: 200}},
	{Label: "200+", Range: filter.Range{Min: 201, Max: 1_000_000}},
}

func Adapter() *filter.Adapter {
	return filter.NewAdapter(Entity).
		Search("title", "department", "location", "code").
		DerivedEnum("department", "Department").
		DerivedEnum("location", "Location").
		DerivedEnum("experience", "Experience").
		Number("experienceMin", "Minimum Experience", recruiting.ExperienceBuckets...).
		Enum("jobSource", "Job Source", Sources...).
		Enum("status", "Status", string(StatusActive), string(StatusInactive)).
		Enum("employmentType", "Employment Type", EmploymentTypes...).
		Number("applicants", "Applicants", ApplicantBuckets...).
		Text("skills", "Skills").
		Bool("hasJD", "Uploaded JD").
		Expose("id", "salaryMin", "salaryMax", "datePosted", "isActive", "openPositions").
		Columns(
			filter.Column{Field: "code", Header: "Job ID"},
			filter.Column{Field: "title", Header: "Title"},
			filter.Column{Field: "department", Header: "Department"},
			filter.Column{Field: "location", Header: "Location"},
			filter.Column{Field: "employmentType", Header: "Employment Type"},
			filter.Column{Field: "experience", Header: "Experience"},
			filter.Column{Field: "salary", Header: "Salary"},
			filter.Column{Field: "status", Header: "Status"},
			filter.Column{Field: "applicants", Header: "Applicants"},
			filter.Column{Field: "datePosted", Header: "Date Posted"},
			filter.Column{Field: "jobSource", Header: "Source"},
		)
}
