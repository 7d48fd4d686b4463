package recruiting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
)

// File is the metadata of an uploaded document or recording
type File struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	UploadedAt  string `json:"uploadedAt"`
}

// Experience types shown on the dashboard
const (
	ExperienceFresher     = "Fresher"
	ExperienceExperienced = "Experienced"
	ExperienceOthers      = "Others"
)

// OpenEndedMax is the upper bound given to "8+ years"
const OpenEndedMax = 50

// ExperienceBuckets are the experience options of the job and resume screens
var ExperienceBuckets = []filter.Bucket{
	{Label: "0-2", Range: filter.Range{Min: 0, Max: 2}},
	{Label: "2-5", Range: filter.Range{Min: 2, Max: 5}},
	{Label: "5-8", Range: filter.Range{Min: 5, Max: 8}},
	{Label: "8+", Range: filter.Range{Min: 8, Max: OpenEndedMax}},
}

var experienceRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:(\+)|(?:-|to|–)\s*(\d+(?:\.\d+)?))?`)

// Experience is a parsed "5-7 years" style range
type Experience struct {
	Min float64
	Max float64
	OK  bool
}

// ParseExperience understands "5-7 years", "5 years", "8+", "3 to 5 yrs" and "Fresher"
func ParseExperience(s string) Experience {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Experience{}
	}
	if strings.Contains(s, "fresher") {
		return Experience{Min: 0, Max: 0, OK: true}
	}

	m := experienceRe.FindStringSubmatch(s)
	if m == nil {
		return Experience{}
	}
	lo, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Experience{}
	}

	switch {
	case m[2] == "+":
		return Experience{Min: lo, Max: OpenEndedMax, OK: true}
	case m[3] != "":
		hi, err := strconv.ParseFloat(m[3], 64)
		if err != nil || hi < lo {
			return Experience{}
		}
		return Experience{Min: lo, Max: hi, OK: true}
	default:
		return Experience{Min: lo, Max: lo, OK: true}
	}
}

// Type classifies the range for the dashboard
func (e Experience) Type() string {
	switch {
	case !e.OK:
		return ExperienceOthers
	case e.Max < 1:
		return ExperienceFresher
	default:
		return ExperienceExperienced
	}
}

// Fields adds experienceMin/experienceMax/experienceType to a record.
// Unparsed experience leaves the numeric fields out so ranges never match it.
func (e Experience) Fields(r filter.Record) filter.Record {
	if e.OK {
		r["experienceMin"] = e.Min
		r["experienceMax"] = e.Max
	}
	r["experienceType"] = e.Type()
	return r
}

// CleanList trims items, drops blanks and removes case-insensitive duplicates
// keeping the first spelling.
func CleanList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

// SplitList splits a comma separated input such as "Azure, Logic Apps"
func SplitList(s string) []string {
	return CleanList(strings.Split(s, ","))
}
