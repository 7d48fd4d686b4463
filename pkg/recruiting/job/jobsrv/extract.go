package jobsrv

import (
	"context"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/ai/llm"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
)

//go:embed prompts/jd_extraction.md
var extractionPromptRaw string

var extractionPrompt = template.Must(template.New("jd_extraction").Parse(extractionPromptRaw))

// Extraction is what the JD upload screen pre-fills into the create job form
type Extraction struct {
	Title          string `json:"title"`
	Experience     string `json:"experience"`
	RequiredSkills string `json:"requiredSkills"`
	Education      string `json:"education"`
	EmploymentType string `json:"employmentType"`
	Location       string `json:"location"`
}

// Draft turns the extraction into an unsaved job
func (e Extraction) Draft() job.Job {
	j := job.Job{
		Title:          strings.TrimSpace(e.Title),
		Experience:     strings.TrimSpace(e.Experience),
		Description:    strings.TrimSpace(e.RequiredSkills),
		Skills:         recruiting.SplitList(e.RequiredSkills),
		Location:       strings.TrimSpace(e.Location),
		Qualifications: recruiting.CleanList([]string{e.Education}),
		Salary:         job.Salary{Currency: job.DefaultCurrency},
		JobSource:      job.SourceManual,
	}
	for _, t := range job.EmploymentTypes {
		if strings.EqualFold(t, strings.TrimSpace(e.EmploymentType)) {
			j.EmploymentType = t
		}
	}
	return j
}

// ExtractResult is the stored JD plus what was read from it
type ExtractResult struct {
	File       recruiting.File `json:"file"`
	Extraction Extraction      `json:"extraction"`
	Draft      job.Job         `json:"draft"`
}

// Extractor reads uploaded job descriptions with a chat model
type Extractor struct {
	llm      *llm.Client
	files    fsx.FileSystem
	maxBytes int64
}

// NewExtractor creates the JD reader; a nil client keeps uploads working but
// reports extraction as disabled.
func NewExtractor(client *llm.Client, files fsx.FileSystem, maxBytes int64) *Extractor {
	if maxBytes <= 0 {
		maxBytes = recruiting.MaxDocumentBytes
	}
	return &Extractor{llm: client, files: files, maxBytes: maxBytes}
}

// Policy accepts the JD formats of the upload screen plus plain text
func (e *Extractor) Policy() recruiting.Policy {
	p := recruiting.Documents("jd", e.maxBytes)
	p.Allowed = append(p.Allowed, recruiting.MimeText)
	return p
}

// Enabled reports whether a model is configured
func (e *Extractor) Enabled() bool {
	return e.llm != nil
}

// Extract guarda el documento y extrae los datos del puesto con el modelo
func (e *Extractor) Extract(ctx context.Context, upload recruiting.Upload, now time.Time) (ExtractResult, error) {
	if !e.Enabled() {
		return ExtractResult{}, ErrRegistry.New(CodeAIDisabled)
	}

	policy := e.Policy()
	contentType, err := policy.Check(upload.FileName, upload.Data)
	if err != nil {
		metrics.RecordUpload(policy.Kind, err)
		return ExtractResult{}, err
	}
	text, err := documentText(contentType, upload.Data)
	if err != nil {
		return ExtractResult{}, err
	}

	extraction, err := e.read(ctx, upload.FileName, text)
	if err != nil {
		return ExtractResult{}, err
	}

	file, err := recruiting.Store(ctx, e.files, policy, "jds", upload.FileName, upload.Data, now)
	if err != nil {
		return ExtractResult{}, err
	}

	draft := extraction.Draft()
	draft.JD = &file
	return ExtractResult{File: file, Extraction: extraction, Draft: draft}, nil
}

func (e *Extractor) read(ctx context.Context, fileName, text string) (Extraction, error) {
	if e.llm == nil {
		return Extraction{}, ErrRegistry.New(CodeAIDisabled)
	}

	var prompt strings.Builder
	err := extractionPrompt.Execute(&prompt, map[string]any{
		"FileName":        fileName,
		"Text":            text,
		"EmploymentTypes": job.EmploymentTypes,
	})
	if err != nil {
		return Extraction{}, err
	}

	var out Extraction
	err = e.llm.ChatJSON(ctx, []llm.Message{
		llm.NewSystemMessage("You extract structured job posting data. Reply with JSON only."),
		llm.NewUserMessage(prompt.String()),
	}, &out)
	if err != nil {
		return Extraction{}, err
	}

	logx.WithFields(logx.Fields{"file": fileName, "title": out.Title}).Info("job description extracted")
	return out, nil
}
