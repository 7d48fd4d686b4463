package candidatesrv

import (
	"context"
	"math"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/ai/embedding"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"golang.org/x/text/cases"
)

// Scorer rates how well a resume fits a job, from 0 to 100
type Scorer interface {
	Score(ctx context.Context, r resume.Resume, j job.Job) (int, error)
}

// SkillScorer is the share of the job's skills found in the resume
type SkillScorer struct{}

func (SkillScorer) Score(_ context.Context, r resume.Resume, j job.Job) (int, error) {
	if len(j.Skills) == 0 {
		return 0, nil
	}

	folder := cases.Fold()
	profile := folder.String(r.Profile() + "\n" + strings.Join(r.MatchSkills, "\n"))
	matched := 0
	for _, s := range j.Skills {
		if strings.Contains(profile, folder.String(s)) {
			matched++
		}
	}
	return int(math.Round(float64(matched) * 100 / float64(len(j.Skills)))), nil
}

// EmbeddingScorer compares resume and job text with embeddings. Negative
// similarity counts as no fit. When either text is empty or the provider
// fails the fallback scorer answers instead.
type EmbeddingScorer struct {
	client   *embedding.Client
	fallback Scorer
}

func NewEmbeddingScorer(client *embedding.Client, fallback Scorer) *EmbeddingScorer {
	if fallback == nil {
		fallback = SkillScorer{}
	}
	return &EmbeddingScorer{client: client, fallback: fallback}
}

func (e *EmbeddingScorer) Score(ctx context.Context, r resume.Resume, j job.Job) (int, error) {
	a, b := r.Profile(), j.Profile()
	if e.client == nil || a == "" || b == "" {
		return e.fallback.Score(ctx, r, j)
	}

	sim, err := e.client.Similarity(ctx, a, b)
	metrics.RecordAICall("embedding", err)
	if err != nil {
		logx.WithFields(logx.Fields{"resume": r.Code(), "job": j.Code(), "error": err}).
			Warn("embedding scoring failed, using skill match")
		return e.fallback.Score(ctx, r, j)
	}
	return Scale(sim), nil
}

// Scale maps a cosine similarity onto the 0-100 fitment scale
func Scale(sim float64) int {
	if math.IsNaN(sim) || sim <= 0 {
		return 0
	}
	return int(math.Round(min(sim, 1) * 100))
}
