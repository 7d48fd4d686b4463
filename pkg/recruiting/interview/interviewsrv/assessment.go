package interviewsrv

import (
	"context"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
)

// Assessment is the assessment summary of one job
type Assessment struct {
	JobID         kernel.RecordID   `json:"jobId"`
	JobTitle      string            `json:"jobTitle"`
	Total         int               `json:"total"`
	Completed     int               `json:"completed"`
	WithRecording int               `json:"withRecording"`
	Transcribed   int               `json:"transcribed"`
	AverageScore  float64           `json:"averageScore"`
	Statuses      []filter.Share    `json:"statuses"`
	Scores        []filter.Share    `json:"scores"`
	Rounds        []interview.Round `json:"rounds"`
}

// Assessment summarizes the rounds of a job that match the criteria
func (s *Service) Assessment(ctx context.Context, jobID kernel.RecordID, c filter.Criteria) (Assessment, error) {
	j, err := s.jobs.Records().Get(ctx, jobID)
	if err != nil {
		return Assessment{}, err
	}
	rounds, err := s.ForJob(ctx, jobID, c)
	if err != nil {
		return Assessment{}, err
	}

	records := filter.Records(rounds)
	out := Assessment{
		JobID:        jobID,
		JobTitle:     j.Title,
		Total:        len(rounds),
		AverageScore: filter.Average(records, "score"),
		Scores:       filter.BucketDistribution(records, "score", interview.ScoreBuckets),
		Rounds:       rounds,
	}

	counts := make([]int, len(interview.Statuses()))
	for _, r := range rounds {
		for i, st := range interview.Statuses() {
			if r.Status == st {
				counts[i]++
			}
		}
		if r.Status == interview.StatusCompleted {
			out.Completed++
		}
		if r.HasRecording() {
			out.WithRecording++
		}
		if r.Transcript != "" {
			out.Transcribed++
		}
	}
	out.Statuses = filter.Shares(interview.StatusNames(), counts)
	return out, nil
}
