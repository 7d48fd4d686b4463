package interviewsrv

import (
	"context"
	"net/http"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/ai/speech"
	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

var ErrRegistry = errx.NewRegistry("INTERVIEW")

var (
	CodeInvalidStatus    = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown interview status")
	CodeClosed           = ErrRegistry.Register("CLOSED", errx.TypeConflict, http.StatusConflict, "Interview round is already completed or cancelled")
	CodeCloseAction      = ErrRegistry.Register("CLOSE_ACTION", errx.TypeValidation, http.StatusBadRequest, "Rounds are completed or cancelled through their own actions")
	CodeWrongJob         = ErrRegistry.Register("WRONG_JOB", errx.TypeValidation, http.StatusBadRequest, "Candidate did not apply to this job")
	CodeMissingSlot      = ErrRegistry.Register("MISSING_SLOT", errx.TypeValidation, http.StatusBadRequest, "Date and interviewer are required to schedule")
	CodeNoRecording      = ErrRegistry.Register("NO_RECORDING", errx.TypeNotFound, http.StatusNotFound, "Interview round has no recording")
	CodeSpeechDisabled   = ErrRegistry.Register("SPEECH_DISABLED", errx.TypeBusiness, http.StatusServiceUnavailable, "Recording transcription is not configured")
	CodeTranscribeFailed = ErrRegistry.Register("TRANSCRIBE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Transcription provider failed")
)

// MaxRecordingBytes is the default limit for interview recordings
const MaxRecordingBytes = 100 * 1024 * 1024

func errClosed(r interview.Round) *errx.Error {
	return ErrRegistry.New(CodeClosed).
		WithDetail("id", int64(r.ID)).
		WithDetail("status", string(r.Status))
}

// checkOpen refuses to store a closed status outside Complete and Cancel
func checkOpen(r interview.Round) error {
	if st, ok := interview.ParseStatus(string(r.Status)); ok && st.Closed() {
		return ErrRegistry.New(CodeCloseAction).
			WithDetail("status", string(st)).
			WithDetail("actions", []string{"complete", "cancel"})
	}
	return nil
}

// checkReplacement keeps closed rounds immutable
func checkReplacement(existing, incoming interview.Round) error {
	if existing.Status.Closed() {
		return errClosed(existing)
	}
	return checkOpen(incoming)
}

// Service agenda rondas de entrevista, guarda grabaciones y las transcribe
type Service struct {
	records    *storesrv.Service[interview.Round]
	jobs       *jobsrv.Service
	candidates *candidatesrv.Service
	files      fsx.FileSystem
	stt        *speech.STTClient
	maxBytes   int64
}

// NewService wires interview rounds. A nil stt client leaves transcription
// disabled; maxBytes <= 0 uses MaxRecordingBytes.
func NewService(repo store.Repository[interview.Round], jobs *jobsrv.Service, candidates *candidatesrv.Service,
	files fsx.FileSystem, stt *speech.STTClient, maxBytes int64, opts ...storesrv.Option[interview.Round]) *Service {
	if maxBytes <= 0 {
		maxBytes = MaxRecordingBytes
	}
	if stt != nil {
		stt = stt.WithFileSystem(files)
	}
	s := &Service{jobs: jobs, candidates: candidates, files: files, stt: stt, maxBytes: maxBytes}
	opts = append([]storesrv.Option[interview.Round]{
		storesrv.WithCreateHook(s.onCreate),
		storesrv.WithUpdateHook(s.onUpdate),
		storesrv.WithUpdateCheck(checkReplacement),
		storesrv.WithMerge(KeepMedia),
		storesrv.WithDeleteHook(s.removeRecordingOf),
	}, opts...)
	s.records = storesrv.NewService(repo, interview.Adapter(), opts...)
	return s
}

func (s *Service) Records() *storesrv.Service[interview.Round] {
	return s.records
}

func (s *Service) onCreate(ctx context.Context, r interview.Round) (interview.Round, error) {
	if r.Status == "" {
		r.Status = interview.StatusPending
		if r.Date != "" {
			r.Status = interview.StatusScheduled
		}
	}
	if err := checkOpen(r); err != nil {
		return r, err
	}
	return s.onUpdate(ctx, r)
}

// onUpdate resolves the job and candidate names shown on the round
func (s *Service) onUpdate(ctx context.Context, r interview.Round) (interview.Round, error) {
	if _, ok := interview.ParseStatus(string(r.Status)); !ok {
		return r, ErrRegistry.New(CodeInvalidStatus).
			WithDetail("status", string(r.Status)).
			WithDetail("allowed", interview.StatusNames())
	}

	j, err := s.jobs.Records().Get(ctx, r.JobID)
	if err != nil {
		return r, err
	}
	r.JobTitle = j.Title

	if !r.CandidateID.IsZero() {
		c, err := s.candidates.Records().Get(ctx, r.CandidateID)
		if err != nil {
			return r, err
		}
		if c.JobID != r.JobID {
			return r, ErrRegistry.New(CodeWrongJob).
				WithDetail("candidate", int64(c.ID)).
				WithDetail("job", int64(r.JobID))
		}
		r.CandidateName = c.Name
	}
	return r, nil
}

// KeepMedia carries the recording and transcript into a replacement
func KeepMedia(existing, incoming interview.Round) interview.Round {
	incoming.Recording = existing.Recording
	incoming.Transcript = existing.Transcript
	return incoming
}

// ForJob lists the rounds of one job under the given criteria
func (s *Service) ForJob(ctx context.Context, jobID kernel.RecordID, c filter.Criteria) ([]interview.Round, error) {
	if _, err := s.jobs.Records().Get(ctx, jobID); err != nil {
		return nil, err
	}
	id := float64(jobID)
	byJob := filter.NewBuilder().NumericRange("jobId", filter.Range{Min: id, Max: id}).MustBuild()
	return s.records.List(ctx, c.And(byJob))
}

// Slot is when, with whom and where a round takes place
type Slot struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Interviewer string `json:"interviewer"`
	MeetingLink string `json:"meetingLink"`
}

// Schedule sets the slot of a pending round, or moves a scheduled one
func (s *Service) Schedule(ctx context.Context, actor string, id kernel.RecordID, slot Slot) (interview.Round, error) {
	if strings.TrimSpace(slot.Date) == "" || strings.TrimSpace(slot.Interviewer) == "" {
		return interview.Round{}, ErrRegistry.New(CodeMissingSlot)
	}
	return s.records.Change(ctx, actor, id, func(r interview.Round) (interview.Round, error) {
		if r.Status.Closed() {
			return r, errClosed(r)
		}
		r.Date = strings.TrimSpace(slot.Date)
		r.Time = strings.TrimSpace(slot.Time)
		r.Interviewer = strings.TrimSpace(slot.Interviewer)
		if link := strings.TrimSpace(slot.MeetingLink); link != "" {
			r.MeetingLink = link
		}
		r.Status = interview.StatusScheduled
		return r, nil
	})
}

// Outcome is the interviewer's verdict on a round
type Outcome struct {
	Remarks  string `json:"remarks"`
	Score    *int   `json:"score"`
	Duration string `json:"duration"`
}

// Complete cierra la ronda y avanza el progreso del candidato
func (s *Service) Complete(ctx context.Context, actor string, id kernel.RecordID, out Outcome) (interview.Round, error) {
	done, err := s.records.Change(ctx, actor, id, func(r interview.Round) (interview.Round, error) {
		if r.Status.Closed() {
			return r, errClosed(r)
		}
		r.Status = interview.StatusCompleted
		r.Remarks = strings.TrimSpace(out.Remarks)
		r.Score = out.Score
		if d := strings.TrimSpace(out.Duration); d != "" {
			r.Duration = d
		}
		return r, nil
	})
	if err != nil {
		return interview.Round{}, err
	}

	if !done.CandidateID.IsZero() {
		if _, err := s.candidates.CompleteRound(ctx, actor, done.CandidateID, done.Round); err != nil {
			return done, err
		}
	}
	logx.WithFields(logx.Fields{"round": done.Round, "job": int64(done.JobID), "candidate": int64(done.CandidateID)}).
		Info("interview round completed")
	return done, nil
}

func (s *Service) Cancel(ctx context.Context, actor string, id kernel.RecordID, reason string) (interview.Round, error) {
	return s.records.Change(ctx, actor, id, func(r interview.Round) (interview.Round, error) {
		if r.Status.Closed() {
			return r, errClosed(r)
		}
		r.Status = interview.StatusCancelled
		if reason = strings.TrimSpace(reason); reason != "" {
			r.Remarks = reason
		}
		return r, nil
	})
}

// Policy accepts audio and video recordings up to the configured size
func (s *Service) Policy() recruiting.Policy {
	return recruiting.Recordings(s.maxBytes)
}

// UploadRecording stores the recording of a round, replacing any previous one
func (s *Service) UploadRecording(ctx context.Context, actor string, id kernel.RecordID, upload recruiting.Upload) (interview.Round, error) {
	existing, err := s.records.Get(ctx, id)
	if err != nil {
		return interview.Round{}, err
	}

	policy := s.Policy()
	if _, err := policy.Check(upload.FileName, upload.Data); err != nil {
		metrics.RecordUpload(policy.Kind, err)
		return interview.Round{}, err
	}
	file, err := recruiting.Store(ctx, s.files, policy, fsx.Join("recordings", id.String()), upload.FileName, upload.Data, s.records.Now())
	if err != nil {
		return interview.Round{}, err
	}

	updated, err := s.records.Mutate(ctx, actor, id, func(r interview.Round) interview.Round {
		r.Recording = &file
		r.Transcript = ""
		return r
	})
	if err != nil {
		s.removeFile(ctx, file.Key)
		return interview.Round{}, err
	}
	if existing.HasRecording() {
		s.removeFile(ctx, existing.Recording.Key)
	}
	return updated, nil
}

// Recording returns the stored recording of a round
func (s *Service) Recording(ctx context.Context, id kernel.RecordID) (recruiting.File, []byte, error) {
	r, err := s.records.Get(ctx, id)
	if err != nil {
		return recruiting.File{}, nil, err
	}
	if !r.HasRecording() {
		return recruiting.File{}, nil, ErrRegistry.New(CodeNoRecording).WithDetail("id", int64(id))
	}
	data, err := s.files.ReadFile(ctx, r.Recording.Key)
	if err != nil {
		return recruiting.File{}, nil, err
	}
	return *r.Recording, data, nil
}

// TranscriptionEnabled reports whether a speech provider is configured
func (s *Service) TranscriptionEnabled() bool {
	return s.stt != nil
}

// Transcribe convierte la grabación de la ronda en texto y lo guarda
func (s *Service) Transcribe(ctx context.Context, actor string, id kernel.RecordID, language string) (interview.Round, error) {
	if !s.TranscriptionEnabled() {
		return interview.Round{}, ErrRegistry.New(CodeSpeechDisabled)
	}
	r, err := s.records.Get(ctx, id)
	if err != nil {
		return interview.Round{}, err
	}
	if !r.HasRecording() {
		return interview.Round{}, ErrRegistry.New(CodeNoRecording).WithDetail("id", int64(id))
	}

	opts := []speech.TranscriptionOption{
		speech.WithPrompt("Job interview for " + r.JobTitle + ", round: " + r.Round),
	}
	if language = strings.TrimSpace(language); language != "" {
		opts = append(opts, speech.WithLanguage(language))
	}
	transcript, err := s.stt.TranscribeFile(ctx, r.Recording.Key, opts...)
	metrics.RecordAICall("transcription", err)
	if err != nil {
		if _, ok := errx.As(err); ok {
			return interview.Round{}, err
		}
		return interview.Round{}, ErrRegistry.NewWithCause(CodeTranscribeFailed, err).WithDetail("id", int64(id))
	}

	return s.records.Mutate(ctx, actor, id, func(r interview.Round) interview.Round {
		r.Transcript = strings.TrimSpace(transcript.Text)
		return r
	})
}

func (s *Service) removeRecordingOf(ctx context.Context, r interview.Round) {
	if r.HasRecording() {
		s.removeFile(ctx, r.Recording.Key)
	}
}

func (s *Service) removeFile(ctx context.Context, key string) {
	if err := s.files.DeleteFile(ctx, key); err != nil && !fsx.IsNotFound(err) {
		logx.WithFields(logx.Fields{"key": key, "error": err}).Warn("failed to remove recording")
	}
}
