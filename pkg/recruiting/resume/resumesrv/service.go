package resumesrv

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeInvalidStatus = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown resume status")
	CodeNoFile        = ErrRegistry.Register("NO_FILE", errx.TypeNotFound, http.StatusNotFound, "Resume has no uploaded file")
	CodeNoFiles       = ErrRegistry.Register("NO_FILES", errx.TypeValidation, http.StatusBadRequest, "Select at least one file to upload")
)

func ErrInvalidStatus(status string) *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus).
		WithDetail("status", status).
		WithDetail("allowed", resume.Statuses())
}

// Service gestiona los currículums y sus archivos
type Service struct {
	records  *storesrv.Service[resume.Resume]
	files    fsx.FileSystem
	maxBytes int64
}

// NewService wires the resume collection with file storage.
// maxBytes <= 0 falls back to the 10 MB limit of the upload screen.
func NewService(repo store.Repository[resume.Resume], files fsx.FileSystem, maxBytes int64, opts ...storesrv.Option[resume.Resume]) *Service {
	if maxBytes <= 0 {
		maxBytes = recruiting.MaxDocumentBytes
	}
	s := &Service{files: files, maxBytes: maxBytes}
	opts = append([]storesrv.Option[resume.Resume]{
		storesrv.WithCreateHook(Defaults()),
		storesrv.WithUpdateHook(Defaults()),
		storesrv.WithMerge(KeepFile),
		storesrv.WithDeleteHook(s.removeFileOf),
	}, opts...)
	s.records = storesrv.NewService(repo, resume.Adapter(), opts...)
	return s
}

// Records exposes the generic CRUD and filtering of the collection
func (s *Service) Records() *storesrv.Service[resume.Resume] {
	return s.records
}

// Defaults gives new resumes the NEW status and rejects unknown ones
func Defaults() storesrv.Hook[resume.Resume] {
	return func(_ context.Context, r resume.Resume) (resume.Resume, error) {
		if r.Status == "" {
			r.Status = resume.StatusNew
			return r, nil
		}
		st, ok := resume.ParseStatus(string(r.Status))
		if !ok {
			return r, ErrInvalidStatus(string(r.Status))
		}
		r.Status = st
		return r, nil
	}
}

// KeepFile preserves the stored file metadata; clients never send it
func KeepFile(existing, incoming resume.Resume) resume.Resume {
	incoming.File = existing.File
	return incoming
}

// UpdateStatus moves a resume to another pipeline status
func (s *Service) UpdateStatus(ctx context.Context, actor string, id kernel.RecordID, status string) (resume.Resume, error) {
	st, ok := resume.ParseStatus(status)
	if !ok {
		return resume.Resume{}, ErrInvalidStatus(status)
	}
	return s.records.Mutate(ctx, actor, id, func(r resume.Resume) resume.Resume {
		r.Status = st
		return r
	})
}

// ByCode finds a resume by its "RSM" code
func (s *Service) ByCode(ctx context.Context, code string) (resume.Resume, error) {
	id, ok := resume.ParseCode(code)
	if !ok {
		return resume.Resume{}, store.ErrNotFound(resume.Entity, 0).WithDetail("code", code)
	}
	return s.records.Get(ctx, id)
}

// Upload valida todos los archivos antes de guardar ninguno y crea un
// currículum NEW por archivo, con el nombre tomado del archivo.
func (s *Service) Upload(ctx context.Context, actor string, uploads []recruiting.Upload) ([]resume.Resume, error) {
	if len(uploads) == 0 {
		return nil, ErrRegistry.New(CodeNoFiles)
	}

	policy := recruiting.Documents("resume", s.maxBytes)
	for _, u := range uploads {
		if _, err := policy.Check(u.FileName, u.Data); err != nil {
			return nil, err
		}
	}

	created := make([]resume.Resume, 0, len(uploads))
	for _, u := range uploads {
		file, err := recruiting.Store(ctx, s.files, policy, "resumes", u.FileName, u.Data, s.records.Now())
		if err != nil {
			return created, err
		}

		r, err := s.records.Create(ctx, actor, resume.Resume{
			Name:       recruiting.DisplayName(u.FileName),
			Status:     resume.StatusNew,
			UploadedBy: actor,
			File:       &file,
		})
		if err != nil {
			s.removeFile(ctx, file.Key)
			return created, err
		}
		created = append(created, r)
	}

	logx.WithFields(logx.Fields{"count": len(created), "actor": actor}).Info("resumes uploaded")
	return created, nil
}

// Download returns the stored file of a resume
func (s *Service) Download(ctx context.Context, id kernel.RecordID) (recruiting.File, []byte, error) {
	r, err := s.records.Get(ctx, id)
	if err != nil {
		return recruiting.File{}, nil, err
	}
	if !r.HasFile() {
		return recruiting.File{}, nil, ErrRegistry.New(CodeNoFile).WithDetail("id", int64(id))
	}

	data, err := s.files.ReadFile(ctx, r.File.Key)
	if err != nil {
		return recruiting.File{}, nil, err
	}
	return *r.File, data, nil
}

// removeFileOf drops the file of a deleted resume
func (s *Service) removeFileOf(ctx context.Context, r resume.Resume) {
	if r.HasFile() {
		s.removeFile(ctx, r.File.Key)
	}
}

func (s *Service) removeFile(ctx context.Context, key string) {
	if err := s.files.DeleteFile(ctx, key); err != nil && !fsx.IsNotFound(err) {
		logx.WithFields(logx.Fields{"key": key, "error": err}).Warn("failed to remove resume file")
	}
}
