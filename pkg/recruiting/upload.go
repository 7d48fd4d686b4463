package recruiting

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrRegistry = errx.NewRegistry("UPLOAD")

var (
	CodeEmptyFile       = ErrRegistry.Register("EMPTY_FILE", errx.TypeValidation, http.StatusBadRequest, "Uploaded file is empty")
	CodeFileTooLarge    = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusRequestEntityTooLarge, "Uploaded file is too large")
	CodeInvalidFileType = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusUnsupportedMediaType, "File type is not allowed here")
)

// MaxDocumentBytes is the 10 MB limit of the upload screens
const MaxDocumentBytes = 10 * 1024 * 1024

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// Upload is one received file
type Upload struct {
	FileName string
	Data     []byte
}

// Policy decides which uploads a screen accepts
type Policy struct {
	Kind     string
	MaxBytes int64
	// Allowed content types; a trailing "/" allows a whole family ("audio/")
	Allowed []string
}

// Documents accepts the resume and JD formats: .pdf, .doc and .docx
func Documents(kind string, maxBytes int64) Policy {
	return Policy{Kind: kind, MaxBytes: maxBytes, Allowed: []string{MimePDF, MimeDOC, MimeDOCX}}
}

// Recordings accepts audio and video interview recordings
func Recordings(maxBytes int64) Policy {
	return Policy{Kind: "recording", MaxBytes: maxBytes, Allowed: []string{"audio/", "video/"}}
}

// Check sniffs the content and returns its content type
func (p Policy) Check(fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrRegistry.New(CodeEmptyFile).WithDetail("file", fileName)
	}
	if p.MaxBytes > 0 && int64(len(data)) > p.MaxBytes {
		return "", ErrRegistry.New(CodeFileTooLarge).
			WithDetail("file", fileName).
			WithDetail("size", len(data)).
			WithDetail("max_bytes", p.MaxBytes)
	}

	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if p.allows(m.String()) {
			return baseType(m.String()), nil
		}
	}
	return "", ErrRegistry.New(CodeInvalidFileType).
		WithDetail("file", fileName).
		WithDetail("detected", mt.String()).
		WithDetail("allowed", p.Allowed)
}

func (p Policy) allows(detected string) bool {
	base := baseType(detected)
	for _, a := range p.Allowed {
		if strings.HasSuffix(a, "/") {
			if strings.HasPrefix(base, a) {
				return true
			}
			continue
		}
		if mimetype.EqualsAny(base, a) {
			return true
		}
	}
	return false
}

func baseType(m string) string {
	base, _, _ := strings.Cut(m, ";")
	return strings.TrimSpace(base)
}

// Store checks an upload against the policy and writes it under prefix with a
// generated key, keeping the original extension.
func Store(ctx context.Context, fs fsx.FileSystem, p Policy, prefix, fileName string, data []byte, now time.Time) (File, error) {
	contentType, err := p.Check(fileName, data)
	if err != nil {
		metrics.RecordUpload(p.Kind, err)
		return File{}, err
	}

	key := fsx.Join(prefix, uuid.NewString()+strings.ToLower(filepath.Ext(fileName)))
	if err := fs.WriteFile(ctx, key, data); err != nil {
		metrics.RecordUpload(p.Kind, err)
		return File{}, err
	}

	metrics.RecordUpload(p.Kind, nil)
	return File{
		Name:        filepath.Base(fileName),
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedAt:  kernel.Today(now),
	}, nil
}

// DisplayName turns "JOHN_DOE-resume.pdf" into "JOHN DOE resume"
func DisplayName(fileName string) string {
	name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	name = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
