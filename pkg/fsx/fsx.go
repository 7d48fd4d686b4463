package fsx

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
)

// FileReader lee archivos almacenados
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileWriter escribe y elimina archivos
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error
}

// FileSystem es el almacenamiento de archivos subidos (local o S3)
type FileSystem interface {
	FileReader
	FileWriter
	Exists(ctx context.Context, path string) (bool, error)
	Stat(ctx context.Context, path string) (FileInfo, error)
}

type FileInfo struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("FSX")

var (
	CodeFileNotFound = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "File not found")
	CodeInvalidPath  = ErrRegistry.Register("INVALID_PATH", errx.TypeValidation, http.StatusBadRequest, "Invalid file path")
	CodeIOFailed     = ErrRegistry.Register("IO_FAILED", errx.TypeInternal, http.StatusInternalServerError, "File storage operation failed")
)

func ErrFileNotFound(p string) *errx.Error {
	return ErrRegistry.New(CodeFileNotFound).WithDetail("path", p)
}

func ErrInvalidPath(p string) *errx.Error {
	return ErrRegistry.New(CodeInvalidPath).WithDetail("path", p)
}

func ErrIOFailed(op, p string, err error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeIOFailed, err).
		WithDetail("op", op).
		WithDetail("path", p)
}

func IsNotFound(err error) bool {
	return errx.HasCode(err, CodeFileNotFound)
}

// Clean normalizes a slash separated key and rejects paths escaping the root
func Clean(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return "", ErrInvalidPath(p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath(p)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "", ErrInvalidPath(p)
	}
	return cleaned, nil
}

// Join builds a storage key from segments
func Join(parts ...string) string {
	return strings.TrimPrefix(path.Join(parts...), "/")
}
