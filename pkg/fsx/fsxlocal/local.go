package fsxlocal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/talentdesk/pkg/fsx"
)

// LocalFileSystem guarda los archivos bajo un directorio base
type LocalFileSystem struct {
	basePath string
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)

// NewLocalFileSystem crea el directorio base si no existe.
// Un basePath vacío usa el directorio de trabajo.
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	if basePath == "" {
		basePath = "."
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fsx.ErrIOFailed("abs", basePath, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fsx.ErrIOFailed("mkdir", abs, err)
	}
	return &LocalFileSystem{basePath: abs}, nil
}

func (l *LocalFileSystem) GetBasePath() string {
	return l.basePath
}

func (l *LocalFileSystem) resolve(p string) (string, error) {
	key, err := fsx.Clean(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.basePath, filepath.FromSlash(key)), nil
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	rc, err := l.ReadFileStream(ctx, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fsx.ErrIOFailed("read", p, err)
	}
	return data, nil
}

func (l *LocalFileSystem) ReadFileStream(_ context.Context, p string) (io.ReadCloser, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fsx.ErrFileNotFound(p)
		}
		return nil, fsx.ErrIOFailed("open", p, err)
	}
	return f, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	return l.WriteFileStream(ctx, p, bytes.NewReader(data))
}

// WriteFileStream escribe a un archivo temporal y lo renombra al terminar
func (l *LocalFileSystem) WriteFileStream(_ context.Context, p string, r io.Reader) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fsx.ErrIOFailed("mkdir", p, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fsx.ErrIOFailed("create", p, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fsx.ErrIOFailed("write", p, err)
	}
	if err := tmp.Close(); err != nil {
		return fsx.ErrIOFailed("close", p, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fsx.ErrIOFailed("rename", p, err)
	}
	return nil
}

func (l *LocalFileSystem) DeleteFile(_ context.Context, p string) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fsx.ErrFileNotFound(p)
		}
		return fsx.ErrIOFailed("delete", p, err)
	}
	return nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, p string) (bool, error) {
	_, err := l.Stat(ctx, p)
	if err == nil {
		return true, nil
	}
	if fsx.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (l *LocalFileSystem) Stat(_ context.Context, p string) (fsx.FileInfo, error) {
	full, err := l.resolve(p)
	if err != nil {
		return fsx.FileInfo{}, err
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fsx.FileInfo{}, fsx.ErrFileNotFound(p)
		}
		return fsx.FileInfo{}, fsx.ErrIOFailed("stat", p, err)
	}
	if info.IsDir() {
		return fsx.FileInfo{}, fsx.ErrFileNotFound(p)
	}
	return fsx.FileInfo{Path: p, Size: info.Size(), ModTime: info.ModTime()}, nil
}
