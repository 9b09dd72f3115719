package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage reads assets from a directory on disk. All reads are
// confined to the base directory.
type LocalStorage struct {
	baseDir string
	maxSize int64
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalMaxSize overrides DefaultMaxSize.
func WithLocalMaxSize(n int64) LocalOption {
	return func(s *LocalStorage) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// NewLocalStorage creates a store rooted at baseDir. The directory must
// exist.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, abs)
	}

	s := &LocalStorage{baseDir: abs, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Read loads the file at p relative to the base directory.
func (s *LocalStorage) Read(ctx context.Context, p string) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, abs, err := s.resolvePath(p)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, key)
	}
	if info.Size() > s.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, key)
	}

	data, err := io.ReadAll(io.LimitReader(f, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, key)
	}

	return &Asset{
		Path:        key,
		Filename:    path.Base(key),
		ContentType: detectContentType(key, data),
		Data:        data,
	}, nil
}

// Exists reports whether p is a regular file under the base directory.
func (s *LocalStorage) Exists(ctx context.Context, p string) bool {
	if ctx.Err() != nil {
		return false
	}
	_, abs, err := s.resolvePath(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && !info.IsDir()
}

func (s *LocalStorage) resolvePath(p string) (string, string, error) {
	key, err := cleanKey(p)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", err, p)
	}

	abs := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
	}
	return key, abs, nil
}
