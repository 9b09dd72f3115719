package file

import (
	"context"
	"mime"
	"net/http"
	"path"
	"strings"
)

// DefaultMaxSize caps how much of an asset is read into memory.
const DefaultMaxSize int64 = 5 << 20

// Asset is a file read fully into memory.
type Asset struct {
	Path        string
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the asset length in bytes.
func (a *Asset) Size() int64 {
	return int64(len(a.Data))
}

// Reader is a read-only asset store.
type Reader interface {
	// Read loads the asset at path.
	Read(ctx context.Context, path string) (*Asset, error)
	// Exists reports whether path refers to a readable file.
	Exists(ctx context.Context, path string) bool
}

// cleanKey normalizes a slash-separated asset path and rejects traversal.
func cleanKey(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	cleaned := path.Clean("/" + p)[1:]
	if cleaned == "" {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// detectContentType prefers the extension and falls back to sniffing.
func detectContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
