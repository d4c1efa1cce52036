// Package storage manages the exports directory: write-once PDF files
// addressed by generated names. Each export mints a distinct name, so
// there is never a concurrent-write conflict.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Document is a reference to one exported file.
type Document struct {
	FileName string
	Path     string
}

// PublicPath is the URL path the router serves the document under.
func (d Document) PublicPath() string {
	return "/exports/" + d.FileName
}

// ExportStore owns the directory exported documents are written to.
type ExportStore struct {
	dir string
}

func NewExportStore(dir string) *ExportStore {
	return &ExportStore{dir: dir}
}

// Dir returns the directory documents are written to.
func (s *ExportStore) Dir() string { return s.dir }

// Ensure creates the exports directory if it does not exist yet.
func (s *ExportStore) Ensure() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Create opens a new document file named after the city and the current
// time, e.g. travel-guide-new-york-1700000000000.pdf.
func (s *ExportStore) Create(city string) (*os.File, Document, error) {
	if err := s.Ensure(); err != nil {
		return nil, Document{}, fmt.Errorf("storage: exports dir: %w", err)
	}
	name := fmt.Sprintf("travel-guide-%s-%d.pdf", slug(city), time.Now().UnixMilli())
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, Document{}, fmt.Errorf("storage: create %s: %w", name, err)
	}
	return f, Document{FileName: name, Path: path}, nil
}

// Remove deletes a document, used to clean up after a failed write.
func (s *ExportStore) Remove(d Document) error {
	return os.Remove(d.Path)
}

// slug lowercases the city name and keeps only characters that are safe
// in a file name and a URL path.
func slug(city string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	var b strings.Builder
	for _, r := range city {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "trip"
	}
	return b.String()
}
