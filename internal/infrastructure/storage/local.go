// Package storage implements the upload store used for package, vehicle and
// driver imagery plus itinerary PDFs.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload cap.
const MaxFileSize = 10 << 20 // 10 MiB

// ErrUnsupportedType is returned for files outside the mime allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrFileTooLarge is returned for files exceeding MaxFileSize.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

var allowedTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// StoredFile describes a successfully persisted upload.
type StoredFile struct {
	FieldName    string `json:"field_name"`
	OriginalName string `json:"original_name"`
	FileName     string `json:"file_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// LocalStore writes uploads to a directory on disk and serves them under a
// public URL prefix.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates the upload directory if needed and returns a store.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save validates and persists a single multipart file. The stored name is a
// uuid prefix plus the sanitized original name, so uploads can never collide
// or escape the uploads directory.
func (s *LocalStore) Save(fh *multipart.FileHeader) (*StoredFile, error) {
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	mimeType := fh.Header.Get("Content-Type")
	if _, ok := allowedTypes[mimeType]; !ok {
		return nil, ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + "-" + sanitizeName(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > MaxFileSize {
		_ = os.Remove(dst.Name())
		return nil, ErrFileTooLarge
	}

	return &StoredFile{
		FieldName:    "files",
		OriginalName: fh.Filename,
		FileName:     name,
		MimeType:     mimeType,
		Size:         written,
		URL:          s.urlPrefix + "/" + name,
	}, nil
}

func sanitizeName(name string) string {
	base := filepath.Base(name)
	return unsafeChars.ReplaceAllString(base, "-")
}
