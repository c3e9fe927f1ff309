// Package storage persists uploaded files and pairs them with their
// database rows. A row and its file are two independently-failing
// resources with no shared transaction: the row is authoritative, file
// cleanup is best-effort.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/studify/studify-api/internal/constants"
)

var (
	// ErrFileType is returned when the extension or the declared
	// content type is not on the policy's allow-list.
	ErrFileType = errors.New("tipo de archivo no permitido")
	// ErrFileTooLarge is returned when the upload exceeds the ceiling.
	ErrFileTooLarge = errors.New("el archivo supera el tamaño máximo permitido")
)

// Policy describes what a feature area accepts and where it stores it.
// AllowedTypes maps a lowercase extension to the declared content types
// accepted for it; both the extension and the content type must match.
type Policy struct {
	Dir          string
	AllowedTypes map[string][]string
	MaxSize      int64
}

// Certificates accepts a single PDF of at most 300 KB.
var Certificates = Policy{
	Dir: constants.CertificateDir,
	AllowedTypes: map[string][]string{
		".pdf": {"application/pdf"},
	},
	MaxSize: constants.MaxCertificateSize,
}

// Resources accepts PDF, DOCX and PPTX study material.
var Resources = Policy{
	Dir: constants.ResourceDir,
	AllowedTypes: map[string][]string{
		".pdf":  {"application/pdf"},
		".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		".pptx": {"application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	},
	MaxSize: constants.MaxResourceSize,
}

var whitespace = regexp.MustCompile(`\s+`)

// Store writes and removes uploaded files under a fixed root.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Save validates the upload against the policy and persists it under a
// collision-resistant name. It returns the serving-root-relative path
// (e.g. "/uploads/certificates/1700000000000-cert.pdf").
func (s *Store) Save(fh *multipart.FileHeader, p Policy) (string, error) {
	name := filepath.Base(fh.Filename)
	ext := strings.ToLower(filepath.Ext(name))

	allowed, ok := p.AllowedTypes[ext]
	if !ok {
		return "", ErrFileType
	}

	declared := fh.Header.Get("Content-Type")
	if mediaType, _, found := strings.Cut(declared, ";"); found {
		declared = mediaType
	}
	declared = strings.TrimSpace(declared)
	if !contains(allowed, declared) {
		return "", ErrFileType
	}

	if fh.Size > p.MaxSize {
		return "", ErrFileTooLarge
	}

	// Timestamp prefix keeps concurrent uploads from colliding
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), whitespace.ReplaceAllString(name, "-"))
	dir := filepath.Join(s.root, filepath.FromSlash(p.Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, stored)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + path.Join(p.Dir, stored), nil
}

// Remove deletes a stored file given its serving path.
func (s *Store) Remove(servingPath string) error {
	full, err := s.resolve(servingPath)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// resolve maps a serving path back to a filesystem path, rejecting
// anything that escapes the upload root.
func (s *Store) resolve(servingPath string) (string, error) {
	clean := path.Clean("/" + servingPath)
	if !strings.HasPrefix(clean, "/uploads/") {
		return "", fmt.Errorf("invalid stored path %q", servingPath)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
