package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidFile is returned for empty, traversal-shaped or disallowed
// filenames.
var ErrInvalidFile = errors.New("Invalid file")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LocalStorage stores uploaded images on local disk under per-kind
// subdirectories and returns the public URL path they are served from.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the base upload directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes the uploaded file under basePath/kind with a sanitized,
// uuid-prefixed filename and returns the URL path under /uploads/.
func (s *LocalStorage) Save(file *multipart.FileHeader, kind string) (string, error) {
	name, err := SanitizeFilename(file.Filename)
	if err != nil {
		return "", err
	}
	stored := uuid.New().String() + "_" + name

	dir := filepath.Join(s.basePath, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, stored))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	return "/uploads/" + kind + "/" + stored, nil
}

// SanitizeFilename strips any path components from a client-supplied filename
// and enforces the image extension whitelist.
func SanitizeFilename(raw string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(raw, "\\", "/"))
	if name == "" || name == "." || name == ".." {
		return "", ErrInvalidFile
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFile
	}
	return name, nil
}
