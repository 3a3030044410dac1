// Package uploads persists client-submitted image files and exposes their
// public paths.
package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"glimpse/internal/models"

	"github.com/google/uuid"
)

// allowedExtensions are the image file extensions accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Saver writes uploaded images to a directory served statically under /images.
type Saver struct {
	dir string
}

// NewSaver returns a Saver writing into dir, creating it if needed.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *Saver) Dir() string {
	return s.dir
}

// Save persists a single uploaded image under a generated filename and
// returns its public path ("/images/<name>"). The original filename is only
// used for its extension; the stored name is a UUID so uploads never collide
// or traverse outside the upload directory.
func (s *Saver) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", models.NewValidationError("uploaded file must be an image")
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer func() { _ = dst.Close() }()

	src, err := file.Open()
	if err != nil {
		return "", models.NewValidationError("unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", models.NewInternalError(err)
	}

	return path.Join("/images", name), nil
}
