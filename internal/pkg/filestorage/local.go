package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/emrek/campusconnect/internal/pkg/apperrors"
	"github.com/emrek/campusconnect/internal/pkg/logger"
)

// allowedExtensions are the accepted profile image extensions, compared
// case-insensitively.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// LocalStorage saves profile images to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the root directory of the storage
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// AllowedExtension reports whether the filename carries an accepted image
// extension.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeFilename strips path components and any character outside
// [A-Za-z0-9_.-] from a client-supplied filename. Spaces become underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._-")
}

// SaveProfileImage stores an uploaded image under a name derived from the
// student's enrollment number and the sanitized original filename,
// overwriting any prior file of the same name. Files with a disallowed
// extension are rejected with apperrors.ErrUnsupportedFileType.
func (ls *LocalStorage) SaveProfileImage(fileHeader *multipart.FileHeader, enrollmentNo string) (string, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}

	if !AllowedExtension(fileHeader.Filename) {
		logger.Warn().Str("filename", fileHeader.Filename).Str("enrollmentNo", enrollmentNo).
			Msg("Rejected upload with disallowed extension")
		return "", apperrors.ErrUnsupportedFileType
	}

	sanitized := SanitizeFilename(fileHeader.Filename)
	if sanitized == "" {
		return "", apperrors.ErrUnsupportedFileType
	}

	filename := fmt.Sprintf("%s_%s", enrollmentNo, sanitized)
	dstPath := filepath.Join(ls.basePath, filename)

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("Profile image saved")
	return filename, nil
}
