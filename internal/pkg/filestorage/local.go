package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/placemate/placemate/internal/pkg/logger"
)

// LocalStorage saves uploaded files to the local filesystem and serves
// them back through the static /uploads route.
type LocalStorage struct {
	basePath string // Root directory files are written under
	baseURL  string // Prepended to stored paths to form accessible URLs
}

// NewLocalStorage creates a LocalStorage rooted at basePath
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores a file under basePath/subPath with a collision-free name
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := strings.TrimRight(ls.baseURL, "/")
	if subPath != "" {
		accessiblePath += "/" + subPath
	}
	accessiblePath += "/" + uniqueFilename

	return accessiblePath, nil
}

// DeleteFile removes a stored file by its URL
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	relative := strings.TrimPrefix(fileURL, strings.TrimRight(ls.baseURL, "/"))
	relative = strings.TrimPrefix(relative, "/")
	if relative == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, relative)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}
