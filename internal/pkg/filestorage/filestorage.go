package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for storing uploaded files
type FileStorage interface {
	// SaveFile stores an uploaded file under a subdirectory and returns
	// the URL it is reachable at
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file by its URL
	DeleteFile(fileURL string) error
}
