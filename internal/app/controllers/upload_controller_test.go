package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
)

// recordingStorage counts writes so tests can assert that validation
// rejects a file before any storage call
type recordingStorage struct {
	saved []string
}

func (s *recordingStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	s.saved = append(s.saved, subPath)
	return "/uploads/" + subPath + "/" + fileHeader.Filename, nil
}

func (s *recordingStorage) DeleteFile(fileURL string) error { return nil }

// uploadStudentStore records document URL writes
type uploadStudentStore struct {
	urls map[string]string // column -> url
}

func (s *uploadStudentStore) GetByProfileID(_ context.Context, profileID string) (*models.Student, error) {
	return &models.Student{ID: "st-1", ProfileID: profileID}, nil
}

func (s *uploadStudentStore) GetWithProfile(ctx context.Context, profileID string) (*models.Student, error) {
	return s.GetByProfileID(ctx, profileID)
}

func (s *uploadStudentStore) UpdateProfile(_ context.Context, profileID string, req *dto.UpdateStudentProfileRequest) error {
	return nil
}

func (s *uploadStudentStore) SetDocumentURL(_ context.Context, profileID, column, url string) error {
	s.urls[column] = url
	return nil
}

// uploadProfileStore satisfies the profile dependency of the student service
type uploadProfileStore struct{}

func (uploadProfileStore) Create(context.Context, *models.Profile) error { return nil }
func (uploadProfileStore) GetByID(context.Context, string) (*models.Profile, error) {
	return nil, nil
}
func (uploadProfileStore) Review(context.Context, string, string, models.ReviewStatus, time.Time) (bool, error) {
	return false, nil
}
func (uploadProfileStore) UpdateNames(context.Context, string, string, string) error { return nil }
func (uploadProfileStore) Delete(context.Context, string) error                      { return nil }

func newUploadTestRouter() (*gin.Engine, *recordingStorage, *uploadStudentStore) {
	gin.SetMode(gin.TestMode)

	storage := &recordingStorage{}
	students := &uploadStudentStore{urls: map[string]string{}}
	studentService := services.NewStudentService(students, uploadProfileStore{}, zerolog.Nop())
	controller := NewUploadController(storage, studentService, zerolog.Nop())

	router := gin.New()
	router.POST("/upload", func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, "asha-profile")
		c.Set(middleware.ContextRole, models.RoleStudent)
	}, controller.Upload)
	return router, storage, students
}

// multipartUpload builds a request body with an explicit per-part
// content type and a payload of the given size
func multipartUpload(t *testing.T, fileType, fileName, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("could not create form part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatalf("could not write form part: %v", err)
	}
	if err := writer.WriteField("fileType", fileType); err != nil {
		t.Fatalf("could not write fileType field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("could not close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postUpload(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestUploadResumeRecordsURL(t *testing.T) {
	router, storage, students := newUploadTestRouter()

	body, contentType := multipartUpload(t, "resume", "resume.pdf", "application/pdf", 1024)
	recorder := postUpload(router, body, contentType)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if len(storage.saved) != 1 || storage.saved[0] != "resume" {
		t.Errorf("expected one resume write, got %v", storage.saved)
	}
	if students.urls["resume_url"] == "" {
		t.Error("resume URL not recorded on the student row")
	}

	var resp struct {
		Data dto.UploadResponse `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if resp.Data.FileName != "resume.pdf" || resp.Data.FileType != "resume" {
		t.Errorf("unexpected payload %+v", resp.Data)
	}
}

func TestUploadRejectsDisallowedMimeType(t *testing.T) {
	router, storage, _ := newUploadTestRouter()

	body, contentType := multipartUpload(t, "resume", "resume.gif", "image/gif", 1024)
	recorder := postUpload(router, body, contentType)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if len(storage.saved) != 0 {
		t.Error("rejected file must never reach storage")
	}
}

func TestUploadRejectsUnknownFileType(t *testing.T) {
	router, storage, _ := newUploadTestRouter()

	body, contentType := multipartUpload(t, "transcript", "transcript.pdf", "application/pdf", 1024)
	recorder := postUpload(router, body, contentType)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if len(storage.saved) != 0 {
		t.Error("rejected file must never reach storage")
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	router, storage, _ := newUploadTestRouter()

	body, contentType := multipartUpload(t, "offer_letter", "offer.pdf", "application/pdf", maxUploadSize+1)
	recorder := postUpload(router, body, contentType)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if len(storage.saved) != 0 {
		t.Error("oversize file must never reach storage")
	}
}

func TestUploadCertificateSkipsStudentRow(t *testing.T) {
	router, storage, students := newUploadTestRouter()

	body, contentType := multipartUpload(t, "certificate", "cert.png", "image/png", 1024)
	recorder := postUpload(router, body, contentType)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if len(storage.saved) != 1 {
		t.Fatalf("expected one storage write, got %d", len(storage.saved))
	}
	if len(students.urls) != 0 {
		t.Errorf("certificates must not touch the student row, got %v", students.urls)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	router, _, _ := newUploadTestRouter()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("fileType", "resume"); err != nil {
		t.Fatalf("could not write field: %v", err)
	}
	writer.Close()

	recorder := postUpload(router, body, writer.FormDataContentType())
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
