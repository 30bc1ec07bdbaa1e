package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/middleware"
	"github.com/placemate/placemate/internal/pkg/filestorage"
)

// maxUploadSize caps uploads at 5MB
const maxUploadSize = 5 << 20

// allowedMimeTypes whitelists MIME types per file type. Validation runs
// before any storage write.
var allowedMimeTypes = map[string]map[string]bool{
	"resume": {
		"application/pdf": true,
	},
	"profile_pic": {
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	},
	"certificate": {
		"application/pdf": true,
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
	},
	"offer_letter": {
		"application/pdf": true,
	},
}

// UploadController handles document uploads
type UploadController struct {
	storage        filestorage.FileStorage
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage, studentService *services.StudentService, logger zerolog.Logger) *UploadController {
	return &UploadController{
		storage:        storage,
		studentService: studentService,
		logger:         logger,
	}
}

// Upload stores a document and, for resumes and profile pictures,
// records the URL on the caller's student row
// @Summary Upload a document
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param fileType formData string true "Document type" Enums(resume, profile_pic, certificate, offer_letter)
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown file type, disallowed MIME type or oversize file"
// @Security BearerAuth
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileType := ctx.PostForm("fileType")
	allowed, ok := allowedMimeTypes[fileType]
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown file type").
			WithField("fileType").
			WithDetails("fileType must be one of resume, profile_pic, certificate, offer_letter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowed[contentType] {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			fmt.Sprintf("MIME type %s is not allowed for %s uploads", contentType, fileType)).
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > maxUploadSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File exceeds the 5MB size limit").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileURL, err := c.storage.SaveFile(fileHeader, fileType)
	if err != nil {
		c.logger.Error().Err(err).Str("fileType", fileType).Msg("File storage write failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.RecordDocument(ctx.Request.Context(), middleware.CallerProfileID(ctx), fileType, fileURL); err != nil {
		c.logger.Warn().Err(err).Str("fileType", fileType).Msg("Could not record document URL on student row")
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.UploadResponse{
		Message:  "File uploaded successfully",
		FileURL:  fileURL,
		FileName: fileHeader.Filename,
		FileSize: fileHeader.Size,
		FileType: fileType,
	}})
}
