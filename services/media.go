package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/shared"
)

// Picture uploads are capped the same way the site's upload dialog caps them.
const maxImageSize = 5 * 1024 * 1024

type MediaService struct {
	context.DefaultService

	minioSvc *MinIOService
	baseURL  string
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadPictureImage validates and stores a picture image. Validation runs
// before any storage call: JPG or PNG, at most 5MB.
func (svc *MediaService) UploadPictureImage(pictureID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid file type. Please upload a JPG or PNG image.")
	}

	if file.Size > maxImageSize {
		return nil, shared.NewBadRequestError(nil, "File is too large. Maximum size is 5MB.")
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Failed to read uploaded file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	id, _ := uuid.NewV7()
	objectKey := fmt.Sprintf("pictures/%s/%s%s", pictureID, id.String(), ext)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	if _, err := svc.minioSvc.UploadFile(objectKey, src, file.Size, contentType); err != nil {
		return nil, shared.NewUpstreamError(err, "Failed to store image, please try again")
	}

	url, err := svc.minioSvc.GetFileURL(objectKey, 7*24*time.Hour)
	if err != nil {
		log.WithError(err).WithField("object_key", objectKey).Warn("Failed to presign image URL")
		url = fmt.Sprintf("%s/media/%s", svc.baseURL, objectKey)
	}

	return &dto.MediaUploadResponse{
		URL:         url,
		ObjectKey:   objectKey,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}

func (svc *MediaService) isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png"
}
