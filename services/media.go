package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/alphabatem/common/context"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

// MediaService stores badge art for activities. Badges are keyed by the
// activity slug, the stable secondary key the app uses for badge display.
type MediaService struct {
	context.DefaultService

	catalogSvc *CatalogService
	minioSvc   *MinIOService
	baseURL    string
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
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadActivityBadge stores a badge image for the creator's activity and
// records its URL on the catalog row.
func (svc *MediaService) UploadActivityBadge(userID, activityID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if userID == "" {
		return nil, shared.NewUnauthorizedError(nil, "Sign in to upload a badge")
	}

	activity, err := svc.catalogSvc.GetActivity(activityID)
	if err != nil {
		return nil, err
	}
	if activity.CreatorID == nil || *activity.CreatorID != userID {
		return nil, shared.NewForbiddenError(nil, "Only the creator can upload a badge")
	}

	if !isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image format. Supported: PNG, JPG, SVG, WEBP")
	}
	if file.Size > 5*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Badge image too large. Maximum size: 5MB")
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to read upload")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("badges/%s%s", activity.Slug, ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := svc.minioSvc.UploadFile(objectName, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store badge")
	}

	url := fmt.Sprintf("%s/media/%s", svc.baseURL, objectName)
	if err := svc.catalogSvc.SetBadgeURL(activityID, url); err != nil {
		return nil, err
	}

	return &dto.MediaUploadResponse{
		ActivityID: activityID,
		Slug:       activity.Slug,
		URL:        url,
		Size:       file.Size,
	}, nil
}

func isValidImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".svg", ".webp":
		return true
	}
	return false
}
