package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/shared"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(userID string) (*dto.UserProfileResponse, error)
}

type ClassServiceInterface interface {
	ListClasses(ctx context.Context, userID, subject string) (*dto.ClassCollectionResponse, error)
	CreateClass(userID string, req dto.CreateClassRequest) (*dto.ClassResponse, error)
	RenameClass(ctx context.Context, userID, subject, classID, newName string) error
	DeleteClass(ctx context.Context, userID, subject, classID string) error
	CurrentClass(ctx context.Context, subject string) (string, error)
	SetCurrentClass(ctx context.Context, subject, classID string) error
}

type CatalogServiceInterface interface {
	LoadActivities() (*dto.ActivityCollectionResponse, error)
	GetActivity(id string) (*model.Activity, error)
	CreateActivity(userID, category string) (*model.Activity, error)
	UpdateActivity(userID, activityID string, req dto.UpdateActivityRequest) (*model.Activity, error)
	DeleteActivity(ctx context.Context, userID, activityID string) error
}

type LedgerServiceInterface interface {
	Toggle(ctx context.Context, subject, classID, activityID string) (*dto.ToggleCompletionResponse, error)
	Completions(ctx context.Context, subject, classID string) (*dto.CompletionSetResponse, error)
	Recent(ctx context.Context, subject, classID string) (*dto.RecentCompletionsResponse, error)
	ResetAll(ctx context.Context, subject string, classIDs []string) error
}

type ProgressServiceInterface interface {
	GetProgress(ctx context.Context, subject, classID, userID, status, owner string) (*dto.ProgressResponse, error)
}

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, subject string, req dto.CreateReviewRequest) (*model.Review, error)
	GetWallet(ctx context.Context, subject string) (*dto.WalletResponse, error)
}

type MediaServiceInterface interface {
	UploadActivityBadge(userID, activityID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}

func requestUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(shared.UserID).(string)
	return userID
}

func requestSubject(c *fiber.Ctx) string {
	subject, _ := c.Locals(shared.SubjectID).(string)
	return subject
}
