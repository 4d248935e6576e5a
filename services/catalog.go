package services

import (
	goContext "context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

// CatalogService owns the activity catalog: reads in creation order, seeds
// the static fallback list the first time the catalog is found empty, and
// keeps the completion ledgers consistent on deletes.
type CatalogService struct {
	context.DefaultService

	activityRepo  *repositories.ActivityRepository
	ledgerRepo    *repositories.LedgerRepository
	monitoringSvc *MonitoringService
}

const CATALOG_SVC = "catalog_svc"

func (svc CatalogService) Id() string {
	return CATALOG_SVC
}

func (svc *CatalogService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CatalogService) Start() error {
	sqlSvc := svc.Service(POSTGRES_SVC).(*PostgresService)
	redisSvc := svc.Service(REDIS_SVC).(*RedisService)

	svc.activityRepo = repositories.NewActivityRepository(sqlSvc.Db())
	svc.ledgerRepo = repositories.NewLedgerRepository(redisSvc)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// LoadActivities returns the catalog ordered by creation time. An empty
// catalog triggers the one-time seed; the transactional emptiness check in
// the repository keeps concurrent first loads from double-seeding.
func (svc *CatalogService) LoadActivities() (*dto.ActivityCollectionResponse, error) {
	activities, err := svc.activityRepo.ListOrdered()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load activities")
	}

	if len(activities) == 0 {
		seeded, err := svc.activityRepo.SeedIfEmpty(fallbackActivities())
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to seed activities")
		}
		if seeded {
			log.Println("Seeded activity catalog from fallback list")
			if svc.monitoringSvc != nil {
				svc.monitoringSvc.RecordCatalogSeed()
			}
		}

		activities, err = svc.activityRepo.ListOrdered()
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to load activities")
		}
	}

	return &dto.ActivityCollectionResponse{Activities: activities, Total: len(activities)}, nil
}

func (svc *CatalogService) GetActivity(id string) (*model.Activity, error) {
	activity, err := svc.activityRepo.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrActivityNotFound) {
			return nil, shared.NewNotFoundError(err, "Activity not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load activity")
	}
	return activity, nil
}

// Exists reports catalog membership for the ledger's toggle guard.
func (svc *CatalogService) Exists(activityID string) (bool, error) {
	return svc.activityRepo.Exists(activityID)
}

// Activities is the plain ordered read, no seeding.
func (svc *CatalogService) Activities() ([]model.Activity, error) {
	return svc.activityRepo.ListOrdered()
}

func (svc *CatalogService) CreateActivity(userID, category string) (*model.Activity, error) {
	if userID == "" {
		return nil, shared.NewUnauthorizedError(nil, "Sign in to create an activity")
	}

	activityID, _ := uuid.NewV7()
	activity := &model.Activity{
		ID:        activityID.String(),
		Slug:      fmt.Sprintf("%s-%d", category, time.Now().Unix()),
		Title:     shared.DefaultActivityTitles[category],
		Category:  category,
		CreatorID: &userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	created, err := svc.activityRepo.Create(activity)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create activity")
	}
	return created, nil
}

// UpdateActivity patches the creator's activity. Free text is trimmed and
// blanks become absent; the chapter pair and duration invariants are
// checked against the merged result before anything is written.
func (svc *CatalogService) UpdateActivity(userID, activityID string, req dto.UpdateActivityRequest) (*model.Activity, error) {
	if userID == "" {
		return nil, shared.NewUnauthorizedError(nil, "Sign in to edit an activity")
	}

	activity, err := svc.GetActivity(activityID)
	if err != nil {
		return nil, err
	}
	if activity.CreatorID == nil || *activity.CreatorID != userID {
		return nil, shared.NewForbiddenError(nil, "Only the creator can edit this activity")
	}

	merged := *activity
	fields := map[string]interface{}{"updated_at": time.Now()}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, shared.NewBadRequestError(nil, "Title cannot be empty")
		}
		merged.Title = title
		fields["title"] = title
	}
	applyOptional(req.Description, &merged.Description, fields, "description")
	applyOptional(req.Duration, &merged.Duration, fields, "duration")
	applyOptional(req.Chapter, &merged.Chapter, fields, "chapter")
	applyOptional(req.ChapterID, &merged.ChapterID, fields, "chapter_id")
	applyOptional(req.Difficulty, &merged.Difficulty, fields, "difficulty")
	applyOptional(req.Participants, &merged.Participants, fields, "participants")
	applyOptional(req.Complexity, &merged.Complexity, fields, "complexity")

	if err := validateActivityFields(merged.Category, merged.Duration, merged.Chapter, merged.ChapterID); err != nil {
		return nil, shared.NewBadRequestError(err, err.Error())
	}

	if err := svc.activityRepo.Update(activityID, fields); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update activity")
	}

	merged.UpdatedAt = fields["updated_at"].(time.Time)
	return &merged, nil
}

// DeleteActivity removes the row, then prunes the id from every class's
// completion set and history so no ledger dangles.
func (svc *CatalogService) DeleteActivity(ctx goContext.Context, userID, activityID string) error {
	if userID == "" {
		return shared.NewUnauthorizedError(nil, "Sign in to delete an activity")
	}

	activity, err := svc.GetActivity(activityID)
	if err != nil {
		return err
	}
	if activity.CreatorID == nil || *activity.CreatorID != userID {
		return shared.NewForbiddenError(nil, "Only the creator can delete this activity")
	}

	if err := svc.activityRepo.Delete(activityID); err != nil {
		return shared.NewInternalError(err, "Failed to delete activity")
	}

	if err := svc.ledgerRepo.RemoveActivity(ctx, activityID); err != nil {
		return shared.NewInternalError(err, "Activity deleted but ledgers could not be pruned")
	}
	return nil
}

func (svc *CatalogService) SetBadgeURL(activityID, url string) error {
	fields := map[string]interface{}{"badge_url": url, "updated_at": time.Now()}
	if err := svc.activityRepo.Update(activityID, fields); err != nil {
		return shared.NewInternalError(err, "Failed to record badge")
	}
	return nil
}

// applyOptional trims an incoming optional field and normalizes blanks to
// absent, writing NULL instead of "".
func applyOptional(in *string, target **string, fields map[string]interface{}, column string) {
	if in == nil {
		return
	}
	trimmed := strings.TrimSpace(*in)
	if trimmed == "" {
		*target = nil
		fields[column] = nil
		return
	}
	*target = &trimmed
	fields[column] = trimmed
}

func validateActivityFields(category string, duration, chapter, chapterID *string) error {
	if (chapter == nil) != (chapterID == nil) {
		return errors.New("chapter and chapter_id must be set together")
	}

	if duration == nil {
		if category == shared.CategoryMini || category == shared.CategoryClass {
			return fmt.Errorf("duration is required for %s activities", category)
		}
		return nil
	}

	for _, allowed := range shared.AllowedDurations[category] {
		if *duration == allowed {
			return nil
		}
	}
	return fmt.Errorf("duration %q is not valid for %s activities", *duration, category)
}
