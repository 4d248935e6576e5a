package services

import (
	goContext "context"
	"math/rand/v2"

	"github.com/alphabatem/common/context"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

// activityCatalog is the slice of the catalog the ledger needs.
type activityCatalog interface {
	Exists(activityID string) (bool, error)
	Activities() ([]model.Activity, error)
}

// LedgerService tracks which activities each class has marked complete.
// Completion is independent per class: the same activity can be complete
// in one class and incomplete in another.
type LedgerService struct {
	context.DefaultService

	ledgerRepo    *repositories.LedgerRepository
	catalog       activityCatalog
	monitoringSvc *MonitoringService
}

const LEDGER_SVC = "ledger_svc"

func (svc LedgerService) Id() string {
	return LEDGER_SVC
}

func (svc *LedgerService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *LedgerService) Start() error {
	redisSvc := svc.Service(REDIS_SVC).(*RedisService)
	svc.ledgerRepo = repositories.NewLedgerRepository(redisSvc)
	svc.catalog = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *LedgerService) IsComplete(ctx goContext.Context, subject, classID, activityID string) (bool, error) {
	completed, err := svc.CompletedSet(ctx, subject, classID)
	if err != nil {
		return false, err
	}
	return completed[activityID], nil
}

// CompletedSet loads the class's completion set as a membership map.
func (svc *LedgerService) CompletedSet(ctx goContext.Context, subject, classID string) (map[string]bool, error) {
	ids, err := svc.ledgerRepo.GetCompletion(ctx, subject, classID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load completions")
	}

	completed := make(map[string]bool, len(ids))
	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}

// Toggle flips completion state and persists the full set immediately, one
// write per toggle. Flipping to complete also appends to the class history
// and returns a celebration message; flipping back is silent.
func (svc *LedgerService) Toggle(ctx goContext.Context, subject, classID, activityID string) (*dto.ToggleCompletionResponse, error) {
	exists, err := svc.catalog.Exists(activityID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to check activity")
	}
	if !exists {
		return nil, shared.NewNotFoundError(nil, "Activity not found")
	}

	ids, err := svc.ledgerRepo.GetCompletion(ctx, subject, classID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load completions")
	}

	next := make([]string, 0, len(ids)+1)
	wasComplete := false
	for _, id := range ids {
		if id == activityID {
			wasComplete = true
			continue
		}
		next = append(next, id)
	}

	nowComplete := !wasComplete
	if nowComplete {
		next = append(next, activityID)
	}

	if err := svc.ledgerRepo.SetCompletion(ctx, subject, classID, next); err != nil {
		return nil, shared.NewInternalError(err, "Failed to save completions")
	}

	response := &dto.ToggleCompletionResponse{
		ActivityID: activityID,
		Completed:  nowComplete,
	}

	if svc.monitoringSvc != nil {
		direction := "undone"
		if nowComplete {
			direction = "completed"
		}
		svc.monitoringSvc.RecordToggle(direction)
	}

	if nowComplete {
		if err := svc.ledgerRepo.AppendHistory(ctx, subject, classID, activityID); err != nil {
			return nil, shared.NewInternalError(err, "Failed to save history")
		}
		response.Celebration = &dto.Celebration{
			Message: shared.CelebrationMessages[rand.IntN(len(shared.CelebrationMessages))],
		}
	}

	return response, nil
}

// ResetAll wipes the completion set and history of every given class.
func (svc *LedgerService) ResetAll(ctx goContext.Context, subject string, classIDs []string) error {
	for _, classID := range classIDs {
		if err := svc.ledgerRepo.DeleteClass(ctx, subject, classID); err != nil {
			return shared.NewInternalError(err, "Failed to reset class progress")
		}
	}
	return nil
}

func (svc *LedgerService) Completions(ctx goContext.Context, subject, classID string) (*dto.CompletionSetResponse, error) {
	ids, err := svc.ledgerRepo.GetCompletion(ctx, subject, classID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load completions")
	}
	return &dto.CompletionSetResponse{ClassID: classID, Completed: ids}, nil
}

// Recent resolves the class history against the catalog, oldest first.
// Ids of activities that no longer exist are dropped silently.
func (svc *LedgerService) Recent(ctx goContext.Context, subject, classID string) (*dto.RecentCompletionsResponse, error) {
	history, err := svc.ledgerRepo.GetHistory(ctx, subject, classID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load history")
	}

	activities, err := svc.catalog.Activities()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load activities")
	}

	byID := make(map[string]model.Activity, len(activities))
	for _, activity := range activities {
		byID[activity.ID] = activity
	}

	resolved := make([]model.Activity, 0, len(history))
	for _, id := range history {
		if activity, ok := byID[id]; ok {
			resolved = append(resolved, activity)
		}
	}

	return &dto.RecentCompletionsResponse{ClassID: classID, Activities: resolved}, nil
}
