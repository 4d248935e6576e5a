package services

import (
	goContext "context"
	"math"

	"github.com/alphabatem/common/context"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/shared"
)

// ProgressService derives per-class statistics from the catalog and the
// completion ledger. Everything below the service wrapper is pure: no side
// effects, no persistence.
type ProgressService struct {
	context.DefaultService

	catalogSvc *CatalogService
	ledgerSvc  *LedgerService
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.ledgerSvc = svc.Service(LEDGER_SVC).(*LedgerService)
	return nil
}

// GetProgress combines the catalog with the class's completion set.
func (svc *ProgressService) GetProgress(ctx goContext.Context, subject, classID, userID, status, owner string) (*dto.ProgressResponse, error) {
	collection, err := svc.catalogSvc.LoadActivities()
	if err != nil {
		return nil, err
	}

	completed, err := svc.ledgerSvc.CompletedSet(ctx, subject, classID)
	if err != nil {
		return nil, err
	}

	return buildProgress(classID, collection.Activities, completed, userID, status, owner), nil
}

// buildProgress derives the response. The ownership filter scopes both
// the activity list and the category counters; the status filter shapes
// only the activity list, so percentages stay stable while the user
// flips between the completed and incomplete views. Achievements are
// always evaluated over the full catalog.
func buildProgress(classID string, activities []model.Activity, completed map[string]bool, userID, status, owner string) *dto.ProgressResponse {
	scoped := activities
	if owner == shared.FilterMine {
		scoped = filterByOwner(scoped, userID)
	}

	categories, overall := categoryStats(scoped, completed)
	filtered := filterByStatus(scoped, completed, status)

	completedIDs := make([]string, 0, len(completed))
	for _, activity := range activities {
		if completed[activity.ID] {
			completedIDs = append(completedIDs, activity.ID)
		}
	}

	return &dto.ProgressResponse{
		ClassID:      classID,
		Overall:      overall,
		Categories:   categories,
		Achievements: achievements(activities, completed),
		Activities:   filtered,
		Completed:    completedIDs,
	}
}

// percentage rounds 100*completed/total; an empty category reads 0, never
// NaN.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

func categoryStats(activities []model.Activity, completed map[string]bool) (map[string]dto.CategoryStats, dto.CategoryStats) {
	categories := map[string]dto.CategoryStats{
		shared.CategoryMini:    {},
		shared.CategoryClass:   {},
		shared.CategoryProject: {},
	}

	var overall dto.CategoryStats
	for _, activity := range activities {
		stats := categories[activity.Category]
		stats.Total++
		overall.Total++
		if completed[activity.ID] {
			stats.Completed++
			overall.Completed++
		}
		categories[activity.Category] = stats
	}

	for category, stats := range categories {
		stats.Percent = percentage(stats.Completed, stats.Total)
		categories[category] = stats
	}
	overall.Percent = percentage(overall.Completed, overall.Total)

	return categories, overall
}

func filterByStatus(activities []model.Activity, completed map[string]bool, status string) []model.Activity {
	switch status {
	case shared.FilterCompleted:
		kept := make([]model.Activity, 0, len(activities))
		for _, activity := range activities {
			if completed[activity.ID] {
				kept = append(kept, activity)
			}
		}
		return kept
	case shared.FilterIncomplete:
		kept := make([]model.Activity, 0, len(activities))
		for _, activity := range activities {
			if !completed[activity.ID] {
				kept = append(kept, activity)
			}
		}
		return kept
	default:
		return activities
	}
}

// filterByOwner keeps the caller's own activities. Without an
// authenticated user the filter is inert and passes everything through.
func filterByOwner(activities []model.Activity, userID string) []model.Activity {
	if userID == "" {
		return activities
	}
	kept := make([]model.Activity, 0, len(activities))
	for _, activity := range activities {
		if activity.CreatorID != nil && *activity.CreatorID == userID {
			kept = append(kept, activity)
		}
	}
	return kept
}

// achievements re-evaluates every predicate over the aggregate counts. An
// empty category never reads as fully completed.
func achievements(activities []model.Activity, completed map[string]bool) []dto.AchievementResponse {
	categories, overall := categoryStats(activities, completed)

	fullCategory := func(category string) bool {
		stats := categories[category]
		return stats.Total > 0 && stats.Completed == stats.Total
	}

	return []dto.AchievementResponse{
		{
			ID:          "first-steps",
			Name:        "Τα πρώτα βήματα",
			Description: "Ολοκλήρωσε την πρώτη σου δραστηριότητα",
			Unlocked:    overall.Completed >= 1,
		},
		{
			ID:          "mini-master",
			Name:        "Μάστερ των μίνι προκλήσεων",
			Description: "Ολοκλήρωσε όλες τις μίνι προκλήσεις",
			Unlocked:    fullCategory(shared.CategoryMini),
		},
		{
			ID:          "class-champion",
			Name:        "Πρωταθλητής της τάξης",
			Description: "Ολοκλήρωσε όλες τις δραστηριότητες τάξης",
			Unlocked:    fullCategory(shared.CategoryClass),
		},
		{
			ID:          "project-pro",
			Name:        "Επαγγελματίας των projects",
			Description: "Ολοκλήρωσε όλα τα projects",
			Unlocked:    fullCategory(shared.CategoryProject),
		},
		{
			ID:          "halfway",
			Name:        "Στα μισά του δρόμου",
			Description: "Ολοκλήρωσε τις μισές δραστηριότητες",
			Unlocked:    overall.Total > 0 && overall.Percent >= 50,
		},
		{
			ID:          "completionist",
			Name:        "Ολοκληρωτής",
			Description: "Ολοκλήρωσε όλες τις δραστηριότητες",
			Unlocked:    overall.Total > 0 && overall.Completed == overall.Total,
		},
	}
}
