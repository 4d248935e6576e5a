package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/shared"
)

func TestPercentageZeroTotal(t *testing.T) {
	assert.Equal(t, 0, percentage(0, 0))
	assert.Equal(t, 0, percentage(5, 0))
}

func TestPercentageRounds(t *testing.T) {
	assert.Equal(t, 33, percentage(1, 3))
	assert.Equal(t, 67, percentage(2, 3))
	assert.Equal(t, 50, percentage(1, 2))
	assert.Equal(t, 100, percentage(3, 3))
}

func TestCategoryStatsCountsPerCategory(t *testing.T) {
	activities := []model.Activity{
		{ID: "m1", Category: shared.CategoryMini},
		{ID: "m2", Category: shared.CategoryMini},
		{ID: "c1", Category: shared.CategoryClass},
	}
	completed := map[string]bool{"m1": true, "c1": true}

	categories, overall := categoryStats(activities, completed)

	assert.Equal(t, 2, categories[shared.CategoryMini].Total)
	assert.Equal(t, 1, categories[shared.CategoryMini].Completed)
	assert.Equal(t, 50, categories[shared.CategoryMini].Percent)

	assert.Equal(t, 1, categories[shared.CategoryClass].Total)
	assert.Equal(t, 100, categories[shared.CategoryClass].Percent)

	// An empty category reads zeroed, never NaN.
	assert.Equal(t, 0, categories[shared.CategoryProject].Total)
	assert.Equal(t, 0, categories[shared.CategoryProject].Percent)

	assert.Equal(t, 3, overall.Total)
	assert.Equal(t, 2, overall.Completed)
	assert.Equal(t, 67, overall.Percent)
}

// A toggle walk over three activities: 0% -> 33% -> 67% -> 33%.
func TestOverallPercentFollowsToggles(t *testing.T) {
	activities := []model.Activity{
		{ID: "a", Category: shared.CategoryMini},
		{ID: "b", Category: shared.CategoryMini},
		{ID: "c", Category: shared.CategoryClass},
	}

	completed := map[string]bool{}
	_, overall := categoryStats(activities, completed)
	assert.Equal(t, 0, overall.Percent)

	completed["a"] = true
	_, overall = categoryStats(activities, completed)
	assert.Equal(t, 33, overall.Percent)

	completed["b"] = true
	_, overall = categoryStats(activities, completed)
	assert.Equal(t, 67, overall.Percent)

	completed["b"] = false
	_, overall = categoryStats(activities, completed)
	assert.Equal(t, 33, overall.Percent)
}

func TestFilterByStatus(t *testing.T) {
	activities := []model.Activity{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	completed := map[string]bool{"b": true}

	all := filterByStatus(activities, completed, shared.FilterAll)
	assert.Len(t, all, 3)

	done := filterByStatus(activities, completed, shared.FilterCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].ID)

	open := filterByStatus(activities, completed, shared.FilterIncomplete)
	require.Len(t, open, 2)
	assert.Equal(t, "a", open[0].ID)
	assert.Equal(t, "c", open[1].ID)
}

func TestFilterByOwnerInertWithoutUser(t *testing.T) {
	creator := "user-1"
	activities := []model.Activity{
		{ID: "a", CreatorID: &creator},
		{ID: "b"},
	}

	assert.Len(t, filterByOwner(activities, ""), 2)

	mine := filterByOwner(activities, creator)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ID)

	assert.Empty(t, filterByOwner(activities, "someone-else"))
}

func TestStatusFilterShapesOnlyActivityList(t *testing.T) {
	activities := []model.Activity{
		{ID: "m1", Category: shared.CategoryMini},
		{ID: "m2", Category: shared.CategoryMini},
		{ID: "c1", Category: shared.CategoryClass},
	}
	completed := map[string]bool{"m1": true}

	all := buildProgress("class-a", activities, completed, "", shared.FilterAll, shared.FilterAll)
	done := buildProgress("class-a", activities, completed, "", shared.FilterCompleted, shared.FilterAll)
	open := buildProgress("class-a", activities, completed, "", shared.FilterIncomplete, shared.FilterAll)

	// Percentages stay stable across status views; only the list shrinks.
	for _, view := range []*dto.ProgressResponse{done, open} {
		assert.Equal(t, all.Overall, view.Overall)
		assert.Equal(t, all.Categories, view.Categories)
	}
	assert.Equal(t, 33, done.Overall.Percent)

	require.Len(t, done.Activities, 1)
	assert.Equal(t, "m1", done.Activities[0].ID)
	require.Len(t, open.Activities, 2)
}

func TestOwnerFilterScopesStats(t *testing.T) {
	creator := "user-1"
	activities := []model.Activity{
		{ID: "m1", Category: shared.CategoryMini, CreatorID: &creator},
		{ID: "m2", Category: shared.CategoryMini},
	}
	completed := map[string]bool{"m1": true}

	mine := buildProgress("class-a", activities, completed, creator, shared.FilterAll, shared.FilterMine)
	assert.Equal(t, 1, mine.Overall.Total)
	assert.Equal(t, 100, mine.Overall.Percent)
	require.Len(t, mine.Activities, 1)

	// Without an authenticated user the ownership filter is inert.
	anonymous := buildProgress("class-a", activities, completed, "", shared.FilterAll, shared.FilterMine)
	assert.Equal(t, 2, anonymous.Overall.Total)
	assert.Equal(t, 50, anonymous.Overall.Percent)
}

func TestAchievementsNeverUnlockOnEmptyCategories(t *testing.T) {
	unlocked := map[string]bool{}
	for _, a := range achievements(nil, map[string]bool{}) {
		unlocked[a.ID] = a.Unlocked
	}

	for id, on := range unlocked {
		assert.False(t, on, "achievement %s unlocked with an empty catalog", id)
	}
}

func TestAchievementsUnlockProgressively(t *testing.T) {
	activities := []model.Activity{
		{ID: "m1", Category: shared.CategoryMini},
		{ID: "m2", Category: shared.CategoryMini},
		{ID: "c1", Category: shared.CategoryClass},
		{ID: "p1", Category: shared.CategoryProject},
	}

	byID := func(completed map[string]bool) map[string]bool {
		result := map[string]bool{}
		for _, a := range achievements(activities, completed) {
			result[a.ID] = a.Unlocked
		}
		return result
	}

	none := byID(map[string]bool{})
	assert.False(t, none["first-steps"])

	one := byID(map[string]bool{"m1": true})
	assert.True(t, one["first-steps"])
	assert.False(t, one["mini-master"])
	assert.False(t, one["halfway"])

	half := byID(map[string]bool{"m1": true, "m2": true})
	assert.True(t, half["mini-master"])
	assert.True(t, half["halfway"])
	assert.False(t, half["completionist"])

	all := byID(map[string]bool{"m1": true, "m2": true, "c1": true, "p1": true})
	assert.True(t, all["class-champion"])
	assert.True(t, all["project-pro"])
	assert.True(t, all["completionist"])
}
