package services

import (
	goContext "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/shared"
)

// The auth guards run before any repository access, so a zero service is
// enough to exercise them.
func TestCreateActivityRequiresAuth(t *testing.T) {
	svc := &CatalogService{}

	activity, err := svc.CreateActivity("", shared.CategoryMini)
	assert.Nil(t, activity)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestUpdateActivityRequiresAuth(t *testing.T) {
	svc := &CatalogService{}

	title := "Νέος τίτλος"
	activity, err := svc.UpdateActivity("", "some-activity", dto.UpdateActivityRequest{Title: &title})
	assert.Nil(t, activity)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestDeleteActivityRequiresAuth(t *testing.T) {
	svc := &CatalogService{}

	err := svc.DeleteActivity(goContext.Background(), "", "some-activity")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestValidateActivityFieldsChapterPair(t *testing.T) {
	duration := "10'"
	chapter := "Η ιδέα"
	chapterID := "ch-1"

	err := validateActivityFields(shared.CategoryMini, &duration, &chapter, nil)
	assert.Error(t, err)

	err = validateActivityFields(shared.CategoryMini, &duration, nil, &chapterID)
	assert.Error(t, err)

	assert.NoError(t, validateActivityFields(shared.CategoryMini, &duration, &chapter, &chapterID))
	assert.NoError(t, validateActivityFields(shared.CategoryMini, &duration, nil, nil))
}

func TestValidateActivityFieldsDuration(t *testing.T) {
	// mini and class require a duration; projects do not.
	assert.Error(t, validateActivityFields(shared.CategoryMini, nil, nil, nil))
	assert.Error(t, validateActivityFields(shared.CategoryClass, nil, nil, nil))
	assert.NoError(t, validateActivityFields(shared.CategoryProject, nil, nil, nil))

	bad := "45'"
	assert.Error(t, validateActivityFields(shared.CategoryMini, &bad, nil, nil))

	good := "15'"
	assert.NoError(t, validateActivityFields(shared.CategoryMini, &good, nil, nil))

	classDuration := "2 διδακτικές ώρες"
	assert.NoError(t, validateActivityFields(shared.CategoryClass, &classDuration, nil, nil))

	projectDuration := "1 μήνας"
	assert.NoError(t, validateActivityFields(shared.CategoryProject, &projectDuration, nil, nil))
}

func TestApplyOptionalNormalizesBlanks(t *testing.T) {
	existing := "old"
	target := &existing
	fields := map[string]interface{}{}

	// nil input leaves the field alone.
	applyOptional(nil, &target, fields, "description")
	require.NotNil(t, target)
	assert.Equal(t, "old", *target)
	assert.Empty(t, fields)

	// Blank input clears to absent, stored as NULL.
	blank := "   "
	applyOptional(&blank, &target, fields, "description")
	assert.Nil(t, target)
	assert.Contains(t, fields, "description")
	assert.Nil(t, fields["description"])

	// Real input is trimmed.
	value := "  new value  "
	applyOptional(&value, &target, fields, "description")
	require.NotNil(t, target)
	assert.Equal(t, "new value", *target)
	assert.Equal(t, "new value", fields["description"])
}

func TestFallbackActivitiesAreValid(t *testing.T) {
	activities := fallbackActivities()
	require.Len(t, activities, 12)

	slugs := map[string]bool{}
	counts := map[string]int{}
	for i, activity := range activities {
		assert.NotEmpty(t, activity.ID)
		assert.False(t, slugs[activity.Slug], "duplicate slug %s", activity.Slug)
		slugs[activity.Slug] = true
		counts[activity.Category]++

		assert.NoError(t, validateActivityFields(activity.Category, activity.Duration, activity.Chapter, activity.ChapterID),
			"seed activity %s", activity.Slug)

		// Seeds carry no creator: nobody owns or can edit them.
		assert.Nil(t, activity.CreatorID)

		if i > 0 {
			assert.True(t, activities[i-1].CreatedAt.Before(activity.CreatedAt), "creation order broken at %s", activity.Slug)
		}
	}

	assert.Equal(t, 5, counts[shared.CategoryMini])
	assert.Equal(t, 4, counts[shared.CategoryClass])
	assert.Equal(t, 3, counts[shared.CategoryProject])
}
