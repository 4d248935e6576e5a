package services

import (
	goContext "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/services/repositories"
	"github.com/kids-in-business/kib_api/shared"
)

func newAnonymousClassService() *ClassService {
	return &ClassService{
		ledgerRepo: repositories.NewLedgerRepository(newMemKV()),
	}
}

func TestAnonymousListReturnsPlaceholders(t *testing.T) {
	svc := newAnonymousClassService()

	classes, err := svc.ListClasses(goContext.Background(), "", "device:abc")
	require.NoError(t, err)
	require.Equal(t, 3, classes.Total)

	assert.Equal(t, "class-a", classes.Classes[0].ID)
	assert.Equal(t, "Τμήμα Α", classes.Classes[0].Name)
	assert.Equal(t, "Τμήμα Β", classes.Classes[1].Name)
	assert.Equal(t, "Τμήμα Γ", classes.Classes[2].Name)
}

func TestAnonymousRenamePersists(t *testing.T) {
	svc := newAnonymousClassService()
	ctx := goContext.Background()

	require.NoError(t, svc.RenameClass(ctx, "", "device:abc", "class-b", "Τμήμα Βήτα"))

	classes, err := svc.ListClasses(ctx, "", "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "Τμήμα Βήτα", classes.Classes[1].Name)

	// The other placeholders keep their defaults.
	assert.Equal(t, "Τμήμα Α", classes.Classes[0].Name)
	assert.Equal(t, "Τμήμα Γ", classes.Classes[2].Name)
}

func TestAnonymousRenameUnknownClassRejected(t *testing.T) {
	svc := newAnonymousClassService()

	err := svc.RenameClass(goContext.Background(), "", "device:abc", "class-x", "Whatever")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestAnonymousRenameScopedPerSubject(t *testing.T) {
	svc := newAnonymousClassService()
	ctx := goContext.Background()

	require.NoError(t, svc.RenameClass(ctx, "", "device:abc", "class-a", "Renamed"))

	classes, err := svc.ListClasses(ctx, "", "device:other")
	require.NoError(t, err)
	assert.Equal(t, "Τμήμα Α", classes.Classes[0].Name)
}

func TestCreateClassRequiresAuth(t *testing.T) {
	svc := newAnonymousClassService()

	_, err := svc.CreateClass("", dto.CreateClassRequest{Name: "Νέο τμήμα"})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestDeleteClassRequiresAuth(t *testing.T) {
	svc := newAnonymousClassService()

	err := svc.DeleteClass(goContext.Background(), "", "device:abc", "class-a")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestCurrentClassRoundTrip(t *testing.T) {
	svc := newAnonymousClassService()
	ctx := goContext.Background()

	classID, err := svc.CurrentClass(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "", classID)

	require.NoError(t, svc.SetCurrentClass(ctx, "device:abc", "class-b"))

	classID, err = svc.CurrentClass(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "class-b", classID)
}
