package repositories

import (
	"context"
	"fmt"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV mirrors the RedisService contract: Get returns "" for a missing
// key instead of an error.
type memKV struct {
	store map[string]string
}

func newMemKV() *memKV {
	return &memKV{store: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	return m.store[key], nil
}

func (m *memKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.store[key] = string(v)
	case string:
		m.store[key] = v
	default:
		m.store[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (m *memKV) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}

func (m *memKV) Keys(_ context.Context, pattern string) ([]string, error) {
	var matched []string
	for key := range m.store {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

func TestGetCompletionMissingKeyReadsEmpty(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())

	ids, err := repo.GetCompletion(context.Background(), "device:abc", "class-a")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGetCompletionLegacyFallback(t *testing.T) {
	kv := newMemKV()
	repo := NewLedgerRepository(kv)
	ctx := context.Background()

	kv.store["kib:device:abc:completedChallenges"] = `["mini-1","mini-2"]`

	ids, err := repo.GetCompletion(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini-1", "mini-2"}, ids)

	// A scoped write takes over; the legacy key is never touched.
	require.NoError(t, repo.SetCompletion(ctx, "device:abc", "class-a", []string{"mini-3"}))

	ids, err = repo.GetCompletion(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini-3"}, ids)
	assert.Equal(t, `["mini-1","mini-2"]`, kv.store["kib:device:abc:completedChallenges"])
}

func TestGetCompletionCorruptDataReadsEmpty(t *testing.T) {
	kv := newMemKV()
	repo := NewLedgerRepository(kv)

	kv.store["kib:device:abc:completedChallenges_class-a"] = `{"not":"a list"`

	ids, err := repo.GetCompletion(context.Background(), "device:abc", "class-a")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCompletionIsScopedPerClassAndSubject(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())
	ctx := context.Background()

	require.NoError(t, repo.SetCompletion(ctx, "device:abc", "class-a", []string{"mini-1"}))

	ids, err := repo.GetCompletion(ctx, "device:abc", "class-b")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.GetCompletion(ctx, "device:other", "class-a")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAppendHistoryMovesDuplicateToEnd(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())
	ctx := context.Background()

	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-1"))
	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-2"))
	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-1"))

	history, err := repo.GetHistory(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini-2", "mini-1"}, history)
}

func TestAppendHistoryKeepsNewestTwenty(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", fmt.Sprintf("activity-%d", i)))
	}

	history, err := repo.GetHistory(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	require.Len(t, history, 20)
	assert.Equal(t, "activity-5", history[0])
	assert.Equal(t, "activity-24", history[19])
}

func TestDeleteClassRemovesKeysOutright(t *testing.T) {
	kv := newMemKV()
	repo := NewLedgerRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.SetCompletion(ctx, "device:abc", "class-a", []string{"mini-1"}))
	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-1"))

	require.NoError(t, repo.DeleteClass(ctx, "device:abc", "class-a"))

	assert.NotContains(t, kv.store, "kib:device:abc:completedChallenges_class-a")
	assert.NotContains(t, kv.store, "kib:device:abc:completedChallengesHistory_class-a")
}

func TestRemoveActivityPrunesEverySubject(t *testing.T) {
	kv := newMemKV()
	repo := NewLedgerRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.SetCompletion(ctx, "device:abc", "class-a", []string{"mini-1", "mini-2"}))
	require.NoError(t, repo.SetCompletion(ctx, "user:42", "class-b", []string{"mini-2"}))
	require.NoError(t, repo.AppendHistory(ctx, "device:abc", "class-a", "mini-2"))
	kv.store["kib:device:legacy:completedChallenges"] = `["mini-2","mini-3"]`

	require.NoError(t, repo.RemoveActivity(ctx, "mini-2"))

	ids, err := repo.GetCompletion(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"mini-1"}, ids)

	ids, err = repo.GetCompletion(ctx, "user:42", "class-b")
	require.NoError(t, err)
	assert.Empty(t, ids)

	history, err := repo.GetHistory(ctx, "device:abc", "class-a")
	require.NoError(t, err)
	assert.Empty(t, history)

	assert.Equal(t, `["mini-3"]`, kv.store["kib:device:legacy:completedChallenges"])
}

func TestClassNamesRoundTrip(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())
	ctx := context.Background()

	names, err := repo.ClassNames(ctx, "device:abc")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, repo.SetClassName(ctx, "device:abc", "class-b", "  Τμήμα Βήτα  "))

	names, err = repo.ClassNames(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "Τμήμα Βήτα", names["class-b"])
}

func TestCurrentClassDefaultsEmpty(t *testing.T) {
	repo := NewLedgerRepository(newMemKV())
	ctx := context.Background()

	classID, err := repo.CurrentClass(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "", classID)

	require.NoError(t, repo.SetCurrentClass(ctx, "device:abc", "class-c"))

	classID, err = repo.CurrentClass(ctx, "device:abc")
	require.NoError(t, err)
	assert.Equal(t, "class-c", classID)
}
