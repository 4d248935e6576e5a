package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kids-in-business/kib_api/shared"
)

// Key names mirror the browser build of the app so exported data stays
// readable. Every key is scoped under "kib:{subject}:" where subject is an
// authenticated user id or an anonymous device id, the server-side
// equivalent of one browser profile.
const (
	keyPrefix = "kib"

	completionKeyFmt    = "completedChallenges_%s"
	legacyCompletionKey = "completedChallenges"
	historyKeyFmt       = "completedChallengesHistory_%s"
	classNamesKey       = "classNames"
	currentClassKey     = "currentClassId"
	reviewsKey          = "kib_reviews"
)

// LedgerRepository is the single place that knows key naming and
// serialization for the completion ledger. Corrupted values are treated as
// absent and never surfaced.
type LedgerRepository struct {
	kv KV
}

func NewLedgerRepository(kv KV) *LedgerRepository {
	return &LedgerRepository{kv: kv}
}

func subjectKey(subject, name string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, subject, name)
}

func parseStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Corrupted or legacy-shaped data reads as empty.
		return []string{}
	}
	return ids
}

// GetCompletion returns the completed activity ids for a class. When the
// scoped key is absent it falls back to the legacy un-scoped key, read-only:
// nothing is ever written back under the legacy name.
func (r *LedgerRepository) GetCompletion(ctx context.Context, subject, classID string) ([]string, error) {
	raw, err := r.kv.Get(ctx, subjectKey(subject, fmt.Sprintf(completionKeyFmt, classID)))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		raw, err = r.kv.Get(ctx, subjectKey(subject, legacyCompletionKey))
		if err != nil {
			return nil, err
		}
	}
	return parseStringList(raw), nil
}

func (r *LedgerRepository) SetCompletion(ctx context.Context, subject, classID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, subjectKey(subject, fmt.Sprintf(completionKeyFmt, classID)), data, 0)
}

func (r *LedgerRepository) GetHistory(ctx context.Context, subject, classID string) ([]string, error) {
	raw, err := r.kv.Get(ctx, subjectKey(subject, fmt.Sprintf(historyKeyFmt, classID)))
	if err != nil {
		return nil, err
	}
	return parseStringList(raw), nil
}

func (r *LedgerRepository) setHistory(ctx context.Context, subject, classID string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, subjectKey(subject, fmt.Sprintf(historyKeyFmt, classID)), data, 0)
}

// AppendHistory records a completion in the class history: an id already
// present moves to the most-recent position, the list keeps at most the
// newest HistoryLimit entries, oldest first.
func (r *LedgerRepository) AppendHistory(ctx context.Context, subject, classID, activityID string) error {
	history, err := r.GetHistory(ctx, subject, classID)
	if err != nil {
		return err
	}

	next := make([]string, 0, len(history)+1)
	for _, id := range history {
		if id != activityID {
			next = append(next, id)
		}
	}
	next = append(next, activityID)

	if len(next) > shared.HistoryLimit {
		next = next[len(next)-shared.HistoryLimit:]
	}

	return r.setHistory(ctx, subject, classID, next)
}

// DeleteClass removes the completion set and history keys outright rather
// than writing empty arrays, so reset classes leave nothing behind.
func (r *LedgerRepository) DeleteClass(ctx context.Context, subject, classID string) error {
	return r.kv.Delete(ctx,
		subjectKey(subject, fmt.Sprintf(completionKeyFmt, classID)),
		subjectKey(subject, fmt.Sprintf(historyKeyFmt, classID)),
	)
}

// RemoveActivity prunes a deleted activity id from every subject's
// completion sets and histories, legacy keys included. A ledger entry
// referencing a missing activity is an invariant violation.
func (r *LedgerRepository) RemoveActivity(ctx context.Context, activityID string) error {
	keys, err := r.kv.Keys(ctx, fmt.Sprintf("%s:*:%s", keyPrefix, "completedChallenges*"))
	if err != nil {
		return err
	}

	for _, key := range keys {
		raw, err := r.kv.Get(ctx, key)
		if err != nil {
			return err
		}
		ids := parseStringList(raw)

		next := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != activityID {
				next = append(next, id)
			}
		}
		if len(next) == len(ids) {
			continue
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		if err := r.kv.Set(ctx, key, data, 0); err != nil {
			return err
		}
	}

	return nil
}

// ClassNames reads the anonymous-mode display-name overrides for the three
// placeholder classes. Absent or unparseable maps read as empty.
func (r *LedgerRepository) ClassNames(ctx context.Context, subject string) (map[string]string, error) {
	raw, err := r.kv.Get(ctx, subjectKey(subject, classNamesKey))
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			names = map[string]string{}
		}
	}
	return names, nil
}

func (r *LedgerRepository) SetClassName(ctx context.Context, subject, classID, name string) error {
	names, err := r.ClassNames(ctx, subject)
	if err != nil {
		return err
	}
	names[classID] = strings.TrimSpace(name)

	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, subjectKey(subject, classNamesKey), data, 0)
}

// CurrentClass returns the last-selected class id, empty when never set.
func (r *LedgerRepository) CurrentClass(ctx context.Context, subject string) (string, error) {
	return r.kv.Get(ctx, subjectKey(subject, currentClassKey))
}

func (r *LedgerRepository) SetCurrentClass(ctx context.Context, subject, classID string) error {
	return r.kv.Set(ctx, subjectKey(subject, currentClassKey), classID, 0)
}
