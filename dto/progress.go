package dto

import "github.com/kids-in-business/kib_api/model"

type ToggleCompletionRequest struct {
	ActivityID string `json:"activity_id" validate:"required"`
}

func (r ToggleCompletionRequest) Validate() error {
	return validate.Struct(r)
}

// Celebration is presentation-only payload returned when an activity flips
// to complete. It carries no state.
type Celebration struct {
	Message string `json:"message"`
}

type ToggleCompletionResponse struct {
	ActivityID  string       `json:"activity_id"`
	Completed   bool         `json:"completed"`
	Celebration *Celebration `json:"celebration,omitempty"`
}

type ResetCompletionsRequest struct {
	ClassIDs []string `json:"class_ids" validate:"required,min=1,dive,required"`
}

func (r ResetCompletionsRequest) Validate() error {
	return validate.Struct(r)
}

type CompletionSetResponse struct {
	ClassID   string   `json:"class_id"`
	Completed []string `json:"completed"`
}

type RecentCompletionsResponse struct {
	ClassID    string           `json:"class_id"`
	Activities []model.Activity `json:"activities"`
}

type CategoryStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

type AchievementResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type ProgressResponse struct {
	ClassID      string                   `json:"class_id"`
	Overall      CategoryStats            `json:"overall"`
	Categories   map[string]CategoryStats `json:"categories"`
	Achievements []AchievementResponse    `json:"achievements"`
	Activities   []model.Activity         `json:"activities"`
	Completed    []string                 `json:"completed"`
}
