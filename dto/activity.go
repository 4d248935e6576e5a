package dto

import "github.com/kids-in-business/kib_api/model"

type ActivityCollectionResponse struct {
	Activities []model.Activity `json:"activities"`
	Total      int              `json:"total"`
}

type CreateActivityRequest struct {
	Category string `json:"category" validate:"required,oneof=mini class project"`
}

func (r CreateActivityRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateActivityRequest patches an activity. Nil means "leave unchanged";
// a present-but-blank string is normalized to absent before storage.
type UpdateActivityRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Duration     *string `json:"duration"`
	Chapter      *string `json:"chapter"`
	ChapterID    *string `json:"chapter_id"`
	Difficulty   *string `json:"difficulty"`
	Participants *string `json:"participants"`
	Complexity   *string `json:"complexity"`
}

func (r UpdateActivityRequest) Validate() error {
	return validate.Struct(r)
}

type MediaUploadResponse struct {
	ActivityID string `json:"activity_id"`
	Slug       string `json:"slug"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}
