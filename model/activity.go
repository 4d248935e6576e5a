package model

import "time"

// Activity is a gamified task a class can mark complete. Optional free-text
// fields are pointers: an absent value is stored as NULL, never as "".
type Activity struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"` // human-stable secondary key, used for badge art
	Title        string    `json:"title" gorm:"not null"`
	Description  *string   `json:"description,omitempty"`
	Duration     *string   `json:"duration,omitempty"`
	Chapter      *string   `json:"chapter,omitempty"` // display label, set iff chapter_id is set
	ChapterID    *string   `json:"chapter_id,omitempty" gorm:"column:chapter_id"`
	Difficulty   *string   `json:"difficulty,omitempty"`
	Participants *string   `json:"participants,omitempty"`
	Complexity   *string   `json:"complexity,omitempty"`
	Category     string    `json:"category" gorm:"not null;index"` // mini, class, project
	CreatorID    *string   `json:"creator_id,omitempty" gorm:"index"`
	BadgeURL     *string   `json:"badge_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
