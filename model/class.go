package model

import "time"

// Class is a cohort scoping all completion tracking. Backend classes are
// owned by a teacher; the three anonymous placeholder classes never touch
// this table.
type Class struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	School    string    `json:"school,omitempty"`
	Grade     string    `json:"grade,omitempty"`
	Year      string    `json:"year,omitempty"`
	TeacherID string    `json:"teacher_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
