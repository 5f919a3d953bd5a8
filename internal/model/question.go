package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is static reference content. ModelAnswer is optional; a question
// without one can still be asked but never produces a similarity score.
type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	ModelAnswer *string        `json:"model_answer,omitempty" gorm:"type:text"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
