package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one recorded answer to one question within one interview run.
// SimilarityScore and Feedback stay nil until the summary pass scores the run.
type Attempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	InterviewID     uint           `json:"interview_id" gorm:"not null;index"`
	QuestionID      uint           `json:"question_id" gorm:"not null;index"`
	Question        Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer      string         `json:"user_answer" gorm:"type:text;not null"`
	SimilarityScore *float64       `json:"similarity_score,omitempty"`
	Feedback        *string        `json:"feedback,omitempty" gorm:"type:text"`
	SubmittedAt     time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
