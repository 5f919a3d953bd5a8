package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewStatusInProgress = "in_progress"
	InterviewStatusSummarized = "summarized"
	InterviewStatusAbandoned  = "abandoned"
)

// Interview is one run of sampled questions for one user. The sampled sequence
// is persisted in InterviewQuestion rows; CurrentIndex is the answering cursor.
type Interview struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	UserID       uint                `json:"user_id" gorm:"not null;index"`
	User         User                `json:"-" gorm:"foreignKey:UserID"`
	Status       string              `json:"status" gorm:"default:'in_progress'"` // "in_progress", "summarized", "abandoned"
	CurrentIndex int                 `json:"current_index" gorm:"default:0"`
	Questions    []InterviewQuestion `json:"questions,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Attempts     []Attempt           `json:"attempts,omitempty" gorm:"foreignKey:InterviewID"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    gorm.DeletedAt      `gorm:"index" json:"-"`
}

// InterviewQuestion pins one sampled question to a position within a run,
// so an interrupted run can be resumed from the store.
type InterviewQuestion struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	InterviewID uint      `json:"interview_id" gorm:"not null;index:idx_interview_position,unique"`
	QuestionID  uint      `json:"question_id" gorm:"not null"`
	Question    Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Position    int       `json:"position" gorm:"not null;index:idx_interview_position,unique"`
	CreatedAt   time.Time `json:"created_at"`
}
