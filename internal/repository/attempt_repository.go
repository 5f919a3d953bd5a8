package repository

import (
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	Update(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	// FindByInterviewIDWithQuestions eager-loads each attempt's question,
	// ordered by submission time so the summary follows the run order.
	FindByInterviewIDWithQuestions(interviewID uint) ([]model.Attempt, error)
	CountByInterviewID(interviewID uint) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.Attempt) error {
	// Save updates all fields, including SimilarityScore and Feedback.
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.Preload("Question").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByInterviewIDWithQuestions(interviewID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("interview_id = ?", interviewID).
		Preload("Question").
		Order("id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) CountByInterviewID(interviewID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Where("interview_id = ?", interviewID).Count(&count).Error
	return count, err
}
