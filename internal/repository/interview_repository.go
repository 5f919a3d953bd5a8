package repository

import (
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	// FindByIDWithQuestions preloads the persisted question sequence ordered by position.
	FindByIDWithQuestions(id uint) (*model.Interview, error)
	FindAllByUser(userID uint) ([]model.Interview, error)
	FindInProgressByUser(userID uint) (*model.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	// GORM creates the associated InterviewQuestion rows when Questions is populated.
	return r.db.Create(interview).Error
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithQuestions(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("interview_questions.position ASC")
		}).
		Preload("Questions.Question").
		First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("user_id = ?", userID).
		Preload("Questions").
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindInProgressByUser(userID uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Where("user_id = ? AND status = ?", userID, model.InterviewStatusInProgress).
		First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}
