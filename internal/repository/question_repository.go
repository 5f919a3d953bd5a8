package repository

import (
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindBySubjectID(subjectID uint) ([]model.Question, error)
	// SampleBySubjectIDs draws a uniform random sample without replacement
	// across all questions belonging to the given subjects.
	SampleBySubjectIDs(subjectIDs []uint, limit int) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindBySubjectID(subjectID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("subject_id = ?", subjectID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) SampleBySubjectIDs(subjectIDs []uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	// RANDOM() is understood by both postgres and sqlite.
	err := r.db.Where("subject_id IN ?", subjectIDs).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
