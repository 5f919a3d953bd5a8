package repository

import (
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	FindAllWithQuestionCount() ([]struct {
		model.Subject
		QuestionCount int
	}, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAllWithQuestionCount() ([]struct {
	model.Subject
	QuestionCount int
}, error) {
	var results []struct {
		model.Subject
		QuestionCount int
	}
	err := r.db.Model(&model.Subject{}).
		Select("subjects.*, (SELECT COUNT(*) FROM questions WHERE questions.subject_id = subjects.id AND questions.deleted_at IS NULL) as question_count").
		Where("subjects.deleted_at IS NULL").
		Order("subjects.name ASC").
		Scan(&results).Error
	return results, err
}
