package service

import (
	"fmt"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ContentService manages the static reference content: subjects and their questions.
type ContentService interface {
	CreateSubject(req dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	ListSubjects() ([]dto.SubjectResponse, error)
	AddQuestion(subjectID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions(subjectID *uint) ([]dto.QuestionResponse, error)
}

type contentService struct {
	subjectRepo  repository.SubjectRepository
	questionRepo repository.QuestionRepository
}

func NewContentService(subjectRepo repository.SubjectRepository, questionRepo repository.QuestionRepository) ContentService {
	return &contentService{subjectRepo: subjectRepo, questionRepo: questionRepo}
}

func (s *contentService) CreateSubject(req dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := model.Subject{Name: req.Name}
	if err := s.subjectRepo.Create(&subject); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create subject")
		return nil, fmt.Errorf("database error creating subject: %w", err)
	}
	return &dto.SubjectResponse{ID: subject.ID, Name: subject.Name}, nil
}

func (s *contentService) ListSubjects() ([]dto.SubjectResponse, error) {
	subjectsWithCount, err := s.subjectRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list subjects with question count")
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}

	dtos := make([]dto.SubjectResponse, 0, len(subjectsWithCount))
	for _, swc := range subjectsWithCount {
		dtos = append(dtos, dto.SubjectResponse{
			ID:            swc.Subject.ID,
			Name:          swc.Subject.Name,
			QuestionCount: swc.QuestionCount,
		})
	}
	return dtos, nil
}

func (s *contentService) AddQuestion(subjectID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.subjectRepo.FindByID(subjectID); err != nil {
		log.Warn().Err(err).Uint("subjectID", subjectID).Msg("Invalid subject for question creation")
		return nil, fmt.Errorf("subject not found with ID %d: %w", subjectID, err)
	}

	question := model.Question{
		Text:        req.Text,
		ModelAnswer: req.ModelAnswer,
		SubjectID:   subjectID,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *contentService) ListQuestions(subjectID *uint) ([]dto.QuestionResponse, error) {
	var questions []model.Question
	var err error
	if subjectID != nil {
		questions, err = s.questionRepo.FindBySubjectID(*subjectID)
	} else {
		questions, err = s.questionRepo.FindAll()
	}
	if err != nil {
		return nil, err
	}
	var resp []dto.QuestionResponse
	copier.Copy(&resp, &questions)
	return resp, nil
}
