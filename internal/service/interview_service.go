package service

import (
	"errors"
	"fmt"

	"github.com/VertingsXin/ai-mock-interview/config"
	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrNoQuestions signals that the chosen subjects have no questions to sample.
// It is user-visible and non-fatal: the client returns to subject selection.
var ErrNoQuestions = errors.New("no questions found for the selected subjects")

// ErrInterviewNotFound also covers interviews owned by another user.
var ErrInterviewNotFound = errors.New("interview not found")

var ErrInterviewFinished = errors.New("interview is no longer in progress")

// ErrAnswerOutOfOrder is returned when the submitted index does not match the cursor.
var ErrAnswerOutOfOrder = errors.New("answer submitted for the wrong question index")

type InterviewService interface {
	StartInterview(userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	CurrentQuestion(userID, interviewID uint, index int) (*dto.CurrentQuestionResponse, error)
	RecordAnswer(userID, interviewID uint, index int, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	ListInterviews(userID uint) ([]dto.InterviewListItemDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	attemptRepo   repository.AttemptRepository
	questionLimit int
	db            *gorm.DB
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	cfg *config.Config,
	db *gorm.DB,
) InterviewService {
	limit := cfg.Interview.QuestionLimit
	if limit <= 0 {
		limit = 10
	}
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		attemptRepo:   attemptRepo,
		questionLimit: limit,
		db:            db,
	}
}

// StartInterview samples up to questionLimit questions across the chosen
// subjects and persists the sequence. A previous in-progress run by the same
// user is marked abandoned rather than silently orphaned.
func (s *interviewService) StartInterview(userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	questions, err := s.questionRepo.SampleBySubjectIDs(req.SubjectIDs, s.questionLimit)
	if err != nil {
		log.Error().Err(err).Uints("subjectIDs", req.SubjectIDs).Msg("Failed to sample questions")
		return nil, fmt.Errorf("error sampling questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	interview := model.Interview{
		UserID: userID,
		Status: model.InterviewStatusInProgress,
	}
	for i, q := range questions {
		interview.Questions = append(interview.Questions, model.InterviewQuestion{
			QuestionID: q.ID,
			Position:   i,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Abandon any run still in progress for this user.
		if err := tx.Model(&model.Interview{}).
			Where("user_id = ? AND status = ?", userID, model.InterviewStatusInProgress).
			Update("status", model.InterviewStatusAbandoned).Error; err != nil {
			return fmt.Errorf("failed to abandon previous interview: %w", err)
		}
		if err := tx.Create(&interview).Error; err != nil {
			return fmt.Errorf("failed to create interview: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartInterview: transaction failed")
		return nil, err
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	log.Info().Uint("interviewID", interview.ID).Int("questions", len(questionIDs)).Msg("Interview started")

	return &dto.StartInterviewResponse{
		InterviewID:    interview.ID,
		QuestionIDs:    questionIDs,
		TotalQuestions: len(questionIDs),
	}, nil
}

func (s *interviewService) CurrentQuestion(userID, interviewID uint, index int) (*dto.CurrentQuestionResponse, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}

	total := len(interview.Questions)
	// Past the last question the client moves on to the summary.
	if index >= total || interview.Status != model.InterviewStatusInProgress {
		return &dto.CurrentQuestionResponse{
			InterviewID:    interviewID,
			QuestionIndex:  index,
			TotalQuestions: total,
			Completed:      true,
		}, nil
	}
	if index < 0 {
		return nil, fmt.Errorf("invalid question index %d", index)
	}

	iq := interview.Questions[index]
	return &dto.CurrentQuestionResponse{
		InterviewID:    interviewID,
		QuestionIndex:  index,
		TotalQuestions: total,
		QuestionID:     iq.QuestionID,
		Text:           iq.Question.Text,
		SubjectID:      iq.Question.SubjectID,
	}, nil
}

// RecordAnswer stores one attempt for the question at the cursor and advances it.
func (s *interviewService) RecordAnswer(userID, interviewID uint, index int, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	interview, err := s.ownedInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != model.InterviewStatusInProgress {
		return nil, ErrInterviewFinished
	}
	if index != interview.CurrentIndex {
		return nil, ErrAnswerOutOfOrder
	}
	total := len(interview.Questions)
	if index < 0 || index >= total {
		return nil, ErrAnswerOutOfOrder
	}

	attempt := model.Attempt{
		InterviewID: interviewID,
		QuestionID:  interview.Questions[index].QuestionID,
		UserAnswer:  req.Answer,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("Failed to create attempt")
		return nil, fmt.Errorf("database error recording answer: %w", err)
	}

	interview.CurrentIndex = index + 1
	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("Failed to advance interview cursor")
		return nil, fmt.Errorf("database error advancing interview: %w", err)
	}

	return &dto.SubmitAnswerResponse{
		AttemptID: attempt.ID,
		NextIndex: interview.CurrentIndex,
		Completed: interview.CurrentIndex >= total,
	}, nil
}

func (s *interviewService) ListInterviews(userID uint) ([]dto.InterviewListItemDTO, error) {
	interviews, err := s.interviewRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list interviews")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	dtos := make([]dto.InterviewListItemDTO, 0, len(interviews))
	for _, interview := range interviews {
		var item dto.InterviewListItemDTO
		copier.Copy(&item, &interview)
		item.QuestionCount = len(interview.Questions)
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *interviewService) ownedInterview(userID, interviewID uint) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByIDWithQuestions(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("error loading interview %d: %w", interviewID, err)
	}
	// Foreign interviews look identical to missing ones.
	if interview.UserID != userID {
		return nil, ErrInterviewNotFound
	}
	return interview, nil
}
