package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SummaryService scores every attempt of an interview and returns the
// per-question results. Re-invocation re-scores in place; it never duplicates
// attempts.
type SummaryService interface {
	Summarize(ctx context.Context, userID, interviewID uint) (*dto.InterviewSummaryResponse, error)
}

type summaryService struct {
	interviewRepo repository.InterviewRepository
	attemptRepo   repository.AttemptRepository
	feedbackSvc   FeedbackService
}

func NewSummaryService(
	interviewRepo repository.InterviewRepository,
	attemptRepo repository.AttemptRepository,
	feedbackSvc FeedbackService,
) SummaryService {
	return &summaryService{
		interviewRepo: interviewRepo,
		attemptRepo:   attemptRepo,
		feedbackSvc:   feedbackSvc,
	}
}

func (s *summaryService) Summarize(ctx context.Context, userID, interviewID uint) (*dto.InterviewSummaryResponse, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("error loading interview %d: %w", interviewID, err)
	}
	if interview.UserID != userID {
		return nil, ErrInterviewNotFound
	}

	attempts, err := s.attemptRepo.FindByInterviewIDWithQuestions(interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("Summarize: failed to load attempts")
		return nil, fmt.Errorf("error loading attempts for interview %d: %w", interviewID, err)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		attempt := &attempts[i]

		modelAnswer := ""
		if attempt.Question.ModelAnswer != nil {
			modelAnswer = *attempt.Question.ModelAnswer
		}
		result := s.feedbackSvc.Score(ctx, attempt.UserAnswer, modelAnswer)

		score := result.SimilarityScore
		critique := result.Critique
		attempt.SimilarityScore = &score
		attempt.Feedback = &critique
		if err := s.attemptRepo.Update(attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Summarize: failed to persist attempt score")
			return nil, fmt.Errorf("database error persisting score for attempt %d: %w", attempt.ID, err)
		}

		summaries = append(summaries, dto.AttemptSummaryDTO{
			AttemptID:       attempt.ID,
			QuestionID:      attempt.QuestionID,
			QuestionText:    attempt.Question.Text,
			ModelAnswer:     attempt.Question.ModelAnswer,
			UserAnswer:      attempt.UserAnswer,
			SimilarityScore: attempt.SimilarityScore,
			Feedback:        attempt.Feedback,
		})
	}

	if interview.Status != model.InterviewStatusSummarized {
		interview.Status = model.InterviewStatusSummarized
		if err := s.interviewRepo.Update(interview); err != nil {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("Summarize: failed to mark interview summarized")
			return nil, fmt.Errorf("database error finishing interview %d: %w", interviewID, err)
		}
	}

	log.Info().Uint("interviewID", interviewID).Int("attempts", len(summaries)).Msg("Interview summarized")
	return &dto.InterviewSummaryResponse{
		InterviewID: interviewID,
		Status:      interview.Status,
		Attempts:    summaries,
	}, nil
}
