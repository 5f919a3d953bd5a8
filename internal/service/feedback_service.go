package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// NoModelAnswerFeedback is the fixed outcome for questions without a model answer.
const NoModelAnswerFeedback = "No model answer available to compare against."

const (
	excellentThreshold = 85.0
	goodThreshold      = 60.0

	excellentFeedback  = "Excellent! Your answer is very closely aligned with the key concepts."
	goodFeedback       = "Good answer. You've covered the main points, but could add more detail."
	disconnectFeedback = "There seems to be a disconnect. Review the topic to better align with the core concepts."
)

// FeedbackResult is the always-usable outcome of scoring one attempt. Critique
// is never empty: a remote failure degrades to the threshold-based message
// instead of aborting the summary.
type FeedbackResult struct {
	SimilarityScore float64
	Critique        string
	// FromModel reports whether the critique came from the language model
	// rather than the deterministic fallback.
	FromModel bool
}

// FeedbackService scores a user answer against a model answer.
type FeedbackService interface {
	Score(ctx context.Context, userAnswer, modelAnswer string) FeedbackResult
}

type feedbackService struct {
	similaritySvc SimilarityService
	critiqueSvc   CritiqueService
}

func NewFeedbackService(similaritySvc SimilarityService, critiqueSvc CritiqueService) FeedbackService {
	return &feedbackService{similaritySvc: similaritySvc, critiqueSvc: critiqueSvc}
}

func (s *feedbackService) Score(ctx context.Context, userAnswer, modelAnswer string) FeedbackResult {
	if modelAnswer == "" {
		return FeedbackResult{SimilarityScore: 0, Critique: NoModelAnswerFeedback}
	}

	score := s.similaritySvc.Score(userAnswer, modelAnswer)

	critique, err := s.critiqueSvc.GenerateCritique(ctx, userAnswer, modelAnswer)
	if err != nil || critique == "" {
		if err != nil {
			log.Warn().Err(err).Msg("Critique generation failed, using threshold fallback")
		}
		return FeedbackResult{SimilarityScore: score, Critique: thresholdFeedback(score)}
	}

	return FeedbackResult{SimilarityScore: score, Critique: critique, FromModel: true}
}

func thresholdFeedback(score float64) string {
	switch {
	case score > excellentThreshold:
		return excellentFeedback
	case score > goodThreshold:
		return goodFeedback
	default:
		return disconnectFeedback
	}
}
