package service

import (
	"context"
	"testing"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSummaryFixture(t *testing.T, critique CritiqueService) (SummaryService, InterviewService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	interviewRepo := repository.NewInterviewRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	interviewSvc := NewInterviewService(interviewRepo, repository.NewQuestionRepository(db), attemptRepo, testConfig(), db)
	summarySvc := NewSummaryService(interviewRepo, attemptRepo, NewFeedbackService(NewSimilarityService(), critique))
	return summarySvc, interviewSvc, db
}

func runInterview(t *testing.T, svc InterviewService, db *gorm.DB, subjectID uint, answers map[uint]string) (userID, interviewID uint) {
	t.Helper()
	user := seedUser(t, db, "a@x.com")

	started, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subjectID}})
	require.NoError(t, err)
	for i, qid := range started.QuestionIDs {
		answer := answers[qid]
		require.NotEmpty(t, answer, "missing scripted answer for question %d", qid)
		_, err := svc.RecordAnswer(user.ID, started.InterviewID, i, dto.SubmitAnswerRequest{Answer: answer})
		require.NoError(t, err)
	}
	return user.ID, started.InterviewID
}

func TestSummarizeScoresEveryAttempt(t *testing.T) {
	critique := &stubCritiqueService{critique: "Covers the main idea. Mentions rollback behavior."}
	summarySvc, interviewSvc, db := newSummaryFixture(t, critique)

	subject := seedSubject(t, db, "SQL")
	withModel := seedQuestion(t, db, subject.ID, "What is the difference between DELETE and TRUNCATE?",
		strPtr("DELETE removes rows one by one and can be rolled back. TRUNCATE deallocates all space."))
	withoutModel := seedQuestion(t, db, subject.ID, "Explain different types of SQL joins.", nil)

	userID, interviewID := runInterview(t, interviewSvc, db, subject.ID, map[uint]string{
		withModel.ID:    "DELETE removes rows one by one and can be rolled back",
		withoutModel.ID: "INNER JOIN, LEFT JOIN and RIGHT JOIN",
	})

	summary, err := summarySvc.Summarize(context.Background(), userID, interviewID)
	require.NoError(t, err)
	require.Len(t, summary.Attempts, 2)
	require.Equal(t, model.InterviewStatusSummarized, summary.Status)

	byQuestion := make(map[uint]dto.AttemptSummaryDTO)
	for _, a := range summary.Attempts {
		byQuestion[a.QuestionID] = a
	}

	scored := byQuestion[withModel.ID]
	require.NotNil(t, scored.SimilarityScore)
	require.Greater(t, *scored.SimilarityScore, 0.0)
	require.NotNil(t, scored.Feedback)
	require.Equal(t, critique.critique, *scored.Feedback)

	unscored := byQuestion[withoutModel.ID]
	require.NotNil(t, unscored.SimilarityScore)
	require.Zero(t, *unscored.SimilarityScore)
	require.NotNil(t, unscored.Feedback)
	require.Equal(t, NoModelAnswerFeedback, *unscored.Feedback)

	// Only the question with a model answer triggers a remote call.
	require.Equal(t, 1, critique.calls)
}

func TestSummarizeSurvivesRemoteOutage(t *testing.T) {
	summarySvc, interviewSvc, db := newSummaryFixture(t, &stubCritiqueService{err: errCritiqueDown})

	subject := seedSubject(t, db, "SQL")
	q := seedQuestion(t, db, subject.ID, "What is an index?", strPtr("An index speeds up lookups at the cost of writes."))

	userID, interviewID := runInterview(t, interviewSvc, db, subject.ID, map[uint]string{
		q.ID: "An index speeds up lookups at the cost of writes.",
	})

	summary, err := summarySvc.Summarize(context.Background(), userID, interviewID)
	require.NoError(t, err, "a remote outage must not abort the summary")
	require.Len(t, summary.Attempts, 1)
	require.NotNil(t, summary.Attempts[0].Feedback)
	require.Equal(t, excellentFeedback, *summary.Attempts[0].Feedback)
}

func TestSummarizeIsRepeatableWithoutDuplication(t *testing.T) {
	critique := &stubCritiqueService{critique: "Fine."}
	summarySvc, interviewSvc, db := newSummaryFixture(t, critique)

	subject := seedSubject(t, db, "SQL")
	q := seedQuestion(t, db, subject.ID, "What is a view?", strPtr("A view is a stored query presented as a virtual table."))

	userID, interviewID := runInterview(t, interviewSvc, db, subject.ID, map[uint]string{
		q.ID: "A stored query that acts like a table.",
	})

	first, err := summarySvc.Summarize(context.Background(), userID, interviewID)
	require.NoError(t, err)
	second, err := summarySvc.Summarize(context.Background(), userID, interviewID)
	require.NoError(t, err)
	require.Len(t, second.Attempts, len(first.Attempts))

	var count int64
	require.NoError(t, db.Model(&model.Attempt{}).Where("interview_id = ?", interviewID).Count(&count).Error)
	require.EqualValues(t, 1, count, "re-summarizing must not duplicate attempts")
}

func TestSummarizeForeignInterview(t *testing.T) {
	summarySvc, interviewSvc, db := newSummaryFixture(t, &stubCritiqueService{critique: "x"})

	subject := seedSubject(t, db, "SQL")
	q := seedQuestion(t, db, subject.ID, "Q?", nil)
	_, interviewID := runInterview(t, interviewSvc, db, subject.ID, map[uint]string{q.ID: "a"})

	stranger := seedUser(t, db, "stranger@x.com")
	_, err := summarySvc.Summarize(context.Background(), stranger.ID, interviewID)
	require.ErrorIs(t, err, ErrInterviewNotFound)
}
