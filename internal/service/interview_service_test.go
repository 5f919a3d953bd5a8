package service

import (
	"fmt"
	"testing"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInterviewService(t *testing.T) (InterviewService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewInterviewService(
		repository.NewInterviewRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAttemptRepository(db),
		testConfig(),
		db,
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestStartInterviewWithNoQuestions(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	empty := seedSubject(t, db, "Empty Subject")

	_, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{empty.ID}})
	require.ErrorIs(t, err, ErrNoQuestions)

	var attempts int64
	require.NoError(t, db.Model(&model.Attempt{}).Count(&attempts).Error)
	require.Zero(t, attempts, "a failed start must not create attempts")

	var interviews int64
	require.NoError(t, db.Model(&model.Interview{}).Count(&interviews).Error)
	require.Zero(t, interviews, "a failed start must not leave an interview row")
}

func TestStartInterviewPersistsQuestionSequence(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	sql := seedSubject(t, db, "SQL")
	q1 := seedQuestion(t, db, sql.ID, "What is the difference between DELETE and TRUNCATE?", strPtr("DELETE removes rows one by one and can be rolled back."))
	q2 := seedQuestion(t, db, sql.ID, "Explain different types of SQL joins.", nil)

	resp, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{sql.ID}})
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalQuestions)
	require.ElementsMatch(t, []uint{q1.ID, q2.ID}, resp.QuestionIDs)

	var sequence []model.InterviewQuestion
	require.NoError(t, db.Where("interview_id = ?", resp.InterviewID).Order("position ASC").Find(&sequence).Error)
	require.Len(t, sequence, 2)
	for i, iq := range sequence {
		require.Equal(t, i, iq.Position)
		require.Equal(t, resp.QuestionIDs[i], iq.QuestionID)
	}
}

func TestStartInterviewRespectsQuestionLimit(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	subject := seedSubject(t, db, "Python")
	for i := 0; i < 15; i++ {
		seedQuestion(t, db, subject.ID, fmt.Sprintf("Question number %d?", i), nil)
	}

	resp, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)
	require.Equal(t, 10, resp.TotalQuestions)

	// Sampling is without replacement.
	seen := make(map[uint]bool)
	for _, id := range resp.QuestionIDs {
		require.False(t, seen[id], "question %d sampled twice", id)
		seen[id] = true
	}
}

func TestStartInterviewAbandonsPreviousRun(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	subject := seedSubject(t, db, "SQL")
	seedQuestion(t, db, subject.ID, "What is a primary key?", nil)

	first, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)
	second, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)

	var old model.Interview
	require.NoError(t, db.First(&old, first.InterviewID).Error)
	require.Equal(t, model.InterviewStatusAbandoned, old.Status)

	var current model.Interview
	require.NoError(t, db.First(&current, second.InterviewID).Error)
	require.Equal(t, model.InterviewStatusInProgress, current.Status)
}

func TestAnswerFlowProducesOneAttemptPerQuestion(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	subject := seedSubject(t, db, "SQL")
	for i := 0; i < 3; i++ {
		seedQuestion(t, db, subject.ID, fmt.Sprintf("Question %d?", i), nil)
	}

	started, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)
	n := started.TotalQuestions

	for i := 0; i < n; i++ {
		current, err := svc.CurrentQuestion(user.ID, started.InterviewID, i)
		require.NoError(t, err)
		require.False(t, current.Completed)
		require.Equal(t, started.QuestionIDs[i], current.QuestionID)

		submitted, err := svc.RecordAnswer(user.ID, started.InterviewID, i, dto.SubmitAnswerRequest{Answer: fmt.Sprintf("answer %d", i)})
		require.NoError(t, err)
		require.Equal(t, i+1, submitted.NextIndex)
		require.Equal(t, i == n-1, submitted.Completed)
	}

	var attempts []model.Attempt
	require.NoError(t, db.Where("interview_id = ?", started.InterviewID).Order("id ASC").Find(&attempts).Error)
	require.Len(t, attempts, n)
	for i, attempt := range attempts {
		require.Equal(t, started.QuestionIDs[i], attempt.QuestionID)
		require.Nil(t, attempt.SimilarityScore, "attempts stay unscored until the summary")
	}
}

func TestRecordAnswerOutOfOrder(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	subject := seedSubject(t, db, "SQL")
	seedQuestion(t, db, subject.ID, "Q0?", nil)
	seedQuestion(t, db, subject.ID, "Q1?", nil)

	started, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)

	_, err = svc.RecordAnswer(user.ID, started.InterviewID, 1, dto.SubmitAnswerRequest{Answer: "skipping ahead"})
	require.ErrorIs(t, err, ErrAnswerOutOfOrder)
}

func TestQuestionPastTheEndRedirectsToSummary(t *testing.T) {
	svc, db := newInterviewService(t)
	user := seedUser(t, db, "a@x.com")
	subject := seedSubject(t, db, "SQL")
	seedQuestion(t, db, subject.ID, "Q0?", nil)

	started, err := svc.StartInterview(user.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)

	resp, err := svc.CurrentQuestion(user.ID, started.InterviewID, 5)
	require.NoError(t, err)
	require.True(t, resp.Completed)
}

func TestForeignInterviewLooksMissing(t *testing.T) {
	svc, db := newInterviewService(t)
	owner := seedUser(t, db, "owner@x.com")
	other := seedUser(t, db, "other@x.com")
	subject := seedSubject(t, db, "SQL")
	seedQuestion(t, db, subject.ID, "Q0?", nil)

	started, err := svc.StartInterview(owner.ID, dto.StartInterviewRequest{SubjectIDs: []uint{subject.ID}})
	require.NoError(t, err)

	_, err = svc.CurrentQuestion(other.ID, started.InterviewID, 0)
	require.ErrorIs(t, err, ErrInterviewNotFound)

	_, err = svc.RecordAnswer(other.ID, started.InterviewID, 0, dto.SubmitAnswerRequest{Answer: "hi"})
	require.ErrorIs(t, err, ErrInterviewNotFound)
}
