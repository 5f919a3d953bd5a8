package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/VertingsXin/ai-mock-interview/config"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Question{},
		&model.Interview{},
		&model.InterviewQuestion{},
		&model.Attempt{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{JWTSecret: "test-secret"}
	cfg.Interview.QuestionLimit = 10
	return cfg
}

func seedSubject(t *testing.T, db *gorm.DB, name string) *model.Subject {
	t.Helper()
	subject := model.Subject{Name: name}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}
	return &subject
}

func seedQuestion(t *testing.T, db *gorm.DB, subjectID uint, text string, modelAnswer *string) *model.Question {
	t.Helper()
	question := model.Question{Text: text, ModelAnswer: modelAnswer, SubjectID: subjectID}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return &question
}

func strPtr(s string) *string { return &s }

// stubCritiqueService returns a canned critique or error, and records calls.
type stubCritiqueService struct {
	critique string
	err      error
	calls    int
}

func (s *stubCritiqueService) GenerateCritique(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.critique, nil
}

var errCritiqueDown = errors.New("critique backend unreachable")
