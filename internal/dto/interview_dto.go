package dto

import "time"

// StartInterviewRequest selects the subjects a run will sample questions from.
type StartInterviewRequest struct {
	SubjectIDs []uint `json:"subject_ids" binding:"required,min=1,dive,min=1"`
}

type StartInterviewResponse struct {
	InterviewID    uint   `json:"interview_id"`
	QuestionIDs    []uint `json:"question_ids"`
	TotalQuestions int    `json:"total_questions"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// CurrentQuestionResponse is one step of an in-progress run.
type CurrentQuestionResponse struct {
	InterviewID    uint   `json:"interview_id"`
	QuestionIndex  int    `json:"question_index"`
	TotalQuestions int    `json:"total_questions"`
	QuestionID     uint   `json:"question_id"`
	Text           string `json:"text"`
	SubjectID      uint   `json:"subject_id"`
	// Completed signals the client to move to the summary instead of rendering a question.
	Completed bool `json:"completed"`
}

type SubmitAnswerResponse struct {
	AttemptID uint `json:"attempt_id"`
	NextIndex int  `json:"next_index"`
	// Completed is true once the final question has been answered.
	Completed bool `json:"completed"`
}

type AttemptSummaryDTO struct {
	AttemptID       uint     `json:"attempt_id"`
	QuestionID      uint     `json:"question_id"`
	QuestionText    string   `json:"question_text"`
	ModelAnswer     *string  `json:"model_answer,omitempty"`
	UserAnswer      string   `json:"user_answer"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	Feedback        *string  `json:"feedback,omitempty"`
}

type InterviewSummaryResponse struct {
	InterviewID uint                `json:"interview_id"`
	Status      string              `json:"status"`
	Attempts    []AttemptSummaryDTO `json:"attempts"`
}

type InterviewListItemDTO struct {
	ID            uint      `json:"id"`
	Status        string    `json:"status"`
	CurrentIndex  int       `json:"current_index"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
