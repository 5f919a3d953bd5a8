package dto

// CreateSubjectRequest is for admin to add a new interview subject.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateQuestionRequest adds a question under an existing subject.
// ModelAnswer is optional; without it the question can never be similarity-scored.
type CreateQuestionRequest struct {
	Text        string  `json:"text" binding:"required"`
	ModelAnswer *string `json:"model_answer"`
}

type SubjectResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type QuestionResponse struct {
	ID          uint    `json:"id"`
	Text        string  `json:"text"`
	ModelAnswer *string `json:"model_answer,omitempty"`
	SubjectID   uint    `json:"subject_id"`
}
