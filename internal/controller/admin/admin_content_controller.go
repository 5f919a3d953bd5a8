package admin

import (
	"net/http"
	"strconv"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminContentController struct {
	contentService service.ContentService
}

func NewAdminContentController(contentService service.ContentService) *AdminContentController {
	return &AdminContentController{contentService: contentService}
}

// CreateSubject godoc
// @Summary (Admin) Create a new subject
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param subject body dto.CreateSubjectRequest true "Subject name"
// @Success 201 {object} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or duplicate subject"
// @Router /admin/subjects [post]
func (c *AdminContentController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.contentService.CreateSubject(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateSubject: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create subject", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a subject
// @Description Model answer is optional; questions without one are asked but never similarity-scored.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param subject_id path int true "Subject ID"
// @Param question body dto.CreateQuestionRequest true "Question text and optional model answer"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{subject_id}/questions [post]
func (c *AdminContentController) AddQuestion(ctx *gin.Context) {
	subjectID, err := strconv.ParseUint(ctx.Param("subject_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid subject ID format"})
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.contentService.AddQuestion(uint(subjectID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("subjectID", subjectID).Msg("Admin AddQuestion: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Tags Admin - Content
// @Produce json
// @Param subject_id query int false "Filter by subject"
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (c *AdminContentController) ListQuestions(ctx *gin.Context) {
	var subjectID *uint
	if q := ctx.Query("subject_id"); q != "" {
		val, err := strconv.ParseUint(q, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid subject ID format in query"})
			return
		}
		id := uint(val)
		subjectID = &id
	}

	questions, err := c.contentService.ListQuestions(subjectID)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
