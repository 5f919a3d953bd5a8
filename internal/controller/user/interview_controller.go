package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/middleware"
	"github.com/VertingsXin/ai-mock-interview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	contentService   service.ContentService
	interviewService service.InterviewService
	summaryService   service.SummaryService
}

func NewInterviewController(
	contentService service.ContentService,
	interviewService service.InterviewService,
	summaryService service.SummaryService,
) *InterviewController {
	return &InterviewController{
		contentService:   contentService,
		interviewService: interviewService,
		summaryService:   summaryService,
	}
}

// ListSubjects godoc
// @Summary List subjects available for interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubjectResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subjects [get]
func (c *InterviewController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.contentService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("ListSubjects: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// StartInterview godoc
// @Summary Start a new interview run
// @Description Samples up to 10 random questions from the chosen subjects and begins a run at question 0.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body dto.StartInterviewRequest true "Subject ids to sample from"
// @Success 201 {object} dto.StartInterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid selection"
// @Failure 422 {object} dto.ErrorResponse "No questions for the selected subjects"
// @Router /interviews [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	userID, ok := middleware.CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.StartInterview(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("StartInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start interview"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListInterviews godoc
// @Summary List the caller's interview runs
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewListItemDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	userID, ok := middleware.CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}
	interviews, err := c.interviewService.ListInterviews(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interviews"})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetQuestion godoc
// @Summary Get the question at an index of a run
// @Description An index past the last question returns completed=true so the client can move to the summary.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param index path int true "Zero-based question index"
// @Success 200 {object} dto.CurrentQuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id}/questions/{index} [get]
func (c *InterviewController) GetQuestion(ctx *gin.Context) {
	userID, interviewID, index, ok := c.pathParams(ctx)
	if !ok {
		return
	}

	resp, err := c.interviewService.CurrentQuestion(userID, interviewID, index)
	if err != nil {
		c.writeInterviewError(ctx, err, "GetQuestion")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit the answer for the question at an index
// @Description Records one attempt and advances the run. Answers must be submitted in order.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param index path int true "Zero-based question index"
// @Param answer body dto.SubmitAnswerRequest true "Free-text answer"
// @Success 201 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Empty answer"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Wrong index or finished interview"
// @Router /interviews/{interview_id}/questions/{index}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	userID, interviewID, index, ok := c.pathParams(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Answer must not be empty", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.RecordAnswer(userID, interviewID, index, req)
	if err != nil {
		c.writeInterviewError(ctx, err, "SubmitAnswer")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSummary godoc
// @Summary Score and return the summary of a run
// @Description Scores every recorded attempt against its model answer and persists the results. Safe to call again; scores are overwritten, never duplicated.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewSummaryResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id}/summary [get]
func (c *InterviewController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid interview ID format"})
		return
	}

	resp, err := c.summaryService.Summarize(ctx.Request.Context(), userID, uint(interviewID))
	if err != nil {
		c.writeInterviewError(ctx, err, "GetSummary")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *InterviewController) pathParams(ctx *gin.Context) (userID, interviewID uint, index int, ok bool) {
	userID, authed := middleware.CallerID(ctx)
	if !authed {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return 0, 0, 0, false
	}
	id, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid interview ID format"})
		return 0, 0, 0, false
	}
	idx, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || idx < 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question index"})
		return 0, 0, 0, false
	}
	return userID, uint(id), idx, true
}

func (c *InterviewController) writeInterviewError(ctx *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrInterviewNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found. Please start a new one."})
	case errors.Is(err, service.ErrInterviewFinished), errors.Is(err, service.ErrAnswerOutOfOrder):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("Interview request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
