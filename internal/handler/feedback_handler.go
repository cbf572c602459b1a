package handler

import (
	"time"

	"quizdeck/internal/dto"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FeedbackHandler handles AI feedback HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// GenerateFeedback handles POST /api/quiz-feedback
// @Summary Grade a quiz attempt with AI-generated HTML feedback
// @Accept json
// @Produce json
// @Param body body dto.FeedbackRequest true "Questions and answers"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /api/quiz-feedback [post]
func (h *FeedbackHandler) GenerateFeedback(c *fiber.Ctx) error {
	// A parse failure leaves the request empty, which fails sequence
	// validation below. The service checks backend configuration before
	// validating, so an unconfigured backend answers 503 regardless of
	// what the body contained.
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		req = dto.FeedbackRequest{}
	}

	resp, err := h.feedbackService.GenerateFeedback(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Health handles GET/POST /health
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
