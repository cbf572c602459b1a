package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz set and question HTTP requests
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ImportQuizSet handles POST /api/quiz-sets/import-json
// @Summary Import a quiz set from a JSON payload
// @Accept json
// @Produce json
// @Param body body dto.ImportQuizSetRequest true "Quiz set"
// @Success 201 {object} dto.ImportQuizSetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/quiz-sets/import-json [post]
func (h *QuizHandler) ImportQuizSet(c *fiber.Ctx) error {
	var req dto.ImportQuizSetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFieldError("body", "is not valid JSON")}
	}

	resp, err := h.quizService.ImportQuizSet(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizSets handles GET /api/quiz-sets?userId=
// @Summary List a user's quiz sets, newest first
// @Produce json
// @Param userId query string true "Owner ID"
// @Success 200 {object} dto.QuizSetListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/quiz-sets [get]
func (h *QuizHandler) ListQuizSets(c *fiber.Ctx) error {
	resp, err := h.quizService.ListQuizSets(c.Context(), c.Query("userId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListQuestions handles GET /api/quiz-sets/:id/questions
// @Summary List a quiz set's questions in insertion order
// @Produce json
// @Param id path string true "Quiz set ID"
// @Success 200 {object} dto.QuestionListResponse
// @Router /api/quiz-sets/{id}/questions [get]
func (h *QuizHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.quizService.ListQuestions(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateQuizSet handles PUT /api/quiz-sets/:id
// @Summary Rename a quiz set
// @Accept json
// @Param id path string true "Quiz set ID"
// @Param body body dto.UpdateQuizSetRequest true "New title"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/quiz-sets/{id} [put]
func (h *QuizHandler) UpdateQuizSet(c *fiber.Ctx) error {
	var req dto.UpdateQuizSetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFieldError("body", "is not valid JSON")}
	}

	if err := h.quizService.UpdateQuizSet(c.Context(), c.Params("id"), &req); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteQuizSet handles DELETE /api/quiz-sets/:id
// @Summary Delete a quiz set and its questions
// @Param id path string true "Quiz set ID"
// @Success 204
// @Router /api/quiz-sets/{id} [delete]
func (h *QuizHandler) DeleteQuizSet(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuizSet(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateQuestion handles PUT /api/questions/:id
// @Summary Replace a question's content
// @Accept json
// @Param id path string true "Question ID"
// @Param body body dto.UpdateQuestionRequest true "Question"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/questions/{id} [put]
func (h *QuizHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFieldError("body", "is not valid JSON")}
	}

	if err := h.quizService.UpdateQuestion(c.Context(), c.Params("id"), &req); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteQuestion handles DELETE /api/questions/:id
// @Summary Delete a question
// @Param id path string true "Question ID"
// @Success 204
// @Router /api/questions/{id} [delete]
func (h *QuizHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuestion(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
