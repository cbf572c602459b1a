package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/validation"
)

// FeedbackService defines the interface for AI-generated quiz feedback
type FeedbackService interface {
	GenerateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	generator domain.FeedbackGenerator
	validator *validation.Validator
}

// NewFeedbackService creates a new instance of FeedbackService. A nil
// generator means the AI backend credential was not configured at startup.
func NewFeedbackService(generator domain.FeedbackGenerator) FeedbackService {
	return &feedbackService{
		generator: generator,
		validator: validation.NewValidator(),
	}
}

// GenerateFeedback produces the HTML grading fragment for a quiz attempt.
// The configuration check comes before validation: an unconfigured backend
// always answers with the fixed not-configured error, whatever the input.
func (s *feedbackService) GenerateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if s.generator == nil {
		return nil, domain.NewLLMNotConfiguredError()
	}

	if errs := s.validator.ValidateFeedbackRequest(req); len(errs) > 0 {
		return nil, errs
	}

	questions := make([]domain.FeedbackQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, domain.FeedbackQuestion{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	text, err := s.generator.Generate(ctx, questions, req.Answers)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate feedback", err)
	}

	return &dto.FeedbackResponse{Feedback: text}, nil
}
