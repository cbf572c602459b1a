package service

import (
	"context"
	"strings"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"
	"quizdeck/internal/validation"

	"go.uber.org/zap"
)

// defaultQuizSetTitle is used when an import omits the title
const defaultQuizSetTitle = "Untitled Quiz"

// QuizService defines the interface for quiz set and question operations
type QuizService interface {
	ImportQuizSet(ctx context.Context, req *dto.ImportQuizSetRequest) (*dto.ImportQuizSetResponse, error)
	ListQuizSets(ctx context.Context, userID string) (*dto.QuizSetListResponse, error)
	ListQuestions(ctx context.Context, quizSetID string) (*dto.QuestionListResponse, error)
	UpdateQuizSet(ctx context.Context, id string, req *dto.UpdateQuizSetRequest) error
	DeleteQuizSet(ctx context.Context, id string) error
	UpdateQuestion(ctx context.Context, id string, req *dto.UpdateQuestionRequest) error
	DeleteQuestion(ctx context.Context, id string) error
}

type quizService struct {
	quizRepo  repository.QuizRepository
	validator *validation.Validator
}

// NewQuizService creates a new instance of QuizService
func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{
		quizRepo:  quizRepo,
		validator: validation.NewValidator(),
	}
}

// ImportQuizSet creates a quiz set and its questions in one transaction.
// Malformed entries (blank question or correct answer) are skipped, not
// rejected; the response reports how many were dropped.
func (s *quizService) ImportQuizSet(ctx context.Context, req *dto.ImportQuizSetRequest) (*dto.ImportQuizSetResponse, error) {
	if errs := s.validator.ValidateImportRequest(req); len(errs) > 0 {
		return nil, errs
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultQuizSetTitle
	}

	set := &models.QuizSet{
		ID:        util.NewULID(),
		UserID:    req.UserID,
		Title:     title,
		CreatedAt: time.Now(),
	}

	var questions []*models.Question
	skipped := 0
	for _, entry := range req.Questions {
		if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.CorrectAnswer) == "" {
			skipped++
			continue
		}
		wrongAnswers := entry.WrongAnswers
		if wrongAnswers == nil {
			wrongAnswers = []string{}
		}
		questions = append(questions, &models.Question{
			ID:            util.NewULID(),
			QuizSetID:     set.ID,
			Question:      entry.Question,
			CorrectAnswer: entry.CorrectAnswer,
			WrongAnswers:  models.StringSlice(wrongAnswers),
		})
	}

	if err := s.quizRepo.ImportQuizSet(ctx, set, questions); err != nil {
		return nil, domain.NewInternalError("Failed to import quiz set", err)
	}

	if skipped > 0 {
		logger.Get().Warn("Skipped malformed question entries during import",
			zap.String("quiz_set_id", set.ID),
			zap.Int("skipped", skipped),
		)
	}

	return &dto.ImportQuizSetResponse{
		QuizSet: dto.QuizSetResponse{
			ID:        set.ID,
			Title:     set.Title,
			CreatedAt: set.CreatedAt,
		},
		Imported: len(questions),
		Skipped:  skipped,
	}, nil
}

// ListQuizSets returns a user's quiz sets, newest first
func (s *quizService) ListQuizSets(ctx context.Context, userID string) (*dto.QuizSetListResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("userId")}
	}

	sets, err := s.quizRepo.GetQuizSetsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz sets", err)
	}

	resp := &dto.QuizSetListResponse{QuizSets: make([]dto.QuizSetResponse, 0, len(sets))}
	for _, set := range sets {
		resp.QuizSets = append(resp.QuizSets, dto.QuizSetResponse{
			ID:        set.ID,
			Title:     set.Title,
			CreatedAt: set.CreatedAt,
		})
	}
	return resp, nil
}

// ListQuestions returns a set's questions in insertion order with storage
// columns mapped to camel-case API fields
func (s *quizService) ListQuestions(ctx context.Context, quizSetID string) (*dto.QuestionListResponse, error) {
	questions, err := s.quizRepo.GetQuestionsByQuizSetID(ctx, quizSetID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	resp := &dto.QuestionListResponse{Questions: make([]dto.QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		wrongAnswers := []string(q.WrongAnswers)
		if wrongAnswers == nil {
			wrongAnswers = []string{}
		}
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			ID:            q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			WrongAnswers:  wrongAnswers,
		})
	}
	return resp, nil
}

// UpdateQuizSet renames a set; renaming a nonexistent set is a no-op
func (s *quizService) UpdateQuizSet(ctx context.Context, id string, req *dto.UpdateQuizSetRequest) error {
	if errs := s.validator.ValidateQuizSetUpdate(req); len(errs) > 0 {
		return errs
	}
	if err := s.quizRepo.UpdateQuizSetTitle(ctx, id, req.Title); err != nil {
		return domain.NewInternalError("Failed to update quiz set", err)
	}
	return nil
}

// DeleteQuizSet removes a set and, via cascade, its questions
func (s *quizService) DeleteQuizSet(ctx context.Context, id string) error {
	if err := s.quizRepo.DeleteQuizSet(ctx, id); err != nil {
		return domain.NewInternalError("Failed to delete quiz set", err)
	}
	return nil
}

// UpdateQuestion replaces a question's content
func (s *quizService) UpdateQuestion(ctx context.Context, id string, req *dto.UpdateQuestionRequest) error {
	if errs := s.validator.ValidateQuestionUpdate(req); len(errs) > 0 {
		return errs
	}

	wrongAnswers := req.WrongAnswers
	if wrongAnswers == nil {
		wrongAnswers = []string{}
	}

	question := &models.Question{
		ID:            id,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		WrongAnswers:  models.StringSlice(wrongAnswers),
	}
	if err := s.quizRepo.UpdateQuestion(ctx, question); err != nil {
		return domain.NewInternalError("Failed to update question", err)
	}
	return nil
}

// DeleteQuestion removes a single question
func (s *quizService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.quizRepo.DeleteQuestion(ctx, id); err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	return nil
}
