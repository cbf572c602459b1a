package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
)

// --- MockUserRepository ---

type MockUserRepository struct {
	CreateUserFunc     func(ctx context.Context, user *models.User) error
	GetUserByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	panic("MockUserRepository.CreateUserFunc not implemented")
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	panic("MockUserRepository.GetUserByEmailFunc not implemented")
}

// --- MockQuizRepository ---

type MockQuizRepository struct {
	ImportQuizSetFunc           func(ctx context.Context, set *models.QuizSet, questions []*models.Question) error
	GetQuizSetsByUserIDFunc     func(ctx context.Context, userID string) ([]*models.QuizSet, error)
	GetQuestionsByQuizSetIDFunc func(ctx context.Context, quizSetID string) ([]*models.Question, error)
	UpdateQuizSetTitleFunc      func(ctx context.Context, id, title string) error
	DeleteQuizSetFunc           func(ctx context.Context, id string) error
	UpdateQuestionFunc          func(ctx context.Context, question *models.Question) error
	DeleteQuestionFunc          func(ctx context.Context, id string) error
}

func (m *MockQuizRepository) ImportQuizSet(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
	if m.ImportQuizSetFunc != nil {
		return m.ImportQuizSetFunc(ctx, set, questions)
	}
	panic("MockQuizRepository.ImportQuizSetFunc not implemented")
}

func (m *MockQuizRepository) GetQuizSetsByUserID(ctx context.Context, userID string) ([]*models.QuizSet, error) {
	if m.GetQuizSetsByUserIDFunc != nil {
		return m.GetQuizSetsByUserIDFunc(ctx, userID)
	}
	panic("MockQuizRepository.GetQuizSetsByUserIDFunc not implemented")
}

func (m *MockQuizRepository) GetQuestionsByQuizSetID(ctx context.Context, quizSetID string) ([]*models.Question, error) {
	if m.GetQuestionsByQuizSetIDFunc != nil {
		return m.GetQuestionsByQuizSetIDFunc(ctx, quizSetID)
	}
	panic("MockQuizRepository.GetQuestionsByQuizSetIDFunc not implemented")
}

func (m *MockQuizRepository) UpdateQuizSetTitle(ctx context.Context, id, title string) error {
	if m.UpdateQuizSetTitleFunc != nil {
		return m.UpdateQuizSetTitleFunc(ctx, id, title)
	}
	panic("MockQuizRepository.UpdateQuizSetTitleFunc not implemented")
}

func (m *MockQuizRepository) DeleteQuizSet(ctx context.Context, id string) error {
	if m.DeleteQuizSetFunc != nil {
		return m.DeleteQuizSetFunc(ctx, id)
	}
	panic("MockQuizRepository.DeleteQuizSetFunc not implemented")
}

func (m *MockQuizRepository) UpdateQuestion(ctx context.Context, question *models.Question) error {
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, question)
	}
	panic("MockQuizRepository.UpdateQuestionFunc not implemented")
}

func (m *MockQuizRepository) DeleteQuestion(ctx context.Context, id string) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuizRepository.DeleteQuestionFunc not implemented")
}

// --- MockFeedbackGenerator ---

type MockFeedbackGenerator struct {
	GenerateFunc func(ctx context.Context, questions []domain.FeedbackQuestion, answers []*string) (string, error)
}

func (m *MockFeedbackGenerator) Generate(ctx context.Context, questions []domain.FeedbackQuestion, answers []*string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, questions, answers)
	}
	panic("MockFeedbackGenerator.GenerateFunc not implemented")
}
