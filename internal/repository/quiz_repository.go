package repository

import (
	"context"
	"fmt"

	"quizdeck/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizRepository defines the interface for quiz set and question data operations
type QuizRepository interface {
	ImportQuizSet(ctx context.Context, set *models.QuizSet, questions []*models.Question) error
	GetQuizSetsByUserID(ctx context.Context, userID string) ([]*models.QuizSet, error)
	GetQuestionsByQuizSetID(ctx context.Context, quizSetID string) ([]*models.Question, error)
	UpdateQuizSetTitle(ctx context.Context, id, title string) error
	DeleteQuizSet(ctx context.Context, id string) error
	UpdateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id string) error
}

// sqlxQuizRepository implements QuizRepository using sqlx
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository
func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

// ImportQuizSet inserts a quiz set and its questions in one transaction.
// Any failure rolls back the whole import.
func (r *sqlxQuizRepository) ImportQuizSet(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback()

	setQuery := `INSERT INTO quiz_sets (id, user_id, title, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, setQuery, set.ID, set.UserID, set.Title, set.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert quiz set: %w", err)
	}

	questionQuery := `INSERT INTO questions (id, quiz_set_id, question, correct_answer, wrong_answers)
	                  VALUES ($1, $2, $3, $4, $5)`
	for _, q := range questions {
		if _, err := tx.ExecContext(ctx, questionQuery, q.ID, q.QuizSetID, q.Question, q.CorrectAnswer, q.WrongAnswers); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return nil
}

// GetQuizSetsByUserID lists a user's quiz sets, newest first
func (r *sqlxQuizRepository) GetQuizSetsByUserID(ctx context.Context, userID string) ([]*models.QuizSet, error) {
	var sets []*models.QuizSet
	query := `SELECT id, user_id, title, created_at FROM quiz_sets
	          WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &sets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list quiz sets: %w", err)
	}
	return sets, nil
}

// GetQuestionsByQuizSetID lists a set's questions ordered by id ascending.
// IDs are ULIDs, so ascending id order is insertion order.
func (r *sqlxQuizRepository) GetQuestionsByQuizSetID(ctx context.Context, quizSetID string) ([]*models.Question, error) {
	var questions []*models.Question
	query := `SELECT id, quiz_set_id, question, correct_answer, wrong_answers FROM questions
	          WHERE quiz_set_id = $1 ORDER BY id ASC`

	if err := r.db.SelectContext(ctx, &questions, query, quizSetID); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// UpdateQuizSetTitle renames a quiz set. Updating a nonexistent id is not
// an error; zero rows affected is a successful no-op.
func (r *sqlxQuizRepository) UpdateQuizSetTitle(ctx context.Context, id, title string) error {
	query := `UPDATE quiz_sets SET title = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, title, id); err != nil {
		return fmt.Errorf("failed to update quiz set: %w", err)
	}
	return nil
}

// DeleteQuizSet removes a quiz set; the FK cascade removes its questions
func (r *sqlxQuizRepository) DeleteQuizSet(ctx context.Context, id string) error {
	query := `DELETE FROM quiz_sets WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete quiz set: %w", err)
	}
	return nil
}

// UpdateQuestion replaces a question's text, correct answer and wrong answers
func (r *sqlxQuizRepository) UpdateQuestion(ctx context.Context, question *models.Question) error {
	query := `UPDATE questions SET question = $1, correct_answer = $2, wrong_answers = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, question.Question, question.CorrectAnswer, question.WrongAnswers, question.ID); err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return nil
}

// DeleteQuestion removes a single question
func (r *sqlxQuizRepository) DeleteQuestion(ctx context.Context, id string) error {
	query := `DELETE FROM questions WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
