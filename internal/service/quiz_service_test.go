package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportQuizSet_SkipsMalformedEntries(t *testing.T) {
	var insertedSet *models.QuizSet
	var insertedQuestions []*models.Question
	repo := &MockQuizRepository{
		ImportQuizSetFunc: func(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
			insertedSet = set
			insertedQuestions = questions
			return nil
		},
	}
	svc := NewQuizService(repo)

	req := &dto.ImportQuizSetRequest{
		UserID: "u1",
		Title:  "Geography",
		Questions: []dto.ImportQuestionEntry{
			{Question: "Capital of France?", CorrectAnswer: "Paris", WrongAnswers: []string{"London"}},
			{Question: "", CorrectAnswer: "orphan answer"},
			{Question: "Capital of Japan?", CorrectAnswer: "Tokyo"},
			{Question: "no answer at all", CorrectAnswer: "   "},
		},
	}

	resp, err := svc.ImportQuizSet(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 2, resp.Skipped)
	assert.Equal(t, "Geography", resp.QuizSet.Title)
	require.Len(t, insertedQuestions, 2)
	assert.Equal(t, "Capital of France?", insertedQuestions[0].Question)
	assert.Equal(t, "Capital of Japan?", insertedQuestions[1].Question)
	assert.Equal(t, insertedSet.ID, insertedQuestions[0].QuizSetID)
	assert.Equal(t, models.StringSlice{}, insertedQuestions[1].WrongAnswers,
		"absent wrongAnswers must persist as an empty array, never null")
	assert.Less(t, insertedQuestions[0].ID, insertedQuestions[1].ID,
		"question IDs must preserve insertion order")
}

func TestImportQuizSet_AllEntriesMalformedStillSucceeds(t *testing.T) {
	repo := &MockQuizRepository{
		ImportQuizSetFunc: func(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
			assert.Empty(t, questions)
			return nil
		},
	}
	svc := NewQuizService(repo)

	resp, err := svc.ImportQuizSet(context.Background(), &dto.ImportQuizSetRequest{
		UserID: "u1",
		Questions: []dto.ImportQuestionEntry{
			{Question: "", CorrectAnswer: ""},
			{Question: "q", CorrectAnswer: ""},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Imported)
	assert.Equal(t, 2, resp.Skipped)
}

func TestImportQuizSet_DefaultTitle(t *testing.T) {
	repo := &MockQuizRepository{
		ImportQuizSetFunc: func(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
			return nil
		},
	}
	svc := NewQuizService(repo)

	resp, err := svc.ImportQuizSet(context.Background(), &dto.ImportQuizSetRequest{
		UserID:    "u1",
		Questions: []dto.ImportQuestionEntry{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Untitled Quiz", resp.QuizSet.Title)
}

func TestImportQuizSet_MissingFields(t *testing.T) {
	svc := NewQuizService(&MockQuizRepository{})

	_, err := svc.ImportQuizSet(context.Background(), &dto.ImportQuizSetRequest{})
	require.Error(t, err)

	var validationErrs domain.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Len(t, validationErrs, 2)
}

func TestImportQuizSet_RepositoryFailureIsInternal(t *testing.T) {
	repo := &MockQuizRepository{
		ImportQuizSetFunc: func(ctx context.Context, set *models.QuizSet, questions []*models.Question) error {
			return errors.New("tx aborted")
		},
	}
	svc := NewQuizService(repo)

	_, err := svc.ImportQuizSet(context.Background(), &dto.ImportQuizSetRequest{
		UserID:    "u1",
		Questions: []dto.ImportQuestionEntry{},
	})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestListQuizSets(t *testing.T) {
	now := time.Now()
	repo := &MockQuizRepository{
		GetQuizSetsByUserIDFunc: func(ctx context.Context, userID string) ([]*models.QuizSet, error) {
			return []*models.QuizSet{
				{ID: "s2", UserID: userID, Title: "Newest", CreatedAt: now},
				{ID: "s1", UserID: userID, Title: "Older", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	svc := NewQuizService(repo)

	resp, err := svc.ListQuizSets(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, resp.QuizSets, 2)
	assert.Equal(t, "Newest", resp.QuizSets[0].Title)
}

func TestListQuizSets_MissingUserID(t *testing.T) {
	svc := NewQuizService(&MockQuizRepository{})

	_, err := svc.ListQuizSets(context.Background(), "  ")
	require.Error(t, err)

	var validationErrs domain.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestListQuestions_FieldMapping(t *testing.T) {
	repo := &MockQuizRepository{
		GetQuestionsByQuizSetIDFunc: func(ctx context.Context, quizSetID string) ([]*models.Question, error) {
			return []*models.Question{
				{
					ID:            "q1",
					QuizSetID:     quizSetID,
					Question:      "Capital of France?",
					CorrectAnswer: "Paris",
					WrongAnswers:  models.StringSlice{"London", "Berlin"},
				},
				{
					ID:            "q2",
					QuizSetID:     quizSetID,
					Question:      "Capital of Japan?",
					CorrectAnswer: "Tokyo",
					WrongAnswers:  nil,
				},
			}, nil
		},
	}
	svc := NewQuizService(repo)

	resp, err := svc.ListQuestions(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "Paris", resp.Questions[0].CorrectAnswer)
	assert.Equal(t, []string{"London", "Berlin"}, resp.Questions[0].WrongAnswers)
	assert.NotNil(t, resp.Questions[1].WrongAnswers, "wrongAnswers is never null in responses")
}

func TestUpdateQuizSet_BlankTitleRejected(t *testing.T) {
	svc := NewQuizService(&MockQuizRepository{})

	err := svc.UpdateQuizSet(context.Background(), "s1", &dto.UpdateQuizSetRequest{Title: " "})
	require.Error(t, err)

	var validationErrs domain.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestUpdateQuestion_NormalizesNilWrongAnswers(t *testing.T) {
	var updated *models.Question
	repo := &MockQuizRepository{
		UpdateQuestionFunc: func(ctx context.Context, question *models.Question) error {
			updated = question
			return nil
		},
	}
	svc := NewQuizService(repo)

	err := svc.UpdateQuestion(context.Background(), "q1", &dto.UpdateQuestionRequest{
		Question:      "Updated?",
		CorrectAnswer: "Yes",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "q1", updated.ID)
	assert.Equal(t, models.StringSlice{}, updated.WrongAnswers)
}

func TestDeleteQuizSet_NonexistentIDSucceeds(t *testing.T) {
	repo := &MockQuizRepository{
		DeleteQuizSetFunc: func(ctx context.Context, id string) error {
			// repositories treat zero rows affected as success
			return nil
		},
	}
	svc := NewQuizService(repo)

	assert.NoError(t, svc.DeleteQuizSet(context.Background(), "missing"))
}
