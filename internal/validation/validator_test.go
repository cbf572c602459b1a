package validation

import (
	"testing"

	"quizdeck/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		email    string
		password string
		wantErrs int
	}{
		{"valid", "user@example.com", "secret", 0},
		{"missing email", "", "secret", 1},
		{"missing password", "user@example.com", "", 1},
		{"both missing", "", "", 2},
		{"bad email format", "not-an-email", "secret", 1},
		{"whitespace email", "   ", "secret", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCredentials(tt.email, tt.password)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestValidateImportRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		req := &dto.ImportQuizSetRequest{
			UserID:    "u1",
			Questions: []dto.ImportQuestionEntry{},
		}
		assert.Empty(t, v.ValidateImportRequest(req))
	})

	t.Run("missing userId", func(t *testing.T) {
		req := &dto.ImportQuizSetRequest{Questions: []dto.ImportQuestionEntry{}}
		errs := v.ValidateImportRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "userId", errs[0].Field)
	})

	t.Run("missing questions", func(t *testing.T) {
		req := &dto.ImportQuizSetRequest{UserID: "u1"}
		errs := v.ValidateImportRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "questions", errs[0].Field)
	})
}

func TestValidateFeedbackRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid with empty arrays", func(t *testing.T) {
		req := &dto.FeedbackRequest{
			Questions: []dto.FeedbackQuestion{},
			Answers:   []*string{},
		}
		assert.Empty(t, v.ValidateFeedbackRequest(req))
	})

	t.Run("answers shorter than questions is valid", func(t *testing.T) {
		req := &dto.FeedbackRequest{
			Questions: []dto.FeedbackQuestion{{Question: "q1"}, {Question: "q2"}},
			Answers:   []*string{},
		}
		assert.Empty(t, v.ValidateFeedbackRequest(req))
	})

	t.Run("missing both", func(t *testing.T) {
		req := &dto.FeedbackRequest{}
		errs := v.ValidateFeedbackRequest(req)
		assert.Len(t, errs, 2)
	})
}

func TestValidateQuestionUpdate(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateQuestionUpdate(&dto.UpdateQuestionRequest{})
	assert.Len(t, errs, 2)

	errs = v.ValidateQuestionUpdate(&dto.UpdateQuestionRequest{
		Question:      "Capital of France?",
		CorrectAnswer: "Paris",
	})
	assert.Empty(t, errs)
}
