package validation

import (
	"regexp"
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials validates a register or login body
func (v *Validator) ValidateCredentials(email, password string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, domain.NewInvalidFieldError("email", "is not a valid email address"))
	}

	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}

	return errs
}

// ValidateImportRequest validates the quiz set import body. Individual
// question entries are not validated here; malformed entries are skipped
// during import rather than rejecting the whole payload.
func (v *Validator) ValidateImportRequest(req *dto.ImportQuizSetRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.UserID) == "" {
		errs = append(errs, domain.NewMissingFieldError("userId"))
	}
	if req.Questions == nil {
		errs = append(errs, domain.NewMissingFieldError("questions"))
	}

	return errs
}

// ValidateQuizSetUpdate validates the body for renaming a quiz set
func (v *Validator) ValidateQuizSetUpdate(req *dto.UpdateQuizSetRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}

	return errs
}

// ValidateQuestionUpdate validates the body for replacing a question
func (v *Validator) ValidateQuestionUpdate(req *dto.UpdateQuestionRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Question) == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	}
	if strings.TrimSpace(req.CorrectAnswer) == "" {
		errs = append(errs, domain.NewMissingFieldError("correctAnswer"))
	}

	return errs
}

// ValidateFeedbackRequest checks that both sequences are present. Answers
// may be shorter than questions and may contain nulls; that is resolved
// positionally downstream, never rejected here.
func (v *Validator) ValidateFeedbackRequest(req *dto.FeedbackRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.Questions == nil {
		errs = append(errs, domain.NewMissingFieldError("questions"))
	}
	if req.Answers == nil {
		errs = append(errs, domain.NewMissingFieldError("answers"))
	}

	return errs
}
