package domain

import "context"

// FeedbackQuestion is one graded question passed to the feedback backend
type FeedbackQuestion struct {
	Question      string
	CorrectAnswer string
}

// FeedbackGenerator produces an HTML grading fragment for a quiz attempt.
// Answers are aligned to questions by index; a nil entry (or an answers
// slice shorter than questions) means the user left that question blank.
type FeedbackGenerator interface {
	Generate(ctx context.Context, questions []FeedbackQuestion, answers []*string) (string, error)
}
