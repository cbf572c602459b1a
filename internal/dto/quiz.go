package dto

import "time"

// ImportQuestionEntry is one question inside an import payload. Entries
// missing a question or a correct answer are skipped, not rejected.
type ImportQuestionEntry struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
}

// ImportQuizSetRequest is the body for POST /api/quiz-sets/import-json
type ImportQuizSetRequest struct {
	UserID    string                `json:"userId"`
	Title     string                `json:"title"`
	Questions []ImportQuestionEntry `json:"questions"`
}

// QuizSetResponse is the public view of a quiz set
type QuizSetResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportQuizSetResponse reports the created set plus how many entries were
// imported and how many malformed entries were skipped
type ImportQuizSetResponse struct {
	QuizSet  QuizSetResponse `json:"quizSet"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
}

// QuizSetListResponse is the body for GET /api/quiz-sets
type QuizSetListResponse struct {
	QuizSets []QuizSetResponse `json:"quizSets"`
}

// QuestionResponse maps storage columns to the camel-case API fields
type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
}

// QuestionListResponse is the body for GET /api/quiz-sets/:id/questions
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// UpdateQuizSetRequest is the body for PUT /api/quiz-sets/:id
type UpdateQuizSetRequest struct {
	Title string `json:"title"`
}

// UpdateQuestionRequest is the body for PUT /api/questions/:id
type UpdateQuestionRequest struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	WrongAnswers  []string `json:"wrongAnswers"`
}
