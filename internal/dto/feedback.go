package dto

// FeedbackQuestion is one graded question in a feedback request
type FeedbackQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

// FeedbackRequest is the body for POST /api/quiz-feedback. Answers align
// with questions by index; entries may be null and the slice may be
// shorter than questions.
type FeedbackRequest struct {
	Questions []FeedbackQuestion `json:"questions"`
	Answers   []*string          `json:"answers"`
}

// FeedbackResponse carries the backend's HTML fragment verbatim
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// HealthResponse is the body for GET/POST /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
