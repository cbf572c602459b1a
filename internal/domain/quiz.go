package domain

import "time"

// User is an account holder. The password hash never leaves the service layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// QuizSet is a named collection of questions owned by one user
type QuizSet struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
}

// Question belongs to exactly one quiz set. WrongAnswers is always a
// non-nil slice; it is persisted as a JSON array.
type Question struct {
	ID            string
	QuizSetID     string
	Question      string
	CorrectAnswer string
	WrongAnswers  []string
}
