package session

import "github.com/abhisek/quizdeck/internal/catalog"

// Feedback is the result of evaluating one submitted answer.
type Feedback struct {
	IsCorrect     bool
	CorrectAnswer string
}

// Evaluate compares submitted with the question's answer. Matching is
// exact: case-sensitive, no trimming or normalization.
func Evaluate(q catalog.Question, submitted string) Feedback {
	return Feedback{
		IsCorrect:     submitted == q.Answer,
		CorrectAnswer: q.Answer,
	}
}

// Percentage returns round(score/total*100) rounding halves up.
// A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (score*200 + total) / (2 * total)
}
