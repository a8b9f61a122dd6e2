package session

import "time"

// AnswerRecord is the immutable record of one evaluated question.
type AnswerRecord struct {
	Question       string `json:"question"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// HistoryEntry is the durable summary of one completed session.
type HistoryEntry struct {
	ID          string         `json:"id,omitempty"`
	Subject     string         `json:"quiz"`
	Score       int            `json:"score"`
	Total       int            `json:"total"`
	Percentage  int            `json:"percentage"`
	Answers     []AnswerRecord `json:"answers"`
	CompletedAt time.Time      `json:"completedAt"`
}

// BuildHistoryEntry summarizes a session. It is meaningful once the
// session has been completed.
func BuildHistoryEntry(s Session, completedAt time.Time) HistoryEntry {
	title := ""
	if s.subject != nil {
		title = s.subject.Title
	}
	answers := s.Answers()
	if answers == nil {
		answers = []AnswerRecord{}
	}
	return HistoryEntry{
		Subject:     title,
		Score:       s.score,
		Total:       s.TotalQuestions(),
		Percentage:  s.Percentage(),
		Answers:     answers,
		CompletedAt: completedAt,
	}
}
