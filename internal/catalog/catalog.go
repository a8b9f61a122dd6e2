package catalog

import (
	"encoding/json"
	"fmt"
)

// OptionsPerQuestion is the fixed number of answer options a question carries.
const OptionsPerQuestion = 4

// Catalog is the full set of subjects available to a session.
// It is treated as immutable once loaded.
type Catalog struct {
	Subjects []Subject `json:"quizzes"`
}

// Subject is a titled, ordered list of questions.
type Subject struct {
	Title     string     `json:"title"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Subject returns the subject with the given title.
func (c Catalog) Subject(title string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.Title == title {
			return s, true
		}
	}
	return Subject{}, false
}

// Titles returns subject titles in catalog order.
func (c Catalog) Titles() []string {
	titles := make([]string, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		titles = append(titles, s.Title)
	}
	return titles
}

// QuestionCount returns the total number of questions across all subjects.
func (c Catalog) QuestionCount() int {
	n := 0
	for _, s := range c.Subjects {
		n += len(s.Questions)
	}
	return n
}

// Validate checks the invariants the JSON schema cannot express:
// unique subject titles, non-empty subjects, distinct options and an
// answer drawn from the options.
func (c Catalog) Validate() error {
	if len(c.Subjects) == 0 {
		return fmt.Errorf("catalog has no subjects")
	}
	seen := make(map[string]bool, len(c.Subjects))
	for _, s := range c.Subjects {
		if s.Title == "" {
			return fmt.Errorf("subject with empty title")
		}
		if seen[s.Title] {
			return fmt.Errorf("duplicate subject title %q", s.Title)
		}
		seen[s.Title] = true
		if len(s.Questions) == 0 {
			return fmt.Errorf("subject %q has no questions", s.Title)
		}
		for i, q := range s.Questions {
			if err := q.Validate(); err != nil {
				return fmt.Errorf("subject %q question %d: %w", s.Title, i+1, err)
			}
		}
	}
	return nil
}

// Validate checks a single question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("empty prompt")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("want %d options, got %d", OptionsPerQuestion, len(q.Options))
	}
	distinct := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if distinct[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		distinct[o] = true
	}
	if !distinct[q.Answer] {
		return fmt.Errorf("answer %q is not one of the options", q.Answer)
	}
	return nil
}

// Parse decodes a catalog document, validating it against the document
// schema and the catalog invariants.
func Parse(raw []byte) (Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return Catalog{}, err
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
