package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// QuestionType is the closed set of question kinds the renderer understands.
type QuestionType string

const (
	ShortText    QuestionType = "short-text"
	LongText     QuestionType = "long-text"
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	Number       QuestionType = "number"
)

// ErrUnknownType is returned by type dispatch when a record carries a type
// outside the enum, e.g. after a hand-edited store.
var ErrUnknownType = errors.New("unknown question type")

func (t QuestionType) Valid() bool {
	switch t {
	case ShortText, LongText, SingleChoice, MultiChoice, Number:
		return true
	}
	return false
}

// IsChoice reports whether the type renders as an option group and therefore
// must carry an options list.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultiChoice
}

// Question is a single prompt inside a questionnaire.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Order    int          `json:"order"`
	Options  []string     `json:"options,omitempty"`
}

// Questionnaire is a named, described, ordered collection of questions.
type Questionnaire struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks the invariants a questionnaire must satisfy to be
// persisted: non-empty title, at least one question, every question with
// non-empty text and a known type, options only on choice types, and order
// matching sequence position.
func (q *Questionnaire) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return errors.New("title required")
	}
	if len(q.Questions) == 0 {
		return errors.New("at least one question required")
	}
	for i, qu := range q.Questions {
		if strings.TrimSpace(qu.Text) == "" {
			return fmt.Errorf("question %d: text required", i+1)
		}
		if !qu.Type.Valid() {
			return fmt.Errorf("question %d: %w: %q", i+1, ErrUnknownType, qu.Type)
		}
		if qu.Type.IsChoice() && qu.Options == nil {
			return fmt.Errorf("question %d: options required for %s", i+1, qu.Type)
		}
		if !qu.Type.IsChoice() && len(qu.Options) > 0 {
			return fmt.Errorf("question %d: options not allowed for %s", i+1, qu.Type)
		}
		if qu.Order != i {
			return fmt.Errorf("question %d: order %d does not match position", i+1, qu.Order)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out records without sharing
// the options slices.
func (q Questionnaire) Clone() Questionnaire {
	out := q
	if q.Questions != nil {
		out.Questions = make([]Question, len(q.Questions))
		for i, qu := range q.Questions {
			out.Questions[i] = qu
			if qu.Options != nil {
				out.Questions[i].Options = append([]string(nil), qu.Options...)
			}
		}
	}
	return out
}

// Answer carries one question's in-flight value during a fill session.
// Answers are validated and then discarded, never persisted.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text,omitempty"`
	Selected   []string `json:"selected,omitempty"`
}
