package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

// WidgetKind is the answer widget a question renders as.
type WidgetKind string

const (
	WidgetInput    WidgetKind = "input"
	WidgetTextArea WidgetKind = "textarea"
	WidgetNumber   WidgetKind = "number"
	WidgetRadio    WidgetKind = "radio"
	WidgetCheckbox WidgetKind = "checkbox"
)

// QuestionView is the read-only render model for one question: a label plus
// the widget to collect its answer with.
type QuestionView struct {
	ID       string     `json:"id"`
	Position string     `json:"position"`
	Label    string     `json:"label"`
	Widget   WidgetKind `json:"widget"`
	Required bool       `json:"required"`
	Options  []string   `json:"options,omitempty"`
}

// Receipt summarizes an accepted submission. The answers themselves are
// discarded.
type Receipt struct {
	QuestionnaireID string    `json:"questionnaire_id"`
	Answered        int       `json:"answered"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// AnswerService renders questionnaires for filling and validates submitted
// answers. Nothing it accepts is persisted.
type AnswerService struct {
	now func() time.Time
}

func NewAnswerService() *AnswerService {
	return &AnswerService{now: func() time.Time { return time.Now().UTC() }}
}

func widgetFor(t models.QuestionType) (WidgetKind, error) {
	switch t {
	case models.ShortText:
		return WidgetInput, nil
	case models.LongText:
		return WidgetTextArea, nil
	case models.Number:
		return WidgetNumber, nil
	case models.SingleChoice:
		return WidgetRadio, nil
	case models.MultiChoice:
		return WidgetCheckbox, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownType, t)
}

// BuildViews maps every question to its widget. A record carrying a type
// outside the enum fails as a whole rather than rendering partially.
func (s *AnswerService) BuildViews(q *models.Questionnaire) ([]QuestionView, error) {
	out := make([]QuestionView, 0, len(q.Questions))
	for i, qu := range q.Questions {
		widget, err := widgetFor(qu.Type)
		if err != nil {
			return nil, NewInvalidError(err.Error())
		}
		out = append(out, QuestionView{
			ID:       qu.ID,
			Position: fmt.Sprintf("%d.", i+1),
			Label:    qu.Text,
			Widget:   widget,
			Required: qu.Required,
			Options:  qu.Options,
		})
	}
	return out, nil
}

// Submit checks every question: "answered" means non-blank text or number,
// or at least one selected option. Required questions left unanswered block
// the submission with a single aggregate error. On success the answers are
// discarded and only a receipt is returned.
func (s *AnswerService) Submit(q *models.Questionnaire, answers []models.Answer) (*Receipt, error) {
	byQuestion := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	answered := 0
	missing := 0
	for _, qu := range q.Questions {
		a := byQuestion[qu.ID]
		ok, err := answeredFor(qu, a)
		if err != nil {
			return nil, err
		}
		if ok {
			answered++
		} else if qu.Required {
			missing++
		}
	}
	if missing > 0 {
		return nil, NewMissingRequiredError(fmt.Sprintf("%d required question(s) not answered", missing))
	}
	return &Receipt{QuestionnaireID: q.ID, Answered: answered, SubmittedAt: s.now()}, nil
}

func answeredFor(q models.Question, a models.Answer) (bool, error) {
	switch q.Type {
	case models.ShortText, models.LongText:
		return strings.TrimSpace(a.Text) != "", nil
	case models.Number:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return false, nil
		}
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return false, NewInvalidError(fmt.Sprintf("answer for %q is not a number", q.Text))
		}
		return true, nil
	case models.SingleChoice:
		if len(a.Selected) > 1 {
			return false, NewInvalidError(fmt.Sprintf("multiple selections for single-choice %q", q.Text))
		}
		if len(a.Selected) == 0 {
			return false, nil
		}
		if !optionOf(q, a.Selected[0]) {
			return false, NewInvalidError(fmt.Sprintf("unknown option for %q", q.Text))
		}
		return true, nil
	case models.MultiChoice:
		if len(a.Selected) == 0 {
			return false, nil
		}
		for _, sel := range a.Selected {
			if !optionOf(q, sel) {
				return false, NewInvalidError(fmt.Sprintf("unknown option for %q", q.Text))
			}
		}
		return true, nil
	}
	return false, NewInvalidError(fmt.Sprintf("%v: %q", models.ErrUnknownType, q.Type))
}

func optionOf(q models.Question, value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
