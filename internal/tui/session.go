package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
	"github.com/pablozramirez73/questionari-webapp/internal/services"
)

var questionTypes = []models.QuestionType{
	models.ShortText,
	models.LongText,
	models.SingleChoice,
	models.MultiChoice,
	models.Number,
}

var questionTypeLabels = []string{
	"Short text",
	"Long text",
	"Single choice",
	"Multiple choice",
	"Number",
}

// Session is the interactive terminal flow. The main menu is the tab
// switcher: list, create/edit and fill are mutually exclusive views and the
// menu is the default one.
type Session struct {
	driver         PromptDriver
	questionnaires *services.QuestionnaireService
	editor         *services.EditorService
	answers        *services.AnswerService
	noticeTTL      time.Duration
	sleep          func(time.Duration)
}

func NewSession(driver PromptDriver, q *services.QuestionnaireService, e *services.EditorService, a *services.AnswerService, noticeTTL time.Duration) *Session {
	return &Session{
		driver:         driver,
		questionnaires: q,
		editor:         e,
		answers:        a,
		noticeTTL:      noticeTTL,
		sleep:          time.Sleep,
	}
}

// Run loops on the main menu until the user quits. An interrupted prompt
// inside a sub-flow returns to the menu; an interrupt at the menu quits.
func (s *Session) Run() error {
	for {
		choice, err := s.driver.Select("Questionari", []string{"List questionnaires", "Create questionnaire", "Quit"}, 0)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		var flowErr error
		switch choice {
		case 0:
			flowErr = s.browse()
		case 1:
			flowErr = s.edit(s.editor.NewDraft())
		default:
			return nil
		}
		if flowErr != nil {
			if errors.Is(flowErr, ErrAborted) {
				continue
			}
			return flowErr
		}
	}
}

// browse renders the card list and dispatches the per-card actions.
func (s *Session) browse() error {
	list, err := s.questionnaires.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return s.notice("No questionnaires yet. Create one first.")
	}
	cards := make([]string, 0, len(list)+1)
	for _, q := range list {
		cards = append(cards, fmt.Sprintf("%s — %d question(s), updated %s", q.Title, len(q.Questions), q.UpdatedAt.Format("2006-01-02 15:04")))
	}
	cards = append(cards, "Back")
	idx, err := s.driver.Select("Questionnaires", cards, 0)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(list) {
		return nil
	}
	q := list[idx]
	action, err := s.driver.Select(q.Title, []string{"View & fill", "Edit", "Delete", "Back"}, 0)
	if err != nil {
		return err
	}
	switch action {
	case 0:
		return s.fill(&q)
	case 1:
		return s.edit(s.editor.DraftFrom(&q))
	case 2:
		return s.remove(&q)
	}
	return nil
}

func rowSummary(row services.Row) string {
	text := strings.TrimSpace(row.Text)
	if text == "" {
		text = "(blank question)"
	}
	return fmt.Sprintf("%s [%s]", text, row.Type)
}

// edit runs the editor loop over an explicit draft. Cancel discards it; a
// failed save keeps it on screen for correction.
func (s *Session) edit(d *services.Draft) error {
	for {
		labels := d.Labels()
		items := []string{"Edit title", "Edit description"}
		for i, row := range d.Rows {
			items = append(items, fmt.Sprintf("%s %s", labels[i], rowSummary(row)))
		}
		items = append(items, "Add question", "Move question up", "Move question down", "Delete question", "Save", "Cancel")
		addIdx := 2 + len(d.Rows)

		title := strings.TrimSpace(d.Title)
		if title == "" {
			title = "New questionnaire"
		}
		idx, err := s.driver.Select(title, items, 0)
		if err != nil {
			return err
		}

		switch {
		case idx == 0:
			if d.Title, err = s.driver.Input("Title", d.Title); err != nil {
				return err
			}
		case idx == 1:
			if d.Description, err = s.driver.Input("Description", d.Description); err != nil {
				return err
			}
		case idx >= 2 && idx < addIdx:
			if err := s.editRow(d, idx-2); err != nil {
				return err
			}
		case idx == addIdx:
			d.AddRow()
		case idx == addIdx+1:
			i, err := s.pickRow(d, "Move which question up?")
			if err != nil {
				return err
			}
			if i >= 0 {
				d.MoveUp(i)
			}
		case idx == addIdx+2:
			i, err := s.pickRow(d, "Move which question down?")
			if err != nil {
				return err
			}
			if i >= 0 {
				d.MoveDown(i)
			}
		case idx == addIdx+3:
			i, err := s.pickRow(d, "Delete which question?")
			if err != nil {
				return err
			}
			if i >= 0 {
				d.DeleteRow(i)
			}
		case idx == addIdx+4:
			done, err := s.save(d)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		default:
			return nil // cancel, draft discarded
		}
	}
}

func (s *Session) save(d *services.Draft) (bool, error) {
	questions, err := s.editor.Collect(d)
	if err == nil {
		_, err = s.questionnaires.Save(models.Questionnaire{
			ID:          d.QuestionnaireID,
			Title:       d.Title,
			Description: d.Description,
			Questions:   questions,
		})
	}
	if err != nil {
		if se, okErr := services.AsServiceError(err); okErr {
			// Blocking warning; the draft stays up for correction.
			if infoErr := s.driver.Info("! " + se.Message); infoErr != nil {
				return false, infoErr
			}
			return false, nil
		}
		return false, err
	}
	if err := s.notice(fmt.Sprintf("Saved %q.", strings.TrimSpace(d.Title))); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) editRow(d *services.Draft, i int) error {
	row := &d.Rows[i]
	text, err := s.driver.Input("Question text", row.Text)
	if err != nil {
		return err
	}
	row.Text = text

	defaultIdx := 0
	for j, t := range questionTypes {
		if t == row.Type {
			defaultIdx = j
			break
		}
	}
	idx, err := s.driver.Select("Question type", questionTypeLabels, defaultIdx)
	if err != nil {
		return err
	}
	row.Type = questionTypes[idx]

	required, err := s.driver.Confirm("Required?", row.Required)
	if err != nil {
		return err
	}
	row.Required = required

	if row.Type.IsChoice() {
		options, err := s.driver.TextArea("Options (one per line)", row.OptionsText)
		if err != nil {
			return err
		}
		row.OptionsText = options
	}
	return nil
}

// pickRow selects a row index, or -1 when the user backs out.
func (s *Session) pickRow(d *services.Draft, message string) (int, error) {
	labels := d.Labels()
	items := make([]string, 0, len(d.Rows)+1)
	for i, row := range d.Rows {
		items = append(items, fmt.Sprintf("%s %s", labels[i], rowSummary(row)))
	}
	items = append(items, "Back")
	idx, err := s.driver.Select(message, items, 0)
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(d.Rows) {
		return -1, nil
	}
	return idx, nil
}

// fill renders the questionnaire read-only and collects answers. Answers are
// validated and discarded; on success the session returns to the menu after
// the notice delay.
func (s *Session) fill(q *models.Questionnaire) error {
	views, err := s.answers.BuildViews(q)
	if err != nil {
		if se, okErr := services.AsServiceError(err); okErr {
			return s.notice("! " + se.Message)
		}
		return err
	}
	for {
		answers, err := s.collectAnswers(views)
		if err != nil {
			return err
		}
		receipt, err := s.answers.Submit(q, answers)
		if err != nil {
			se, okErr := services.AsServiceError(err)
			if !okErr {
				return err
			}
			if infoErr := s.driver.Info("! " + se.Message); infoErr != nil {
				return infoErr
			}
			retry, cerr := s.driver.Confirm("Review your answers and try again?", true)
			if cerr != nil {
				return cerr
			}
			if retry {
				continue
			}
			return nil
		}
		return s.notice(fmt.Sprintf("Response accepted: %d answer(s). Nothing was stored.", receipt.Answered))
	}
}

func (s *Session) collectAnswers(views []services.QuestionView) ([]models.Answer, error) {
	out := make([]models.Answer, 0, len(views))
	for _, v := range views {
		label := v.Position + " " + v.Label
		if v.Required {
			label += " *"
		}
		a := models.Answer{QuestionID: v.ID}
		switch v.Widget {
		case services.WidgetInput, services.WidgetNumber:
			text, err := s.driver.Input(label, "")
			if err != nil {
				return nil, err
			}
			a.Text = text
		case services.WidgetTextArea:
			text, err := s.driver.TextArea(label, "")
			if err != nil {
				return nil, err
			}
			a.Text = text
		case services.WidgetRadio:
			options := append(append([]string(nil), v.Options...), "(leave unanswered)")
			idx, err := s.driver.Select(label, options, 0)
			if err != nil {
				return nil, err
			}
			if idx >= 0 && idx < len(v.Options) {
				a.Selected = []string{v.Options[idx]}
			}
		case services.WidgetCheckbox:
			idxs, err := s.driver.MultiSelect(label, v.Options)
			if err != nil {
				return nil, err
			}
			for _, i := range idxs {
				if i >= 0 && i < len(v.Options) {
					a.Selected = append(a.Selected, v.Options[i])
				}
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// remove asks for confirmation before deleting; declining leaves the store
// untouched.
func (s *Session) remove(q *models.Questionnaire) error {
	confirmed, err := s.driver.Confirm(fmt.Sprintf("Delete %q? This cannot be undone.", q.Title), false)
	if err != nil {
		return err
	}
	err = s.questionnaires.Delete(q.ID, confirmed)
	if err != nil {
		if se, okErr := services.AsServiceError(err); okErr && se.Code == services.ErrorConfirmationRequired {
			return s.notice("Delete cancelled.")
		}
		return err
	}
	return s.notice(fmt.Sprintf("Deleted %q.", q.Title))
}

// notice shows a transient message and holds it for the configured interval
// before the caller redraws the menu.
func (s *Session) notice(msg string) error {
	if err := s.driver.Info(msg); err != nil {
		return err
	}
	s.sleep(s.noticeTTL)
	return nil
}
