package services

import (
	"fmt"
	"strings"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

// Row is one question row of an in-progress draft. OptionsText holds the raw
// multi-line option input; it is only parsed at collect time.
type Row struct {
	ID          string              `json:"id,omitempty"`
	Text        string              `json:"text"`
	Type        models.QuestionType `json:"type"`
	Required    bool                `json:"required"`
	OptionsText string              `json:"options_text,omitempty"`
}

// Draft is the explicit, serializable edit state of a questionnaire being
// created or modified. UIs render from it and write back to it; it is never
// persisted as-is.
type Draft struct {
	QuestionnaireID string `json:"questionnaire_id,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Rows            []Row  `json:"rows"`
}

// Editing reports whether the draft was loaded from an existing record.
func (d *Draft) Editing() bool { return d.QuestionnaireID != "" }

// AddRow appends a fresh row with the default shape.
func (d *Draft) AddRow() {
	d.Rows = append(d.Rows, Row{Type: models.ShortText})
}

func (d *Draft) DeleteRow(i int) bool {
	if i < 0 || i >= len(d.Rows) {
		return false
	}
	d.Rows = append(d.Rows[:i], d.Rows[i+1:]...)
	return true
}

// MoveUp swaps row i with its previous sibling. The first row cannot move.
func (d *Draft) MoveUp(i int) bool {
	if i <= 0 || i >= len(d.Rows) {
		return false
	}
	d.Rows[i-1], d.Rows[i] = d.Rows[i], d.Rows[i-1]
	return true
}

// MoveDown swaps row i with its next sibling. The last row cannot move.
func (d *Draft) MoveDown(i int) bool {
	if i < 0 || i >= len(d.Rows)-1 {
		return false
	}
	d.Rows[i], d.Rows[i+1] = d.Rows[i+1], d.Rows[i]
	return true
}

// Labels returns the cosmetic 1-based row numbering. It is recomputed from
// scratch on every call, never stored.
func (d *Draft) Labels() []string {
	out := make([]string, len(d.Rows))
	for i := range d.Rows {
		out[i] = fmt.Sprintf("%d.", i+1)
	}
	return out
}

// EditorService turns drafts into question lists and back.
type EditorService struct {
	idGenerator func() string
}

func NewEditorService() *EditorService {
	return &EditorService{idGenerator: func() string { return shortID(8) }}
}

// NewDraft starts an empty draft with one blank row, mirroring the create
// form's initial state.
func (s *EditorService) NewDraft() *Draft {
	d := &Draft{}
	d.AddRow()
	return d
}

// DraftFrom loads an existing questionnaire into a draft for editing.
func (s *EditorService) DraftFrom(q *models.Questionnaire) *Draft {
	d := &Draft{
		QuestionnaireID: q.ID,
		Title:           q.Title,
		Description:     q.Description,
		Rows:            make([]Row, 0, len(q.Questions)),
	}
	for _, qu := range q.Questions {
		d.Rows = append(d.Rows, Row{
			ID:          qu.ID,
			Text:        qu.Text,
			Type:        qu.Type,
			Required:    qu.Required,
			OptionsText: strings.Join(qu.Options, "\n"),
		})
	}
	return d
}

// Collect walks the rows in order and builds the question list: rows with
// blank text are skipped, options come from the raw options text, and order
// follows collected position. Rows loaded from an existing record keep their
// question ids.
func (s *EditorService) Collect(d *Draft) ([]models.Question, error) {
	out := make([]models.Question, 0, len(d.Rows))
	for i, row := range d.Rows {
		text := strings.TrimSpace(row.Text)
		if text == "" {
			continue
		}
		if !row.Type.Valid() {
			return nil, NewInvalidError(fmt.Sprintf("row %d: %v: %q", i+1, models.ErrUnknownType, row.Type))
		}
		q := models.Question{
			ID:       row.ID,
			Text:     text,
			Type:     row.Type,
			Required: row.Required,
			Order:    len(out),
		}
		if q.ID == "" {
			q.ID = s.idGenerator()
		}
		if row.Type.IsChoice() {
			q.Options = ParseOptions(row.OptionsText)
		}
		out = append(out, q)
	}
	return out, nil
}

// ParseOptions splits raw multi-line option input into the options list:
// one option per line, trimmed, blank lines dropped, original order kept.
func ParseOptions(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
