package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
	"github.com/pablozramirez73/questionari-webapp/internal/services"
	"github.com/pablozramirez73/questionari-webapp/internal/store"
)

// fakeDriver replays scripted prompt answers and records everything shown.
type fakeDriver struct {
	t *testing.T

	selects   []int
	inputs    []string
	confirms  []bool
	multis    [][]int
	textareas []string

	selectMsgs []string
	infos      []string
}

func (f *fakeDriver) Input(message, def string) (string, error) {
	f.t.Helper()
	if len(f.inputs) == 0 {
		f.t.Fatalf("unexpected Input(%q)", message)
	}
	v := f.inputs[0]
	f.inputs = f.inputs[1:]
	return v, nil
}

func (f *fakeDriver) Confirm(message string, def bool) (bool, error) {
	f.t.Helper()
	if len(f.confirms) == 0 {
		f.t.Fatalf("unexpected Confirm(%q)", message)
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

func (f *fakeDriver) Select(message string, options []string, defaultIndex int) (int, error) {
	f.t.Helper()
	if len(f.selects) == 0 {
		f.t.Fatalf("unexpected Select(%q)", message)
	}
	v := f.selects[0]
	f.selects = f.selects[1:]
	f.selectMsgs = append(f.selectMsgs, message)
	if v >= len(options) {
		f.t.Fatalf("Select(%q): scripted index %d out of range for %v", message, v, options)
	}
	return v, nil
}

func (f *fakeDriver) MultiSelect(message string, options []string) ([]int, error) {
	f.t.Helper()
	if len(f.multis) == 0 {
		f.t.Fatalf("unexpected MultiSelect(%q)", message)
	}
	v := f.multis[0]
	f.multis = f.multis[1:]
	return v, nil
}

func (f *fakeDriver) TextArea(message, def string) (string, error) {
	f.t.Helper()
	if len(f.textareas) == 0 {
		f.t.Fatalf("unexpected TextArea(%q)", message)
	}
	v := f.textareas[0]
	f.textareas = f.textareas[1:]
	return v, nil
}

func (f *fakeDriver) Info(msg string) error {
	f.infos = append(f.infos, msg)
	return nil
}

func newTestSession(t *testing.T, d *fakeDriver, mem *store.Memory) (*Session, *int) {
	t.Helper()
	slept := 0
	s := NewSession(d, services.NewQuestionnaireService(mem), services.NewEditorService(), services.NewAnswerService(), 2*time.Second)
	s.sleep = func(time.Duration) { slept++ }
	return s, &slept
}

func seedQuestionnaire(t *testing.T, mem *store.Memory) *models.Questionnaire {
	t.Helper()
	svc := services.NewQuestionnaireService(mem)
	saved, err := svc.Save(models.Questionnaire{
		Title: "Mood check",
		Questions: []models.Question{
			{Text: "How are you?", Type: models.SingleChoice, Required: true, Order: 0, Options: []string{"Good", "Bad"}},
			{Text: "Anything else?", Type: models.ShortText, Order: 1},
		},
	})
	if err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}
	return saved
}

func TestSessionCreateThenQuit(t *testing.T) {
	mem := store.NewMemory()
	d := &fakeDriver{
		t: t,
		// menu: create, editor: title, editor: row 1,
		// question type: single choice, editor: save, menu: quit
		selects:   []int{1, 0, 2, 2, 7, 2},
		inputs:    []string{"Mood check", "How are you?"},
		confirms:  []bool{true},
		textareas: []string{"Good\nBad"},
	}
	s, slept := newTestSession(t, d, mem)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	list, err := mem.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("stored questionnaires = %d, want 1", len(list))
	}
	q := list[0]
	if q.Title != "Mood check" {
		t.Errorf("Title = %q, want %q", q.Title, "Mood check")
	}
	if len(q.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(q.Questions))
	}
	got := q.Questions[0]
	if got.Type != models.SingleChoice || !got.Required {
		t.Errorf("question = %+v, want required single-choice", got)
	}
	if len(got.Options) != 2 || got.Options[0] != "Good" || got.Options[1] != "Bad" {
		t.Errorf("Options = %v, want [Good Bad]", got.Options)
	}

	if len(d.infos) != 1 || !strings.Contains(d.infos[0], `Saved "Mood check"`) {
		t.Errorf("infos = %v, want one save notice", d.infos)
	}
	if *slept != 1 {
		t.Errorf("notice sleeps = %d, want 1", *slept)
	}
}

func TestSessionDeleteDeclinedLeavesStoreUnchanged(t *testing.T) {
	mem := store.NewMemory()
	seedQuestionnaire(t, mem)

	d := &fakeDriver{
		t: t,
		// menu: list, card 1, action: delete, menu: quit
		selects:  []int{0, 0, 2, 2},
		confirms: []bool{false},
	}
	s, _ := newTestSession(t, d, mem)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	list, err := mem.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("stored questionnaires = %d, want 1 after declined delete", len(list))
	}
	if len(d.infos) != 1 || d.infos[0] != "Delete cancelled." {
		t.Errorf("infos = %v, want delete cancelled notice", d.infos)
	}
}

func TestSessionDeleteConfirmed(t *testing.T) {
	mem := store.NewMemory()
	seedQuestionnaire(t, mem)

	d := &fakeDriver{
		t:        t,
		selects:  []int{0, 0, 2, 2},
		confirms: []bool{true},
	}
	s, _ := newTestSession(t, d, mem)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	list, err := mem.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("stored questionnaires = %d, want 0 after delete", len(list))
	}
}

func TestSessionFillRetriesAfterRequiredGate(t *testing.T) {
	mem := store.NewMemory()
	seedQuestionnaire(t, mem)

	d := &fakeDriver{
		t: t,
		// menu: list, card 1, action: fill,
		// first pass: radio -> "(leave unanswered)",
		// retry pass: radio -> "Good",
		// menu: quit
		selects: []int{0, 0, 0, 2, 0, 2},
		// short-text answer per pass
		inputs:   []string{"", "take care"},
		confirms: []bool{true}, // try again
	}
	s, _ := newTestSession(t, d, mem)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(d.infos) != 2 {
		t.Fatalf("infos = %v, want warning then acceptance", d.infos)
	}
	if !strings.Contains(d.infos[0], "required") {
		t.Errorf("first info = %q, want required-question warning", d.infos[0])
	}
	if !strings.Contains(d.infos[1], "2 answer(s)") {
		t.Errorf("second info = %q, want 2 answers accepted", d.infos[1])
	}

	// Answers are never persisted.
	list, err := mem.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(list) != 1 || len(list[0].Questions) != 2 {
		t.Errorf("store changed during fill: %+v", list)
	}
}

func TestSessionEmptyListShowsNotice(t *testing.T) {
	mem := store.NewMemory()
	d := &fakeDriver{
		t:       t,
		selects: []int{0, 2}, // menu: list, menu: quit
	}
	s, _ := newTestSession(t, d, mem)

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(d.infos) != 1 || !strings.Contains(d.infos[0], "No questionnaires yet") {
		t.Errorf("infos = %v, want empty-list notice", d.infos)
	}
}
