package services

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

func TestParseOptions(t *testing.T) {
	raw := "  Red\n\nGreen  \n   \nBlue\n"
	got := ParseOptions(raw)
	want := []string{"Red", "Green", "Blue"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("options = %v, want %v", got, want)
	}
}

func TestParseOptionsEmpty(t *testing.T) {
	if got := ParseOptions("\n  \n"); len(got) != 0 {
		t.Fatalf("options = %v, want empty", got)
	}
}

func TestNewDraftStartsWithOneRow(t *testing.T) {
	d := NewEditorService().NewDraft()
	if len(d.Rows) != 1 {
		t.Fatalf("rows len = %d, want 1", len(d.Rows))
	}
	if d.Editing() {
		t.Fatalf("fresh draft should not be editing")
	}
}

func TestMoveRowBounds(t *testing.T) {
	d := &Draft{Rows: []Row{{Text: "a"}, {Text: "b"}, {Text: "c"}}}

	if d.MoveUp(0) {
		t.Fatalf("first row moved up")
	}
	if d.MoveDown(2) {
		t.Fatalf("last row moved down")
	}
	if !d.MoveUp(2) {
		t.Fatalf("MoveUp(2) failed")
	}
	texts := func() []string {
		out := make([]string, len(d.Rows))
		for i, r := range d.Rows {
			out[i] = r.Text
		}
		return out
	}
	if got := texts(); !reflect.DeepEqual(got, []string{"a", "c", "b"}) {
		t.Fatalf("rows = %v, want [a c b]", got)
	}
	if !d.MoveDown(0) {
		t.Fatalf("MoveDown(0) failed")
	}
	if got := texts(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("rows = %v, want [c a b]", got)
	}
}

func TestMoveSwapsOnlyNeighbors(t *testing.T) {
	d := &Draft{Rows: []Row{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}}
	d.MoveUp(2)
	want := []string{"a", "c", "b", "d"}
	for i, r := range d.Rows {
		if r.Text != want[i] {
			t.Fatalf("row %d = %q, want %q", i, r.Text, want[i])
		}
	}
}

func TestDeleteRow(t *testing.T) {
	d := &Draft{Rows: []Row{{Text: "a"}, {Text: "b"}}}
	if !d.DeleteRow(0) {
		t.Fatalf("DeleteRow(0) failed")
	}
	if len(d.Rows) != 1 || d.Rows[0].Text != "b" {
		t.Fatalf("rows = %+v, want [b]", d.Rows)
	}
	if d.DeleteRow(5) {
		t.Fatalf("out-of-range delete succeeded")
	}
}

func TestLabelsRecomputed(t *testing.T) {
	d := &Draft{Rows: []Row{{}, {}, {}}}
	if got := d.Labels(); !reflect.DeepEqual(got, []string{"1.", "2.", "3."}) {
		t.Fatalf("labels = %v", got)
	}
	d.DeleteRow(1)
	if got := d.Labels(); !reflect.DeepEqual(got, []string{"1.", "2."}) {
		t.Fatalf("labels after delete = %v", got)
	}
}

func TestCollectSkipsBlankRowsAndOrders(t *testing.T) {
	svc := NewEditorService()
	n := 0
	svc.idGenerator = func() string { n++; return fmt.Sprintf("id%d", n) }

	d := &Draft{
		Title: "T",
		Rows: []Row{
			{Text: "  ", Type: models.ShortText},
			{Text: "Favorite color?", Type: models.SingleChoice, OptionsText: "Red\n\n Blue "},
			{Text: "", Type: models.LongText},
			{Text: "Age", Type: models.Number, Required: true},
		},
	}
	qs, err := svc.Collect(d)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("collected %d questions, want 2", len(qs))
	}
	if qs[0].Order != 0 || qs[1].Order != 1 {
		t.Fatalf("orders = %d,%d, want 0,1", qs[0].Order, qs[1].Order)
	}
	if !reflect.DeepEqual(qs[0].Options, []string{"Red", "Blue"}) {
		t.Fatalf("options = %v", qs[0].Options)
	}
	if qs[1].Options != nil {
		t.Fatalf("number question should carry no options, got %v", qs[1].Options)
	}
	if qs[0].ID != "id1" || qs[1].ID != "id2" {
		t.Fatalf("ids = %q,%q, want generated", qs[0].ID, qs[1].ID)
	}
	if !qs[1].Required {
		t.Fatalf("required flag lost")
	}
}

func TestCollectRejectsUnknownType(t *testing.T) {
	svc := NewEditorService()
	d := &Draft{Rows: []Row{{Text: "Q?", Type: "dropdown"}}}
	_, err := svc.Collect(d)
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestDraftFromRoundTrip(t *testing.T) {
	svc := NewEditorService()
	q := &models.Questionnaire{
		ID:          "A1",
		Title:       "Survey",
		Description: "desc",
		Questions: []models.Question{
			{ID: "q1", Text: "Pick", Type: models.MultiChoice, Required: true, Order: 0, Options: []string{"x", "y"}},
			{ID: "q2", Text: "Say", Type: models.LongText, Order: 1},
		},
	}
	d := svc.DraftFrom(q)
	if !d.Editing() || d.QuestionnaireID != "A1" {
		t.Fatalf("draft not in editing state: %+v", d)
	}
	if d.Rows[0].OptionsText != "x\ny" {
		t.Fatalf("options text = %q", d.Rows[0].OptionsText)
	}
	qs, err := svc.Collect(d)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if !reflect.DeepEqual(qs, q.Questions) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", qs, q.Questions)
	}
}
