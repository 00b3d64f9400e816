package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
	"github.com/pablozramirez73/questionari-webapp/internal/store"
)

// QuestionnaireService owns the stored questionnaire list. Every mutation
// follows the same shape: load, mutate in memory, persist the whole list.
type QuestionnaireService struct {
	store store.Store
	now   func() time.Time
}

func NewQuestionnaireService(st store.Store) *QuestionnaireService {
	return &QuestionnaireService{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns the stored questionnaires, most recently updated first.
func (s *QuestionnaireService) List() ([]models.Questionnaire, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (s *QuestionnaireService) Get(id string) (*models.Questionnaire, error) {
	list, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	for _, q := range list {
		if q.ID == id {
			out := q.Clone()
			return &out, nil
		}
	}
	return nil, NewNotFoundError("questionnaire not found")
}

// Save persists a questionnaire. With an empty ID it creates a new record
// (fresh id and created-at); with an ID it replaces the stored entry in
// place, preserving id and created-at. UpdatedAt always advances. Nothing is
// written when validation fails, so the caller keeps its draft.
func (s *QuestionnaireService) Save(q models.Questionnaire) (*models.Questionnaire, error) {
	q = q.Clone()
	q.Title = strings.TrimSpace(q.Title)
	q.Description = strings.TrimSpace(q.Description)
	for i := range q.Questions {
		q.Questions[i].Order = i
	}
	if err := q.Validate(); err != nil {
		return nil, NewInvalidError(err.Error())
	}

	list, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	now := s.now()
	if q.ID == "" {
		q.ID = shortID(8)
		q.CreatedAt = now
		q.UpdatedAt = now
		list = append(list, q)
	} else {
		idx := -1
		for i := range list {
			if list[i].ID == q.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, NewNotFoundError("questionnaire not found")
		}
		q.CreatedAt = list[idx].CreatedAt
		q.UpdatedAt = now
		if !q.UpdatedAt.After(list[idx].UpdatedAt) {
			q.UpdatedAt = list[idx].UpdatedAt.Add(time.Millisecond)
		}
		list[idx] = q
	}
	if err := s.store.Save(list); err != nil {
		return nil, err
	}
	out := q.Clone()
	return &out, nil
}

// Delete removes the questionnaire with the given id. The confirmed flag is
// the human-in-the-loop gate: without it nothing changes.
func (s *QuestionnaireService) Delete(id string, confirmed bool) error {
	if !confirmed {
		return NewConfirmationRequiredError("delete requires confirmation")
	}
	list, err := s.store.Load()
	if err != nil {
		return err
	}
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NewNotFoundError("questionnaire not found")
	}
	list = append(list[:idx], list[idx+1:]...)
	return s.store.Save(list)
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
