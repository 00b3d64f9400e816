package store

import (
	"sync"

	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

// Memory is an in-process Store with the same overwrite semantics as the
// SQLite one. Used by tests and the terminal binding's throwaway mode.
type Memory struct {
	mu   sync.RWMutex
	list []models.Questionnaire
}

func NewMemory() *Memory {
	return &Memory{list: []models.Questionnaire{}}
}

func (m *Memory) Load() ([]models.Questionnaire, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Questionnaire, len(m.list))
	for i, q := range m.list {
		out[i] = q.Clone()
	}
	return out, nil
}

func (m *Memory) Save(list []models.Questionnaire) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := make([]models.Questionnaire, len(list))
	for i, q := range list {
		next[i] = q.Clone()
	}
	m.list = next
	return nil
}

func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
