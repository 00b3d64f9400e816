// Package store owns the persisted questionnaire list. Load and Save are the
// only I/O boundary; everything above it works on in-memory values.
package store

import (
	"github.com/pablozramirez73/questionari-webapp/internal/models"
)

// listKey is the single entry the whole list is serialized under.
const listKey = "questionnaires"

// Store persists the questionnaire list as one unit. Save overwrites the
// stored entry entirely; last writer wins. Load returns an empty list when
// nothing usable is stored, never a corruption error.
type Store interface {
	Load() ([]models.Questionnaire, error)
	Save(list []models.Questionnaire) error
	Close() error
}
