// Package tenantstore implements the per-tenant leveled code dictionary.
// It is a pure dictionary: quota enforcement happens before any call to
// AddValue, in the quota package.
package tenantstore

import (
	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
	"levelshort/internal/idcodec"
)

// Store wraps one tenant record and maintains two invariants:
// levels are populated strictly consecutively, and the forward and
// inverse maps of every code table are mutated together.
type Store struct {
	rec *models.TenantRecord
}

// New wraps a tenant record.
func New(rec *models.TenantRecord) *Store {
	return &Store{rec: rec}
}

// GetOrCreateLevel returns the dictionary of a 1-based level, appending a
// new empty one when the level is the next consecutive slot. Requesting a
// level past the next slot is a logic fault.
func (s *Store) GetOrCreateLevel(level int) (*models.LevelDictionary, error) {
	if level < 1 {
		return nil, apperrors.New(apperrors.KindNonConsecutiveLevel, "level %d out of range", level)
	}
	idx := level - 1
	if idx > len(s.rec.Levels) {
		return nil, apperrors.New(apperrors.KindNonConsecutiveLevel,
			"level %d requested but only %d levels exist", level, len(s.rec.Levels))
	}
	if idx == len(s.rec.Levels) {
		s.rec.Levels = append(s.rec.Levels, models.NewLevelDictionary())
	}
	return s.rec.Levels[idx], nil
}

// Count returns the number of values stored for a (level, category) pair,
// zero when the level does not exist yet.
func (s *Store) Count(level int, c models.ValueCategory) int {
	idx := level - 1
	if idx < 0 || idx >= len(s.rec.Levels) {
		return 0
	}
	return len(s.rec.Levels[idx].Table(c).Forward)
}

// Has reports whether the value is already registered at (level, category).
func (s *Store) Has(level int, c models.ValueCategory, value string) bool {
	idx := level - 1
	if idx < 0 || idx >= len(s.rec.Levels) {
		return false
	}
	_, ok := s.rec.Levels[idx].Table(c).Forward[value]
	return ok
}

// AddValue registers a natural value at (level, category), minting its code
// from the current table size. Adding an already known value is a no-op,
// which makes re-encoding the same URL idempotent.
func (s *Store) AddValue(level int, c models.ValueCategory, value string) (string, error) {
	dict, err := s.GetOrCreateLevel(level)
	if err != nil {
		return "", err
	}

	table := dict.Table(c)
	if code, ok := table.Forward[value]; ok {
		return code, nil
	}

	code := idcodec.Encode(len(table.Forward))
	table.Forward[value] = code
	table.Inverse[code] = value
	return code, nil
}

// Lookup resolves a code back into its natural value at (level, category).
func (s *Store) Lookup(level int, c models.ValueCategory, code string) (string, error) {
	idx := level - 1
	if idx < 0 || idx >= len(s.rec.Levels) {
		return "", &apperrors.Error{Kind: apperrors.KindCodeNotFound, Code: code, Level: level,
			Message: "level not populated"}
	}
	value, ok := s.rec.Levels[idx].Table(c).Inverse[code]
	if !ok {
		return "", &apperrors.Error{Kind: apperrors.KindCodeNotFound, Code: code, Level: level,
			Category: c.String(), Message: "unknown code"}
	}
	return value, nil
}
