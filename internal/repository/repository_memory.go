package repository

import (
	"context"
	"sync"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

// MemoryRepository keeps tenant records in a map. Records are cloned on
// the way in and out so callers never alias the stored state.
type MemoryRepository struct {
	records map[string]*models.TenantRecord
	ordinal int
	mu      sync.Mutex
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*models.TenantRecord),
	}
}

// Load returns a copy of the tenant record.
func (r *MemoryRepository) Load(_ context.Context, tenantID string) (*models.TenantRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[tenantID]
	if !exists {
		return nil, apperrors.New(apperrors.KindTenantNotFound, "tenant not found: %s", tenantID)
	}
	return rec.Clone(), nil
}

// Save stores a copy of the record, replacing any previous one.
func (r *MemoryRepository) Save(_ context.Context, rec *models.TenantRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[rec.TenantID] = rec.Clone()
	return nil
}

// NextOrdinal hands out ordinals sequentially from zero.
func (r *MemoryRepository) NextOrdinal(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord := r.ordinal
	r.ordinal++
	return ord, nil
}

// Ping always succeeds for the in-memory repository.
func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}
