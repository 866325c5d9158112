// Package repository provides persistence for tenant records.
//
// The package supports multiple kinds of storage:
// 1. DBRepository - PostgreSQL through the pgx driver.
// 2. FileRepository - JSON lines snapshot on disk.
// 3. MemoryRepository - in-memory map, used by default and in tests.
package repository

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"levelshort/internal/domain/models"
)

// TenantRepository - load/store of tenant records by tenant id, plus the
// persisted ordinal counter used to mint site hashes. Implementations do
// not serialize access per tenant; the encoding service does.
type TenantRepository interface {
	// Load returns the record of a tenant, or a TenantNotFound error.
	Load(ctx context.Context, tenantID string) (*models.TenantRecord, error)
	// Save upserts the record by tenant id.
	Save(ctx context.Context, rec *models.TenantRecord) error
	// NextOrdinal returns the next tenant ordinal, starting at zero.
	NextOrdinal(ctx context.Context) (int, error)
	// Ping reports storage availability.
	Ping(ctx context.Context) error
}
