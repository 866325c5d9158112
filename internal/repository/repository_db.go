package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DBRepository stores tenant records in PostgreSQL, one JSONB document per
// tenant. Ordinals come from a database sequence so every service instance
// agrees on the same sequence.
type DBRepository struct {
	DBConn *sql.DB
}

// NewDBRepository opens a database connection using the pgx driver.
func NewDBRepository(dsn string) (*DBRepository, error) {
	dbConn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	return &DBRepository{DBConn: dbConn}, nil
}

// UpMigrations applies the embedded goose migrations.
func (r *DBRepository) UpMigrations() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(r.DBConn, "migrations")
}

const selectRecord = `SELECT record FROM tenants WHERE tenant_id = $1`

const upsertRecord = `
INSERT INTO tenants (tenant_id, record, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (tenant_id) DO UPDATE SET record = EXCLUDED.record, updated_at = now()`

// Load fetches and decodes the tenant document.
func (r *DBRepository) Load(ctx context.Context, tenantID string) (*models.TenantRecord, error) {
	var raw []byte
	err := r.DBConn.QueryRowContext(ctx, selectRecord, tenantID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.New(apperrors.KindTenantNotFound, "tenant not found: %s", tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("select tenant record: %w", err)
	}

	rec := &models.TenantRecord{}
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("decode tenant record: %w", err)
	}
	return rec, nil
}

// Save upserts the tenant document.
func (r *DBRepository) Save(ctx context.Context, rec *models.TenantRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode tenant record: %w", err)
	}
	if _, err := r.DBConn.ExecContext(ctx, upsertRecord, rec.TenantID, raw); err != nil {
		return fmt.Errorf("upsert tenant record: %w", err)
	}
	return nil
}

// NextOrdinal draws the next value from the tenant ordinal sequence.
func (r *DBRepository) NextOrdinal(ctx context.Context) (int, error) {
	var ord int
	err := r.DBConn.QueryRowContext(ctx, `SELECT nextval('tenant_ordinal')`).Scan(&ord)
	if err != nil {
		return 0, fmt.Errorf("next tenant ordinal: %w", err)
	}
	return ord, nil
}

// Ping checks the database connection.
func (r *DBRepository) Ping(ctx context.Context) error {
	return r.DBConn.PingContext(ctx)
}
