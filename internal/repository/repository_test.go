package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
)

func sampleRecord() *models.TenantRecord {
	rec := &models.TenantRecord{
		TenantID: "tenant-1",
		SiteHash: "a",
		Site:     "github.com",
		Tier:     "FREE",
		Levels:   []*models.LevelDictionary{models.NewLevelDictionary()},
	}
	rec.Levels[0].PathVariable.Forward["ayhem18"] = "a"
	rec.Levels[0].PathVariable.Inverse["a"] = "ayhem18"
	return rec
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	t.Run("Load missing tenant", func(t *testing.T) {
		_, err := repo.Load(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantNotFound))
	})

	t.Run("Save and load", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, sampleRecord()))

		loaded, err := repo.Load(ctx, "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, sampleRecord(), loaded)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := repo.Load(ctx, "tenant-1")
		require.NoError(t, err)
		loaded.Levels[0].PathVariable.Forward["mutated"] = "b"

		again, err := repo.Load(ctx, "tenant-1")
		require.NoError(t, err)
		assert.NotContains(t, again.Levels[0].PathVariable.Forward, "mutated",
			"Mutating a loaded record must not touch the stored state")
	})

	t.Run("Ordinals are sequential", func(t *testing.T) {
		first, err := repo.NextOrdinal(ctx)
		require.NoError(t, err)
		second, err := repo.NextOrdinal(ctx)
		require.NoError(t, err)
		assert.Equal(t, first+1, second)
	})

	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tenants.jsonl")

	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, sampleRecord()))
	require.NoError(t, repo.Close())

	t.Run("Restore replays records", func(t *testing.T) {
		restored, err := NewFileRepository(path)
		require.NoError(t, err)
		defer func() {
			if e := restored.Close(); e != nil {
				t.Logf("restored.Close() error: %v", e)
			}
		}()

		loaded, err := restored.Load(ctx, "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, sampleRecord(), loaded)
	})

	t.Run("Restore rebuilds ordinal from site hashes", func(t *testing.T) {
		restored, err := NewFileRepository(path)
		require.NoError(t, err)
		defer func() {
			if e := restored.Close(); e != nil {
				t.Logf("restored.Close() error: %v", e)
			}
		}()

		// "a" decodes to 0, so the next ordinal is 1
		ord, err := restored.NextOrdinal(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, ord)
	})

	t.Run("Last write wins on replay", func(t *testing.T) {
		repo, err := NewFileRepository(path)
		require.NoError(t, err)

		updated := sampleRecord()
		updated.Tier = "TIER_1"
		require.NoError(t, repo.Save(ctx, updated))
		require.NoError(t, repo.Close())

		restored, err := NewFileRepository(path)
		require.NoError(t, err)
		defer func() {
			if e := restored.Close(); e != nil {
				t.Logf("restored.Close() error: %v", e)
			}
		}()

		loaded, err := restored.Load(ctx, "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, "TIER_1", loaded.Tier)
	})
}

func TestFileRepositoryCorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenants.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("not-json\n"), 0o644))

	_, err := NewFileRepository(path)
	require.Error(t, err, "Expected error for corrupt snapshot line")
}

func TestDBRepositoryLoad(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		if e := db.Close(); e != nil {
			t.Logf("db.Close() error: %v", e)
		}
	}()

	repo := &DBRepository{DBConn: db}

	t.Run("Existing tenant", func(t *testing.T) {
		raw, err := json.Marshal(sampleRecord())
		require.NoError(t, err)

		mock.ExpectQuery("SELECT record FROM tenants").
			WithArgs("tenant-1").
			WillReturnRows(sqlmock.NewRows([]string{"record"}).AddRow(raw))

		loaded, err := repo.Load(ctx, "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, sampleRecord(), loaded)
	})

	t.Run("Missing tenant", func(t *testing.T) {
		mock.ExpectQuery("SELECT record FROM tenants").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"record"}))

		_, err := repo.Load(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantNotFound))
	})

	require.NoError(t, mock.ExpectationsWereMet(), "Unfulfilled expectations")
}

func TestDBRepositorySave(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		if e := db.Close(); e != nil {
			t.Logf("db.Close() error: %v", e)
		}
	}()

	repo := &DBRepository{DBConn: db}
	rec := sampleRecord()
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO tenants").
		WithArgs("tenant-1", raw).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(ctx, rec))
	require.NoError(t, mock.ExpectationsWereMet(), "Unfulfilled expectations")
}

func TestDBRepositoryNextOrdinal(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		if e := db.Close(); e != nil {
			t.Logf("db.Close() error: %v", e)
		}
	}()

	repo := &DBRepository{DBConn: db}
	mock.ExpectQuery("SELECT nextval").
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(7))

	ord, err := repo.NextOrdinal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, ord)
	require.NoError(t, mock.ExpectationsWereMet(), "Unfulfilled expectations")
}

func TestDBRepositoryPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() {
		if e := db.Close(); e != nil {
			t.Logf("db.Close() error: %v", e)
		}
	}()

	mock.ExpectPing()
	repo := &DBRepository{DBConn: db}
	require.NoError(t, repo.Ping(context.Background()))
}
