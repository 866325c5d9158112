package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"levelshort/internal/apperrors"
	"levelshort/internal/domain/models"
	"levelshort/internal/idcodec"
)

// FileRepository keeps tenant records in memory and appends every saved
// record as one JSON line to a snapshot file. On restore the lines are
// replayed in order, last write per tenant wins, and the ordinal counter
// is rebuilt from the highest site hash seen.
type FileRepository struct {
	records map[string]*models.TenantRecord
	ordinal int
	path    string
	file    *os.File
	writer  *bufio.Writer
	mu      sync.Mutex
}

// NewFileRepository opens (or creates) the snapshot file and replays it.
func NewFileRepository(path string) (*FileRepository, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tenants snapshot file: %w", err)
	}

	r := &FileRepository{
		records: make(map[string]*models.TenantRecord),
		path:    path,
		file:    file,
		writer:  bufio.NewWriter(file),
	}
	if err := r.restore(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

// restore replays the snapshot lines into the in-memory map.
func (r *FileRepository) restore() error {
	scanner := bufio.NewScanner(r.file)
	// a tenant with many registered values easily exceeds the default
	// 64KB token limit
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec := &models.TenantRecord{}
		if err := json.Unmarshal(line, rec); err != nil {
			return fmt.Errorf("corrupt snapshot line: %w", err)
		}
		r.records[rec.TenantID] = rec

		if rec.SiteHash != "" {
			ord, err := idcodec.Decode(rec.SiteHash)
			if err == nil && ord >= r.ordinal {
				r.ordinal = ord + 1
			}
		}
	}
	return scanner.Err()
}

// Load returns a copy of the tenant record.
func (r *FileRepository) Load(_ context.Context, tenantID string) (*models.TenantRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[tenantID]
	if !exists {
		return nil, apperrors.New(apperrors.KindTenantNotFound, "tenant not found: %s", tenantID)
	}
	return rec.Clone(), nil
}

// Save stores the record and appends it to the snapshot file.
func (r *FileRepository) Save(_ context.Context, rec *models.TenantRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := rec.Clone()
	r.records[cp.TenantID] = cp

	line, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshal tenant record: %w", err)
	}
	if _, err := r.writer.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append tenant record: %w", err)
	}
	return r.writer.Flush()
}

// NextOrdinal hands out ordinals sequentially, continuing past the highest
// ordinal restored from the snapshot.
func (r *FileRepository) NextOrdinal(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord := r.ordinal
	r.ordinal++
	return ord, nil
}

// Ping reports whether the snapshot file is still reachable.
func (r *FileRepository) Ping(_ context.Context) error {
	_, err := os.Stat(r.path)
	return err
}

// Close flushes buffered lines and closes the snapshot file.
func (r *FileRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writer.Flush(); err != nil {
		return err
	}
	return r.file.Close()
}
