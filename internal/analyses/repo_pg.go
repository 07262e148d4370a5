package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
)

// PGRepo implements Repo using Postgres. The full report is stored as JSONB
// next to the columns the API queries directly.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO reports (id, file_name, storage_key, language, score, report, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	payload, err := json.Marshal(record.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.FileName,
		record.StorageKey,
		string(record.Language),
		record.Score,
		payload,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, file_name, storage_key, language, score, report, created_at
FROM reports
WHERE id = $1
LIMIT 1`
	var record Record
	var language string
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.FileName,
		&record.StorageKey,
		&language,
		&record.Score,
		&payload,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	record.Language = scoring.Language(language)
	if err := json.Unmarshal(payload, &record.Report); err != nil {
		return Record{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return record, nil
}
