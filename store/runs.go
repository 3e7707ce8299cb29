package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BeginRun records the start of an ETL run and returns its ID.
func (s *Store) BeginRun(ctx context.Context, command string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO etl_runs (id, command, started_at) VALUES (?, ?, ?)`,
		id, command, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// FinishRun records the end of an ETL run and the number of rows it
// processed.
func (s *Store) FinishRun(ctx context.Context, runID string, rows int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE etl_runs SET finished_at = ?, rows = ? WHERE id = ?`,
		time.Now().UTC(), rows, runID,
	)
	return err
}
