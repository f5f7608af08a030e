package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// SQLiteResultStore хранит результаты в SQLite, каждая строка помечена идентификатором прогона.
type SQLiteResultStore struct {
	mu    sync.Mutex
	db    *sql.DB
	runID string
}

// NewSQLiteResultStore открывает базу и создаёт таблицу при необходимости.
func NewSQLiteResultStore(path string) (*SQLiteResultStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS quadrant_results (
			run_id      TEXT    NOT NULL,
			quadrant    INTEGER NOT NULL,
			entry_time  INTEGER NOT NULL,
			exit_time   INTEGER NOT NULL,
			created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_quadrant_results_run ON quadrant_results(run_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteResultStore{db: db, runID: uuid.NewString()}, nil
}

// RunID идентификатор текущего прогона
func (s *SQLiteResultStore) RunID() string {
	return s.runID
}

// Append пишет записи одного квадранта одной транзакцией
func (s *SQLiteResultStore) Append(ctx context.Context, records []entity.QuadrantRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO quadrant_results (run_id, quadrant, entry_time, exit_time) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, s.runID, int(r.Quadrant), r.Entry, r.Exit); err != nil {
			return fmt.Errorf("insert quadrant %d: %w", r.Quadrant, err)
		}
	}

	return tx.Commit()
}

// Records возвращает записи прогона runID в порядке вставки
func (s *SQLiteResultStore) Records(ctx context.Context, runID string) ([]entity.QuadrantRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quadrant, entry_time, exit_time FROM quadrant_results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.QuadrantRecord
	for rows.Next() {
		var q, entry, exit int
		if err := rows.Scan(&q, &entry, &exit); err != nil {
			return nil, err
		}
		out = append(out, entity.QuadrantRecord{Quadrant: entity.Quadrant(q), Entry: entry, Exit: exit})
	}
	return out, rows.Err()
}

// Close закрывает базу
func (s *SQLiteResultStore) Close() error {
	return s.db.Close()
}

var _ port.ResultStore = (*SQLiteResultStore)(nil)
