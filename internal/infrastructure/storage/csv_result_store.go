package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// CSVHeader заголовок файла результатов
var CSVHeader = []string{"Quadrant", "Entry Time", "Exit Time"}

// CSVResultStore дописывает результаты в CSV-файл.
// Заголовок пишется только если файл пуст в момент открытия.
type CSVResultStore struct {
	mu   sync.Mutex
	path string
}

// NewCSVResultStore создаёт хранилище для файла path
func NewCSVResultStore(path string) *CSVResultStore {
	return &CSVResultStore{path: path}
}

// Path путь к файлу
func (s *CSVResultStore) Path() string {
	return s.path
}

// Append открывает файл на дозапись и пишет записи одного квадранта
func (s *CSVResultStore) Append(ctx context.Context, records []entity.QuadrantRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(CSVHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(int(r.Quadrant)),
			strconv.Itoa(r.Entry),
			strconv.Itoa(r.Exit),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return f.Close()
}

var _ port.ResultStore = (*CSVResultStore)(nil)
