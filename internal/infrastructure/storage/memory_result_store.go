package storage

import (
	"context"
	"sync"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// MemoryResultStore in-memory хранилище результатов
type MemoryResultStore struct {
	mu      sync.RWMutex
	records []entity.QuadrantRecord
	batches int
}

// NewMemoryResultStore создаёт пустое хранилище
func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{}
}

// Append дописывает записи квадранта
func (s *MemoryResultStore) Append(ctx context.Context, records []entity.QuadrantRecord) error {
	s.mu.Lock()
	s.records = append(s.records, records...)
	s.batches++
	s.mu.Unlock()

	return nil
}

// Records возвращает копию всех записей
func (s *MemoryResultStore) Records() []entity.QuadrantRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.QuadrantRecord, len(s.records))
	copy(out, s.records)
	return out
}

// ByQuadrant возвращает записи одного квадранта
func (s *MemoryResultStore) ByQuadrant(q entity.Quadrant) []entity.QuadrantRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.QuadrantRecord
	for _, r := range s.records {
		if r.Quadrant == q {
			out = append(out, r)
		}
	}
	return out
}

// Batches сколько раз вызывался Append
func (s *MemoryResultStore) Batches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches
}

// Проверка реализации интерфейса
var _ port.ResultStore = (*MemoryResultStore)(nil)
