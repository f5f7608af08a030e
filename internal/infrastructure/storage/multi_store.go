package storage

import (
	"context"
	"errors"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// MultiStore пишет одни и те же записи в несколько хранилищ
type MultiStore []port.ResultStore

// Append вызывает Append у каждого хранилища и собирает ошибки
func (m MultiStore) Append(ctx context.Context, records []entity.QuadrantRecord) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(ctx, records); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ port.ResultStore = MultiStore(nil)
