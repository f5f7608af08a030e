package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// ResultStore хранилище итоговых интервалов
type ResultStore interface {
	// Append дописывает записи одного квадранта
	Append(ctx context.Context, records []entity.QuadrantRecord) error
}
