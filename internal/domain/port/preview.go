package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// Preview показывает кадры с найденными мячами
type Preview interface {
	// Show возвращает true, если пользователь попросил остановить обработку
	Show(ctx context.Context, q entity.Quadrant, frame entity.Frame, detections []entity.Detection) bool
}
