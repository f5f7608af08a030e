package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// CircleDetector интерфейс детектора окружностей
type CircleDetector interface {
	// Detect ищет окружности на кадре, пустой результат не является ошибкой
	Detect(ctx context.Context, frame entity.Frame) ([]entity.Circle, error)
}
