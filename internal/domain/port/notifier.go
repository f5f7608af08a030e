package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// ReportNotifier отправляет сводку по итогам обработки
type ReportNotifier interface {
	Notify(ctx context.Context, reports []*entity.QuadrantReport) error
}
