package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// FrameSource последовательность кадров одного видео
type FrameSource interface {
	// FPS частота кадров видео
	FPS() float64

	// Next возвращает следующий кадр, false означает конец видео
	Next(ctx context.Context) (entity.Frame, bool, error)

	// Close освобождает ресурсы
	Close() error
}

// SourceOpener открывает видеофайл квадранта
type SourceOpener interface {
	Open(ctx context.Context, path string) (FrameSource, error)
}
