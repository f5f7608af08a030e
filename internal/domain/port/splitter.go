package port

import (
	"context"

	"ball-tracker/internal/domain/entity"
)

// VideoInfo параметры исходного видео
type VideoInfo struct {
	Width  int
	Height int
	FPS    float64
	Frames int
}

// VideoSplitter делит видео на четыре квадранта
type VideoSplitter interface {
	// Split пишет по файлу на каждый квадрант из outputs
	Split(ctx context.Context, input string, outputs map[entity.Quadrant]string) (VideoInfo, error)
}
