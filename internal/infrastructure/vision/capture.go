//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// CaptureOpener открывает видеофайлы через cv::VideoCapture.
type CaptureOpener struct{}

// NewCaptureOpener создаёт открыватель видео на OpenCV.
func NewCaptureOpener() (*CaptureOpener, error) {
	return &CaptureOpener{}, nil
}

// Open открывает видеофайл квадранта
func (o *CaptureOpener) Open(ctx context.Context, path string) (port.FrameSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("video %s is not opened", path)
	}

	return &Capture{
		capture: capture,
		frame:   gocv.NewMat(),
		fps:     capture.Get(gocv.VideoCaptureFPS),
	}, nil
}

// Capture кадры одного видеофайла
type Capture struct {
	capture *gocv.VideoCapture
	frame   gocv.Mat
	fps     float64
	index   int
}

// FPS частота кадров из свойств видео
func (c *Capture) FPS() float64 {
	return c.fps
}

// Next читает следующий кадр
func (c *Capture) Next(ctx context.Context) (entity.Frame, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, false, err
	}
	if ok := c.capture.Read(&c.frame); !ok || c.frame.Empty() {
		return entity.Frame{}, false, nil
	}
	c.index++

	img, err := c.frame.ToImage()
	if err != nil {
		return entity.Frame{}, false, fmt.Errorf("frame %d: %w", c.index, err)
	}
	return entity.Frame{Index: c.index, Image: img}, true, nil
}

// Close освобождает видео
func (c *Capture) Close() error {
	c.frame.Close()
	return c.capture.Close()
}

var _ port.SourceOpener = (*CaptureOpener)(nil)
