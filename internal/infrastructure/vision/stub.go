//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Available сообщает, собран ли OpenCV-бэкенд.
func Available() bool { return false }

// HoughDetector заглушка без OpenCV
type HoughDetector struct{}

// NewHoughDetector возвращает ошибку, если сборка без тега gocv.
func NewHoughDetector(params entity.DetectorParams) (*HoughDetector, error) {
	return nil, ErrBackendUnavailable
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *HoughDetector) Detect(ctx context.Context, frame entity.Frame) ([]entity.Circle, error) {
	return nil, ErrBackendUnavailable
}

// CaptureOpener заглушка без OpenCV
type CaptureOpener struct{}

// NewCaptureOpener возвращает ошибку, если сборка без тега gocv.
func NewCaptureOpener() (*CaptureOpener, error) {
	return nil, ErrBackendUnavailable
}

// Open возвращает ошибку, если сборка без тега gocv.
func (o *CaptureOpener) Open(ctx context.Context, path string) (port.FrameSource, error) {
	return nil, ErrBackendUnavailable
}

// Splitter заглушка без OpenCV
type Splitter struct{}

// NewSplitter возвращает ошибку, если сборка без тега gocv.
func NewSplitter(codec string) (*Splitter, error) {
	return nil, ErrBackendUnavailable
}

// Split возвращает ошибку, если сборка без тега gocv.
func (s *Splitter) Split(ctx context.Context, input string, outputs map[entity.Quadrant]string) (port.VideoInfo, error) {
	return port.VideoInfo{}, ErrBackendUnavailable
}

// Window заглушка без OpenCV
type Window struct{}

// NewWindow возвращает ошибку, если сборка без тега gocv.
func NewWindow(title string, scale float64) (*Window, error) {
	return nil, ErrBackendUnavailable
}

// Show ничего не показывает.
func (w *Window) Show(ctx context.Context, q entity.Quadrant, frame entity.Frame, detections []entity.Detection) bool {
	return false
}

// Close ничего не делает.
func (w *Window) Close() error {
	return nil
}
