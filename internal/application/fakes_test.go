package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// sliceSource отдаёт заранее подготовленные кадры
type sliceSource struct {
	fps    float64
	frames []entity.Frame
	pos    int
	closed bool
}

func newSliceSource(fps float64, n int, fill color.Color) *sliceSource {
	s := &sliceSource{fps: fps}
	for i := 1; i <= n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 120, 120))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
		s.frames = append(s.frames, entity.Frame{Index: i, Image: img})
	}
	return s
}

func (s *sliceSource) FPS() float64 { return s.fps }

func (s *sliceSource) Next(ctx context.Context) (entity.Frame, bool, error) {
	if s.pos >= len(s.frames) {
		return entity.Frame{}, false, nil
	}
	f := s.frames[s.pos]
	s.pos++
	return f, true, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

// scriptedDetector возвращает окружность на кадрах, где script[index-1] == 'T'
type scriptedDetector struct {
	script string
	failAt int
}

func (d *scriptedDetector) Detect(ctx context.Context, frame entity.Frame) ([]entity.Circle, error) {
	if d.failAt > 0 && frame.Index == d.failAt {
		return nil, errors.New("hough failed")
	}
	i := frame.Index - 1
	if i < 0 || i >= len(d.script) || d.script[i] != 'T' {
		return nil, nil
	}
	return []entity.Circle{
		{Center: image.Pt(60, 60), Radius: 30},
		{Center: image.Pt(30, 30), Radius: 25},
	}, nil
}

type stopPreview struct {
	stopAt int
	shown  int
}

func (p *stopPreview) Show(ctx context.Context, q entity.Quadrant, frame entity.Frame, detections []entity.Detection) bool {
	p.shown++
	return frame.Index == p.stopAt
}

type mapOpener struct {
	mu      sync.Mutex
	sources map[string]*sliceSource
	opened  []string
}

func (o *mapOpener) Open(ctx context.Context, path string) (port.FrameSource, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, ok := o.sources[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	o.opened = append(o.opened, path)
	return s, nil
}

type fakeSplitter struct {
	err    error
	called bool
}

func (s *fakeSplitter) Split(ctx context.Context, input string, outputs map[entity.Quadrant]string) (port.VideoInfo, error) {
	s.called = true
	if s.err != nil {
		return port.VideoInfo{}, s.err
	}
	return port.VideoInfo{Width: 240, Height: 240, FPS: 2}, nil
}

type recordingNotifier struct {
	reports []*entity.QuadrantReport
	err     error
}

func (n *recordingNotifier) Notify(ctx context.Context, reports []*entity.QuadrantReport) error {
	n.reports = reports
	return n.err
}
