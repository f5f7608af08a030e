package media

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// SnapshotWriter сохраняет уменьшенные кадры с обведёнными мячами в JPEG.
// Сохраняется не чаще одного кадра на every кадров в каждом квадранте.
type SnapshotWriter struct {
	dir   string
	every int
	scale float64

	mu   sync.Mutex
	last map[entity.Quadrant]int
}

// NewSnapshotWriter создаёт каталог dir при необходимости.
func NewSnapshotWriter(dir string, every int, scale float64) (*SnapshotWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	if every < 1 {
		every = 1
	}
	return &SnapshotWriter{
		dir:   dir,
		every: every,
		scale: scale,
		last:  make(map[entity.Quadrant]int),
	}, nil
}

// Show сохраняет кадр, если на нём есть мячи. Остановку не запрашивает.
func (s *SnapshotWriter) Show(ctx context.Context, q entity.Quadrant, frame entity.Frame, detections []entity.Detection) bool {
	if len(detections) == 0 || frame.Image == nil {
		return false
	}

	s.mu.Lock()
	last, seen := s.last[q]
	if seen && frame.Index-last < s.every {
		s.mu.Unlock()
		return false
	}
	s.last[q] = frame.Index
	s.mu.Unlock()

	path := s.Path(q, frame.Index)
	if err := imaging.Save(s.render(frame.Image, detections), path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to save snapshot")
	}
	return false
}

// Path имя файла снимка
func (s *SnapshotWriter) Path(q entity.Quadrant, frameIndex int) string {
	return filepath.Join(s.dir, fmt.Sprintf("q%d_frame_%06d.jpg", q, frameIndex))
}

func (s *SnapshotWriter) render(img image.Image, detections []entity.Detection) image.Image {
	canvas := imaging.Clone(img)
	origin := img.Bounds().Min

	green := color.NRGBA{G: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}
	for _, d := range detections {
		c := d.Circle.Center.Sub(origin)
		drawRing(canvas, c, float64(d.Circle.Radius), 1, green)
		drawRing(canvas, c, 0, 3, red)
	}

	width := int(float64(canvas.Bounds().Dx()) * s.scale)
	if width < 1 {
		width = 1
	}
	return imaging.Resize(canvas, width, 0, imaging.Linear)
}

// drawRing закрашивает точки на расстоянии radius±half от центра
func drawRing(img *image.NRGBA, c image.Point, radius, half float64, col color.NRGBA) {
	outer := int(math.Ceil(radius + half))
	rect := image.Rect(c.X-outer, c.Y-outer, c.X+outer+1, c.Y+outer+1).Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			d := math.Hypot(float64(x-c.X), float64(y-c.Y))
			if math.Abs(d-radius) <= half {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

var _ port.Preview = (*SnapshotWriter)(nil)
