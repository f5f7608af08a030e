//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Window окно просмотра найденных мячей. Клавиша q останавливает обработку.
type Window struct {
	window *gocv.Window
	scale  float64
}

// NewWindow открывает окно с заголовком title и масштабом scale.
func NewWindow(title string, scale float64) (*Window, error) {
	return &Window{window: gocv.NewWindow(title), scale: scale}, nil
}

// Show рисует кадр: при наличии мячей оставляет только их области,
// обводит зелёным и отмечает центр красным.
func (w *Window) Show(ctx context.Context, q entity.Quadrant, frame entity.Frame, detections []entity.Detection) bool {
	mat, err := imageToMat(frame.Image)
	if err != nil {
		log.Warn().Err(err).Int("quadrant", int(q)).Int("frame", frame.Index).Msg("preview skipped")
		return false
	}
	defer mat.Close()

	view := mat
	if len(detections) > 0 {
		mask := gocv.Zeros(mat.Rows(), mat.Cols(), gocv.MatTypeCV8U)
		defer mask.Close()
		for _, d := range detections {
			gocv.Circle(&mask, d.Circle.Center, d.Circle.Radius, color.RGBA{R: 255, G: 255, B: 255}, -1)
		}

		masked := gocv.NewMat()
		defer masked.Close()
		gocv.BitwiseAndWithMask(mat, mat, &masked, mask)

		green := color.RGBA{G: 255}
		red := color.RGBA{R: 255}
		for _, d := range detections {
			gocv.Circle(&masked, d.Circle.Center, d.Circle.Radius, green, 2)
			gocv.Circle(&masked, d.Circle.Center, 2, red, 3)
		}
		view = masked
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(view, &resized, image.Point{}, w.scale, w.scale, gocv.InterpolationLinear)

	w.window.IMShow(resized)
	return w.window.WaitKey(1)&0xFF == 'q'
}

// Close закрывает окно
func (w *Window) Close() error {
	return w.window.Close()
}

var _ port.Preview = (*Window)(nil)
