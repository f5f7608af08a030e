//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Available сообщает, собран ли OpenCV-бэкенд.
func Available() bool { return true }

// HoughDetector ищет окружности через cv::HoughCircles.
type HoughDetector struct {
	params entity.DetectorParams
}

// NewHoughDetector создаёт детектор с параметрами params.
func NewHoughDetector(params entity.DetectorParams) (*HoughDetector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &HoughDetector{params: params}, nil
}

// Detect переводит кадр в серый, размывает по Гауссу и запускает HoughCircles.
func (d *HoughDetector) Detect(ctx context.Context, frame entity.Frame) ([]entity.Circle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := imageToMat(frame.Image)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	k := d.params.BlurKernel
	gocv.GaussianBlur(gray, &blurred, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	circles := gocv.NewMat()
	defer circles.Close()
	gocv.HoughCirclesWithParams(
		blurred,
		&circles,
		gocv.HoughGradient,
		d.params.DP,
		d.params.MinDist,
		d.params.Param1,
		d.params.Param2,
		d.params.MinRadius,
		d.params.MaxRadius,
	)

	origin := frame.Image.Bounds().Min
	out := make([]entity.Circle, 0, circles.Cols())
	for i := 0; i < circles.Cols(); i++ {
		v := circles.GetVecfAt(0, i)
		if len(v) < 3 {
			continue
		}
		out = append(out, entity.Circle{
			Center: image.Pt(
				int(math.RoundToEven(float64(v[0]))),
				int(math.RoundToEven(float64(v[1]))),
			).Add(origin),
			Radius: int(math.RoundToEven(float64(v[2]))),
		})
	}

	return out, nil
}

// imageToMat превращает кадр в gocv.Mat с порядком каналов BGR.
func imageToMat(img image.Image) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), errors.New("empty frame")
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert frame: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), errors.New("empty frame")
	}
	return mat, nil
}

var _ port.CircleDetector = (*HoughDetector)(nil)
