package app

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"ball-tracker/internal/domain/entity"
)

// ColorClassifier определяет цвет мяча по средней окраске области вокруг окружности.
type ColorClassifier struct {
	table entity.ColorTable
}

// NewColorClassifier создаёт классификатор с заданной таблицей диапазонов.
func NewColorClassifier(table entity.ColorTable) *ColorClassifier {
	return &ColorClassifier{table: table}
}

// Classify считает средний цвет и метку для окружности.
func (c *ColorClassifier) Classify(img image.Image, circle entity.Circle) entity.Detection {
	det := entity.Detection{Circle: circle, Label: entity.LabelUnknown}

	mean, ok := MeanBGR(img, circle)
	if !ok {
		return det
	}
	det.Mean = mean
	det.Label = c.table.Classify(mean)
	return det
}

// MeanBGR среднее по каналам в квадрате 2r x 2r вокруг центра.
// Квадрат обрезается по границам кадра; false, если пересечение пустое.
func MeanBGR(img image.Image, circle entity.Circle) (entity.BGR, bool) {
	box := circle.Bounds().Intersect(img.Bounds())
	if box.Empty() {
		return entity.BGR{}, false
	}

	n := box.Dx() * box.Dy()
	blue := make([]float64, 0, n)
	green := make([]float64, 0, n)
	red := make([]float64, 0, n)

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			blue = append(blue, float64(b>>8))
			green = append(green, float64(g>>8))
			red = append(red, float64(r>>8))
		}
	}

	return entity.BGR{
		int(stat.Mean(blue, nil)),
		int(stat.Mean(green, nil)),
		int(stat.Mean(red, nil)),
	}, true
}
