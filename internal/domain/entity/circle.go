package entity

import "image"

// Circle найденная на кадре окружность
type Circle struct {
	Center image.Point // центр окружности в пикселях
	Radius int         // радиус в пикселях
}

// Bounds возвращает квадрат со стороной 2*Radius вокруг центра
func (c Circle) Bounds() image.Rectangle {
	return image.Rect(
		c.Center.X-c.Radius,
		c.Center.Y-c.Radius,
		c.Center.X+c.Radius,
		c.Center.Y+c.Radius,
	)
}

// Detection окружность вместе с результатом классификации цвета.
type Detection struct {
	Circle Circle
	Mean   BGR
	Label  ColorLabel
}
