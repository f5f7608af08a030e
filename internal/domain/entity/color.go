package entity

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// BGR средний цвет области в порядке каналов синий, зелёный, красный
type BGR [3]int

// Hex возвращает цвет в виде #rrggbb
func (c BGR) Hex() string {
	return colorful.Color{
		R: channel(c[2]),
		G: channel(c[1]),
		B: channel(c[0]),
	}.Hex()
}

func channel(v int) float64 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return float64(v) / 255
}

// ColorLabel метка цвета мяча
type ColorLabel string

const (
	LabelBlue    ColorLabel = "BlueBall"
	LabelOrange  ColorLabel = "OrangeBall"
	LabelYellow  ColorLabel = "YellowBall"
	LabelWhite   ColorLabel = "WhiteBall"
	LabelUnknown ColorLabel = "Unknown"
)

// ParseColorLabel проверяет, что метка входит в известный набор.
func ParseColorLabel(s string) (ColorLabel, error) {
	switch l := ColorLabel(s); l {
	case LabelBlue, LabelOrange, LabelYellow, LabelWhite, LabelUnknown:
		return l, nil
	}
	return "", fmt.Errorf("unknown color label %q", s)
}

// ColorRange диапазон BGR, границы включительно
type ColorRange struct {
	Label ColorLabel `yaml:"label"`
	Lower BGR        `yaml:"lower"`
	Upper BGR        `yaml:"upper"`
}

// Contains проверяет попадание по всем трём каналам.
func (r ColorRange) Contains(c BGR) bool {
	for i := 0; i < 3; i++ {
		if c[i] < r.Lower[i] || c[i] > r.Upper[i] {
			return false
		}
	}
	return true
}

// ColorTable упорядоченная таблица диапазонов
type ColorTable []ColorRange

// DefaultColorTable таблица по умолчанию.
// У YellowBall нижняя граница по зелёному больше верхней, диапазон недостижим.
// Оставлено как есть для совместимости результатов.
func DefaultColorTable() ColorTable {
	return ColorTable{
		{Label: LabelBlue, Lower: BGR{70, 0, 0}, Upper: BGR{110, 255, 255}},
		{Label: LabelOrange, Lower: BGR{80, 100, 200}, Upper: BGR{255, 255, 255}},
		{Label: LabelYellow, Lower: BGR{0, 255, 255}, Upper: BGR{0, 0, 255}},
		{Label: LabelWhite, Lower: BGR{0, 170, 180}, Upper: BGR{149, 255, 255}},
	}
}

// Classify возвращает метку первого подходящего диапазона или Unknown.
func (t ColorTable) Classify(c BGR) ColorLabel {
	for _, r := range t {
		if r.Contains(c) {
			return r.Label
		}
	}
	return LabelUnknown
}
