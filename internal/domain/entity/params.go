package entity

import (
	"errors"
	"fmt"
)

// DetectorParams параметры преобразования Хафа для окружностей
type DetectorParams struct {
	DP         float64 `yaml:"dp"`          // обратное разрешение аккумулятора
	MinDist    float64 `yaml:"min_dist"`    // минимальное расстояние между центрами
	Param1     float64 `yaml:"param1"`      // порог границ
	Param2     float64 `yaml:"param2"`      // порог аккумулятора
	MinRadius  int     `yaml:"min_radius"`  // минимальный радиус
	MaxRadius  int     `yaml:"max_radius"`  // максимальный радиус
	BlurKernel int     `yaml:"blur_kernel"` // размер ядра размытия по Гауссу
}

// DefaultDetectorParams значения, на которых подбиралось распознавание мячей
func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		DP:         1,
		MinDist:    50,
		Param1:     60,
		Param2:     30,
		MinRadius:  25,
		MaxRadius:  100,
		BlurKernel: 9,
	}
}

// Validate проверяет параметры детектора
func (p DetectorParams) Validate() error {
	if p.DP <= 0 {
		return errors.New("dp must be positive")
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		return fmt.Errorf("invalid radius range [%d,%d]", p.MinRadius, p.MaxRadius)
	}
	if p.BlurKernel <= 0 || p.BlurKernel%2 == 0 {
		return fmt.Errorf("blur kernel must be odd and positive, got %d", p.BlurKernel)
	}
	if p.Param1 <= 0 || p.Param2 <= 0 {
		return errors.New("hough thresholds must be positive")
	}
	return nil
}

// DefaultDisplayScale масштаб окна просмотра
const DefaultDisplayScale = 0.5

// Tuning настраиваемые константы распознавания
type Tuning struct {
	Detector     DetectorParams `yaml:"detector"`
	Colors       ColorTable     `yaml:"colors"`
	DisplayScale float64        `yaml:"display_scale"`
}

// DefaultTuning настройки по умолчанию
func DefaultTuning() Tuning {
	return Tuning{
		Detector:     DefaultDetectorParams(),
		Colors:       DefaultColorTable(),
		DisplayScale: DefaultDisplayScale,
	}
}

// Validate проверяет настройки целиком
func (t Tuning) Validate() error {
	if err := t.Detector.Validate(); err != nil {
		return fmt.Errorf("detector: %w", err)
	}
	for i, r := range t.Colors {
		if _, err := ParseColorLabel(string(r.Label)); err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
	}
	if t.DisplayScale <= 0 {
		return fmt.Errorf("display scale must be positive, got %v", t.DisplayScale)
	}
	return nil
}
