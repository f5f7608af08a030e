package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidFrameRate возвращается, если источник сообщает fps <= 0.
var ErrInvalidFrameRate = errors.New("invalid frame rate")

// InvalidDimensionsError размеры видео нельзя поделить на квадранты.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("video dimensions %dx%d must be divisible by 2 for quadrant division", e.Width, e.Height)
}

// ValidateDimensions проверяет, что ширина и высота чётные.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return &InvalidDimensionsError{Width: width, Height: height}
	}
	return nil
}
