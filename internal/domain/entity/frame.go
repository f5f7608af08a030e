package entity

import "image"

// Frame кадр видео квадранта
type Frame struct {
	Index int         // порядковый номер кадра, начиная с 1
	Image image.Image // цветное изображение кадра
}

// Timestamp переводит номер кадра в целые секунды (с отбрасыванием дробной части)
func Timestamp(frameIndex int, fps float64) int {
	if fps <= 0 {
		return 0
	}
	return int(float64(frameIndex) / fps)
}
