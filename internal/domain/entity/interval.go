package entity

import (
	"fmt"
	"image"
)

// DefaultMinDuration интервалы не длиннее этого значения (в секундах) отбрасываются
const DefaultMinDuration = 4

// PresenceInterval время входа и выхода мяча, в секундах
type PresenceInterval struct {
	Entry int
	Exit  int
}

// Duration длительность интервала в секундах
func (i PresenceInterval) Duration() int {
	return i.Exit - i.Entry
}

// Quadrant номер квадранта от 1 до 4
type Quadrant int

const (
	QuadrantBottomRight Quadrant = 1
	QuadrantBottomLeft  Quadrant = 2
	QuadrantTopLeft     Quadrant = 3
	QuadrantTopRight    Quadrant = 4
)

// Quadrants все квадранты в порядке обработки
var Quadrants = []Quadrant{
	QuadrantBottomRight,
	QuadrantBottomLeft,
	QuadrantTopLeft,
	QuadrantTopRight,
}

// Valid проверяет номер квадранта
func (q Quadrant) Valid() bool {
	return q >= QuadrantBottomRight && q <= QuadrantTopRight
}

// Rect возвращает область квадранта в кадре размера width x height.
func (q Quadrant) Rect(width, height int) image.Rectangle {
	hw, hh := width/2, height/2
	switch q {
	case QuadrantBottomRight:
		return image.Rect(hw, hh, width, height)
	case QuadrantBottomLeft:
		return image.Rect(0, hh, hw, height)
	case QuadrantTopLeft:
		return image.Rect(0, 0, hw, hh)
	case QuadrantTopRight:
		return image.Rect(hw, 0, width, hh)
	}
	return image.Rectangle{}
}

func (q Quadrant) String() string {
	return fmt.Sprintf("%d", int(q))
}

// QuadrantRecord строка результата для хранилища
type QuadrantRecord struct {
	Quadrant Quadrant
	Entry    int
	Exit     int
}

// FilterIntervals оставляет интервалы длиннее minDuration секунд.
func FilterIntervals(q Quadrant, intervals []PresenceInterval, minDuration int) []QuadrantRecord {
	records := make([]QuadrantRecord, 0, len(intervals))
	for _, in := range intervals {
		if in.Duration() > minDuration {
			records = append(records, QuadrantRecord{Quadrant: q, Entry: in.Entry, Exit: in.Exit})
		}
	}
	return records
}
