package entity

import "image"

// QuadrantReport итог обработки одного квадранта.
type QuadrantReport struct {
	Quadrant  Quadrant           // номер квадранта
	FPS       float64            // частота кадров источника
	Frames    int                // обработано кадров
	Entries   int                // сколько раз мяч появлялся
	Intervals []PresenceInterval // все интервалы присутствия
	Records   []QuadrantRecord   // интервалы, прошедшие фильтр
	Centers   []image.Point      // центры всех найденных окружностей
	Colors    map[ColorLabel]int // сколько раз встретилась каждая метка
	Stopped   bool               // обработка остановлена из окна просмотра
}
