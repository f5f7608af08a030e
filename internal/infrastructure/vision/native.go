package vision

import (
	"context"
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Минимальная доля проекции градиента на радиус, при которой точка границы
// считается лежащей на окружности.
const radialAlignment = 0.9

// NativeDetector градиентное преобразование Хафа без OpenCV.
type NativeDetector struct {
	params entity.DetectorParams
}

// NewNativeDetector создаёт детектор с параметрами params.
func NewNativeDetector(params entity.DetectorParams) *NativeDetector {
	return &NativeDetector{params: params}
}

// Detect переводит кадр в оттенки серого, размывает и ищет окружности.
func (d *NativeDetector) Detect(ctx context.Context, frame entity.Frame) ([]entity.Circle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if frame.Image == nil {
		return nil, nil
	}

	circles := d.DetectCircles(d.Preprocess(frame.Image))

	origin := frame.Image.Bounds().Min
	for i := range circles {
		circles[i].Center = circles[i].Center.Add(origin)
	}
	return circles, nil
}

// Preprocess возвращает размытое полутоновое изображение с началом в (0,0).
func (d *NativeDetector) Preprocess(img image.Image) *image.Gray {
	gray := effect.Grayscale(img)
	blurred := blur.Gaussian(gray, float64(d.params.BlurKernel-1)/2)

	b := blurred.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Pix[y*out.Stride+x] = blurred.Pix[blurred.PixOffset(b.Min.X+x, b.Min.Y+y)]
		}
	}
	return out
}

type edgePoint struct {
	x, y   int
	dx, dy float64 // единичный вектор градиента
}

type peak struct {
	x, y  int
	score int
}

// DetectCircles ищет окружности на сглаженном полутоновом изображении.
// Координаты в системе gray.Bounds(), начиная с (0,0).
func (d *NativeDetector) DetectCircles(gray *image.Gray) []entity.Circle {
	p := d.params
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return []entity.Circle{}
	}

	edges := findEdges(gray, p.Param1)
	if len(edges) == 0 {
		return []entity.Circle{}
	}

	idp := 1 / p.DP
	aw := int(float64(w)*idp) + 1
	ah := int(float64(h)*idp) + 1
	acc := make([]int, aw*ah)

	// Каждая точка границы голосует вдоль градиента в обе стороны:
	// мяч может быть как светлее, так и темнее фона.
	for _, e := range edges {
		for r := p.MinRadius; r <= p.MaxRadius; r++ {
			for _, sign := range [2]float64{1, -1} {
				cx := (float64(e.x) + sign*float64(r)*e.dx) * idp
				cy := (float64(e.y) + sign*float64(r)*e.dy) * idp
				ax, ay := int(math.Round(cx)), int(math.Round(cy))
				if ax < 0 || ay < 0 || ax >= aw || ay >= ah {
					continue
				}
				acc[ay*aw+ax]++
			}
		}
	}

	peaks := findPeaks(acc, aw, ah, int(math.Ceil(p.Param2)))

	minDist2 := p.MinDist * p.MinDist
	var centers []image.Point
	circles := []entity.Circle{}
	for _, pk := range peaks {
		c := image.Pt(int(math.Round(float64(pk.x)/idp)), int(math.Round(float64(pk.y)/idp)))

		tooClose := false
		for _, other := range centers {
			dx, dy := float64(c.X-other.X), float64(c.Y-other.Y)
			if dx*dx+dy*dy < minDist2 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		radius, support := estimateRadius(edges, c, p.MinRadius, p.MaxRadius)
		if float64(support) < p.Param2 {
			continue
		}

		centers = append(centers, c)
		circles = append(circles, entity.Circle{Center: c, Radius: radius})
	}

	return circles
}

// findEdges считает градиент Собеля и оставляет локальные максимумы модуля не ниже threshold.
func findEdges(gray *image.Gray, threshold float64) []edgePoint {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	at := func(x, y int) float64 {
		return float64(gray.Pix[y*gray.Stride+x])
	}

	gx := make([]float64, w*h)
	gy := make([]float64, w*h)
	mag := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			sy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			i := y*w + x
			gx[i], gy[i] = sx, sy
			mag[i] = math.Hypot(sx, sy)
		}
	}

	var edges []edgePoint
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m < threshold {
				continue
			}

			ax, ay := math.Abs(gx[i]), math.Abs(gy[i])
			var n1, n2 float64
			switch {
			case ay <= ax*0.4142:
				n1, n2 = mag[i-1], mag[i+1]
			case ay >= ax*2.4142:
				n1, n2 = mag[i-w], mag[i+w]
			case gx[i]*gy[i] > 0:
				n1, n2 = mag[i-w-1], mag[i+w+1]
			default:
				n1, n2 = mag[i-w+1], mag[i+w-1]
			}
			if m < n1 || m <= n2 {
				continue
			}

			edges = append(edges, edgePoint{x: x, y: y, dx: gx[i] / m, dy: gy[i] / m})
		}
	}
	return edges
}

// findPeaks возвращает локальные максимумы суммы голосов в окне 3x3,
// по убыванию суммы, затем по y и x.
func findPeaks(acc []int, aw, ah, threshold int) []peak {
	score := make([]int, aw*ah)
	for y := 0; y < ah; y++ {
		for x := 0; x < aw; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && ny >= 0 && nx < aw && ny < ah {
						sum += acc[ny*aw+nx]
					}
				}
			}
			score[y*aw+x] = sum
		}
	}

	var peaks []peak
	for y := 0; y < ah; y++ {
		for x := 0; x < aw; x++ {
			s := score[y*aw+x]
			if s < threshold || acc[y*aw+x] == 0 {
				continue
			}
			isMax := true
			for dy := -1; dy <= 1 && isMax; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= aw || ny >= ah {
						continue
					}
					if score[ny*aw+nx] > s {
						isMax = false
						break
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{x: x, y: y, score: s})
			}
		}
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		if peaks[i].score != peaks[j].score {
			return peaks[i].score > peaks[j].score
		}
		if peaks[i].y != peaks[j].y {
			return peaks[i].y < peaks[j].y
		}
		return peaks[i].x < peaks[j].x
	})
	return peaks
}

// estimateRadius выбирает самый частый радиус среди точек границы,
// чей градиент направлен вдоль радиуса.
func estimateRadius(edges []edgePoint, c image.Point, minR, maxR int) (radius, support int) {
	hist := make([]int, maxR-minR+1)
	for _, e := range edges {
		vx, vy := float64(e.x-c.X), float64(e.y-c.Y)
		dist := math.Hypot(vx, vy)
		if dist == 0 {
			continue
		}
		r := int(math.Round(dist))
		if r < minR || r > maxR {
			continue
		}
		if math.Abs(vx*e.dx+vy*e.dy)/dist < radialAlignment {
			continue
		}
		hist[r-minR]++
	}

	for i, n := range hist {
		if n > support {
			support = n
			radius = minR + i
		}
	}
	return radius, support
}

var _ port.CircleDetector = (*NativeDetector)(nil)
