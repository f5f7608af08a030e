//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Splitter режет видео на квадранты через VideoCapture и VideoWriter.
type Splitter struct {
	codec string
}

// NewSplitter создаёт резчик с кодеком codec (FourCC, например XVID).
func NewSplitter(codec string) (*Splitter, error) {
	return &Splitter{codec: codec}, nil
}

// Split пишет по видео на каждый квадрант из outputs.
func (s *Splitter) Split(ctx context.Context, input string, outputs map[entity.Quadrant]string) (port.VideoInfo, error) {
	capture, err := gocv.VideoCaptureFile(input)
	if err != nil {
		return port.VideoInfo{}, fmt.Errorf("open video %s: %w", input, err)
	}
	defer capture.Close()

	info := port.VideoInfo{
		Width:  int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:    capture.Get(gocv.VideoCaptureFPS),
	}
	if err := entity.ValidateDimensions(info.Width, info.Height); err != nil {
		return info, err
	}

	writers := make(map[entity.Quadrant]*gocv.VideoWriter, len(outputs))
	defer func() {
		for _, w := range writers {
			w.Close()
		}
	}()
	for q, path := range outputs {
		w, err := gocv.VideoWriterFile(path, s.codec, info.FPS, info.Width/2, info.Height/2, true)
		if err != nil {
			return info, fmt.Errorf("create writer for quadrant %d: %w", q, err)
		}
		writers[q] = w
	}

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if err := ctx.Err(); err != nil {
			return info, err
		}
		if ok := capture.Read(&frame); !ok || frame.Empty() {
			break
		}
		info.Frames++

		for q, w := range writers {
			region := frame.Region(q.Rect(info.Width, info.Height))
			err := w.Write(region)
			region.Close()
			if err != nil {
				return info, fmt.Errorf("write frame %d to quadrant %d: %w", info.Frames, q, err)
			}
		}
	}

	log.Debug().Str("input", input).Int("frames", info.Frames).Msg("split finished")
	return info, nil
}

var _ port.VideoSplitter = (*Splitter)(nil)
