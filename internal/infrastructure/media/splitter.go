package media

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// FFmpegSplitter режет видео на квадранты одной командой ffmpeg (split + crop).
type FFmpegSplitter struct {
	probe ProbeFunc
	run   func(*ffmpeg.Stream) error
}

// NewFFmpegSplitter создаёт резчик. probe может быть nil.
func NewFFmpegSplitter(probe ProbeFunc) *FFmpegSplitter {
	if probe == nil {
		probe = DefaultProbe
	}
	return &FFmpegSplitter{
		probe: probe,
		run:   func(s *ffmpeg.Stream) error { return s.Run() },
	}
}

// Split проверяет размеры и пишет по видео XVID на каждый квадрант
func (s *FFmpegSplitter) Split(ctx context.Context, input string, outputs map[entity.Quadrant]string) (port.VideoInfo, error) {
	data, err := s.probe(input)
	if err != nil {
		return port.VideoInfo{}, fmt.Errorf("ffprobe %s: %w", input, err)
	}
	info, err := parseProbe(data)
	if err != nil {
		return port.VideoInfo{}, fmt.Errorf("ffprobe %s: %w", input, err)
	}
	if err := entity.ValidateDimensions(info.Width, info.Height); err != nil {
		return info, err
	}

	split := ffmpeg.Input(input).Split()
	streams := make([]*ffmpeg.Stream, 0, len(outputs))
	for _, q := range entity.Quadrants {
		path, ok := outputs[q]
		if !ok {
			continue
		}
		rect := q.Rect(info.Width, info.Height)
		streams = append(streams, split.Get(strconv.Itoa(len(streams))).
			Crop(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()).
			Output(path, ffmpeg.KwArgs{
				"c:v":  "mpeg4",
				"vtag": "XVID",
				"q:v":  "3",
			}))
	}
	if len(streams) == 0 {
		return info, fmt.Errorf("no quadrant outputs for %s", input)
	}

	stream := ffmpeg.MergeOutputs(streams...).
		OverWriteOutput().
		WithErrorOutput(io.Discard)
	stream.Context = ctx

	if err := s.run(stream); err != nil {
		return info, fmt.Errorf("ffmpeg split %s: %w", input, err)
	}

	log.Debug().Str("input", input).Int("outputs", len(streams)).Msg("split finished")
	return info, nil
}

var _ port.VideoSplitter = (*FFmpegSplitter)(nil)
