package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// FFmpegOpener открывает видео через ffmpeg, кадры приходят в формате rgb24 через pipe.
type FFmpegOpener struct {
	probe ProbeFunc
}

// NewFFmpegOpener создаёт открыватель. probe может быть nil.
func NewFFmpegOpener(probe ProbeFunc) *FFmpegOpener {
	if probe == nil {
		probe = DefaultProbe
	}
	return &FFmpegOpener{probe: probe}
}

// Open запускает ffmpeg для файла path
func (o *FFmpegOpener) Open(ctx context.Context, path string) (port.FrameSource, error) {
	data, err := o.probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	info, err := parseProbe(data)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("ffprobe %s: bad frame size %dx%d", path, info.Width, info.Height)
	}

	ctx, cancel := context.WithCancel(ctx)
	r, w := io.Pipe()

	stream := ffmpeg.Input(path).
		Output("pipe:1", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"pix_fmt": "rgb24",
		}).
		WithOutput(w).
		WithErrorOutput(io.Discard)
	stream.Context = ctx

	go func() {
		w.CloseWithError(stream.Run())
	}()

	return newRawSource(r, info, cancel), nil
}

// RawSource читает кадры rgb24 фиксированного размера из потока
type RawSource struct {
	r      io.ReadCloser
	info   port.VideoInfo
	buf    []byte
	index  int
	cancel context.CancelFunc
}

func newRawSource(r io.ReadCloser, info port.VideoInfo, cancel context.CancelFunc) *RawSource {
	return &RawSource{
		r:      r,
		info:   info,
		buf:    make([]byte, info.Width*info.Height*3),
		cancel: cancel,
	}
}

// FPS частота кадров из ffprobe
func (s *RawSource) FPS() float64 {
	return s.info.FPS
}

// Next читает следующий кадр; неполный кадр в конце потока отбрасывается
func (s *RawSource) Next(ctx context.Context) (entity.Frame, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, false, err
	}

	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return entity.Frame{}, false, nil
		}
		return entity.Frame{}, false, fmt.Errorf("read frame %d: %w", s.index+1, err)
	}
	s.index++

	img := image.NewRGBA(image.Rect(0, 0, s.info.Width, s.info.Height))
	for i, j := 0, 0; i < len(s.buf); i, j = i+3, j+4 {
		img.Pix[j] = s.buf[i]
		img.Pix[j+1] = s.buf[i+1]
		img.Pix[j+2] = s.buf[i+2]
		img.Pix[j+3] = 0xff
	}

	return entity.Frame{Index: s.index, Image: img}, true, nil
}

// Close останавливает ffmpeg
func (s *RawSource) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.r.Close()
}

var _ port.SourceOpener = (*FFmpegOpener)(nil)
