package media

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ball-tracker/internal/domain/entity"
)

func probeOf(w, h int) ProbeFunc {
	return func(string) (string, error) {
		return fmt.Sprintf(`{"streams":[{"codec_type":"video","width":%d,"height":%d,"avg_frame_rate":"30/1","nb_frames":"90"}]}`, w, h), nil
	}
}

func allOutputs() map[entity.Quadrant]string {
	return map[entity.Quadrant]string{
		entity.QuadrantBottomRight: "quadrant1.avi",
		entity.QuadrantBottomLeft:  "quadrant2.avi",
		entity.QuadrantTopLeft:     "quadrant3.avi",
		entity.QuadrantTopRight:    "quadrant4.avi",
	}
}

func TestFFmpegSplitter_RejectsOddDimensions(t *testing.T) {
	s := NewFFmpegSplitter(probeOf(641, 480))
	ran := false
	s.run = func(*ffmpeg.Stream) error { ran = true; return nil }

	_, err := s.Split(context.Background(), "crop.avi", allOutputs())

	var dimErr *entity.InvalidDimensionsError
	require.True(t, errors.As(err, &dimErr))
	require.Equal(t, 641, dimErr.Width)
	require.False(t, ran)
}

func TestFFmpegSplitter_RunsOnce(t *testing.T) {
	s := NewFFmpegSplitter(probeOf(640, 480))
	runs := 0
	s.run = func(st *ffmpeg.Stream) error {
		runs++
		require.NotNil(t, st)
		return nil
	}

	info, err := s.Split(context.Background(), "crop.avi", allOutputs())
	require.NoError(t, err)
	require.Equal(t, 1, runs)
	require.Equal(t, 640, info.Width)
	require.Equal(t, 90, info.Frames)
	require.Equal(t, 30.0, info.FPS)
}

func TestFFmpegSplitter_RunError(t *testing.T) {
	s := NewFFmpegSplitter(probeOf(640, 480))
	s.run = func(*ffmpeg.Stream) error { return errors.New("exit status 1") }

	_, err := s.Split(context.Background(), "crop.avi", allOutputs())
	require.ErrorContains(t, err, "exit status 1")
}

func TestFFmpegSplitter_NoOutputs(t *testing.T) {
	s := NewFFmpegSplitter(probeOf(640, 480))
	_, err := s.Split(context.Background(), "crop.avi", nil)
	require.Error(t, err)
}
