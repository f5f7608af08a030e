package app

import (
	"context"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/infrastructure/storage"
)

var blue = color.RGBA{R: 100, G: 50, B: 90, A: 255}

func newTracking(det *scriptedDetector, store *storage.MemoryResultStore, preview *stopPreview) *TrackingService {
	cls := NewColorClassifier(entity.DefaultColorTable())
	if preview == nil {
		return NewTrackingService(det, cls, store, nil, entity.DefaultMinDuration)
	}
	return NewTrackingService(det, cls, store, preview, entity.DefaultMinDuration)
}

func TestTrackingService_ShortIntervalFiltered(t *testing.T) {
	store := storage.NewMemoryResultStore()
	svc := newTracking(&scriptedDetector{script: "FFTTTTTTF"}, store, nil)

	report, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantBottomRight, newSliceSource(2, 9, blue))
	require.NoError(t, err)

	require.Equal(t, 9, report.Frames)
	require.Equal(t, 1, report.Entries)
	require.Equal(t, []entity.PresenceInterval{{Entry: 1, Exit: 4}}, report.Intervals)
	require.Empty(t, report.Records)
	require.Empty(t, store.Records())
	require.Equal(t, 1, store.Batches())
}

func TestTrackingService_FlushAtEndOfVideo(t *testing.T) {
	store := storage.NewMemoryResultStore()
	svc := newTracking(&scriptedDetector{script: "TTTTTTTTTTT"}, store, nil)

	report, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantBottomLeft, newSliceSource(2, 11, blue))
	require.NoError(t, err)
	require.Equal(t, []entity.PresenceInterval{{Entry: 0, Exit: 5}}, report.Intervals)

	want := []entity.QuadrantRecord{{Quadrant: entity.QuadrantBottomLeft, Entry: 0, Exit: 5}}
	if diff := cmp.Diff(want, store.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackingService_MultipleCirclesOneInterval(t *testing.T) {
	store := storage.NewMemoryResultStore()
	svc := newTracking(&scriptedDetector{script: "TTTTTTTTTTTTF"}, store, nil)

	report, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantTopLeft, newSliceSource(1, 13, blue))
	require.NoError(t, err)

	require.Len(t, report.Intervals, 1)
	require.Equal(t, entity.PresenceInterval{Entry: 1, Exit: 13}, report.Intervals[0])
	require.Len(t, report.Centers, 24)
	require.Equal(t, 24, report.Colors[entity.LabelBlue])
	require.Equal(t, []entity.QuadrantRecord{{Quadrant: entity.QuadrantTopLeft, Entry: 1, Exit: 13}}, store.Records())
}

func TestTrackingService_PreviewStopFlushes(t *testing.T) {
	store := storage.NewMemoryResultStore()
	preview := &stopPreview{stopAt: 12}
	svc := newTracking(&scriptedDetector{script: "TTTTTTTTTTTTTTTTTTTT"}, store, preview)

	report, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantTopRight, newSliceSource(1, 20, blue))
	require.NoError(t, err)

	require.True(t, report.Stopped)
	require.Equal(t, 12, report.Frames)
	require.Equal(t, 12, preview.shown)
	require.Equal(t, []entity.PresenceInterval{{Entry: 1, Exit: 12}}, report.Intervals)
	require.Len(t, store.Records(), 1)
}

func TestTrackingService_InvalidFrameRate(t *testing.T) {
	svc := newTracking(&scriptedDetector{}, storage.NewMemoryResultStore(), nil)

	_, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantBottomRight, newSliceSource(0, 3, blue))
	require.ErrorIs(t, err, entity.ErrInvalidFrameRate)
}

func TestTrackingService_DetectorErrorAborts(t *testing.T) {
	store := storage.NewMemoryResultStore()
	svc := newTracking(&scriptedDetector{script: "TTTT", failAt: 3}, store, nil)

	_, err := svc.ProcessQuadrant(context.Background(), entity.QuadrantBottomRight, newSliceSource(1, 4, blue))
	require.ErrorContains(t, err, "hough failed")
	require.Zero(t, store.Batches())
}

func TestTrackingService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTracking(&scriptedDetector{script: "T"}, storage.NewMemoryResultStore(), nil)
	_, err := svc.ProcessQuadrant(ctx, entity.QuadrantBottomRight, newSliceSource(1, 1, blue))
	require.ErrorIs(t, err, context.Canceled)
}
