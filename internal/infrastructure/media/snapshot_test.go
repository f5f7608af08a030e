package media

import (
	"context"
	"image"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"ball-tracker/internal/domain/entity"
)

func TestSnapshotWriter_SavesScaledFramesWithDetections(t *testing.T) {
	dir := t.TempDir()
	w, err := NewSnapshotWriter(dir, 5, 0.5)
	require.NoError(t, err)
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	det := []entity.Detection{{Circle: entity.Circle{Center: image.Pt(50, 50), Radius: 30}, Label: entity.LabelBlue}}

	for i := 1; i <= 12; i++ {
		require.False(t, w.Show(ctx, entity.QuadrantTopLeft, entity.Frame{Index: i, Image: img}, det))
	}
	require.False(t, w.Show(ctx, entity.QuadrantTopRight, entity.Frame{Index: 3, Image: img}, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3) // кадры 1, 6 и 11

	saved, err := imaging.Open(w.Path(entity.QuadrantTopLeft, 6))
	require.NoError(t, err)
	require.Equal(t, 100, saved.Bounds().Dx())
	require.Equal(t, 50, saved.Bounds().Dy())
}

func TestSnapshotWriter_QuadrantsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewSnapshotWriter(dir, 100, 1)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	det := []entity.Detection{{Circle: entity.Circle{Center: image.Pt(20, 20), Radius: 10}}}
	for _, q := range entity.Quadrants {
		w.Show(context.Background(), q, entity.Frame{Index: 1, Image: img}, det)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)
}
