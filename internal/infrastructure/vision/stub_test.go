//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ball-tracker/internal/domain/entity"
)

func TestStub_ConstructorsFail(t *testing.T) {
	_, err := NewHoughDetector(entity.DefaultDetectorParams())
	require.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = NewCaptureOpener()
	require.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = NewSplitter("XVID")
	require.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = NewWindow("preview", 0.5)
	require.ErrorIs(t, err, ErrBackendUnavailable)
}
