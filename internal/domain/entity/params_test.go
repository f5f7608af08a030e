package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTuning_Valid(t *testing.T) {
	tn := DefaultTuning()
	require.NoError(t, tn.Validate())
	require.Equal(t, 25, tn.Detector.MinRadius)
	require.Equal(t, 100, tn.Detector.MaxRadius)
	require.Equal(t, 0.5, tn.DisplayScale)
	require.Len(t, tn.Colors, 4)
}

func TestDetectorParams_Validate(t *testing.T) {
	p := DefaultDetectorParams()
	p.BlurKernel = 8
	require.Error(t, p.Validate())

	p = DefaultDetectorParams()
	p.MinRadius, p.MaxRadius = 50, 20
	require.Error(t, p.Validate())
}

func TestTuning_ValidateRejectsUnknownLabel(t *testing.T) {
	tn := DefaultTuning()
	tn.Colors = append(tn.Colors, ColorRange{Label: "GreenBall"})
	require.Error(t, tn.Validate())
}
