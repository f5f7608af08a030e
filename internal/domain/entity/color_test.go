package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorTable_Classify(t *testing.T) {
	table := DefaultColorTable()

	require.Equal(t, LabelBlue, table.Classify(BGR{90, 50, 100}))
	require.Equal(t, LabelOrange, table.Classify(BGR{120, 150, 230}))
	require.Equal(t, LabelWhite, table.Classify(BGR{60, 200, 200}))
	require.Equal(t, LabelUnknown, table.Classify(BGR{10, 10, 10}))
}

func TestColorTable_FirstMatchWins(t *testing.T) {
	// (100,200,220) попадает и в BlueBall, и в WhiteBall
	require.Equal(t, LabelBlue, DefaultColorTable().Classify(BGR{100, 200, 220}))
}

func TestColorTable_YellowUnreachable(t *testing.T) {
	table := DefaultColorTable()
	for _, c := range []BGR{{0, 255, 255}, {0, 0, 255}, {0, 128, 255}} {
		require.NotEqual(t, LabelYellow, table.Classify(c))
	}
}

func TestColorRange_InclusiveBounds(t *testing.T) {
	r := ColorRange{Label: LabelBlue, Lower: BGR{70, 0, 0}, Upper: BGR{110, 255, 255}}
	require.True(t, r.Contains(BGR{70, 0, 0}))
	require.True(t, r.Contains(BGR{110, 255, 255}))
	require.False(t, r.Contains(BGR{69, 0, 0}))
	require.False(t, r.Contains(BGR{111, 0, 0}))
}

func TestBGR_Hex(t *testing.T) {
	require.Equal(t, "#ff0000", BGR{0, 0, 255}.Hex())
	require.Equal(t, "#643290", BGR{144, 50, 100}.Hex())
}

func TestParseColorLabel(t *testing.T) {
	l, err := ParseColorLabel("WhiteBall")
	require.NoError(t, err)
	require.Equal(t, LabelWhite, l)

	_, err = ParseColorLabel("PinkBall")
	require.Error(t, err)
}
