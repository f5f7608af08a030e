package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func runTracker(fps float64, seq []bool) *PresenceTracker {
	tr := NewPresenceTracker(fps)
	for i, detected := range seq {
		tr.Observe(i+1, detected)
	}
	tr.Flush()
	return tr
}

func bools(s string) []bool {
	out := make([]bool, 0, len(s))
	for _, c := range s {
		out = append(out, c == 'T')
	}
	return out
}

func TestPresenceTracker_InitialState(t *testing.T) {
	tr := NewPresenceTracker(25)
	require.Equal(t, StateAbsent, tr.State())
	require.Empty(t, tr.Intervals())
}

func TestPresenceTracker_SingleRunExits(t *testing.T) {
	tr := NewPresenceTracker(2)
	seq := bools("FFTTTTTTF")

	var closed []PresenceInterval
	for i, d := range seq {
		if in, ok := tr.Observe(i+1, d); ok {
			closed = append(closed, in)
		}
	}

	want := []PresenceInterval{{Entry: 1, Exit: 4}}
	if diff := cmp.Diff(want, closed); diff != "" {
		t.Fatalf("intervals mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, StateAbsent, tr.State())

	_, ok := tr.Flush()
	require.False(t, ok)
	require.Empty(t, FilterIntervals(QuadrantBottomRight, tr.Intervals(), DefaultMinDuration))
}

func TestPresenceTracker_FlushAtEndOfStream(t *testing.T) {
	tr := NewPresenceTracker(2)
	for i := 1; i <= 11; i++ {
		_, ok := tr.Observe(i, true)
		require.False(t, ok)
	}
	require.Equal(t, StatePresent, tr.State())

	in, ok := tr.Flush()
	require.True(t, ok)
	require.Equal(t, PresenceInterval{Entry: 0, Exit: 5}, in)
	require.Equal(t, []PresenceInterval{{Entry: 0, Exit: 5}}, tr.Intervals())
	require.Equal(t, StateAbsent, tr.State())
}

func TestPresenceTracker_EntriesMatchRuns(t *testing.T) {
	cases := map[string]int{
		"":                 0,
		"FFFF":             0,
		"T":                1,
		"TFT":              2,
		"TTFFTTFFTT":       3,
		"FTFTFTFTF":        4,
		"TTTTTTTTTTTTTTTT": 1,
	}
	for seq, runs := range cases {
		tr := runTracker(3, bools(seq))
		require.Equal(t, runs, tr.Entries(), seq)
		require.Len(t, tr.Intervals(), runs, seq)
	}
}

func TestPresenceTracker_NeverExitsBeforeEntry(t *testing.T) {
	seqs := []string{"TFTFTFTF", "FFTTTFFFTTTT", "TTTTTTTTTF", "T"}
	for _, fps := range []float64{1, 2, 7.5, 30} {
		for _, s := range seqs {
			for _, in := range runTracker(fps, bools(s)).Intervals() {
				require.LessOrEqual(t, in.Entry, in.Exit)
			}
		}
	}
}

func TestPresenceTracker_Idempotent(t *testing.T) {
	seq := bools("FTTTFFTTTTTTTTTTTTTFTT")
	first := runTracker(2, seq).Intervals()
	second := runTracker(2, seq).Intervals()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated runs differ:\n%s", diff)
	}
}

func TestPresenceTracker_IntervalsIsCopy(t *testing.T) {
	tr := runTracker(1, bools("TF"))
	got := tr.Intervals()
	got[0].Exit = 100
	require.Equal(t, 2, tr.Intervals()[0].Exit)
}
