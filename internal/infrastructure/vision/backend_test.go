package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackend_Resolve(t *testing.T) {
	require.Equal(t, BackendNative, BackendNative.Resolve())
	require.Equal(t, BackendGoCV, BackendGoCV.Resolve())

	auto := BackendAuto.Resolve()
	if Available() {
		require.Equal(t, BackendGoCV, auto)
	} else {
		require.Equal(t, BackendNative, auto)
	}
	require.Equal(t, auto, Backend("").Resolve())
}
