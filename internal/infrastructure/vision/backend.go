package vision

import "errors"

// ErrBackendUnavailable сборка без тега gocv.
var ErrBackendUnavailable = errors.New("gocv build tag is not enabled")

// Backend реализация распознавания
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendGoCV   Backend = "gocv"
	BackendNative Backend = "native"
)

// Resolve выбирает gocv, если он собран, иначе native.
func (b Backend) Resolve() Backend {
	if b == BackendAuto || b == "" {
		if Available() {
			return BackendGoCV
		}
		return BackendNative
	}
	return b
}
