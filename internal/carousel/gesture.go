package carousel

import "math"

// GestureState is the accumulated state of a drag, relative to where it began.
// Velocities are in offset units per millisecond.
type GestureState struct {
	DX float64
	DY float64
	VX float64
	VY float64
}

// Predicate decides something about an in-flight gesture.
type Predicate func(GestureState) bool

// DefaultCaptureThreshold is the threshold user configuration starts from:
// movement beyond a single cell.
const DefaultCaptureThreshold = 1

// CaptureBeyond captures a gesture once its horizontal travel exceeds threshold.
func CaptureBeyond(threshold float64) Predicate {
	return func(s GestureState) bool {
		return math.Abs(s.DX) > threshold
	}
}

// NeverYield refuses every termination request from an ancestor.
func NeverYield(GestureState) bool {
	return false
}

// GestureSession exists between capture and release. It pins the committed
// offset at capture time so move deltas never accumulate across sessions.
type GestureSession struct {
	CommittedOffset float64
	StartIndex      int
}

// ResolveMove returns the offset the host should show for displacement dx.
func (s GestureSession) ResolveMove(dx float64) float64 {
	return s.CommittedOffset - dx
}
