package importer

import (
	"github.com/roach88/marionette/internal/rig"
	"github.com/roach88/marionette/internal/scene"
)

// ZeroPoseFrame is the reserved sentinel frame holding each bound node's
// rest rotation. It sits outside the animated range; a track carrying a
// sample at or before this frame is rejected as malformed.
const ZeroPoseFrame = -1

// RotationAt computes the keyframe rotation for one sample.
//
// The angle is applied as an offset from the zero pose on the configured
// axis; the two other axis components hold the zero-pose values. Motion
// is strictly single-axis per joint - this is the design constraint of
// the revolute-only scope, not an incidental limitation.
//
// With a zero rest pose the configured component equals the angle
// exactly. A rig profile with a nonzero rest shifts every keyframe on
// that axis by the rest value: angles are offsets from the pose the
// node held when the run started, never absolute rotations.
//
// Pure function: keyframe values are computable (and testable) without
// any host scene.
func RotationAt(zero scene.Euler, axis rig.Axis, angle float64) scene.Euler {
	e := zero
	switch axis {
	case rig.AxisX:
		e.X = zero.X + angle
	case rig.AxisY:
		e.Y = zero.Y + angle
	case rig.AxisZ:
		e.Z = zero.Z + angle
	}
	return e
}
