package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/marionette/internal/rig"
	"github.com/roach88/marionette/internal/scene"
)

func TestRotationAt_EachAxis(t *testing.T) {
	zero := scene.Euler{}

	assert.Equal(t, scene.Euler{X: 0.5}, RotationAt(zero, rig.AxisX, 0.5))
	assert.Equal(t, scene.Euler{Y: -0.3}, RotationAt(zero, rig.AxisY, -0.3))
	assert.Equal(t, scene.Euler{Z: 1.0}, RotationAt(zero, rig.AxisZ, 1.0))
}

func TestRotationAt_HoldsZeroPoseOnOtherAxes(t *testing.T) {
	zero := scene.Euler{X: 0.1, Y: 0.2, Z: 0.3}

	got := RotationAt(zero, rig.AxisZ, 0.5)
	assert.Equal(t, 0.1, got.X)
	assert.Equal(t, 0.2, got.Y)
	assert.InDelta(t, 0.8, got.Z, 1e-12)
}

func TestRotationAt_ZeroAngleIsZeroPose(t *testing.T) {
	zero := scene.Euler{X: 0.1, Y: 0.2, Z: 0.3}
	assert.Equal(t, zero, RotationAt(zero, rig.AxisY, 0))
}
