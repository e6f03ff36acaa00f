package rig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/marionette/internal/scene"
)

const armProfile = `
rig: {
	name: "arm7"
	joints: {
		shoulder: { axis: "Z", rest: { x: 0.1, y: 0.0, z: 0.2 } }
		elbow: { axis: "X" }
	}
}
`

func TestCompile_FullProfile(t *testing.T) {
	p, err := Compile([]byte(armProfile), "arm7.cue")
	require.NoError(t, err)

	assert.Equal(t, "arm7", p.Name)
	assert.Equal(t, []string{"elbow", "shoulder"}, p.JointNames())

	shoulder := p.Joints["shoulder"]
	assert.Equal(t, AxisZ, shoulder.Axis)
	assert.Equal(t, scene.Euler{X: 0.1, Z: 0.2}, shoulder.Rest)

	// rest defaults to zero.
	assert.Equal(t, scene.Euler{}, p.Joints["elbow"].Rest)
}

func TestCompile_AxisTable(t *testing.T) {
	p, err := Compile([]byte(armProfile), "arm7.cue")
	require.NoError(t, err)

	table := p.AxisTable()
	assert.Equal(t, AxisZ, table["shoulder"])
	assert.Equal(t, AxisX, table["elbow"])
}

func TestCompile_SceneSeededWithRestPose(t *testing.T) {
	p, err := Compile([]byte(armProfile), "arm7.cue")
	require.NoError(t, err)

	g := p.Scene()
	require.Equal(t, 2, g.Len())

	n, ok := g.Lookup("shoulder")
	require.True(t, ok)
	assert.Equal(t, scene.Euler{X: 0.1, Z: 0.2}, n.Rotation)
}

func TestCompile_MissingRigStruct(t *testing.T) {
	_, err := Compile([]byte(`something: {}`), "bad.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "rig", pe.Field)
}

func TestCompile_MissingJoints(t *testing.T) {
	_, err := Compile([]byte(`rig: { name: "empty" }`), "bad.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "joints", pe.Field)
}

func TestCompile_EmptyJoints(t *testing.T) {
	_, err := Compile([]byte(`rig: { joints: {} }`), "bad.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "at least one joint")
}

func TestCompile_AxisIsOptional(t *testing.T) {
	p, err := Compile([]byte(`rig: { joints: { j0: {}, j1: { axis: "Y" } } }`), "ok.cue")
	require.NoError(t, err)

	// j0 exists as a node but has no axis convention.
	assert.Equal(t, Axis(""), p.Joints["j0"].Axis)
	table := p.AxisTable()
	assert.NotContains(t, table, "j0")
	assert.Equal(t, AxisY, table["j1"])
	assert.Equal(t, 2, p.Scene().Len())
}

func TestCompile_InvalidAxis(t *testing.T) {
	_, err := Compile([]byte(`rig: { joints: { j0: { axis: "W" } } }`), "bad.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "joints.j0.axis", pe.Field)
	assert.Contains(t, pe.Message, `invalid axis "W"`)
}

func TestCompile_SyntaxError(t *testing.T) {
	_, err := Compile([]byte(`rig: {`), "bad.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arm7.cue")
	require.NoError(t, os.WriteFile(path, []byte(armProfile), 0644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "arm7", p.Name)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does/not/exist.cue")
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "cannot read")
}
