// Package rig loads rig profiles: the static configuration binding joint
// names to a local rotation axis and an optional rest pose.
//
// Profiles are CUE files. CUE gives us schema checking with positions in
// error messages, so a misconfigured rig fails at load time instead of
// producing a silently wrong animation.
package rig

import (
	"sort"

	"github.com/roach88/marionette/internal/scene"
)

// Axis identifies the single local axis a revolute joint rotates about.
type Axis string

// The three local axes. Every animated joint is revolute about exactly
// one of these; multi-axis and prismatic joints are out of scope.
const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
	AxisZ Axis = "Z"
)

// Valid reports whether a is one of the three local axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Joint is the per-joint configuration from a rig profile.
type Joint struct {
	// Axis is the local rotation axis angle samples apply about.
	// Empty means the joint has no axis convention: its node exists but
	// motion data referencing it cannot be applied.
	Axis Axis

	// Rest is the joint's rest rotation in radians. Defaults to zero.
	// Used to seed the in-memory scene for standalone runs.
	Rest scene.Euler
}

// Profile is a loaded rig: a node inventory plus the axis-convention
// table. Immutable after load.
type Profile struct {
	// Name labels the rig, for logs and reports.
	Name string

	// Joints maps joint name to its configuration. Keys are verbatim
	// node names - the same exact-match namespace the motion file
	// headers address.
	Joints map[string]Joint
}

// JointNames returns the configured joint names, sorted.
func (p *Profile) JointNames() []string {
	names := make([]string, 0, len(p.Joints))
	for name := range p.Joints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AxisTable returns the joint-name to axis mapping the importer
// consumes. Joints declared without an axis are absent from the table.
func (p *Profile) AxisTable() map[string]Axis {
	table := make(map[string]Axis, len(p.Joints))
	for name, j := range p.Joints {
		if j.Axis != "" {
			table[name] = j.Axis
		}
	}
	return table
}

// Scene builds an in-memory scene graph with one node per joint, posed
// at its rest rotation.
func (p *Profile) Scene() *scene.Graph {
	g := scene.NewGraph()
	for name, j := range p.Joints {
		g.Add(name, j.Rest)
	}
	return g
}
