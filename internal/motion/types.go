package motion

import "sort"

// Sample is one rotation measurement for a joint at a frame.
type Sample struct {
	// Frame is the timeline frame index the sample lands on.
	Frame int

	// Angle is the revolute angle as given by the source file.
	// The loader performs no unit conversion; interpretation (axis,
	// reference pose) is the importer's job.
	Angle float64
}

// Track is the ordered rotation time series for one joint.
//
// Invariant: Samples is non-empty and strictly increasing by frame.
// The loader enforces this; tracks are immutable once built.
type Track struct {
	// Joint is the column header, verbatim. It must match a scene node
	// name exactly - no sanitization happens here.
	Joint string

	// Samples in file row order, strictly ascending frame index.
	Samples []Sample
}

// Frames returns the frame index of every sample, in order.
func (t *Track) Frames() []int {
	frames := make([]int, len(t.Samples))
	for i, s := range t.Samples {
		frames[i] = s.Frame
	}
	return frames
}

// Set is the result of loading one motion file.
//
// Tracks holds every column that parsed cleanly. Failures holds one
// entry per column that did not - failure isolation is per column, so a
// bad cell in one joint never touches another joint's track.
type Set struct {
	Tracks   map[string]*Track
	Failures []*ColumnError
}

// Joints returns the names of the successfully loaded tracks, sorted.
func (s *Set) Joints() []string {
	joints := make([]string, 0, len(s.Tracks))
	for name := range s.Tracks {
		joints = append(joints, name)
	}
	sort.Strings(joints)
	return joints
}
