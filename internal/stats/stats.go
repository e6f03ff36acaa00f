// Package stats computes per-track summaries of motion data.
//
// Used by the inspect command to sanity-check a motion file before an
// import: a track whose angle range spans thousands of radians is a
// degrees-vs-radians mixup, and a flat stddev is a joint that never
// moves.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/roach88/marionette/internal/motion"
)

// TrackStats summarizes one joint's track.
type TrackStats struct {
	Joint      string  `json:"joint"`
	Samples    int     `json:"samples"`
	FirstFrame int     `json:"first_frame"`
	LastFrame  int     `json:"last_frame"`
	MinAngle   float64 `json:"min_angle"`
	MaxAngle   float64 `json:"max_angle"`
	MeanAngle  float64 `json:"mean_angle"`
	StdDev     float64 `json:"std_dev"`
}

// ForTrack computes the summary for one track.
func ForTrack(t *motion.Track) TrackStats {
	angles := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		angles[i] = s.Angle
	}

	ts := TrackStats{
		Joint:      t.Joint,
		Samples:    len(t.Samples),
		FirstFrame: t.Samples[0].Frame,
		LastFrame:  t.Samples[len(t.Samples)-1].Frame,
		MinAngle:   floats.Min(angles),
		MaxAngle:   floats.Max(angles),
		MeanAngle:  stat.Mean(angles, nil),
	}
	if len(angles) > 1 {
		ts.StdDev = stat.StdDev(angles, nil)
	}
	return ts
}

// ForSet computes summaries for every loaded track, sorted by joint name.
func ForSet(set *motion.Set) []TrackStats {
	joints := set.Joints()
	out := make([]TrackStats, 0, len(joints))
	for _, j := range joints {
		out = append(out, ForTrack(set.Tracks[j]))
	}
	return out
}
