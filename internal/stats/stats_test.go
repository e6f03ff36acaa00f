package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/marionette/internal/motion"
)

func TestForTrack(t *testing.T) {
	track := &motion.Track{Joint: "shoulder", Samples: []motion.Sample{
		{Frame: 0, Angle: 0.0},
		{Frame: 12, Angle: 0.5},
		{Frame: 24, Angle: 1.0},
	}}

	ts := ForTrack(track)
	assert.Equal(t, "shoulder", ts.Joint)
	assert.Equal(t, 3, ts.Samples)
	assert.Equal(t, 0, ts.FirstFrame)
	assert.Equal(t, 24, ts.LastFrame)
	assert.Equal(t, 0.0, ts.MinAngle)
	assert.Equal(t, 1.0, ts.MaxAngle)
	assert.InDelta(t, 0.5, ts.MeanAngle, 1e-12)
	assert.InDelta(t, 0.5, ts.StdDev, 1e-12)
}

func TestForTrack_SingleSample(t *testing.T) {
	ts := ForTrack(&motion.Track{Joint: "j0", Samples: []motion.Sample{{Frame: 3, Angle: -0.2}}})

	assert.Equal(t, 1, ts.Samples)
	assert.Equal(t, -0.2, ts.MinAngle)
	assert.Equal(t, -0.2, ts.MaxAngle)
	assert.Equal(t, 0.0, ts.StdDev)
	assert.False(t, math.IsNaN(ts.MeanAngle))
}

func TestForSet_SortedByJoint(t *testing.T) {
	set := &motion.Set{Tracks: map[string]*motion.Track{
		"wrist":    {Joint: "wrist", Samples: []motion.Sample{{Frame: 0, Angle: 0.1}}},
		"elbow":    {Joint: "elbow", Samples: []motion.Sample{{Frame: 0, Angle: 0.2}}},
		"shoulder": {Joint: "shoulder", Samples: []motion.Sample{{Frame: 0, Angle: 0.3}}},
	}}

	all := ForSet(set)
	require.Len(t, all, 3)
	assert.Equal(t, "elbow", all[0].Joint)
	assert.Equal(t, "shoulder", all[1].Joint)
	assert.Equal(t, "wrist", all[2].Joint)
}
