// Package timeline stores rotation keyframes per scene node.
//
// The importer writes through the Timeline interface; the host's real
// animation system, the in-memory implementation and the SQLite store
// are interchangeable behind it. Insertion is last-write-wins per
// (node, frame), which is what makes re-running an import idempotent.
package timeline

import (
	"context"
	"sort"

	"github.com/roach88/marionette/internal/scene"
)

// Keyframe is one stored (frame, rotation) pair for a node.
type Keyframe struct {
	Frame    int         `json:"frame"`
	Rotation scene.Euler `json:"rotation"`
}

// Timeline is the animation-timeline collaborator.
//
// Insert overwrites any prior value at the same (node, frame) - duplicate
// insertion must not accumulate. Keyframes returns a node's channel in
// ascending frame order.
type Timeline interface {
	Insert(ctx context.Context, node string, frame int, rot scene.Euler) error
	Keyframes(ctx context.Context, node string) ([]Keyframe, error)
}

// RunRecorder is implemented by timelines that keep an import run log.
// The importer records its run when the sink supports it; the in-memory
// timeline does not.
type RunRecorder interface {
	BeginRun(ctx context.Context, token, source string) error
	FinishRun(ctx context.Context, token string, imported, skipped, keyframes int) error
}

// Memory is an in-memory Timeline for tests and dry runs.
type Memory struct {
	channels map[string]map[int]scene.Euler
}

// NewMemory creates an empty in-memory timeline.
func NewMemory() *Memory {
	return &Memory{channels: make(map[string]map[int]scene.Euler)}
}

// Insert implements Timeline. Last write wins per (node, frame).
func (m *Memory) Insert(_ context.Context, node string, frame int, rot scene.Euler) error {
	ch, ok := m.channels[node]
	if !ok {
		ch = make(map[int]scene.Euler)
		m.channels[node] = ch
	}
	ch[frame] = rot
	return nil
}

// Keyframes implements Timeline.
func (m *Memory) Keyframes(_ context.Context, node string) ([]Keyframe, error) {
	ch := m.channels[node]
	frames := make([]int, 0, len(ch))
	for f := range ch {
		frames = append(frames, f)
	}
	sort.Ints(frames)

	kfs := make([]Keyframe, 0, len(frames))
	for _, f := range frames {
		kfs = append(kfs, Keyframe{Frame: f, Rotation: ch[f]})
	}
	return kfs, nil
}

// Nodes returns the names of all nodes with at least one keyframe, sorted.
func (m *Memory) Nodes() []string {
	nodes := make([]string, 0, len(m.channels))
	for n := range m.channels {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}
