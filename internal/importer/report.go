package importer

import "sort"

// JointStatus is the outcome for one joint in a run.
type JointStatus string

const (
	// StatusImported means the joint's full track became keyframes.
	StatusImported JointStatus = "imported"

	// StatusSkipped means the joint was rejected and received no
	// animated keyframes. Code and Detail say why.
	StatusSkipped JointStatus = "skipped"
)

// JointReport is the per-joint line of a run Report.
type JointReport struct {
	Joint  string      `json:"joint"`
	Status JointStatus `json:"status"`

	// Code and Detail are set for skipped joints.
	Code   ErrorCode `json:"code,omitempty"`
	Detail string    `json:"detail,omitempty"`

	// Keyframes counts animated keyframes inserted (the sentinel
	// zero-pose entry is not included).
	Keyframes int `json:"keyframes,omitempty"`
}

// Report summarizes one import run. Every joint present in the motion
// source appears exactly once - skipped joints are reported, never
// silently dropped.
type Report struct {
	RunToken  string        `json:"run_token,omitempty"`
	Source    string        `json:"source,omitempty"`
	Imported  int           `json:"imported"`
	Skipped   int           `json:"skipped"`
	Keyframes int           `json:"keyframes"`
	Joints    []JointReport `json:"joints"`
}

// add records one joint outcome and updates the tallies.
func (r *Report) add(jr JointReport) {
	switch jr.Status {
	case StatusImported:
		r.Imported++
		r.Keyframes += jr.Keyframes
	case StatusSkipped:
		r.Skipped++
	}
	r.Joints = append(r.Joints, jr)
}

// skip records a collected per-joint failure.
func (r *Report) skip(err *ImportError) {
	r.add(JointReport{
		Joint:  err.Joint,
		Status: StatusSkipped,
		Code:   err.Code,
		Detail: err.Message,
	})
}

// sorted orders joint lines by name so reports are deterministic.
func (r *Report) sorted() {
	sort.Slice(r.Joints, func(i, j int) bool {
		return r.Joints[i].Joint < r.Joints[j].Joint
	})
}

// Failed reports whether any joint was skipped.
func (r *Report) Failed() bool {
	return r.Skipped > 0
}
