// Package importer binds motion tracks to scene nodes and inserts
// rotation keyframes on the animation timeline.
//
// A run proceeds in four phases, in order:
//
//  1. Resolution: each joint name in the motion set is looked up against
//     the scene registry by exact name. Unresolvable joints are skipped
//     and reported; the run continues.
//  2. Zero-pose capture: every bound node's current local rotation is
//     written to the reserved sentinel frame, before any animated sample
//     touches the node. Scrubbing to the sentinel always recovers the
//     rest pose.
//  3. Axis resolution: each bound joint must have an entry in the
//     axis-convention table. Joints without one are skipped and
//     reported.
//  4. Sample application: each (frame, angle) sample becomes a keyframe
//     holding the zero pose on the two unconfigured axes and the angle
//     offset on the configured one, applied in ascending frame order.
//
// Per-joint failures never abort a run; they accumulate into the Report
// so no joint is dropped silently. Only file-level failures upstream of
// the importer (an unreadable source, a broken rig profile) abort before
// any mutation.
package importer
