// Package harness runs end-to-end import scenarios defined in YAML.
//
// A scenario carries everything one import run needs inline: a rig
// profile in CUE, a motion file in CSV, and the expected per-joint
// outcomes. The harness compiles the rig, loads the motion data,
// executes a real import against an in-memory timeline, and checks the
// run report against the scenario's expectations. Reports can also be
// compared byte-for-byte against golden files.
//
// # Scenario Format
//
//	name: basic_import
//	description: "Two-joint arm animates from a clean file"
//	fps: 1
//	run_token: golden-basic-import
//	rig: |
//	  rig: {
//	      joints: {
//	          shoulder: { axis: "Z" }
//	          elbow: { axis: "X" }
//	      }
//	  }
//	motion: |
//	  time,shoulder,elbow
//	  0,0,0
//	  1,0.5,-0.3
//	expect:
//	  imported: [elbow, shoulder]
//	  skipped:
//	    - joint: wrist
//	      code: UNRESOLVED_BINDING
//
// Each scenario runs against a fresh scene and a fresh timeline, so
// scenarios are independent and order does not matter. run_token pins
// the run token; it defaults to "test-run-default" so golden files stay
// deterministic.
package harness
