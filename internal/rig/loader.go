package rig

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/marionette/internal/scene"
)

// ProfileError is a rig profile load or schema failure. Rig errors are
// always fatal: a half-loaded axis table would let joints animate about
// the wrong axis.
type ProfileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: rig: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("rig: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("rig: %s", e.Message)
}

// LoadFile reads and compiles a rig profile from disk.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileError{Message: fmt.Sprintf("cannot read %s: %v", path, err)}
	}
	return Compile(data, path)
}

// Compile parses CUE source into a Profile.
//
// Expected shape:
//
//	rig: {
//	    name: "arm7"
//	    joints: {
//	        j0: { axis: "Z", rest: { x: 0.0, y: 0.0, z: 0.0 } }
//	        j1: { axis: "Y" }
//	    }
//	}
//
// axis, when present, must be "X", "Y" or "Z". Omitting it declares a
// node that exists in the scene but cannot animate - referencing it from
// a motion file is the missing-axis-configuration error at import time.
// rest is optional euler radians, defaulting to zero.
func Compile(src []byte, filename string) (*Profile, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueError("", err)
	}

	root := v.LookupPath(cue.ParsePath("rig"))
	if !root.Exists() {
		return nil, &ProfileError{Field: "rig", Message: "top-level rig struct is required", Pos: v.Pos()}
	}

	profile := &Profile{Joints: make(map[string]Joint)}

	if nameVal := root.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, cueError("name", err)
		}
		profile.Name = name
	}

	jointsVal := root.LookupPath(cue.ParsePath("joints"))
	if !jointsVal.Exists() {
		return nil, &ProfileError{Field: "joints", Message: "joints struct is required", Pos: root.Pos()}
	}

	iter, err := jointsVal.Fields()
	if err != nil {
		return nil, cueError("joints", err)
	}
	for iter.Next() {
		name := iter.Label()
		joint, err := compileJoint(name, iter.Value())
		if err != nil {
			return nil, err
		}
		profile.Joints[name] = joint
	}

	if len(profile.Joints) == 0 {
		return nil, &ProfileError{Field: "joints", Message: "at least one joint is required", Pos: jointsVal.Pos()}
	}

	return profile, nil
}

// compileJoint parses one joint entry.
func compileJoint(name string, v cue.Value) (Joint, error) {
	field := "joints." + name

	var joint Joint
	if axisVal := v.LookupPath(cue.ParsePath("axis")); axisVal.Exists() {
		axisStr, err := axisVal.String()
		if err != nil {
			return Joint{}, cueError(field+".axis", err)
		}
		axis := Axis(axisStr)
		if !axis.Valid() {
			return Joint{}, &ProfileError{
				Field:   field + ".axis",
				Message: fmt.Sprintf("invalid axis %q: must be one of X, Y, Z", axisStr),
				Pos:     axisVal.Pos(),
			}
		}
		joint.Axis = axis
	}

	if restVal := v.LookupPath(cue.ParsePath("rest")); restVal.Exists() {
		rest, err := compileEuler(field+".rest", restVal)
		if err != nil {
			return Joint{}, err
		}
		joint.Rest = rest
	}

	return joint, nil
}

// compileEuler parses an optional {x, y, z} struct of radians.
func compileEuler(field string, v cue.Value) (scene.Euler, error) {
	var e scene.Euler
	for _, c := range []struct {
		key string
		dst *float64
	}{
		{"x", &e.X},
		{"y", &e.Y},
		{"z", &e.Z},
	} {
		cv := v.LookupPath(cue.ParsePath(c.key))
		if !cv.Exists() {
			continue
		}
		f, err := cv.Float64()
		if err != nil {
			return scene.Euler{}, cueError(field+"."+c.key, err)
		}
		*c.dst = f
	}
	return e, nil
}

// cueError converts a CUE SDK error into a ProfileError with position.
func cueError(field string, err error) *ProfileError {
	pe := &ProfileError{Field: field, Message: err.Error()}
	if ce, ok := err.(cueerrors.Error); ok {
		pe.Message = cueerrors.Details(ce, nil)
		pe.Pos = ce.Position()
	}
	return pe
}
