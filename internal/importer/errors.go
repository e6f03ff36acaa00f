package importer

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes import failures.
type ErrorCode string

const (
	// ErrCodeMalformedData indicates a joint's track was rejected: a bad
	// cell, a non-increasing frame, or a sample on the reserved sentinel
	// frame.
	ErrCodeMalformedData ErrorCode = "MALFORMED_DATA"

	// ErrCodeUnresolvedBinding indicates no scene node matches the joint
	// name exactly.
	ErrCodeUnresolvedBinding ErrorCode = "UNRESOLVED_BINDING"

	// ErrCodeMissingAxis indicates a bound joint has no entry in the
	// axis-convention table.
	ErrCodeMissingAxis ErrorCode = "MISSING_AXIS"

	// ErrCodeSourceUnreadable indicates the motion source failed as a
	// whole. Fatal; surfaced before any scene mutation.
	ErrCodeSourceUnreadable ErrorCode = "SOURCE_UNREADABLE"
)

// ImportError is a per-joint import failure. These are collected into
// the run Report rather than propagated - one joint's failure must not
// take down the others.
type ImportError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Joint is the affected joint name.
	Joint string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Joint != "" {
		return fmt.Sprintf("%s: %s (joint=%s)", e.Code, e.Message, e.Joint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsBindingError reports whether err is an unresolved-binding failure.
// Uses errors.As to handle wrapped errors.
func IsBindingError(err error) bool {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeUnresolvedBinding
	}
	return false
}

// IsMissingAxisError reports whether err is a missing-axis-configuration
// failure.
func IsMissingAxisError(err error) bool {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeMissingAxis
	}
	return false
}

// NewBindingError creates an ImportError for an unresolvable joint.
func NewBindingError(joint, detail string) *ImportError {
	msg := "no scene node with this exact name"
	if detail != "" {
		msg = msg + "; " + detail
	}
	return &ImportError{Code: ErrCodeUnresolvedBinding, Joint: joint, Message: msg}
}

// NewMissingAxisError creates an ImportError for a joint absent from the
// axis-convention table.
func NewMissingAxisError(joint string) *ImportError {
	return &ImportError{Code: ErrCodeMissingAxis, Joint: joint, Message: "no axis convention configured"}
}
