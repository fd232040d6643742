package wisp

import "fmt"

// InvalidTargetError is returned when an animation is requested against a nil
// or disposed target node. Nothing is mutated when this error is returned.
type InvalidTargetError struct {
	// Op is the operation that rejected the target, e.g. "Forward".
	Op string
	// Reason is "nil" or "disposed".
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("wisp: %s: invalid target (%s)", e.Op, e.Reason)
}

// ConfigurationError is returned when a definition or controller is configured
// with invalid values (non-positive duration, malformed curve, missing
// required fields). It is surfaced at construction/validation time, never
// during playback.
type ConfigurationError struct {
	// Field names the offending configuration field.
	Field string
	// Detail describes what is wrong with it.
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("wisp: invalid configuration: %s: %s", e.Field, e.Detail)
}

// checkTarget validates an animation target for op, returning an
// InvalidTargetError for nil or disposed nodes.
func checkTarget(op string, n *Node) error {
	if n == nil {
		return &InvalidTargetError{Op: op, Reason: "nil"}
	}
	if n.IsDisposed() {
		return &InvalidTargetError{Op: op, Reason: "disposed"}
	}
	return nil
}
