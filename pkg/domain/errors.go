package domain

import (
	"errors"
	"fmt"
)

// ErrNoSuccessors is returned when a random successor is requested for a
// vertex with no outgoing edges.
var ErrNoSuccessors = errors.New("vertex has no successors")

// ConfigurationError reports an invalid engine configuration. It is always
// surfaced before any randomness is consumed and before any partial
// progression is produced.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// DependencyError wraps a failure from an external collaborator
// (ScaleProvider or ChordSpeller).
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
