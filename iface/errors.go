package iface

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes interface processing errors.
type ErrorKind uint8

const (
	// ErrNoTerminalStage indicates that neither a pixel nor a compute entry
	// point was found.
	ErrNoTerminalStage ErrorKind = iota

	// ErrConflictingStages indicates an impossible stage combination, such as
	// pixel and compute entry points in one module.
	ErrConflictingStages

	// ErrMissingVertexStage indicates a hull, domain or geometry stage
	// without a vertex stage.
	ErrMissingVertexStage

	// ErrMissingSemantic indicates a vertex input without a semantic.
	ErrMissingSemantic

	// ErrSemanticTypeMismatch indicates two stream fields sharing a semantic
	// with different types.
	ErrSemanticTypeMismatch

	// ErrRecursiveCall indicates recursion reachable from an entry point.
	ErrRecursiveCall

	// ErrInvalidEntrySignature indicates an entry point whose parameters do
	// not follow the stage calling convention.
	ErrInvalidEntrySignature

	// ErrMissingExecutionMode indicates a required execution mode is absent,
	// such as OutputVertices on a hull entry point.
	ErrMissingExecutionMode

	// ErrInternal indicates a broken invariant inside the stitcher.
	ErrInternal
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrNoTerminalStage:
		return "NoTerminalStage"
	case ErrConflictingStages:
		return "ConflictingStages"
	case ErrMissingVertexStage:
		return "MissingVertexStage"
	case ErrMissingSemantic:
		return "MissingSemantic"
	case ErrSemanticTypeMismatch:
		return "SemanticTypeMismatch"
	case ErrRecursiveCall:
		return "RecursiveCall"
	case ErrInvalidEntrySignature:
		return "InvalidEntrySignature"
	case ErrMissingExecutionMode:
		return "MissingExecutionMode"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error represents an interface processing error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("iface %s: %s", e.Kind, e.Message)
}

// NewError creates a new error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsConfiguration returns true for errors caused by the input shader.
func (e *Error) IsConfiguration() bool {
	return e.Kind != ErrInternal
}

// IsInternal returns true if the error is ErrInternal.
func (e *Error) IsInternal() bool {
	return e.Kind == ErrInternal
}

// KindOf returns the kind of an *Error found in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
