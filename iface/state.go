package iface

// StreamState is the role of a stream field within one stage.
//
// A stage is resolved from two inputs: whether the following stage (or a
// fixed-function consumer) requires the field, and how the stage's own code
// uses it. Resolution is a pure function so every stage transition can be
// reasoned about in isolation.
type StreamState uint8

const (
	// StateUnused fields are neither touched nor required.
	StateUnused StreamState = iota
	// StateInternal fields are written but only consumed inside the stage.
	StateInternal
	// StateInput fields are read from the previous stage.
	StateInput
	// StateOutput fields are written and required downstream.
	StateOutput
	// StateForwarded fields are required downstream but not written here,
	// so they are passed through from the previous stage.
	StateForwarded
	// StateInputOutput fields are read, then written and required
	// downstream.
	StateInputOutput
)

// Usage records how code reachable from an entry point touches a field.
// Read is only set when the field was not written earlier in program order.
type Usage struct {
	Read  bool
	Write bool
}

// ResolveState computes a field's role for a stage.
func ResolveState(required bool, u Usage) StreamState {
	switch {
	case required && u.Read && u.Write:
		return StateInputOutput
	case required && u.Write:
		return StateOutput
	case required:
		return StateForwarded
	case u.Read:
		return StateInput
	case u.Write:
		return StateInternal
	default:
		return StateUnused
	}
}

// IsInput reports whether the stage receives the field from its
// predecessor.
func (s StreamState) IsInput() bool {
	return s == StateInput || s == StateForwarded || s == StateInputOutput
}

// IsOutput reports whether the stage hands the field to its successor.
func (s StreamState) IsOutput() bool {
	return s == StateOutput || s == StateForwarded || s == StateInputOutput
}

// Used reports whether the field needs a slot in the stage's working state.
func (s StreamState) Used() bool {
	return s != StateUnused
}

func (s StreamState) String() string {
	switch s {
	case StateUnused:
		return "Unused"
	case StateInternal:
		return "Internal"
	case StateInput:
		return "Input"
	case StateOutput:
		return "Output"
	case StateForwarded:
		return "Forwarded"
	case StateInputOutput:
		return "InputOutput"
	default:
		return "Unknown"
	}
}

// Propagate returns whether the previous stage must produce a field, given
// the field's state in the current stage.
func Propagate(s StreamState) bool {
	return s.IsInput()
}
