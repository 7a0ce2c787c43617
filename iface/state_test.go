package iface

import "testing"

func TestResolveState(t *testing.T) {
	tests := []struct {
		required bool
		usage    Usage
		want     StreamState
	}{
		{false, Usage{}, StateUnused},
		{false, Usage{Write: true}, StateInternal},
		{false, Usage{Read: true}, StateInput},
		{false, Usage{Read: true, Write: true}, StateInput},
		{true, Usage{}, StateForwarded},
		{true, Usage{Read: true}, StateForwarded},
		{true, Usage{Write: true}, StateOutput},
		{true, Usage{Read: true, Write: true}, StateInputOutput},
	}
	for _, tt := range tests {
		if got := ResolveState(tt.required, tt.usage); got != tt.want {
			t.Errorf("ResolveState(%v, %+v) = %s, want %s", tt.required, tt.usage, got, tt.want)
		}
	}
}

func TestStreamState_Roles(t *testing.T) {
	tests := []struct {
		state         StreamState
		input, output bool
	}{
		{StateUnused, false, false},
		{StateInternal, false, false},
		{StateInput, true, false},
		{StateOutput, false, true},
		{StateForwarded, true, true},
		{StateInputOutput, true, true},
	}
	for _, tt := range tests {
		if tt.state.IsInput() != tt.input || tt.state.IsOutput() != tt.output {
			t.Errorf("%s: input %v output %v", tt.state, tt.state.IsInput(), tt.state.IsOutput())
		}
		if Propagate(tt.state) != tt.input {
			t.Errorf("%s: Propagate = %v", tt.state, Propagate(tt.state))
		}
		if tt.state.Used() == (tt.state == StateUnused) {
			t.Errorf("%s: Used = %v", tt.state, tt.state.Used())
		}
	}
}

func TestPropagateStreamsFromPreviousStage(t *testing.T) {
	r := newAnalysisResult()
	uv := newStreamVariableInfo(1, "UV", float2)
	uv.State, uv.InputLocation = StateInput, 3
	face := newStreamVariableInfo(2, "Face", float1)
	face.State, face.InputLocation = StateInput, 4
	color := newStreamVariableInfo(3, "Color", float4)
	color.State, color.OutputLocation = StateOutput, 0
	for _, s := range []*StreamVariableInfo{uv, face, color} {
		r.addStream(s)
	}

	r.PropagateStreamsFromPreviousStage(func(s *StreamVariableInfo) bool { return s == face })

	if !uv.Required || uv.OutputLocation != 3 {
		t.Errorf("UV required %v at %d", uv.Required, uv.OutputLocation)
	}
	if face.Required {
		t.Error("excluded fields must not be required")
	}
	if color.Required || color.OutputLocation != -1 {
		t.Errorf("Color required %v at %d", color.Required, color.OutputLocation)
	}
	for _, s := range r.Streams {
		if s.State != StateUnused || s.InputLocation != -1 {
			t.Errorf("%s not reset: %s at %d", s.Name, s.State, s.InputLocation)
		}
	}
}
