package iface

import (
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("link: %w", errorf(ErrMissingSemantic, "field %q", "Tint"))
	kind, ok := KindOf(err)
	if !ok || kind != ErrMissingSemantic {
		t.Errorf("KindOf = %s, %v", kind, ok)
	}
	if _, ok := KindOf(fmt.Errorf("plain")); ok {
		t.Error("KindOf should not match foreign errors")
	}
	if want := `iface MissingSemantic: field "Tint"`; errorf(ErrMissingSemantic, "field %q", "Tint").Error() != want {
		t.Errorf("message = %q", errorf(ErrMissingSemantic, "field %q", "Tint").Error())
	}
}

func TestError_Classification(t *testing.T) {
	if NewError(ErrInternal, "x").IsConfiguration() || !NewError(ErrInternal, "x").IsInternal() {
		t.Error("ErrInternal is internal")
	}
	if !NewError(ErrRecursiveCall, "x").IsConfiguration() {
		t.Error("ErrRecursiveCall is a configuration error")
	}
	if ErrorKind(200).String() != "Unknown" {
		t.Error("unknown kinds should print as Unknown")
	}
}
