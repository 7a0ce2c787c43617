package iface

import (
	"strconv"
	"strings"
)

// Semantic is a parsed HLSL semantic: "TEXCOORD3" is {TEXCOORD, 3}.
type Semantic struct {
	Name  string
	Index int
}

// ParseSemantic splits trailing decimal digits off a semantic string.
// A semantic without digits has index 0.
func ParseSemantic(s string) Semantic {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) || i == 0 {
		return Semantic{Name: s}
	}
	index, err := strconv.Atoi(s[i:])
	if err != nil {
		return Semantic{Name: s}
	}
	return Semantic{Name: s[:i], Index: index}
}

func semanticKey(s string) string {
	return strings.ToUpper(s)
}

func isSystemValue(s string) bool {
	return strings.HasPrefix(semanticKey(s), "SV_")
}

func isPosition(s string) bool {
	return strings.HasPrefix(semanticKey(s), "SV_POSITION")
}

func isTarget(s string) bool {
	return strings.HasPrefix(semanticKey(s), "SV_TARGET")
}

func isDepth(s string) bool {
	return semanticKey(s) == "SV_DEPTH"
}

func isTessFactor(s string) bool {
	k := semanticKey(s)
	return strings.HasPrefix(k, "SV_TESSFACTOR") || strings.HasPrefix(k, "SV_INSIDETESSFACTOR")
}

// isPixelImplicit matches semantics the pixel stage receives from
// fixed-function hardware rather than from the previous stage.
func isPixelImplicit(s string) bool {
	switch semanticKey(s) {
	case "SV_COVERAGE", "SV_ISFRONTFACE", "VFACE":
		return true
	}
	return false
}
