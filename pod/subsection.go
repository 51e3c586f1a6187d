package pod

import (
	"strings"
)

// SubsectionKind names the two parameter-documentation categories recognized
// by merge directives, plus the "no subsection" state for plain lists.
type SubsectionKind int

const (
	SubsectionNone SubsectionKind = iota
	SubsectionInput
	SubsectionOutput
)

func (k SubsectionKind) String() string {
	switch k {
	case SubsectionInput:
		return "Input"
	case SubsectionOutput:
		return "Output"
	default:
		return ""
	}
}

// ParseSubsectionKind maps directive payload kinds ("input", "output") and
// sub-heading labels ("Input", "Output") to SubsectionKind.
func ParseSubsectionKind(s string) (SubsectionKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return SubsectionInput, true
	case "output":
		return SubsectionOutput, true
	}
	return SubsectionNone, false
}
