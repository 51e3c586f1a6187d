package pod

import (
	"fmt"
)

// StructureError indicates the tree violates the parser input contract: an
// element the engine cannot interpret and cannot recover from. It aborts
// processing of the whole document - partial output is never safe to emit.
type StructureError struct {
	Tag     string // offending element tag
	Section string // nearest enclosing section name, empty when outside any section
}

func (e *StructureError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("unrecognized element <%s> outside any section", e.Tag)
	}
	return fmt.Sprintf("unrecognized element <%s> in section %q", e.Tag, e.Section)
}

// MergeSourceError reports a merge directive referencing a section that was
// never defined. This is a configuration error in the source document.
type MergeSourceError struct {
	Source     string         // section the directive references
	Subsection SubsectionKind // requested parameter block
	InSection  string         // section that carries the directive
}

func (e *MergeSourceError) Error() string {
	return fmt.Sprintf("section %q requests %s parameters from undefined section %q",
		e.InSection, e.Subsection, e.Source)
}
