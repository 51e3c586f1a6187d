package pod

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

func newListElement() *etree.Element {
	list := etree.NewElement(string(KindList))
	list.CreateAttr(AttrIndent, "4")
	return list
}

func newSubsectionHeading(kind SubsectionKind) *etree.Element {
	head := etree.NewElement(string(KindHead4))
	head.CreateText(kind.String())
	return head
}

// EnsureTarget guarantees that a definition list exists for the named section
// and subsection and returns it, creating the missing heading and list
// scaffolding in the conventional position. Repeat calls return the same
// element without duplicating structure.
func (d *Document) EnsureTarget(section string, kind SubsectionKind) (*etree.Element, error) {
	if kind == SubsectionNone {
		return nil, fmt.Errorf("cannot ensure a merge target without a subsection kind")
	}
	if list, ok := d.Section(section, kind); ok {
		return list, nil
	}

	elements := d.Root.ChildElements()

	headIdx := -1
	for i, el := range elements {
		if KindOf(el) == KindHead3 && headingText(el) == section {
			headIdx = i
			break
		}
	}
	if headIdx < 0 {
		// section has no content at all - scaffold at the very end
		d.log.Debug("Section heading not found, appending subsection at document end",
			zap.String("section", section), zap.Stringer("kind", kind))
		d.Root.AddChild(newSubsectionHeading(kind))
		list := newListElement()
		d.Root.AddChild(list)
		d.registerSection(section, kind, list)
		return list, nil
	}

	// Scan forward from the section heading. Hitting the next section (or a
	// higher heading) means the expected substructure is absent here.
	last := elements[headIdx]
	for i := headIdx + 1; i < len(elements); i++ {
		el := elements[i]
		switch KindOf(el) {
		case KindHead1, KindHead2, KindHead3:
			return d.insertSubsectionAfter(last, section, kind), nil
		case KindHead4:
			hk, ok := ParseSubsectionKind(headingText(el))
			if ok && hk == kind {
				if i+1 < len(elements) && KindOf(elements[i+1]) == KindList {
					list := elements[i+1]
					d.registerSection(section, kind, list)
					return list, nil
				}
				// heading exists but its list is missing
				list := newListElement()
				d.Root.InsertChildAt(el.Index()+1, list)
				d.registerSection(section, kind, list)
				return list, nil
			}
			if ok && kind == SubsectionInput && hk == SubsectionOutput {
				// Input is conventionally ordered ahead of Output
				return d.insertSubsectionBefore(el, section, kind), nil
			}
			last = el
		default:
			last = el
		}
	}
	// section runs to the end of the document without the subsection
	return d.insertSubsectionAfter(last, section, kind), nil
}

func (d *Document) insertSubsectionAfter(after *etree.Element, section string, kind SubsectionKind) *etree.Element {
	d.log.Debug("Inserting missing subsection structure",
		zap.String("section", section), zap.Stringer("kind", kind))
	head := newSubsectionHeading(kind)
	d.Root.InsertChildAt(after.Index()+1, head)
	list := newListElement()
	d.Root.InsertChildAt(head.Index()+1, list)
	d.registerSection(section, kind, list)
	return list
}

func (d *Document) insertSubsectionBefore(el *etree.Element, section string, kind SubsectionKind) *etree.Element {
	d.log.Debug("Inserting missing subsection structure",
		zap.String("section", section), zap.Stringer("kind", kind))
	head := newSubsectionHeading(kind)
	d.Root.InsertChildAt(el.Index(), head)
	list := newListElement()
	d.Root.InsertChildAt(head.Index()+1, list)
	d.registerSection(section, kind, list)
	return list
}
