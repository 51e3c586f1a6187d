package pod

import (
	"regexp"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// payloadRe matches one merge instruction inside a directive payload. Payload
// lines not shaped like this are unrelated data and are ignored.
var payloadRe = regexp.MustCompile(`(?m)^\s*(input|output)-from\s+(.+?)\s*$`)

// ProcessDirectives walks the document's top-level children once, resolving
// every merge directive addressed to target and excising all directive
// elements afterwards. Directives addressed to other processors are excised
// too - they are instructions, never content.
//
// An unresolved merge source aborts the walk with MergeSourceError: the
// source document asks for parameters from a section that does not exist,
// and silently producing an empty block would hide the mistake.
func (d *Document) ProcessDirectives(target string) error {
	var current string
	for _, el := range d.Root.ChildElements() {
		switch KindOf(el) {
		case KindHead1, KindHead2:
			current = ""
		case KindHead3:
			current = headingText(el)
		case KindFor:
			// flag now, remove after the scan - removing mid-scan would
			// shift the indices under us
			el.CreateAttr(AttrDeleted, "1")
			if el.SelectAttrValue(AttrTarget, "") != target {
				continue
			}
			if err := d.processDirective(el, current); err != nil {
				return err
			}
		}
	}
	d.sweepDeleted()
	return nil
}

func (d *Document) processDirective(el *etree.Element, current string) error {
	payloads := FindAll(el, string(KindData))
	if len(payloads) == 0 {
		// parsers that keep the payload as plain text instead of data nodes
		payloads = append(payloads, el)
	}
	for _, p := range payloads {
		for _, m := range payloadRe.FindAllStringSubmatch(FlattenText(p), -1) {
			kind, _ := ParseSubsectionKind(m[1])
			ref := m[2]

			src, ok := d.lookupSource(ref, kind)
			if !ok {
				return &MergeSourceError{Source: ref, Subsection: kind, InSection: current}
			}
			dst, err := d.EnsureTarget(current, kind)
			if err != nil {
				return err
			}
			Merge(src, dst)
			d.log.Debug("Merged parameter documentation",
				zap.String("from", ref), zap.String("into", current), zap.Stringer("kind", kind))
		}
	}
	return nil
}

// lookupSource resolves the list a directive pulls from. An exact subsection
// match wins; otherwise any list the referenced section owns serves, since
// documents often keep a single parameter list under a section and let the
// pulling side categorize it.
func (d *Document) lookupSource(ref string, kind SubsectionKind) (*etree.Element, bool) {
	if list, ok := d.Section(ref, kind); ok {
		return list, true
	}
	for _, k := range []SubsectionKind{SubsectionNone, SubsectionInput, SubsectionOutput} {
		if k == kind {
			continue
		}
		if list, ok := d.Section(ref, k); ok {
			return list, true
		}
	}
	return nil, false
}

// sweepDeleted removes flagged top-level elements, restarting the scan after
// every removal so index shifts cannot bite. Quadratic in the worst case but
// n is a page's section count.
func (d *Document) sweepDeleted() {
	for {
		removed := false
		for _, el := range d.Root.ChildElements() {
			if el.SelectAttr(AttrDeleted) != nil {
				d.Root.RemoveChild(el)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}
