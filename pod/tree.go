package pod

import (
	"strings"

	"github.com/beevik/etree"
)

// Kind distinguishes the element kinds the engine understands. The value is
// the element tag as produced by the markup parser.
type Kind string

const (
	KindRoot     Kind = "pod"
	KindHead1    Kind = "head1"
	KindHead2    Kind = "head2"
	KindHead3    Kind = "head3"
	KindHead4    Kind = "head4"
	KindPara     Kind = "para"
	KindVerbatim Kind = "verbatim"
	KindList     Kind = "over-text"
	KindItem     Kind = "item-text"
	KindFor      Kind = "for"
	KindData     Kind = "data"
	KindItalic   Kind = "I"
	KindBold     Kind = "B"
	KindCode     Kind = "C"
	KindFile     Kind = "F"
	KindLink     Kind = "L"
)

// Engine-private attributes. They are added during transformation and are
// never present in externally parsed input.
const (
	// AttrDeleted flags an element for excision after the directive scan.
	AttrDeleted = "phb-deleted"
	// AttrClass carries the CSS class assigned by the styling pass.
	AttrClass = "phb-class"
	// AttrAnchor caches the anchor identifier allocated for a heading.
	AttrAnchor = "phb-anchor"
)

// Attributes understood on parsed elements.
const (
	AttrTarget  = "target"  // for: directive target name
	AttrIndent  = "indent"  // over-text: list indent
	AttrTo      = "to"      // L: external link target
	AttrSection = "section" // L: intra-document section target
)

// KindOf returns the element kind for dispatch purposes.
func KindOf(el *etree.Element) Kind {
	return Kind(el.Tag)
}

// IsHeading reports whether k is one of the four heading kinds.
func (k Kind) IsHeading() bool {
	switch k {
	case KindHead1, KindHead2, KindHead3, KindHead4:
		return true
	}
	return false
}

// recognized lists every tag the input contract allows.
var recognized = map[Kind]struct{}{
	KindRoot: {}, KindHead1: {}, KindHead2: {}, KindHead3: {}, KindHead4: {},
	KindPara: {}, KindVerbatim: {}, KindList: {}, KindItem: {}, KindFor: {},
	KindData: {}, KindItalic: {}, KindBold: {}, KindCode: {}, KindFile: {},
	KindLink: {},
}

// Recognized reports whether the tag belongs to the input vocabulary.
func Recognized(k Kind) bool {
	_, ok := recognized[k]
	return ok
}

// FlattenText recursively descends into el concatenating leaf text in
// document order. Elements without text descendants yield an empty string.
func FlattenText(el *etree.Element) string {
	var b strings.Builder
	flattenTokens(el.Child, &b)
	return b.String()
}

// FlattenTokens concatenates leaf text of an ordered token sequence,
// descending into elements.
func FlattenTokens(tokens []etree.Token) string {
	var b strings.Builder
	flattenTokens(tokens, &b)
	return b.String()
}

func flattenTokens(tokens []etree.Token, b *strings.Builder) {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			flattenTokens(t.Child, b)
		}
	}
}

// FindAll searches el depth first and returns every element whose tag is in
// names, in document order. Matched elements are returned as-is so the caller
// can tell the alternatives apart by tag.
func FindAll(el *etree.Element, names ...string) []*etree.Element {
	var out []*etree.Element
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if _, ok := want[child.Tag]; ok {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(el)
	return out
}

// FindContent searches el depth first for elements named name and returns
// their children, concatenated in document order. Callers looking for a
// single tag generally want what is inside it, not the wrapper itself.
func FindContent(el *etree.Element, name string) []etree.Token {
	var out []etree.Token
	for _, m := range FindAll(el, name) {
		out = append(out, m.Child...)
	}
	return out
}

// headingText returns trimmed flattened text of a heading element.
func headingText(el *etree.Element) string {
	return strings.TrimSpace(FlattenText(el))
}
