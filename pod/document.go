package pod

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Document owns one parsed pod tree for the lifetime of a processing session.
// The tree is mutated in place during the initialization phase (directives,
// styling) and treated as read-mostly afterwards.
type Document struct {
	Name string // source path or name, used to derive the document identifier
	Root *etree.Element

	log *zap.Logger

	// derived state, memoized on first use
	sections map[sectionKey]*etree.Element
	docID    string
}

type sectionKey struct {
	name string
	kind SubsectionKind
}

// NewDocument wraps an already parsed tree. The root element must carry the
// pod root tag.
func NewDocument(root *etree.Element, name string, log *zap.Logger) (*Document, error) {
	if root == nil || KindOf(root) != KindRoot {
		tag := ""
		if root != nil {
			tag = root.Tag
		}
		return nil, &StructureError{Tag: tag}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Document{Name: name, Root: root, log: log}, nil
}

// DocumentID returns the document-scoped identifier derived deterministically
// from the source name. It is used to scope CSS classes and accordion groups
// when several documents share one page. Computed once.
func (d *Document) DocumentID() string {
	if d.docID != "" {
		return d.docID
	}
	base := strings.TrimSuffix(filepath.Base(d.Name), filepath.Ext(d.Name))
	if id := slug.Make(base); id != "" {
		d.docID = "pod-" + id
	} else {
		// no usable source name - fall back to a random identity
		d.docID = "pod-" + uuid.NewString()
	}
	return d.docID
}

// Section returns the definition-list element logically owned by the named
// section and subsection, if one exists. The underlying registry is a derived
// index over the tree, built lazily on first use.
func (d *Document) Section(name string, kind SubsectionKind) (*etree.Element, bool) {
	if d.sections == nil {
		d.rebuildSections()
	}
	el, ok := d.sections[sectionKey{name, kind}]
	return el, ok
}

// InvalidateSections drops the section registry. Must be called after any
// tree mutation done outside the directive processor's own bookkeeping.
func (d *Document) InvalidateSections() {
	d.sections = nil
}

func (d *Document) registerSection(name string, kind SubsectionKind, list *etree.Element) {
	if d.sections == nil {
		d.rebuildSections()
	}
	key := sectionKey{name, kind}
	if _, exists := d.sections[key]; !exists {
		d.sections[key] = list
	}
}

// rebuildSections scans the document's top-level children once, associating
// every definition list with the section and sub-heading scope it appears in.
// Only the first list of a scope is registered - it is the logical owner.
func (d *Document) rebuildSections() {
	d.sections = make(map[sectionKey]*etree.Element)

	var (
		section string
		kind    SubsectionKind
	)
	for _, el := range d.Root.ChildElements() {
		switch KindOf(el) {
		case KindHead1, KindHead2:
			section = ""
			kind = SubsectionNone
		case KindHead3:
			section = headingText(el)
			kind = SubsectionNone
		case KindHead4:
			if k, ok := ParseSubsectionKind(headingText(el)); ok {
				kind = k
			} else {
				kind = SubsectionNone
			}
		case KindList:
			if section == "" {
				continue
			}
			key := sectionKey{section, kind}
			if _, exists := d.sections[key]; !exists {
				d.sections[key] = el
			}
		}
	}
}
