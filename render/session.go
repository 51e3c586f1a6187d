// Package render converts a processed pod document tree into HTML: a
// per-section fragment map and a navigation index, with collision-free
// anchors issued by an allocator owned by the session.
package render

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"phb/pod"
)

// Options carries the rendering knobs taken from configuration.
type Options struct {
	MarkerWords      []string // literal words wrapped in a styling span, e.g. TODO
	RouteMethods     []string // HTTP methods recognized when self-linking route text
	GroupClassPrefix string   // CSS class put on every collapsible index group
}

// Session renders one document. The tree must already be past directive
// processing and styling; rendering never changes its structure, only
// caches anchor identifiers in attributes. Not safe for concurrent use.
type Session struct {
	doc   *pod.Document
	log   *zap.Logger
	alloc *pod.Allocator
	opts  Options

	markerRe *regexp.Regexp
	routeRe  *regexp.Regexp

	section   string // nearest section name, for error context
	fragments map[string][]string
	order     []string // fragment keys in first-appearance order
	index     string
}

func NewSession(doc *pod.Document, opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		doc:   doc,
		log:   log,
		alloc: pod.NewAllocator(),
		opts:  opts,
	}
	if len(opts.MarkerWords) > 0 {
		s.markerRe = regexp.MustCompile(`\b(` + joinQuoted(opts.MarkerWords) + `)\b`)
	}
	if len(opts.RouteMethods) > 0 {
		s.routeRe = regexp.MustCompile(`\b(` + joinQuoted(opts.RouteMethods) + `)\s+(/[-A-Za-z0-9_{}/.:~%]*)`)
	}
	return s
}

func joinQuoted(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// SeedAnchors marks identifiers issued for a sibling document as taken, so
// anchors stay unique across documents rendered onto one page.
func (s *Session) SeedAnchors(ids []string) {
	s.alloc.Seed(ids)
}

// Issued returns every anchor identifier registered by this session.
func (s *Session) Issued() []string {
	return s.alloc.Issued()
}

// Fragments renders the document into a map from section identifier to the
// ordered HTML fragments belonging to that section, one fragment per
// top-level node. Content before the first level-1 heading is filed under
// the document identifier. Computed once; subsequent calls return the cached
// map.
func (s *Session) Fragments() (map[string][]string, error) {
	if s.fragments != nil {
		return s.fragments, nil
	}

	frags := make(map[string][]string)
	s.order = nil
	key := s.doc.DocumentID()
	s.section = ""
	for _, el := range s.doc.Root.ChildElements() {
		switch pod.KindOf(el) {
		case pod.KindHead1:
			key = s.ensureHeadingID(el)
			s.section = ""
		case pod.KindHead3:
			key = s.ensureHeadingID(el)
			s.section = strings.TrimSpace(pod.FlattenText(el))
		}
		var b strings.Builder
		if err := s.renderElement(el, &b); err != nil {
			return nil, err
		}
		if _, seen := frags[key]; !seen {
			s.order = append(s.order, key)
		}
		frags[key] = append(frags[key], b.String())
	}

	s.fragments = frags
	return frags, nil
}

// SectionOrder returns the fragment map keys in document order. Valid after
// Fragments has been called.
func (s *Session) SectionOrder() []string {
	return s.order
}

// ensureHeadingID returns the anchor identifier for a heading, allocating a
// unique one on first use and caching it in an attribute so the fragment id
// and the index link always agree.
func (s *Session) ensureHeadingID(el *etree.Element) string {
	if id := el.SelectAttrValue(pod.AttrAnchor, ""); id != "" {
		return id
	}
	id := s.alloc.Allocate(strings.TrimSpace(pod.FlattenText(el)), true)
	el.CreateAttr(pod.AttrAnchor, id)
	return id
}
