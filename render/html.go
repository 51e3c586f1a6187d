package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"phb/pod"
)

type renderFunc func(*Session, *etree.Element, *strings.Builder) error

// renderers dispatches on element kind. Assigned in init so renderer bodies
// can recurse through renderElement without an initialization cycle.
var renderers map[pod.Kind]renderFunc

func init() {
	renderers = map[pod.Kind]renderFunc{
		pod.KindRoot:     renderChildren,
		pod.KindHead1:    renderHeading,
		pod.KindHead2:    renderHeading,
		pod.KindHead3:    renderHeading,
		pod.KindHead4:    renderHeading,
		pod.KindPara:     wrapTag("p"),
		pod.KindVerbatim: wrapTag("pre"),
		pod.KindList:     renderList,
		pod.KindItem:     renderChildren,
		pod.KindItalic:   wrapTag("i"),
		pod.KindBold:     wrapTag("b"),
		pod.KindCode:     wrapTag("code"),
		pod.KindFile:     wrapTag("code"),
		pod.KindLink:     renderLink,
		pod.KindFor:      renderNothing,
		pod.KindData:     renderNothing,
	}
}

// renderElement dispatches on kind. An unrecognized element wrapping exactly
// one element child degrades to rendering that child; anything else is an
// input contract violation and aborts the document.
func (s *Session) renderElement(el *etree.Element, b *strings.Builder) error {
	if fn, ok := renderers[pod.KindOf(el)]; ok {
		return fn(s, el, b)
	}
	if children := el.ChildElements(); len(children) == 1 {
		s.log.Warn("Unrecognized element, rendering its child",
			zap.String("tag", el.Tag), zap.String("section", s.section))
		return s.renderElement(children[0], b)
	}
	return &pod.StructureError{Tag: el.Tag, Section: s.section}
}

// renderTokens renders an ordered child sequence: elements dispatch, text
// leaves are escaped and overlaid.
func (s *Session) renderTokens(tokens []etree.Token, b *strings.Builder) error {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(s.renderText(t.Data))
		case *etree.Element:
			if err := s.renderElement(t, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderChildren(s *Session, el *etree.Element, b *strings.Builder) error {
	return s.renderTokens(el.Child, b)
}

func renderNothing(*Session, *etree.Element, *strings.Builder) error {
	return nil
}

func wrapTag(tag string) renderFunc {
	return func(s *Session, el *etree.Element, b *strings.Builder) error {
		b.WriteString("<" + tag + ">")
		if err := s.renderTokens(el.Child, b); err != nil {
			return err
		}
		b.WriteString("</" + tag + ">")
		return nil
	}
}

func renderHeading(s *Session, el *etree.Element, b *strings.Builder) error {
	level := headingLevel(pod.KindOf(el))
	switch pod.KindOf(el) {
	case pod.KindHead1, pod.KindHead3:
		// anchors referenced by the navigation index
		fmt.Fprintf(b, `<h%d id="%s">`, level, s.ensureHeadingID(el))
	default:
		fmt.Fprintf(b, "<h%d>", level)
	}
	if err := s.renderTokens(el.Child, b); err != nil {
		return err
	}
	fmt.Fprintf(b, "</h%d>", level)
	return nil
}

func headingLevel(k pod.Kind) int {
	switch k {
	case pod.KindHead1:
		return 1
	case pod.KindHead2:
		return 2
	case pod.KindHead3:
		return 3
	default:
		return 4
	}
}

func renderList(s *Session, el *etree.Element, b *strings.Builder) error {
	if class := el.SelectAttrValue(pod.AttrClass, ""); class != "" {
		fmt.Fprintf(b, `<dl class="%s">`, class)
	} else {
		b.WriteString("<dl>")
	}
	for _, def := range pod.Definitions(el) {
		b.WriteString("<dt>")
		if err := s.renderTokens(def.Item.Child, b); err != nil {
			return err
		}
		b.WriteString("</dt><dd>")
		if err := s.renderTokens(def.Content, b); err != nil {
			return err
		}
		b.WriteString("</dd>")
	}
	b.WriteString("</dl>")
	return nil
}

func renderLink(s *Session, el *etree.Element, b *strings.Builder) error {
	to := el.SelectAttrValue(pod.AttrTo, "")
	section := el.SelectAttrValue(pod.AttrSection, "")

	var href string
	switch {
	case to != "":
		href = to
	case section != "":
		// non-unique mode: the anchor must match whatever the target
		// heading normalizes to
		href = "#" + s.alloc.Allocate(section, false)
	default:
		// a bare link renders as its content
		return s.renderTokens(el.Child, b)
	}

	fmt.Fprintf(b, `<a href="%s">`, html.EscapeString(href))
	if len(el.Child) > 0 {
		if err := s.renderTokens(el.Child, b); err != nil {
			return err
		}
	} else if section != "" {
		b.WriteString(html.EscapeString(section))
	} else {
		b.WriteString(html.EscapeString(to))
	}
	b.WriteString("</a>")
	return nil
}
