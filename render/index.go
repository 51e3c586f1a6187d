package render

import (
	"fmt"
	"html"
	"strings"

	"phb/pod"
)

// indentWriter builds nested list markup as flat text, tracking depth
// explicitly: opening a tag indents what follows, closing one outdents.
type indentWriter struct {
	b     strings.Builder
	depth int
}

func (w *indentWriter) line(s string) {
	for range w.depth {
		w.b.WriteString("  ")
	}
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *indentWriter) open(s string) {
	w.line(s)
	w.depth++
}

func (w *indentWriter) close(s string) {
	w.depth--
	w.line(s)
}

// Index builds the navigation list: level-1 headings become collapsible
// groups, level-3 headings become route entries nested under the current
// group. Anchors match the identifiers placed on the headings themselves,
// and the group identifier doubles as a CSS scoping class on the group item.
// Computed once.
func (s *Session) Index() string {
	if s.index != "" {
		return s.index
	}

	w := &indentWriter{}
	w.open(`<ul class="pod-index">`)

	grouped := false
	for _, el := range pod.FindAll(s.doc.Root, string(pod.KindHead1), string(pod.KindHead3)) {
		title := html.EscapeString(strings.TrimSpace(pod.FlattenText(el)))
		switch pod.KindOf(el) {
		case pod.KindHead1:
			if grouped {
				w.close("</ul>")
				w.close("</li>")
			}
			id := s.ensureHeadingID(el)
			w.open(fmt.Sprintf(`<li class="%s %s">`, s.opts.GroupClassPrefix, id))
			w.line(fmt.Sprintf(`<a href="#%s">%s</a>`, id, title))
			w.open("<ul>")
			grouped = true
		case pod.KindHead3:
			w.line(fmt.Sprintf(`<li><a href="#%s">%s</a></li>`, s.ensureHeadingID(el), title))
		}
	}
	if grouped {
		w.close("</ul>")
		w.close("</li>")
	}
	w.close("</ul>")

	s.index = w.b.String()
	return s.index
}
