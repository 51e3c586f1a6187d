package render

import (
	"fmt"
	"html"
)

// renderText entity-encodes a text leaf and applies two independent
// overlays: marker words get a styling span, and "METHOD /path" shaped
// substrings become same-page links to the matching route heading. Both
// overlays operate on escaped text; the patterns never match across the
// markup they insert.
func (s *Session) renderText(raw string) string {
	out := html.EscapeString(raw)
	if s.markerRe != nil {
		out = s.markerRe.ReplaceAllString(out, `<span class="pod-marker">$1</span>`)
	}
	if s.routeRe != nil {
		out = s.routeRe.ReplaceAllStringFunc(out, func(m string) string {
			return fmt.Sprintf(`<a class="pod-route" href="#%s">%s</a>`, s.alloc.Allocate(m, false), m)
		})
	}
	return out
}
