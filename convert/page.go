package convert

import (
	"html"
	"strings"

	"phb/pod"
	"phb/render"
)

// assemblePage wraps one document's navigation index and section fragments
// into a standalone HTML page. The document identifier scopes the body so
// the stylesheet can address several documents on one site without clashes.
func assemblePage(doc *pod.Document, session *render.Session, stylesheet []byte) (string, error) {
	frags, err := session.Fragments()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\"/>\n")
	b.WriteString("<title>" + html.EscapeString(pageTitle(doc)) + "</title>\n")
	b.WriteString("<style>\n")
	b.Write(stylesheet)
	b.WriteString("</style>\n</head>\n")
	b.WriteString(`<body class="` + doc.DocumentID() + "\">\n")

	b.WriteString("<nav>\n")
	b.WriteString(session.Index())
	b.WriteString("</nav>\n<main>\n")
	for _, key := range session.SectionOrder() {
		b.WriteString(`<section id="sect-` + key + "\">\n")
		for _, frag := range frags[key] {
			b.WriteString(frag)
			b.WriteByte('\n')
		}
		b.WriteString("</section>\n")
	}
	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String(), nil
}

// pageTitle prefers the first top-level group heading, falling back to the
// document identifier.
func pageTitle(doc *pod.Document) string {
	for _, el := range doc.Root.ChildElements() {
		if pod.KindOf(el) == pod.KindHead1 {
			if title := strings.TrimSpace(pod.FlattenText(el)); title != "" {
				return title
			}
		}
	}
	return doc.DocumentID()
}
