package pod

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// docFromXML parses a serialized pod tree for tests.
func docFromXML(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Read(strings.NewReader(src), "test.pod", zap.NewNop())
	if err != nil {
		t.Fatalf("unable to read test tree: %v", err)
	}
	return d
}

// buildList constructs a definition list from alternating (term, content)
// pairs, content rendered as a single paragraph.
func buildList(pairs ...[2]string) *etree.Element {
	list := newListElement()
	for _, p := range pairs {
		item := list.CreateElement(string(KindItem))
		item.CreateText(p[0])
		para := list.CreateElement(string(KindPara))
		para.CreateText(p[1])
	}
	return list
}

// listTerms returns the term texts of a definition list in order.
func listTerms(list *etree.Element) []string {
	var terms []string
	for _, def := range Definitions(list) {
		terms = append(terms, def.Term)
	}
	return terms
}

// contentText flattens the content of the named term.
func contentText(t *testing.T, list *etree.Element, term string) string {
	t.Helper()
	for _, def := range Definitions(list) {
		if def.Term == term {
			return strings.TrimSpace(FlattenTokens(def.Content))
		}
	}
	t.Fatalf("term %q not found in list", term)
	return ""
}
