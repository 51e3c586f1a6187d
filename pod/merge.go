package pod

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// definition is one (term, content) pair of a definition list. item is the
// term marker element, content holds every node up to the next marker.
type definition struct {
	term    string
	item    *etree.Element
	content []etree.Token
}

// decompose splits a definition list into ordered (term, content) pairs.
// List children strictly alternate marker and content, so the decomposition
// is lossless; stray nodes before the first marker are ignored.
func decompose(list *etree.Element) []definition {
	var defs []definition
	cur := -1
	for _, tok := range list.Child {
		if el, ok := tok.(*etree.Element); ok && KindOf(el) == KindItem {
			defs = append(defs, definition{
				term: strings.TrimSpace(FlattenText(el)),
				item: el,
			})
			cur = len(defs) - 1
			continue
		}
		if cur >= 0 {
			defs[cur].content = append(defs[cur].content, tok)
		}
	}
	return defs
}

// Definition is one (term, content) pair of a definition list, as seen by
// the renderer.
type Definition struct {
	Term    string         // flattened, trimmed term text
	Item    *etree.Element // term marker element
	Content []etree.Token  // everything up to the next marker
}

// Definitions decomposes a definition list into its ordered pairs.
func Definitions(list *etree.Element) []Definition {
	defs := decompose(list)
	out := make([]Definition, len(defs))
	for i, d := range defs {
		out[i] = Definition{Term: d.term, Item: d.item, Content: d.content}
	}
	return out
}

// singleList returns the nested definition list when content consists of
// exactly one element and that element is a list. Merging recurses only
// through such content - anything else is opaque.
func singleList(content []etree.Token) *etree.Element {
	var found *etree.Element
	for _, tok := range content {
		switch t := tok.(type) {
		case *etree.Element:
			if found != nil {
				return nil
			}
			found = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil
			}
		}
	}
	if found == nil || KindOf(found) != KindList {
		return nil
	}
	return found
}

func copyTokens(tokens []etree.Token) []etree.Token {
	out := make([]etree.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.Element:
			out = append(out, t.Copy())
		case *etree.CharData:
			out = append(out, etree.NewText(t.Data))
		}
	}
	return out
}

// Merge unions two definition lists term by term, mutating dst in place. The
// source is left untouched - entries missing from the destination are copied
// over. When a term is present on both sides and its content is a single
// nested definition list on both sides (a parameter object with sub-fields),
// the nested lists are merged recursively; otherwise the destination keeps
// its original content for that term. The destination's children are
// rewritten as alternating (term, content) pairs sorted by term text, so the
// result is deterministic regardless of input order.
func Merge(src, dst *etree.Element) {
	srcDefs := decompose(src)
	dstDefs := decompose(dst)

	index := make(map[string]int, len(dstDefs))
	for i := range dstDefs {
		if _, exists := index[dstDefs[i].term]; !exists {
			index[dstDefs[i].term] = i
		}
	}

	for _, sd := range srcDefs {
		i, shared := index[sd.term]
		if !shared {
			dstDefs = append(dstDefs, definition{
				term:    sd.term,
				item:    sd.item.Copy(),
				content: copyTokens(sd.content),
			})
			index[sd.term] = len(dstDefs) - 1
			continue
		}
		if nestedSrc, nestedDst := singleList(sd.content), singleList(dstDefs[i].content); nestedSrc != nil && nestedDst != nil {
			Merge(nestedSrc, nestedDst)
		}
		// not a mergeable nested structure - destination wins
	}

	sort.SliceStable(dstDefs, func(i, j int) bool {
		return dstDefs[i].term < dstDefs[j].term
	})

	for len(dst.Child) > 0 {
		dst.RemoveChildAt(0)
	}
	for _, def := range dstDefs {
		dst.AddChild(def.item)
		for _, tok := range def.content {
			dst.AddChild(tok)
		}
	}
}
