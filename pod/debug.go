package pod

import (
	"maps"
	"slices"
	"sort"

	"github.com/beevik/etree"
	"github.com/maruel/natural"

	"phb/utils/debug"
)

// String returns a readable dump of the whole document tree plus the section
// registry, if built. It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document[%q] id=%q", d.Name, d.DocumentID())
	dumpElement(tw, d.Root, 0)
	out := tw.String()

	if len(d.sections) > 0 {
		tw = debug.NewTreeWriter()
		tw.Line(0, "Section registry: %d", len(d.sections))
		keys := slices.Collect(maps.Keys(d.sections))
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].name != keys[j].name {
				return natural.Less(keys[i].name, keys[j].name)
			}
			return keys[i].kind < keys[j].kind
		})
		for _, k := range keys {
			list := d.sections[k]
			tw.Line(1, "Section[%q] kind[%s] pairs[%d]", k.name, k.kind, len(decompose(list)))
		}
		out += "\n" + tw.String()
	}

	return out
}

func dumpElement(tw *debug.TreeWriter, el *etree.Element, depth int) {
	var attrs [][2]string
	for _, a := range el.Attr {
		attrs = append(attrs, [2]string{a.Key, a.Value})
	}
	tw.Line(depth, "Element[%s]%s", el.Tag, debug.FormatAttrs(attrs))
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			tw.Text(depth+1, t.Data)
		case *etree.Element:
			dumpElement(tw, t, depth+1)
		}
	}
}
