package pod

import (
	"testing"

	"phb/css"
)

func TestApplyStylesTagsListsWithSubheadingClass(t *testing.T) {
	d := docFromXML(t, `<pod>
<head3>GET /widgets</head3>
<head4>Input</head4>
<over-text indent="4"><item-text>limit</item-text><para>page size</para></over-text>
<head4>Output</head4>
<over-text indent="4"><item-text>id</item-text><para>identifier</para></over-text>
<head3>POST /widgets</head3>
<over-text indent="4"><item-text>name</item-text><para>display name</para></over-text>
</pod>`)

	d.ApplyStyles(nil)

	lists := FindAll(d.Root, string(KindList))
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}
	if got := lists[0].SelectAttrValue(AttrClass, ""); got != "input" {
		t.Errorf("first list class = %q, want input", got)
	}
	if got := lists[1].SelectAttrValue(AttrClass, ""); got != "output" {
		t.Errorf("second list class = %q, want output", got)
	}
	// a level-3 heading resets the sub-heading scope
	if got := lists[2].SelectAttrValue(AttrClass, ""); got != "" {
		t.Errorf("list outside any sub-heading got class %q", got)
	}
}

func TestApplyStylesWithStylesheetCheck(t *testing.T) {
	d := docFromXML(t, `<pod>
<head3>GET /widgets</head3>
<head4>Input</head4>
<over-text indent="4"><item-text>limit</item-text><para>page size</para></over-text>
</pod>`)

	known := css.Classes([]byte(`dl.input dt { font-weight: bold; }`), nil)
	d.ApplyStyles(known)

	lists := FindAll(d.Root, string(KindList))
	if got := lists[0].SelectAttrValue(AttrClass, ""); got != "input" {
		t.Errorf("list class = %q, want input", got)
	}
}
