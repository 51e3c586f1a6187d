package pod

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

func TestNewDocumentRejectsWrongRoot(t *testing.T) {
	root := etree.NewElement("html")
	if _, err := NewDocument(root, "test.pod", zap.NewNop()); err == nil {
		t.Error("expected error for a non-pod root element")
	}
	if _, err := NewDocument(nil, "test.pod", zap.NewNop()); err == nil {
		t.Error("expected error for a nil root")
	}
}

func TestDocumentID(t *testing.T) {
	d := docFromXML(t, `<pod></pod>`)
	d.Name = "api/Widget Service.pod"

	id := d.DocumentID()
	if !strings.HasPrefix(id, "pod-") {
		t.Errorf("document identifier %q lacks the pod- prefix", id)
	}
	if id != d.DocumentID() {
		t.Error("document identifier is not stable")
	}
	if id != "pod-widget-service" {
		t.Errorf("document identifier = %q, want pod-widget-service", id)
	}
}

func TestSectionRegistry(t *testing.T) {
	d := docFromXML(t, `<pod>
<head3>GET /widgets</head3>
<over-text indent="4"><item-text>a</item-text><para>1</para></over-text>
<head4>Output</head4>
<over-text indent="4"><item-text>b</item-text><para>2</para></over-text>
<head2>Internals</head2>
<over-text indent="4"><item-text>c</item-text><para>3</para></over-text>
</pod>`)

	list, ok := d.Section("GET /widgets", SubsectionNone)
	if !ok {
		t.Fatal("plain list under the section heading not registered")
	}
	if got := contentText(t, list, "a"); got != "1" {
		t.Errorf("wrong list registered for (section, none): %q", got)
	}

	list, ok = d.Section("GET /widgets", SubsectionOutput)
	if !ok {
		t.Fatal("Output list not registered")
	}
	if got := contentText(t, list, "b"); got != "2" {
		t.Errorf("wrong list registered for (section, Output): %q", got)
	}

	// a level-2 heading resets the section scope entirely
	if _, ok := d.Section("Internals", SubsectionNone); ok {
		t.Error("list after a level-2 heading must not belong to any section")
	}
}

func TestInvalidateSections(t *testing.T) {
	d := docFromXML(t, `<pod>
<head3>GET /widgets</head3>
<over-text indent="4"><item-text>a</item-text><para>1</para></over-text>
</pod>`)

	if _, ok := d.Section("GET /widgets", SubsectionNone); !ok {
		t.Fatal("section not registered")
	}

	// mutate the tree behind the registry's back
	head := d.Root.CreateElement(string(KindHead3))
	head.CreateText("PUT /widgets")
	d.Root.AddChild(newListElement())

	if _, ok := d.Section("PUT /widgets", SubsectionNone); ok {
		t.Error("stale registry unexpectedly sees the new section")
	}
	d.InvalidateSections()
	if _, ok := d.Section("PUT /widgets", SubsectionNone); !ok {
		t.Error("rebuilt registry misses the new section")
	}
	if _, ok := d.Section("GET /widgets", SubsectionNone); !ok {
		t.Error("rebuilt registry lost the original section")
	}
}
