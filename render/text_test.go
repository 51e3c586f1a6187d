package render

import (
	"strings"
	"testing"
)

func TestMarkerWordsGetStylingSpan(t *testing.T) {
	s := NewSession(testDoc(t, `<pod></pod>`), testOpts(), nil)

	got := s.renderText("TODO check pagination, FIXME later")
	want := `<span class="pod-marker">TODO</span> check pagination, <span class="pod-marker">FIXME</span> later`
	if got != want {
		t.Errorf("renderText = %q, want %q", got, want)
	}
}

func TestMarkerWordsRespectWordBoundaries(t *testing.T) {
	s := NewSession(testDoc(t, `<pod></pod>`), testOpts(), nil)

	if got := s.renderText("TODOS are not markers"); strings.Contains(got, "pod-marker") {
		t.Errorf("substring wrongly marked: %q", got)
	}
}

func TestRouteTextBecomesSelfLink(t *testing.T) {
	s := NewSession(testDoc(t, `<pod></pod>`), testOpts(), nil)

	got := s.renderText("see GET /widgets for the full list")
	want := `see <a class="pod-route" href="#get-widgets">GET /widgets</a> for the full list`
	if got != want {
		t.Errorf("renderText = %q, want %q", got, want)
	}
	if issued := s.Issued(); len(issued) != 0 {
		t.Errorf("self-linking must not register identifiers, got %v", issued)
	}
}

func TestRouteInParagraphLinksToIndexedRoute(t *testing.T) {
	// a route mentioned in prose must land on the same anchor its heading got
	d := testDoc(t, `<pod><head3>GET /widgets</head3><para>Try GET /widgets first.</para></pod>`)
	s := NewSession(d, testOpts(), nil)

	frags, err := s.Fragments()
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	body := frags["get-widgets"][1]
	if !strings.Contains(body, `href="#get-widgets"`) {
		t.Errorf("prose route does not link to the route anchor: %q", body)
	}
}

func TestOverlaysComposeOnEscapedText(t *testing.T) {
	s := NewSession(testDoc(t, `<pod></pod>`), testOpts(), nil)

	got := s.renderText("TODO review GET /widgets?q=<raw>")
	if !strings.Contains(got, "pod-marker") || !strings.Contains(got, "pod-route") {
		t.Errorf("overlays missing: %q", got)
	}
	if strings.Contains(got, "<raw>") {
		t.Errorf("raw markup leaked into output: %q", got)
	}
}
