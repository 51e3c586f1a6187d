package render

import (
	"errors"
	"strings"
	"testing"

	"phb/pod"
)

// renderFirst renders the first top-level element of a parsed fixture.
func renderFirst(t *testing.T, src string) (string, error) {
	t.Helper()
	d := testDoc(t, src)
	s := NewSession(d, testOpts(), nil)
	var b strings.Builder
	err := s.renderElement(d.Root.ChildElements()[0], &b)
	return b.String(), err
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "paragraph with inline markup",
			src:  `<pod><para>The <C>id</C> field is <B>required</B>, see <I>notes</I> in <F>api.pod</F>.</para></pod>`,
			want: "<p>The <code>id</code> field is <b>required</b>, see <i>notes</i> in <code>api.pod</code>.</p>",
		},
		{
			name: "verbatim",
			src:  `<pod><verbatim>if x &lt; 10 { return }</verbatim></pod>`,
			want: "<pre>if x &lt; 10 { return }</pre>",
		},
		{
			name: "plain heading without anchor",
			src:  `<pod><head2>Conventions</head2></pod>`,
			want: "<h2>Conventions</h2>",
		},
		{
			name: "external link",
			src:  `<pod><para><L to="https://example.com/api">docs</L></para></pod>`,
			want: `<p><a href="https://example.com/api">docs</a></p>`,
		},
		{
			name: "external link without label",
			src:  `<pod><para><L to="https://example.com/api"/></para></pod>`,
			want: `<p><a href="https://example.com/api">https://example.com/api</a></p>`,
		},
		{
			name: "section link resolves to in-page anchor",
			src:  `<pod><para><L section="GET /widgets"/></para></pod>`,
			want: `<p><a href="#get-widgets">GET /widgets</a></p>`,
		},
		{
			name: "definition list",
			src:  `<pod><over-text indent="4"><item-text>id</item-text><para>identifier</para></over-text></pod>`,
			want: "<dl><dt>id</dt><dd><p>identifier</p></dd></dl>",
		},
		{
			name: "escaped text",
			src:  `<pod><para>a &lt; b &amp; c</para></pod>`,
			want: "<p>a &lt; b &amp; c</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderFirst(t, tt.src)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderStyledList(t *testing.T) {
	d := testDoc(t, `<pod><head3>GET /widgets</head3><head4>Input</head4><over-text indent="4"><item-text>limit</item-text><para>page size</para></over-text></pod>`)
	d.ApplyStyles(nil)
	s := NewSession(d, testOpts(), nil)

	var b strings.Builder
	elements := d.Root.ChildElements()
	if err := s.renderElement(elements[len(elements)-1], &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(b.String(), `<dl class="input">`) {
		t.Errorf("styled list rendered as %q", b.String())
	}
}

func TestRenderUnknownKindFallsBackToSingleChild(t *testing.T) {
	got, err := renderFirst(t, `<pod><sidebar><para>escape hatch</para></sidebar></pod>`)
	if err != nil {
		t.Fatalf("expected recovery, got: %v", err)
	}
	if got != "<p>escape hatch</p>" {
		t.Errorf("rendered %q, want the child paragraph", got)
	}
}

func TestRenderUnknownKindWithoutChildFails(t *testing.T) {
	d := testDoc(t, `<pod><head3>GET /widgets</head3><sidebar>stray text</sidebar></pod>`)
	s := NewSession(d, testOpts(), nil)

	_, err := s.Fragments()
	if err == nil {
		t.Fatal("expected a structure error")
	}
	var se *pod.StructureError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *pod.StructureError", err)
	}
	if se.Tag != "sidebar" || se.Section != "GET /widgets" {
		t.Errorf("error context = %+v", se)
	}
}

func TestHeadingCarriesAllocatedAnchor(t *testing.T) {
	got, err := renderFirst(t, `<pod><head3>Widgets</head3></pod>`)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got != `<h3 id="widgets">Widgets</h3>` {
		t.Errorf("rendered %q", got)
	}
}
