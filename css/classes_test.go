package css

import (
	"testing"
)

func TestClassesFromSelectors(t *testing.T) {
	data := []byte(`
body { margin: 0; }
dl.input dt, dl.output dt { font-weight: bold; }
.pod-marker { background: yellow; }
li.pod-group > a { text-decoration: none; }
`)
	set := Classes(data, nil)

	for _, class := range []string{"input", "output", "pod-marker", "pod-group"} {
		if !set.Has(class) {
			t.Errorf("class %q not extracted, got %v", class, set)
		}
	}
	if set.Has("body") {
		t.Error("element selector wrongly treated as a class")
	}
}

func TestClassesInsideMediaBlocks(t *testing.T) {
	data := []byte(`@media (max-width: 40em) { .collapsed { display: none; } }`)
	set := Classes(data, nil)
	if !set.Has("collapsed") {
		t.Errorf("class inside @media not extracted, got %v", set)
	}
}

func TestClassesSurvivesBrokenStylesheet(t *testing.T) {
	data := []byte(`.ok { color: red; } .broken {{{`)
	set := Classes(data, nil)
	if !set.Has("ok") {
		t.Errorf("valid prefix not extracted from broken stylesheet, got %v", set)
	}
}

func TestClassesEmptyInput(t *testing.T) {
	if set := Classes(nil, nil); len(set) != 0 {
		t.Errorf("empty stylesheet produced classes: %v", set)
	}
}
