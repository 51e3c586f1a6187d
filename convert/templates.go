package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"phb/config"
	"phb/pod"
)

// Values holds variables made available for output name template expansion.
type Values struct {
	Context    string
	Title      string
	SourceFile string
	DocumentID string
	Sections   []string
}

// buildSections collects the section names of a document in document order,
// for templates that want to name output after content.
func buildSections(doc *pod.Document) []string {
	var result []string
	for _, el := range doc.Root.ChildElements() {
		if pod.KindOf(el) == pod.KindHead3 {
			if name := strings.TrimSpace(pod.FlattenText(el)); name != "" {
				result = append(result, name)
			}
		}
	}
	return result
}

func expandTemplate(doc *pod.Document, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      pageTitle(doc),
		SourceFile: strings.TrimSuffix(filepath.Base(doc.Name), filepath.Ext(doc.Name)),
		DocumentID: doc.DocumentID(),
		Sections:   buildSections(doc),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
