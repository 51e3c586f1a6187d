// Package css extracts class names from viewer stylesheets so the styling
// pass can tell when it derives a class the stylesheet never defines.
package css

import (
	"bytes"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ClassSet holds every class name mentioned by stylesheet selectors.
type ClassSet map[string]struct{}

// Has reports whether the stylesheet defines the class.
func (s ClassSet) Has(class string) bool {
	_, ok := s[class]
	return ok
}

var classRe = regexp.MustCompile(`\.(-?[A-Za-z_][-A-Za-z0-9_]*)`)

// Classes parses stylesheet data and collects class names used in selectors,
// including selectors inside @media blocks. CSS errors are logged and the
// scan continues - a broken stylesheet must not stop document processing.
func Classes(data []byte, log *zap.Logger) ClassSet {
	if log == nil {
		log = zap.NewNop()
	}

	set := make(ClassSet)

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, sel := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				log.Debug("CSS parse error", zap.Error(err))
			}
			log.Debug("Parsed stylesheet", zap.Int("classes", len(set)))
			return set
		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			var sb strings.Builder
			sb.Write(sel)
			for _, v := range parser.Values() {
				sb.Write(v.Data)
			}
			for _, m := range classRe.FindAllStringSubmatch(sb.String(), -1) {
				set[m[1]] = struct{}{}
			}
		}
	}
}
