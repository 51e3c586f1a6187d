package pod

import (
	"go.uber.org/zap"

	"phb/css"
)

// ApplyStyles decorates definition lists with a CSS class derived from the
// nearest preceding sub-heading, so the viewer can style Input and Output
// parameter blocks differently. Runs after the directive processor, before
// rendering. When known is non-nil, classes missing from the stylesheet are
// reported as warnings; a nil set skips the check.
func (d *Document) ApplyStyles(known css.ClassSet) {
	var class string
	for _, el := range d.Root.ChildElements() {
		switch KindOf(el) {
		case KindHead1, KindHead2, KindHead3:
			class = ""
		case KindHead4:
			class = Normalize(headingText(el))
			if known != nil && class != "" && !known.Has(class) {
				d.log.Warn("Stylesheet does not define class for sub-heading",
					zap.String("class", class),
					zap.String("heading", headingText(el)))
			}
		case KindList:
			if class != "" {
				el.CreateAttr(AttrClass, class)
			}
		}
	}
}
