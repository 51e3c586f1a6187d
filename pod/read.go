package pod

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Read consumes the serialized form of the external parser's output tree and
// wraps it in a Document. Parsers emit UTF-8, but trees round-tripped through
// other tooling occasionally arrive in legacy encodings, so we accept
// whatever the charset detector can identify.
func Read(r io.Reader, srcName string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read pod tree: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("pod tree is empty")
	}

	d, err := NewDocument(root, srcName, log)
	if err != nil {
		return nil, fmt.Errorf("unable to interpret pod tree: %w", err)
	}

	// Contract check is advisory at this point: unknown tags are reported,
	// the renderer decides later whether it can recover from them.
	warnUnrecognized(root, log)
	return d, nil
}

func warnUnrecognized(el *etree.Element, log *zap.Logger) {
	for _, child := range el.ChildElements() {
		if !Recognized(KindOf(child)) {
			log.Warn("Unexpected tag in pod tree", zap.String("parent", el.Tag), zap.String("tag", child.Tag))
		}
		warnUnrecognized(child, log)
	}
}
