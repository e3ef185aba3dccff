package svgdoc

import (
	"bytes"
	"io"
	"os"
	"regexp"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/matzehuels/panelize/pkg/errors"
)

// Root attribute names.
const (
	AttrWidth   = "width"
	AttrHeight  = "height"
	AttrViewBox = "viewBox"
)

// excludedTags lists root children that are never replicated.
var excludedTags = map[string]bool{
	"title": true,
	"desc":  true,
}

// Document is a parsed SVG document.
type Document struct {
	tree *etree.Document
}

// Parse builds a Document from raw SVG text.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to parse file")
	}
	if tree.Root() == nil {
		return nil, errors.New(errors.ErrCodeParse, "failed to parse file: no root element")
	}
	normalizeDeclaration(tree)
	return &Document{tree: tree}, nil
}

// Root returns the root element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// Children returns the element children of the root that get replicated,
// in document order. title and desc elements are skipped.
func (d *Document) Children() []*etree.Element {
	var out []*etree.Element
	for _, el := range d.Root().ChildElements() {
		if excludedTags[el.Tag] {
			continue
		}
		out = append(out, el)
	}
	return out
}

// Clone returns a deep copy of the document. The copy shares no nodes with d.
func (d *Document) Clone() *Document {
	return &Document{tree: d.tree.Copy()}
}

// ReplaceChildren removes every child token of the root and appends els in
// order.
func (d *Document) ReplaceChildren(els []*etree.Element) {
	root := d.Root()
	for _, t := range append([]etree.Token(nil), root.Child...) {
		root.RemoveChild(t)
	}
	for _, el := range els {
		root.AddChild(el)
	}
}

// WriteTo serializes the document as XML.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := d.tree.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(errors.ErrCodeSerialize, err, "failed to write document")
	}
	return n, nil
}

// Bytes serializes the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes serialized document bytes to path, creating the file if
// needed and truncating it otherwise.
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "failed to open output file %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeOutputIO, err, "failed to write to file %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputIO, err, "failed to write to file %s", path)
	}
	return nil
}

var encodingDecl = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)

// normalizeDeclaration makes the XML declaration agree with the in-memory
// encoding, which is always UTF-8 after charset conversion.
func normalizeDeclaration(tree *etree.Document) {
	for _, t := range tree.Child {
		if pi, ok := t.(*etree.ProcInst); ok && pi.Target == "xml" {
			pi.Inst = encodingDecl.ReplaceAllString(pi.Inst, `encoding="UTF-8"`)
		}
	}
}
