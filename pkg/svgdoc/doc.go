// Package svgdoc loads, inspects and serializes SVG documents.
//
// A [Document] wraps an XML element tree. Loading decodes the input with a
// charset-aware reader, so documents declared as ISO-8859-1 or windows-1252
// are converted to UTF-8 in memory; the XML declaration is rewritten to
// match when the document is serialized again.
//
// # Dimensions
//
// Panelization needs three attributes on the root element: width, height
// (each a number with an "mm" or "cm" suffix, see package units) and
// viewBox (four whitespace-separated integers). [Document.Dimensions]
// reads and validates all three:
//
//	data, err := os.ReadFile("sticker.svg")
//	if err != nil {
//	    return err
//	}
//	doc, err := svgdoc.Parse(data)
//	if err != nil {
//	    return err
//	}
//	dims, err := doc.Dimensions()
//	// dims.WidthMM, dims.HeightMM, dims.ViewBox
//
// # Children
//
// [Document.Children] returns the root's element children in document order,
// leaving out title and desc. Text and comments directly under the root are
// not returned.
package svgdoc
