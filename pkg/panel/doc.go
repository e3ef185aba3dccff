// Package panel lays out copies of an SVG document on a rectangular grid.
//
// # Overview
//
// Panelization takes the drawable children of a document and repeats them
// X times horizontally and Y times vertically, so several copies can be cut
// or printed from one sheet. Each copy is wrapped in a group element that
// translates it to its cell:
//
//	<g transform="translate(20,0)">...copy of the children...</g>
//
// The canvas grows with the grid: width is multiplied by X, height by Y,
// and the view box width and height likewise. The view box origin never
// moves.
//
// # Offsets
//
// Column and row spacing is given in millimetres and converted to view box
// units using the document's own scale, so a 50mm wide document with a view
// box 100 units wide turns a 10mm offset into a 20 unit shift. See
// [ViewBoxOffsets].
//
// # Cell Order
//
// Cells are enumerated with the column index as the outer loop and the row
// index as the inner loop: (0,0), (0,1), ..., (1,0), (1,1), ...
// [Cells] returns them in that order and [Replicate] emits groups in the
// same order.
//
// # Usage
//
//	doc, _ := svgdoc.Parse(data)
//	out, layout, err := panel.Apply(doc, panel.Grid{Columns: 3, Rows: 2, XOffsetMM: 55})
//	sheet, _ := out.Bytes()
package panel
