package panel

import (
	"github.com/matzehuels/panelize/pkg/svgdoc"
)

// Layout summarizes a panelization.
type Layout struct {
	Grid   Grid
	Input  svgdoc.Dimensions
	Output svgdoc.Dimensions
	Cells  []Cell
	// Children is the number of elements copied into each cell.
	Children int
}

// Plan computes the layout for doc without building the output tree.
func Plan(doc *svgdoc.Document, g Grid) (Layout, error) {
	if err := g.Validate(); err != nil {
		return Layout{}, err
	}
	dims, err := doc.Dimensions()
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Grid:     g,
		Input:    dims,
		Output:   OutputDimensions(g, dims),
		Cells:    Cells(g, dims),
		Children: len(doc.Children()),
	}, nil
}

// Apply panelizes doc and returns a new document. doc itself is left
// untouched; the result is built from a single clone of it.
func Apply(doc *svgdoc.Document, g Grid) (*svgdoc.Document, Layout, error) {
	layout, err := Plan(doc, g)
	if err != nil {
		return nil, Layout{}, err
	}

	out := doc.Clone()
	groups := Replicate(out.Children(), layout.Cells)
	out.ReplaceChildren(groups)
	Resize(out.Root(), g, layout.Input)

	return out, layout, nil
}
