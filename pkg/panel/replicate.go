package panel

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/matzehuels/panelize/pkg/svgdoc"
	"github.com/matzehuels/panelize/pkg/units"
)

// AttrTransform is the attribute carrying each group's translation.
const AttrTransform = "transform"

// Translate formats an SVG translate transform.
func Translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", units.FormatNumber(x), units.FormatNumber(y))
}

// Replicate returns one group per cell, each holding its own deep copy of
// children. The input elements are not modified.
func Replicate(children []*etree.Element, cells []Cell) []*etree.Element {
	groups := make([]*etree.Element, 0, len(cells))
	for _, c := range cells {
		g := etree.NewElement("g")
		g.CreateAttr(AttrTransform, Translate(c.XShift, c.YShift))
		for _, child := range children {
			g.AddChild(child.Copy())
		}
		groups = append(groups, g)
	}
	return groups
}

// Resize rewrites width, height and viewBox on root so the canvas spans
// the whole grid. The view box origin is kept.
func Resize(root *etree.Element, g Grid, dims svgdoc.Dimensions) svgdoc.Dimensions {
	out := OutputDimensions(g, dims)
	root.CreateAttr(svgdoc.AttrWidth, units.FormatLength(out.WidthMM))
	root.CreateAttr(svgdoc.AttrHeight, units.FormatLength(out.HeightMM))
	root.CreateAttr(svgdoc.AttrViewBox, out.ViewBox.String())
	return out
}

// OutputDimensions computes the panel's size without touching a document.
func OutputDimensions(g Grid, dims svgdoc.Dimensions) svgdoc.Dimensions {
	return svgdoc.Dimensions{
		WidthMM:  dims.WidthMM * float64(g.Columns),
		HeightMM: dims.HeightMM * float64(g.Rows),
		ViewBox: svgdoc.ViewBox{
			MinX:   dims.ViewBox.MinX,
			MinY:   dims.ViewBox.MinY,
			Width:  dims.ViewBox.Width * g.Columns,
			Height: dims.ViewBox.Height * g.Rows,
		},
	}
}
