package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/units"
)

// ViewBox is the user coordinate system of an SVG document.
type ViewBox struct {
	MinX   int
	MinY   int
	Width  int
	Height int
}

// String formats the view box as an attribute value.
func (v ViewBox) String() string {
	return fmt.Sprintf("%d %d %d %d", v.MinX, v.MinY, v.Width, v.Height)
}

// ParseViewBox parses a viewBox attribute value. Exactly four
// whitespace-separated 32-bit integers are accepted.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return ViewBox{}, errors.New(errors.ErrCodeInvalidViewBox,
			"viewBox %q has %d values, want 4", s, len(fields))
	}

	var vals [4]int
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return ViewBox{}, errors.Wrap(errors.ErrCodeInvalidViewBox, err,
				"viewBox %q: value %q is not an integer", s, f)
		}
		vals[i] = int(n)
	}
	return ViewBox{MinX: vals[0], MinY: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// Dimensions holds the physical size and coordinate system of a document.
type Dimensions struct {
	WidthMM  float64
	HeightMM float64
	ViewBox  ViewBox
}

// Dimensions reads width, height and viewBox from the root element.
func (d *Document) Dimensions() (Dimensions, error) {
	root := d.Root()

	width, err := lengthAttr(root.SelectAttr(AttrWidth), AttrWidth)
	if err != nil {
		return Dimensions{}, err
	}
	height, err := lengthAttr(root.SelectAttr(AttrHeight), AttrHeight)
	if err != nil {
		return Dimensions{}, err
	}

	attr := root.SelectAttr(AttrViewBox)
	if attr == nil {
		return Dimensions{}, missing(AttrViewBox)
	}
	vb, err := ParseViewBox(attr.Value)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{WidthMM: width, HeightMM: height, ViewBox: vb}, nil
}

// lengthAttr parses a width or height attribute as millimetres.
func lengthAttr(attr *etree.Attr, name string) (float64, error) {
	if attr == nil {
		return 0, missing(name)
	}
	return units.ParseLength(attr.Value)
}

func missing(name string) error {
	return errors.New(errors.ErrCodeMissingAttribute, "failed to find %s on svg node", name)
}
