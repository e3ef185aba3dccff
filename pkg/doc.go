// Package pkg provides the libraries behind panelize, which lays out copies
// of an SVG design on a grid so a whole sheet can be cut or printed at once.
//
// # Overview
//
// The pkg directory is organized by pipeline stage:
//
//  1. [units] - mm/cm length parsing and number formatting
//  2. [svgdoc] - loading, inspecting and serializing SVG documents
//  3. [panel] - grid geometry, replication and canvas resizing
//  4. [preview] - PNG rasterization of a finished panel
//  5. [pipeline] - orchestration (load → plan → render → write) with caching
//
// Supporting packages:
//
//   - [cache] - artifact cache keyed by input hash and grid settings
//   - [errors] - coded errors shared by every stage
//   - [observability] - hooks for stage timings and cache activity
//   - [buildinfo] - version information injected at build time
//
// # Architecture
//
//	sticker.svg
//	     ↓
//	[svgdoc] parse, read width/height/viewBox, filter children
//	     ↓
//	[panel] one <g transform="translate(x,y)"> per cell, resize canvas
//	     ↓
//	[svgdoc] serialize → sheet.svg      [preview] rasterize → sheet.png
//
// # Quick Start
//
// Panelize a document without the pipeline:
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/panelize/pkg/panel"
//	    "github.com/matzehuels/panelize/pkg/svgdoc"
//	)
//
//	data, err := os.ReadFile("sticker.svg")
//	if err != nil {
//	    return err
//	}
//	doc, err := svgdoc.Parse(data)
//	if err != nil {
//	    return err
//	}
//	out, layout, err := panel.Apply(doc, panel.Grid{
//	    Columns:   4,
//	    Rows:      3,
//	    XOffsetMM: 55,
//	    YOffsetMM: 55,
//	})
//	if err != nil {
//	    return err
//	}
//	sheet, err := out.Bytes()
//	if err != nil {
//	    return err
//	}
//	err = svgdoc.WriteFile("sheet.svg", sheet)
//
// Or run everything, including caching and the preview, through
// [pipeline.Runner].
//
// [units]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/units
// [svgdoc]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/svgdoc
// [panel]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/panel
// [preview]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/preview
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/panelize/pkg/buildinfo
package pkg
