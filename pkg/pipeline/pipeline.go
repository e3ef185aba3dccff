// Package pipeline runs the complete panelize pipeline.
//
// The CLI and tests drive panelization through a single [Runner] so caching,
// logging and error codes behave the same everywhere.
//
// # Architecture
//
// A run consists of four stages:
//
//  1. Load: read the input file, hash it and parse it into a document
//  2. Plan: read width, height and viewBox and compute every grid cell
//  3. Render: build the panel SVG and, if requested, a PNG preview
//  4. Write: store the artifacts at their output paths
//
// Render output is cached by input hash and settings. A dry run stops after
// Plan and writes nothing.
//
// # Usage
//
//	opts := pipeline.NewOptions("sticker.svg", "sheet.svg")
//	opts.Columns, opts.Rows = 4, 3
//	opts.XOffsetMM, opts.YOffsetMM = 55, 55
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(result.Layout.Cells), "copies")
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panelize/pkg/cache"
	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/panel"
	"github.com/matzehuels/panelize/pkg/preview"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultColumns is the number of grid columns when none is given.
	DefaultColumns = 1

	// DefaultRows is the number of grid rows when none is given.
	DefaultRows = 1

	// DefaultPreviewScale is the preview resolution in pixels per view box unit.
	DefaultPreviewScale = preview.DefaultScale
)

// Format constants for artifacts.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Input  string `json:"input"`
	Output string `json:"output"`

	Columns   int     `json:"columns,omitempty"`
	Rows      int     `json:"rows,omitempty"`
	XOffsetMM float64 `json:"x_offset_mm,omitempty"`
	YOffsetMM float64 `json:"y_offset_mm,omitempty"`

	// Preview is the PNG path; empty disables the preview.
	Preview      string  `json:"preview,omitempty"`
	PreviewScale float64 `json:"preview_scale,omitempty"`

	// DryRun computes the layout but renders and writes nothing.
	DryRun bool `json:"dry_run,omitempty"`

	// Refresh ignores cached artifacts but still stores fresh ones.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// NewOptions returns options for a single copy of input written to output,
// with the default grid and preview scale.
func NewOptions(input, output string) Options {
	return Options{
		Input:        input,
		Output:       output,
		Columns:      DefaultColumns,
		Rows:         DefaultRows,
		PreviewScale: DefaultPreviewScale,
	}
}

// SetDefaults fills in a discarding logger. Grid and preview settings are
// never defaulted here, so a zero grid fails validation; use [NewOptions]
// for the default values.
func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks paths and grid settings.
func (o *Options) Validate() error {
	o.SetDefaults()

	if err := errors.ValidatePath("input", o.Input); err != nil {
		return err
	}
	if !o.DryRun {
		if err := errors.ValidatePath("output", o.Output); err != nil {
			return err
		}
		if err := errors.ValidateDistinctPaths(o.Input, o.Output); err != nil {
			return err
		}
		if o.Preview != "" {
			if err := errors.ValidateDistinctPaths(o.Input, o.Preview); err != nil {
				return err
			}
			if err := errors.ValidateDistinctPaths(o.Output, o.Preview); err != nil {
				return err
			}
		}
	}
	if o.Preview != "" && !(o.PreviewScale > 0) {
		return errors.New(errors.ErrCodePreview, "preview scale must be positive, got %v", o.PreviewScale)
	}
	return o.Grid().Validate()
}

// Grid returns the panel grid described by the options.
func (o *Options) Grid() panel.Grid {
	return panel.Grid{
		Columns:   o.Columns,
		Rows:      o.Rows,
		XOffsetMM: o.XOffsetMM,
		YOffsetMM: o.YOffsetMM,
	}
}

// ArtifactKeyOpts returns cache key options for an artifact format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		Columns:   o.Columns,
		Rows:      o.Rows,
		XOffsetMM: o.XOffsetMM,
		YOffsetMM: o.YOffsetMM,
	}
	if format == FormatPNG {
		k.Scale = o.PreviewScale
	}
	return k
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// InputHash is the SHA-256 of the input file.
	InputHash string

	// Layout describes the computed grid.
	Layout panel.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Files lists the paths written, in order.
	Files []string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline timing information.
type Stats struct {
	LoadTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	SVGHit bool
	PNGHit bool
}
