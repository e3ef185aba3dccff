package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/panelize/pkg/cache"
	"github.com/matzehuels/panelize/pkg/observability"
	"github.com/matzehuels/panelize/pkg/panel"
	"github.com/matzehuels/panelize/pkg/svgdoc"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs load → plan → render → write.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	done := track(ctx, observability.StageLoad)
	in, err := Load(opts.Input)
	result.Stats.LoadTime = done(err)
	if err != nil {
		return nil, err
	}
	result.InputHash = in.Hash

	// Stage 2: Plan
	done = track(ctx, observability.StagePlan)
	layout, err := panel.Plan(in.Doc, opts.Grid())
	done(err)
	if err != nil {
		return nil, err
	}
	result.Layout = layout

	logger.Debug("loaded document",
		"path", opts.Input,
		"size", fmt.Sprintf("%sx%s", formatMM(layout.Input.WidthMM), formatMM(layout.Input.HeightMM)),
		"viewbox", layout.Input.ViewBox.String(),
		"children", layout.Children,
		"duration", result.Stats.LoadTime)
	xvb, yvb := panel.ViewBoxOffsets(layout.Grid, layout.Input)
	logger.Debug("grid offsets", "grid", layout.Grid.String(), "x", xvb, "y", yvb)

	if opts.DryRun {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	done = track(ctx, observability.StageRender)
	svgData, outDoc, hit, err := r.renderSVG(ctx, in, opts)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	result.Artifacts[FormatSVG] = svgData
	result.CacheInfo.SVGHit = hit
	observability.Pipeline().OnPanelized(ctx, len(layout.Cells), layout.Children)

	if opts.Preview != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		done = track(ctx, observability.StagePreview)
		pngData, hit, err := r.renderPNG(ctx, in, outDoc, svgData, opts)
		done(err)
		if err != nil {
			return nil, fmt.Errorf("render preview: %w", err)
		}
		result.Artifacts[FormatPNG] = pngData
		result.CacheInfo.PNGHit = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered panel",
		"groups", len(layout.Cells),
		"size", fmt.Sprintf("%sx%s", formatMM(layout.Output.WidthMM), formatMM(layout.Output.HeightMM)),
		"cached", result.CacheInfo.SVGHit,
		"duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Write
	done = track(ctx, observability.StageWrite)
	err = r.write(opts, result)
	result.Stats.WriteTime = done(err)
	if err != nil {
		return nil, err
	}

	logger.Debug("wrote files", "files", result.Files, "duration", result.Stats.WriteTime)

	return result, nil
}

// write stores the rendered artifacts, the panel first.
func (r *Runner) write(opts Options, result *Result) error {
	if err := svgdoc.WriteFile(opts.Output, result.Artifacts[FormatSVG]); err != nil {
		return err
	}
	result.Files = append(result.Files, opts.Output)
	if png, ok := result.Artifacts[FormatPNG]; ok {
		if err := svgdoc.WriteFile(opts.Preview, png); err != nil {
			return err
		}
		result.Files = append(result.Files, opts.Preview)
	}
	return nil
}

// track reports a stage start and returns a func that reports its
// completion and returns the elapsed time.
func track(ctx context.Context, stage string) func(error) time.Duration {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, stage)
	start := time.Now()
	return func(err error) time.Duration {
		d := time.Since(start)
		hooks.OnStageComplete(ctx, stage, d, err)
		return d
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
