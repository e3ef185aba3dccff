package pipeline

import (
	"context"
	"image/color"

	"github.com/matzehuels/panelize/pkg/cache"
	"github.com/matzehuels/panelize/pkg/observability"
	"github.com/matzehuels/panelize/pkg/panel"
	"github.com/matzehuels/panelize/pkg/preview"
	"github.com/matzehuels/panelize/pkg/svgdoc"
)

// Render panelizes doc and serializes the result.
func Render(doc *svgdoc.Document, g panel.Grid) ([]byte, *svgdoc.Document, error) {
	out, _, err := panel.Apply(doc, g)
	if err != nil {
		return nil, nil, err
	}
	data, err := out.Bytes()
	if err != nil {
		return nil, nil, err
	}
	return data, out, nil
}

// renderSVG returns the panel SVG, from cache when possible. The returned
// document is nil on a cache hit.
func (r *Runner) renderSVG(ctx context.Context, in *Input, opts Options) ([]byte, *svgdoc.Document, bool, error) {
	key := r.Keyer.ArtifactKey(in.Hash, opts.ArtifactKeyOpts(FormatSVG))
	if data, ok := r.lookup(ctx, key, FormatSVG, opts.Refresh); ok {
		return data, nil, true, nil
	}

	data, out, err := Render(in.Doc, opts.Grid())
	if err != nil {
		return nil, nil, false, err
	}
	r.store(ctx, key, FormatSVG, data)
	return data, out, false, nil
}

// renderPNG returns the preview PNG, from cache when possible. out may be
// nil, in which case svgData is parsed again.
func (r *Runner) renderPNG(ctx context.Context, in *Input, out *svgdoc.Document, svgData []byte, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(in.Hash, opts.ArtifactKeyOpts(FormatPNG))
	if data, ok := r.lookup(ctx, key, FormatPNG, opts.Refresh); ok {
		return data, true, nil
	}

	if out == nil {
		doc, err := svgdoc.Parse(svgData)
		if err != nil {
			return nil, false, err
		}
		out = doc
	}

	data, err := preview.RenderPNG(out, preview.Options{
		Scale:      opts.PreviewScale,
		Background: color.White,
	})
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, key, FormatPNG, data)
	return data, false, nil
}

// lookup returns a cached artifact. Read errors count as misses.
func (r *Runner) lookup(ctx context.Context, key, format string, refresh bool) ([]byte, bool) {
	hooks := observability.Cache()
	if refresh {
		hooks.OnCacheMiss(ctx, format)
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "format", format, "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, format)
		return nil, false
	}
	hooks.OnCacheHit(ctx, format)
	return data, true
}

// store caches a fresh artifact. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key, format string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Debug("cache write failed", "format", format, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
}
