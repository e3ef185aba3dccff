package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panelize/pkg/observability"
)

// LogHooks reports pipeline and cache events as debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// LogHooks returns hooks that log through the CLI's logger. main registers
// them with the observability package.
func (c *CLI) LogHooks() *LogHooks {
	return &LogHooks{logger: c.Logger}
}

func (h *LogHooks) OnStageStart(ctx context.Context, stage string) {}

func (h *LogHooks) OnStageComplete(ctx context.Context, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "stage", stage, "duration", d, "err", err)
		return
	}
	h.logger.Debug("stage done", "stage", stage, "duration", d)
}

func (h *LogHooks) OnPanelized(ctx context.Context, groups, children int) {
	h.logger.Debug("panelized", "groups", groups, "elements", groups*children)
}

func (h *LogHooks) OnCacheHit(ctx context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h *LogHooks) OnCacheMiss(ctx context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h *LogHooks) OnCacheSet(ctx context.Context, format string, size int) {
	h.logger.Debug("cache store", "format", format, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*LogHooks)(nil)
	_ observability.CacheHooks    = (*LogHooks)(nil)
)
