package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/panel"
	"github.com/matzehuels/panelize/pkg/pipeline"
	"github.com/matzehuels/panelize/pkg/units"
)

// panelizeFlags holds the root command's flags before they are resolved
// against the config file.
type panelizeFlags struct {
	output       string
	columns      int
	rows         int
	xOffset      string
	yOffset      string
	preview      string
	previewScale float64
	config       string
	noCache      bool
	dryRun       bool
}

// panelizeCommand creates the root command, which panelizes one SVG file.
func (c *CLI) panelizeCommand() *cobra.Command {
	f := panelizeFlags{
		columns:      pipeline.DefaultColumns,
		rows:         pipeline.DefaultRows,
		previewScale: pipeline.DefaultPreviewScale,
	}

	cmd := &cobra.Command{
		Use:   "panelize INPUT",
		Short: "Panelize lays out copies of an SVG on a grid",
		Long: `Panelize replicates the content of an SVG document across a grid of
columns and rows and writes one enlarged document, e.g. to cut or print many
copies of a design from a single sheet.

The input must declare width and height in mm or cm and a four-integer
viewBox. Offsets are the distance between copies in millimetres; a bare
number is taken as millimetres.

Settings can also be read from a TOML file (--config, or panelize.toml in
the working directory). Flags override the file.`,
		Example: `  panelize sticker.svg -o sheet.svg -x 4 -y 3 --x-offset 55mm --y-offset 5.5cm
  panelize sticker.svg -o sheet.svg -x 2 --preview sheet.png --preview-scale 2
  panelize sticker.svg -x 10 -y 10 --x-offset 20 --dry-run`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args[0], f)
			if err != nil {
				return err
			}
			return c.runPanelize(cmd.Context(), opts, f.noCache)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output SVG file")
	cmd.Flags().IntVarP(&f.columns, "columns", "x", f.columns, "number of copies along the x axis")
	cmd.Flags().IntVarP(&f.rows, "rows", "y", f.rows, "number of copies along the y axis")
	cmd.Flags().StringVar(&f.xOffset, "x-offset", "", "distance between columns (e.g. 55mm, 5.5cm, 55)")
	cmd.Flags().StringVar(&f.yOffset, "y-offset", "", "distance between rows (e.g. 55mm, 5.5cm, 55)")
	cmd.Flags().StringVar(&f.preview, "preview", "", "also write a PNG preview of the panel")
	cmd.Flags().Float64Var(&f.previewScale, "preview-scale", f.previewScale, "preview pixels per view box unit")
	cmd.Flags().StringVar(&f.config, "config", "", "TOML config file (default ./"+defaultConfigName+" if present)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the layout without writing files")

	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"svg"}, cobra.ShellCompDirectiveFilterFileExt
	}
	_ = cmd.MarkFlagFilename("output", "svg")
	_ = cmd.MarkFlagFilename("preview", "png")
	_ = cmd.MarkFlagFilename("config", "toml")

	return cmd
}

// resolveOptions merges flags and the config file into pipeline options.
func (c *CLI) resolveOptions(cmd *cobra.Command, input string, f panelizeFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Input:        input,
		Output:       f.output,
		Columns:      f.columns,
		Rows:         f.rows,
		Preview:      f.preview,
		PreviewScale: f.previewScale,
		DryRun:       f.dryRun,
	}

	if !(f.previewScale > 0) {
		return opts, errors.New(errors.ErrCodePreview, "--preview-scale must be positive, got %v", f.previewScale)
	}

	var err error
	if opts.XOffsetMM, err = units.ParseOffset(f.xOffset); err != nil {
		return opts, fmt.Errorf("--x-offset: %w", err)
	}
	if opts.YOffsetMM, err = units.ParseOffset(f.yOffset); err != nil {
		return opts, fmt.Errorf("--y-offset: %w", err)
	}

	cfg, err := loadConfig(f.config)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		c.Logger.Debug("loaded config", "path", cfg.path)
		if keys := cfg.undecoded(); len(keys) > 0 {
			c.Logger.Warn("unknown config keys", "path", cfg.path, "keys", strings.Join(keys, ", "))
		}
		if err := cfg.apply(cmd.Flags(), &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// runPanelize executes the pipeline and prints the result.
func (c *CLI) runPanelize(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Panelizing %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Panelize failed")
		return err
	}
	spinner.Stop()
	prog.done("panelized", "input", opts.Input, "run", result.RunID)

	if opts.DryRun {
		printLayout(opts.Input, result.Layout)
		return nil
	}

	printSuccess("Panelized %s", opts.Input)
	for _, path := range result.Files {
		printFile(path)
	}
	printStats(result.Layout, result.CacheInfo.SVGHit)
	return nil
}

// printLayout prints the grid computed by a dry run.
func printLayout(input string, l panel.Layout) {
	xvb, yvb := panel.ViewBoxOffsets(l.Grid, l.Input)

	printInfo("Dry run for %s, nothing written", input)
	printKeyValue("grid", l.Grid.String())
	printKeyValue("copies", fmt.Sprintf("%d × %d elements", len(l.Cells), l.Children))
	printKeyValue("input", formatDimensions(l.Input.WidthMM, l.Input.HeightMM, l.Input.ViewBox.String()))
	printKeyValue("output", formatDimensions(l.Output.WidthMM, l.Output.HeightMM, l.Output.ViewBox.String()))
	printKeyValue("offset", fmt.Sprintf("%s, %s view box units", units.FormatNumber(xvb), units.FormatNumber(yvb)))
}

func formatDimensions(w, h float64, viewBox string) string {
	return fmt.Sprintf("%s × %s (viewBox %s)", units.FormatLength(w), units.FormatLength(h), viewBox)
}
