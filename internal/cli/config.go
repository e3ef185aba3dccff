package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/pipeline"
	"github.com/matzehuels/panelize/pkg/units"
)

// fileConfig mirrors panelize.toml:
//
//	[grid]
//	columns = 4
//	rows = 3
//	x_offset = "55mm"
//	y_offset = 55
//
//	[output]
//	path = "sheet.svg"
//	preview = "sheet.png"
//	preview_scale = 2.0
type fileConfig struct {
	Grid struct {
		Columns int    `toml:"columns"`
		Rows    int    `toml:"rows"`
		XOffset offset `toml:"x_offset"`
		YOffset offset `toml:"y_offset"`
	} `toml:"grid"`

	Output struct {
		Path         string  `toml:"path"`
		Preview      string  `toml:"preview"`
		PreviewScale float64 `toml:"preview_scale"`
	} `toml:"output"`

	path string
	meta toml.MetaData
}

// offset is a millimetre value written either as a length string or as a
// bare number.
type offset float64

// UnmarshalTOML implements toml.Unmarshaler.
func (o *offset) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		mm, err := units.ParseOffset(v)
		if err != nil {
			return err
		}
		*o = offset(mm)
	case int64:
		*o = offset(v)
	case float64:
		*o = offset(v)
	default:
		return fmt.Errorf("offset must be a length or a number, got %T", v)
	}
	return nil
}

// loadConfig reads the config file at path. An empty path falls back to
// panelize.toml in the working directory, which may be absent.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	cfg := &fileConfig{path: path}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: failed to parse TOML", path)
	}
	cfg.meta = meta
	return cfg, nil
}

// undecoded lists keys in the file that panelize does not know.
func (c *fileConfig) undecoded() []string {
	var keys []string
	for _, k := range c.meta.Undecoded() {
		keys = append(keys, k.String())
	}
	return keys
}

// resolve makes a path from the config file relative to the file's directory.
func (c *fileConfig) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}

// apply copies config values into opts for every setting whose flag was not
// given on the command line.
func (c *fileConfig) apply(flags *pflag.FlagSet, opts *pipeline.Options) error {
	if c == nil {
		return nil
	}
	set := func(flag string, key ...string) bool {
		return !flags.Changed(flag) && c.meta.IsDefined(key...)
	}

	if set("columns", "grid", "columns") {
		opts.Columns = c.Grid.Columns
	}
	if set("rows", "grid", "rows") {
		opts.Rows = c.Grid.Rows
	}
	if set("x-offset", "grid", "x_offset") {
		opts.XOffsetMM = float64(c.Grid.XOffset)
	}
	if set("y-offset", "grid", "y_offset") {
		opts.YOffsetMM = float64(c.Grid.YOffset)
	}
	if set("output", "output", "path") {
		opts.Output = c.resolve(c.Output.Path)
	}
	if set("preview", "output", "preview") {
		opts.Preview = c.resolve(c.Output.Preview)
	}
	if set("preview-scale", "output", "preview_scale") {
		if c.Output.PreviewScale <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: preview_scale must be positive", c.path)
		}
		opts.PreviewScale = c.Output.PreviewScale
	}
	return nil
}
