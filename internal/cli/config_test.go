package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/pipeline"
)

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, defaultConfigName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.IntP("columns", "x", 1, "")
	fs.IntP("rows", "y", 1, "")
	fs.String("x-offset", "", "")
	fs.String("y-offset", "", "")
	fs.String("preview", "", "")
	fs.Float64("preview-scale", 1, "")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[grid]
columns = 4
rows = 3
x_offset = "5.5cm"
y_offset = 20

[output]
path = "sheet.svg"
preview = "/tmp/sheet.png"
preview_scale = 2.5
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	var opts pipeline.Options
	if err := cfg.apply(testFlags(t), &opts); err != nil {
		t.Fatalf("apply() error: %v", err)
	}

	want := pipeline.Options{
		Columns:      4,
		Rows:         3,
		XOffsetMM:    55,
		YOffsetMM:    20,
		Output:       filepath.Join(dir, "sheet.svg"),
		Preview:      "/tmp/sheet.png",
		PreviewScale: 2.5,
	}
	if opts != want {
		t.Errorf("apply() = %+v, want %+v", opts, want)
	}
}

func TestConfigFlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[grid]
columns = 4
rows = 3
x_offset = "10mm"

[output]
path = "sheet.svg"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	opts := pipeline.Options{Columns: 2, Output: "cli.svg", Rows: 1}
	flags := testFlags(t, "-x", "2", "--output", "cli.svg")
	if err := cfg.apply(flags, &opts); err != nil {
		t.Fatalf("apply() error: %v", err)
	}

	if opts.Columns != 2 {
		t.Errorf("Columns = %d, want flag value 2", opts.Columns)
	}
	if opts.Output != "cli.svg" {
		t.Errorf("Output = %q, want flag value", opts.Output)
	}
	if opts.Rows != 3 {
		t.Errorf("Rows = %d, want config value 3", opts.Rows)
	}
	if opts.XOffsetMM != 10 {
		t.Errorf("XOffsetMM = %v, want config value 10", opts.XOffsetMM)
	}
}

func TestConfigUndefinedKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[grid]\nrows = 2\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	opts := pipeline.Options{Columns: 1, PreviewScale: 1}
	if err := cfg.apply(testFlags(t), &opts); err != nil {
		t.Fatalf("apply() error: %v", err)
	}
	if opts.Columns != 1 || opts.Rows != 2 || opts.PreviewScale != 1 {
		t.Errorf("apply() = %+v", opts)
	}
}

func TestConfigUndecoded(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[grid]\ncolumns = 2\nspacing = 3\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	keys := cfg.undecoded()
	if len(keys) != 1 || keys[0] != "grid.spacing" {
		t.Errorf("undecoded() = %v, want [grid.spacing]", keys)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("loadConfig() = %+v, want nil without panelize.toml", cfg)
	}
}

func TestLoadConfigDefaultPresent(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[grid]\ncolumns = 5\n")
	chdir(t, dir)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg == nil || cfg.Grid.Columns != 5 {
		t.Errorf("loadConfig() = %+v, want columns 5", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[grid\ncolumns = 2"},
		{"wrong type", "[grid]\ncolumns = \"two\""},
		{"bad offset unit", "[grid]\nx_offset = \"3in\""},
		{"bad offset type", "[grid]\nx_offset = true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := loadConfig(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("loadConfig() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
		}
	})
}

func TestConfigRejectsBadPreviewScale(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\npreview_scale = 0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	var opts pipeline.Options
	if err := cfg.apply(testFlags(t), &opts); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("apply() error = %v, want code %v", err, errors.ErrCodeInvalidConfig)
	}
}
