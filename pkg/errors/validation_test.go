package errors

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "panel.svg", false},
		{"nested", "out/panel.svg", false},
		{"absolute", "/tmp/panel.svg", false},
		{"spaces", "my panel.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00.svg", true},
		{"newline", "foo\n.svg", true},
		{"control char", "foo\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath("output", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")

	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{"different file", filepath.Join(dir, "out.svg"), false},
		{"same file", in, true},
		{"same file unclean", filepath.Join(dir, "sub", "..", "in.svg"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistinctPaths(in, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDistinctPaths(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
		})
	}
}
