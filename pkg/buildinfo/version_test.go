package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v0.3.1"
	defer func() { Version = old }()

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v0.3.1\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "version: v0.3.1") {
		t.Errorf("String() = %q", String())
	}
}

func TestCacheScope(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	tests := []struct {
		version, commit string
		want            string
	}{
		{"v1.2.0", "abc123", "v1.2.0:"},
		{"dev", "abc123", "dev+abc123:"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			if got := CacheScope(); got != tt.want {
				t.Errorf("CacheScope() = %q, want %q", got, tt.want)
			}
		})
	}
}
