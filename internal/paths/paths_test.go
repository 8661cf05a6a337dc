package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")

	if err := EnsureDir(nested, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("created directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
	if got := info.Mode().Perm(); got != DefaultDirPerm {
		t.Errorf("permissions = %o, want %o", got, DefaultDirPerm)
	}

	// Idempotent on existing directory
	if err := EnsureDir(nested, 0); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	got := ConfigFile()
	if !strings.HasSuffix(got, filepath.Join(AppName, "config.toml")) {
		t.Errorf("ConfigFile() = %q, want %s/config.toml suffix", got, AppName)
	}
	if !strings.HasPrefix(got, ConfigHome()) {
		t.Errorf("ConfigFile() = %q, want prefix %q", got, ConfigHome())
	}
}
