package store

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/git-alias/internal/errors"
)

// fileStore returns a GitConfig bound to a throwaway config file, so the
// tests never touch the developer's real git configuration.
func fileStore(t *testing.T) *GitConfig {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	return NewGitConfigFile(filepath.Join(t.TempDir(), "config"))
}

func TestGitConfig_RoundTrip(t *testing.T) {
	s := fileStore(t)

	body := `!if [ $# -eq 1 ]; then set -- origin $1; fi; git fetch "${1}"`
	if err := s.Set("pr", body, false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get("pr")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != body {
		t.Errorf("Get() = %q, want %q", got, body)
	}
}

func TestGitConfig_QuotingSurvivesStorage(t *testing.T) {
	s := fileStore(t)

	// Bodies with embedded quotes rely on git's own config escaping.
	body := `!echo 'Usage: git pr [<remote>] <pr>'; git log -1 "pull/${1}/${2}"`
	if err := s.Set("pr", body, false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get("pr")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != body {
		t.Errorf("body corrupted by storage:\n got %q\nwant %q", got, body)
	}
}

func TestGitConfig_SetConflict(t *testing.T) {
	s := fileStore(t)

	if err := s.Set("st", "status -sb", false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	err := s.Set("st", "status", false)
	if !errors.Is(err, errors.ErrConflict) {
		t.Fatalf("Set() on existing name error = %v, want ErrConflict", err)
	}

	// The original entry must be untouched
	got, err := s.Get("st")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "status -sb" {
		t.Errorf("conflicting Set changed the entry: %q", got)
	}

	if err := s.Set("st", "status", true); err != nil {
		t.Fatalf("Set(overwrite) error = %v", err)
	}
	got, _ = s.Get("st")
	if got != "status" {
		t.Errorf("overwrite did not replace the entry: %q", got)
	}
}

func TestGitConfig_NotFound(t *testing.T) {
	s := fileStore(t)
	if err := s.Set("st", "status -sb", false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := s.Get("missing"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.Remove("missing"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Remove(missing) error = %v, want ErrNotFound", err)
	}
}

func TestGitConfig_List(t *testing.T) {
	s := fileStore(t)

	for _, name := range []string{"fix", "pr", "tracking"} {
		if err := s.Set(name, "!"+name, false); err != nil {
			t.Fatalf("Set(%q) error = %v", name, err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := map[string]bool{"fix": true, "pr": true, "tracking": true}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %d names", names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("List() returned unexpected name %q", n)
		}
	}
}

func TestGitConfig_MissingFileListsEmpty(t *testing.T) {
	s := fileStore(t)

	names, err := s.List()
	if err != nil {
		t.Fatalf("List() on missing config file error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestGitConfig_RemoveThenGone(t *testing.T) {
	s := fileStore(t)

	if err := s.Set("st", "status -sb", false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Remove("st"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := s.Get("st"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Get() after Remove error = %v, want ErrNotFound", err)
	}
}
