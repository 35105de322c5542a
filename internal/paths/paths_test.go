package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	return dir
}

func TestPaths(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config", GetConfigPath(), filepath.Join(dir, "config", "sideswipe", "config.toml")},
		{"database", GetDatabasePath(), filepath.Join(dir, "state", "sideswipe", "state.db")},
		{"log", GetLogPath(), filepath.Join(dir, "state", "sideswipe", "sideswipe.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnsureStateDir(t *testing.T) {
	isolate(t)

	dir, err := EnsureStateDir()
	if err != nil {
		t.Fatalf("EnsureStateDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() || info.Mode().Perm() != 0700 {
		t.Errorf("state dir mode = %v, want drwx------", info.Mode())
	}
}
