package env

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLayout(t *testing.T) {
	root := WorkDir()
	if filepath.Base(root) != "forge" {
		t.Fatalf("WorkDir() = %q, want a forge directory", root)
	}

	if got, want := SourceDir("bzip2"), filepath.Join(root, "source", "bzip2"); got != want {
		t.Fatalf("SourceDir() = %q, want %q", got, want)
	}
	if got, want := BuildDir("bzip2"), filepath.Join(root, "build", "bzip2"); got != want {
		t.Fatalf("BuildDir() = %q, want %q", got, want)
	}
}

func TestInstallDir(t *testing.T) {
	root := WorkDir()

	if got, want := InstallDir("bzip2", "1.0.8"), filepath.Join(root, "install", "bzip2@1.0.8"); got != want {
		t.Fatalf("InstallDir() = %q, want %q", got, want)
	}
	if got, want := InstallDir("bzip2", ""), filepath.Join(root, "install", "bzip2"); got != want {
		t.Fatalf("InstallDir() without version = %q, want %q", got, want)
	}
}

func TestEscape(t *testing.T) {
	got := InstallDir("FreeImage", "3.18.0")
	if strings.Contains(filepath.Base(got), "F") {
		t.Fatalf("InstallDir() = %q, upper case not escaped", got)
	}
}
