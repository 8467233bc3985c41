package recipe

import (
	"reflect"
	"runtime"
	"testing"
)

func TestEnvironmentAppendFlag(t *testing.T) {
	env := make(Environment)

	env.AppendFlag("CFLAGS", "-O3")
	if got := env.Get("CFLAGS"); got != "-O3" {
		t.Fatalf("CFLAGS = %q, want %q", got, "-O3")
	}

	env.AppendFlag("CFLAGS", "-fPIC")
	if got := env.Get("CFLAGS"); got != "-O3 -fPIC" {
		t.Fatalf("CFLAGS = %q, want %q", got, "-O3 -fPIC")
	}
}

func TestEnvironmentPrependPath(t *testing.T) {
	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}

	env := make(Environment)
	env.PrependPath("PKG_CONFIG_PATH", "/a")
	env.PrependPath("PKG_CONFIG_PATH", "/b")

	if got, want := env.Get("PKG_CONFIG_PATH"), "/b"+sep+"/a"; got != want {
		t.Fatalf("PKG_CONFIG_PATH = %q, want %q", got, want)
	}
}

func TestEnvironmentSorted(t *testing.T) {
	env := Environment{
		"LDFLAGS": "-L/opt/lib",
		"CFLAGS":  "-O2",
	}

	want := []string{"CFLAGS=-O2", "LDFLAGS=-L/opt/lib"}
	if got := env.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
}

func TestEnvironmentClone(t *testing.T) {
	env := Environment{"CFLAGS": "-O2"}
	clone := env.Clone()
	clone.Set("CFLAGS", "-O0")

	if got := env.Get("CFLAGS"); got != "-O2" {
		t.Fatalf("original mutated through clone: CFLAGS = %q", got)
	}
}
