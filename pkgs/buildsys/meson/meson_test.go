package meson

import (
	"reflect"
	"testing"

	"github.com/forgelab/forge/recipe"
)

func newState() (*recipe.BuildState, *recipe.PlanRunner) {
	runner := &recipe.PlanRunner{}
	st := recipe.NewBuildState()
	st.SourceDir = "/work/source"
	st.BuildDir = "/work/build"
	st.InstallDir = "/opt/pkg"
	st.Runner = runner
	return st, runner
}

func TestConfigure(t *testing.T) {
	st, runner := newState()

	m := New(st)
	if err := m.Configure("-Dbuildtype=release"); err != nil {
		t.Fatal(err)
	}

	cmd := runner.Commands[0]
	if cmd.Name != "meson" {
		t.Fatalf("Name = %q, want meson", cmd.Name)
	}
	want := []string{"setup", "--prefix=/opt/pkg", "-Dbuildtype=release", "/work/build", "/work/source"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
}

func TestConfigureNoPrefix(t *testing.T) {
	st, runner := newState()

	m := New(st).NoPrefix()
	if err := m.Configure("-Dstatic_runtime=true"); err != nil {
		t.Fatal(err)
	}

	want := []string{"setup", "-Dstatic_runtime=true", "/work/build", "/work/source"}
	if got := runner.Commands[0].Args; !reflect.DeepEqual(got, want) {
		t.Fatalf("Args = %v, want %v", got, want)
	}
}

func TestBuildAndInstall(t *testing.T) {
	st, runner := newState()

	m := New(st)
	if err := m.Build(); err != nil {
		t.Fatal(err)
	}
	if err := m.Install(); err != nil {
		t.Fatal(err)
	}

	wantBuild := []string{"compile", "-C", "/work/build"}
	if got := runner.Commands[0].Args; !reflect.DeepEqual(got, wantBuild) {
		t.Fatalf("build Args = %v, want %v", got, wantBuild)
	}
	wantInstall := []string{"install", "-C", "/work/build"}
	if got := runner.Commands[1].Args; !reflect.DeepEqual(got, wantInstall) {
		t.Fatalf("install Args = %v, want %v", got, wantInstall)
	}
}
