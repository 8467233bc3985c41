package autotools

import (
	"path/filepath"
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

	a := New(st)
	if err := a.Configure("--enable-static=yes", "--enable-shared=no"); err != nil {
		t.Fatal(err)
	}

	cmd := runner.Commands[0]
	if cmd.Dir != "/work/build" {
		t.Fatalf("Dir = %q, want /work/build", cmd.Dir)
	}
	if cmd.Name != "./configure" {
		t.Fatalf("Name = %q, want ./configure", cmd.Name)
	}
	want := []string{"--prefix=/opt/pkg", "--enable-static=yes", "--enable-shared=no"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Fatalf("Args = %v, want %v", cmd.Args, want)
	}
}

func TestSubDir(t *testing.T) {
	st, runner := newState()

	a := New(st).SubDir("xdelta3")
	if err := a.Autoreconf(); err != nil {
		t.Fatal(err)
	}
	if err := a.Configure(); err != nil {
		t.Fatal(err)
	}

	wantDir := filepath.Join("/work/build", "xdelta3")
	for i, cmd := range runner.Commands {
		if cmd.Dir != wantDir {
			t.Fatalf("command %d Dir = %q, want %q", i, cmd.Dir, wantDir)
		}
	}
	if got, want := runner.Commands[0].Name, "autoreconf"; got != want {
		t.Fatalf("Name = %q, want %q", got, want)
	}
	if got, want := runner.Commands[0].Args, []string{"--install"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Args = %v, want %v", got, want)
	}
}

func TestBuildAndInstall(t *testing.T) {
	st, runner := newState()

	a := New(st)
	if err := a.Build(); err != nil {
		t.Fatal(err)
	}
	if err := a.Install(); err != nil {
		t.Fatal(err)
	}
	if err := a.Install("install-exec-am", "install-nodist_includeHEADERS"); err != nil {
		t.Fatal(err)
	}

	if got := runner.Commands[0]; got.Name != "make" || len(got.Args) != 0 {
		t.Fatalf("build command = %+v, want bare make", got)
	}
	if got, want := runner.Commands[1].Args, []string{"install"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("install Args = %v, want %v", got, want)
	}
	wantGoals := []string{"install-exec-am", "install-nodist_includeHEADERS"}
	if got := runner.Commands[2].Args; !reflect.DeepEqual(got, wantGoals) {
		t.Fatalf("install goals = %v, want %v", got, wantGoals)
	}
}

func TestEnv(t *testing.T) {
	st, runner := newState()

	a := New(st)
	a.Env("CFLAGS", "-O2")
	if err := a.Build(); err != nil {
		t.Fatal(err)
	}

	want := []string{"CFLAGS=-O2"}
	if got := runner.Commands[0].Env; !reflect.DeepEqual(got, want) {
		t.Fatalf("Env = %v, want %v", got, want)
	}
}
