package gnumake

import (
	"path/filepath"

	"github.com/forgelab/forge/pkgs/buildsys"
	"github.com/forgelab/forge/recipe"
)

// Make drives sources built with a bare makefile. Commands run in-tree,
// inside the working tree (the state's build dir, plus an optional source
// subdirectory).
type Make struct {
	st         *recipe.BuildState
	SourceDir  string
	workDir    string
	installDir string
}

var _ buildsys.BuildSystem = (*Make)(nil)

// New creates a new Make helper bound to the given build state.
func New(st *recipe.BuildState) *Make {
	return &Make{
		st:         st,
		SourceDir:  st.SourceDir,
		workDir:    st.BuildDir,
		installDir: st.InstallDir,
	}
}

func (m *Make) Source(dir string) {
	m.SourceDir = dir
}

// SubDir narrows the working tree to a subdirectory, for sources whose
// makefile does not live at the root.
func (m *Make) SubDir(dir string) *Make {
	m.workDir = filepath.Join(m.workDir, dir)
	return m
}

func (m *Make) InstallDir(dir string) {
	m.installDir = dir
}

func (m *Make) Env(key, value string) {
	m.st.Environment.Set(key, value)
}

// Configure is a no-op: bare makefiles have no configure step.
func (m *Make) Configure(args ...string) error {
	return nil
}

// Build runs make with the given arguments in the working tree.
func (m *Make) Build(args ...string) error {
	return m.st.Run(m.workDir, "make", args...)
}

// Install runs make install (or the provided arguments) in the working tree.
func (m *Make) Install(args ...string) error {
	cmdArgs := []string{"install"}
	if len(args) > 0 {
		cmdArgs = args
	}
	return m.st.Run(m.workDir, "make", cmdArgs...)
}

// OutputDir returns the install dir if set, otherwise the working tree.
func (m *Make) OutputDir() string {
	if m.installDir != "" {
		return m.installDir
	}
	return m.workDir
}
