package autotools

import (
	"path/filepath"

	"github.com/forgelab/forge/pkgs/buildsys"
	"github.com/forgelab/forge/recipe"
)

// AutoTools wraps common Autotools build steps with chainable configuration.
// Builds run in-tree: the configure script and make are invoked inside the
// working tree (the state's build dir, plus an optional source subdirectory).
type AutoTools struct {
	st         *recipe.BuildState
	SourceDir  string
	workDir    string
	installDir string
}

var _ buildsys.BuildSystem = (*AutoTools)(nil)

// New creates a new AutoTools helper bound to the given build state.
func New(st *recipe.BuildState) *AutoTools {
	return &AutoTools{
		st:         st,
		SourceDir:  st.SourceDir,
		workDir:    st.BuildDir,
		installDir: st.InstallDir,
	}
}

func (a *AutoTools) Source(dir string) {
	a.SourceDir = dir
}

// SubDir narrows the working tree to a subdirectory, for sources whose
// configure script does not live at the root.
func (a *AutoTools) SubDir(dir string) *AutoTools {
	a.workDir = filepath.Join(a.workDir, dir)
	return a
}

func (a *AutoTools) InstallDir(dir string) {
	a.installDir = dir
}

func (a *AutoTools) Env(key, value string) {
	a.st.Environment.Set(key, value)
}

// Autoreconf regenerates the configure script before configuration, for
// sources that ship without one.
func (a *AutoTools) Autoreconf() error {
	return a.st.Run(a.workDir, "autoreconf", "--install")
}

// Configure runs ./configure with the install prefix and the given flags.
func (a *AutoTools) Configure(args ...string) error {
	configArgs := []string{}
	if a.installDir != "" {
		configArgs = append(configArgs, "--prefix="+a.installDir)
	}
	configArgs = append(configArgs, args...)

	return a.st.Run(a.workDir, "./configure", configArgs...)
}

// Build runs make (or the provided arguments) in the working tree.
func (a *AutoTools) Build(args ...string) error {
	return a.st.Run(a.workDir, "make", args...)
}

// Install runs make install (or the provided arguments) in the working tree.
func (a *AutoTools) Install(args ...string) error {
	cmdArgs := []string{"install"}
	if len(args) > 0 {
		cmdArgs = args
	}
	return a.st.Run(a.workDir, "make", cmdArgs...)
}

// OutputDir returns the install dir if set, otherwise the working tree.
func (a *AutoTools) OutputDir() string {
	if a.installDir != "" {
		return a.installDir
	}
	return a.workDir
}
