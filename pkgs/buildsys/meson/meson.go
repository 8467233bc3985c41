package meson

import (
	"github.com/forgelab/forge/pkgs/buildsys"
	"github.com/forgelab/forge/recipe"
)

// Meson wraps common Meson build steps with chainable configuration.
type Meson struct {
	st         *recipe.BuildState
	SourceDir  string
	buildDir   string
	installDir string
	usePrefix  bool
}

var _ buildsys.BuildSystem = (*Meson)(nil)

// New creates a new Meson helper bound to the given build state.
func New(st *recipe.BuildState) *Meson {
	return &Meson{
		st:         st,
		SourceDir:  st.SourceDir,
		buildDir:   st.BuildDir,
		installDir: st.InstallDir,
		usePrefix:  true,
	}
}

func (m *Meson) Source(dir string) {
	m.SourceDir = dir
}

func (m *Meson) InstallDir(dir string) {
	m.installDir = dir
}

// NoPrefix drops --prefix from setup, for projects that resolve their own
// install layout.
func (m *Meson) NoPrefix() *Meson {
	m.usePrefix = false
	return m
}

func (m *Meson) Env(key, value string) {
	m.st.Environment.Set(key, value)
}

// Configure runs meson setup with -Dkey=value options.
func (m *Meson) Configure(args ...string) error {
	setupArgs := []string{"setup"}
	if m.usePrefix && m.installDir != "" {
		setupArgs = append(setupArgs, "--prefix="+m.installDir)
	}
	setupArgs = append(setupArgs, args...)
	setupArgs = append(setupArgs, m.buildDir, m.SourceDir)

	return m.st.Run("", "meson", setupArgs...)
}

// Build runs meson compile in the build directory.
func (m *Meson) Build(args ...string) error {
	cmdArgs := []string{"compile", "-C", m.buildDir}
	cmdArgs = append(cmdArgs, args...)
	return m.st.Run("", "meson", cmdArgs...)
}

// Install runs meson install in the build directory.
func (m *Meson) Install(args ...string) error {
	cmdArgs := []string{"install", "-C", m.buildDir}
	cmdArgs = append(cmdArgs, args...)
	return m.st.Run("", "meson", cmdArgs...)
}

// OutputDir returns the install dir if set, otherwise the build dir.
func (m *Meson) OutputDir() string {
	if m.installDir != "" {
		return m.installDir
	}
	return m.buildDir
}
