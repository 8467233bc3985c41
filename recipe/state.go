package recipe

import (
	"fmt"
	"os"
	"path/filepath"
)

// BuildState carries everything a recipe's hooks need for one build
// invocation. The host prepares the directories and the runner; recipes read
// and mutate the state but share nothing with each other.
type BuildState struct {
	SourceDir  string // extracted upstream source tree
	BuildDir   string // working tree for in-tree builds, or the out-of-tree build dir
	InstallDir string // install prefix

	Architecture string // target architecture, e.g. "x86_64" or "arm64"
	Verbose      bool

	Options     *Options
	Environment Environment

	Source Source // declared by PrepareSource
	Runner Runner
}

// NewBuildState returns a state with empty options and environment.
func NewBuildState() *BuildState {
	return &BuildState{
		Options:     NewOptions(),
		Environment: make(Environment),
	}
}

// DownloadSource records the target's upstream source and forwards the
// declaration to the host for fetching, verification, and patching.
func (st *BuildState) DownloadSource(url, sha256 string, patches ...string) {
	st.Source = Source{URL: url, SHA256: sha256, Patches: patches}
	if st.Runner != nil {
		st.Runner.Fetch(st.Source)
	}
}

// HasSourceFile reports whether the source tree contains the given file or
// directory.
func (st *BuildState) HasSourceFile(path string) bool {
	_, err := os.Stat(filepath.Join(st.SourceDir, path))
	return err == nil
}

// Run hands a command to the host runner, carrying the state's environment
// overrides along.
func (st *BuildState) Run(dir, name string, args ...string) error {
	if st.Runner == nil {
		return fmt.Errorf("recipe: no runner attached to build state")
	}
	return st.Runner.Run(Command{
		Dir:  dir,
		Name: name,
		Args: args,
		Env:  st.Environment.Sorted(),
	})
}

// BinDir returns the install prefix's bin directory.
func (st *BuildState) BinDir() string {
	return filepath.Join(st.InstallDir, "bin")
}

// IncludeDir returns the install prefix's include directory.
func (st *BuildState) IncludeDir() string {
	return filepath.Join(st.InstallDir, "include")
}

// LibDir returns the install prefix's lib directory.
func (st *BuildState) LibDir() string {
	return filepath.Join(st.InstallDir, "lib")
}

// PkgConfigDir returns the install prefix's pkg-config directory.
func (st *BuildState) PkgConfigDir() string {
	return filepath.Join(st.InstallDir, "lib", "pkgconfig")
}
