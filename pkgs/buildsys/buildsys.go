package buildsys

// BuildSystem captures shared capabilities of build helpers (CMake,
// Autotools, Meson, plain make). It keeps the common lifecycle and env setup;
// implementations add their own extras. Helpers compose commands against the
// build state's runner and never spawn processes themselves.
type BuildSystem interface {
	// Basic paths.
	Source(dir string)
	InstallDir(dir string)

	// Environment helper.
	Env(key, val string)

	// Lifecycle.
	Configure(args ...string) error
	Build(args ...string) error
	Install(args ...string) error

	// Where artifacts land.
	OutputDir() string
}
