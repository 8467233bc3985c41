package recipe

// -----------------------------------------------------------------------------

// Source declares where a target's upstream code comes from and how the host
// verifies it after fetching. Recipes only declare sources; downloading,
// checksum verification, and patch application are host concerns.
type Source struct {
	URL     string   `json:"url" yaml:"url"`
	SHA256  string   `json:"sha256" yaml:"sha256"`
	Patches []string `json:"patches,omitempty" yaml:"patches,omitempty"`
}

// Command is a single build step composed by a recipe. The host executes it;
// this module never spawns processes itself.
type Command struct {
	Dir  string   // working directory
	Name string   // executable name
	Args []string // arguments, without the executable
	Env  []string // environment overrides as sorted KEY=value pairs
}

// String renders the command the way a shell transcript would show it.
func (c Command) String() string {
	s := c.Name
	for _, arg := range c.Args {
		s += " " + arg
	}
	return s
}

// -----------------------------------------------------------------------------

// Runner is the execution side of the host contract. The orchestration host
// supplies an implementation that fetches sources and runs build commands;
// this repository ships only PlanRunner.
type Runner interface {
	// Fetch is handed the declared source of the target being built.
	Fetch(src Source) error

	// Run executes one build command.
	Run(cmd Command) error
}

// PlanRunner records every source declaration and command it is given,
// without touching the network or spawning processes. It backs `forge plan`
// and the package tests.
type PlanRunner struct {
	Sources  []Source
	Commands []Command
}

func (p *PlanRunner) Fetch(src Source) error {
	p.Sources = append(p.Sources, src)
	return nil
}

func (p *PlanRunner) Run(cmd Command) error {
	p.Commands = append(p.Commands, cmd)
	return nil
}

// -----------------------------------------------------------------------------

// Target is the hook set every recipe implements for the host: declare the
// source, recognize an extracted tree, set up build options, compose the
// build commands, and fix up installed artifacts.
type Target interface {
	Name() string

	// PrepareSource declares the upstream source on the build state.
	PrepareSource(st *BuildState)

	// Detect reports whether the source tree in st belongs to this target.
	Detect(st *BuildState) bool

	// Configure sets build options and composes the configure step.
	Configure(st *BuildState) error

	// Build composes the compile step.
	Build(st *BuildState) error

	// PostBuild installs and fixes up build artifacts.
	PostBuild(st *BuildState) error

	// MultiPlatform reports whether the target is built once per architecture.
	MultiPlatform() bool
}
