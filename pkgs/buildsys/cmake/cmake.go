package cmake

import (
	"sort"

	"github.com/forgelab/forge/pkgs/buildsys"
	"github.com/forgelab/forge/recipe"
)

// CMake wraps common CMake build steps with chainable configuration.
type defineValue struct {
	value    string
	typeName string
}

type CMake struct {
	st         *recipe.BuildState
	SourceDir  string
	buildDir   string
	installDir string
	generator  string
	buildType  string
	toolchain  string
	Defines    map[string]defineValue
}

var _ buildsys.BuildSystem = (*CMake)(nil)

// New creates a new CMake helper bound to the given build state. Source,
// build, and install directories default to the state's.
func New(st *recipe.BuildState) *CMake {
	return &CMake{
		st:         st,
		SourceDir:  st.SourceDir,
		buildDir:   st.BuildDir,
		installDir: st.InstallDir,
		Defines:    map[string]defineValue{},
	}
}

func (c *CMake) Source(dir string) {
	c.SourceDir = dir
}

func (c *CMake) InstallDir(dir string) {
	c.installDir = dir
}

func (c *CMake) Generator(name string) *CMake {
	c.generator = name
	return c
}

func (c *CMake) BuildType(name string) *CMake {
	c.buildType = name
	return c
}

func (c *CMake) Toolchain(path string) *CMake {
	c.toolchain = path
	return c
}

func (c *CMake) Define(key, value string) *CMake {
	if c.Defines == nil {
		c.Defines = map[string]defineValue{}
	}
	c.Defines[key] = defineValue{value: value, typeName: "STRING"}
	return c
}

func (c *CMake) DefineBool(key string, value bool) *CMake {
	if c.Defines == nil {
		c.Defines = map[string]defineValue{}
	}
	if value {
		c.Defines[key] = defineValue{value: "ON", typeName: "BOOL"}
		return c
	}
	c.Defines[key] = defineValue{value: "OFF", typeName: "BOOL"}
	return c
}

func (c *CMake) Env(key, value string) {
	c.st.Environment.Set(key, value)
}

func (c *CMake) Configure(args ...string) error {
	buildDir := c.buildDir
	if buildDir == "" {
		buildDir = "build"
	}
	cmakeArgs := []string{"-S", c.SourceDir, "-B", buildDir}
	if c.generator != "" {
		cmakeArgs = append(cmakeArgs, "-G", c.generator)
	}
	if c.installDir != "" {
		c.Define("CMAKE_INSTALL_PREFIX", c.installDir)
	}
	if c.toolchain != "" {
		c.Define("CMAKE_TOOLCHAIN_FILE", c.toolchain)
	}
	if c.buildType != "" {
		c.Define("CMAKE_BUILD_TYPE", c.buildType)
	}
	cmakeArgs = append(cmakeArgs, c.definesArgs()...)
	cmakeArgs = append(cmakeArgs, args...)

	return c.st.Run("", "cmake", cmakeArgs...)
}

func (c *CMake) Build(args ...string) error {
	buildDir := c.buildDir
	if buildDir == "" {
		buildDir = "build"
	}
	cmdArgs := []string{"--build", buildDir}
	if c.buildType != "" {
		cmdArgs = append(cmdArgs, "--config", c.buildType)
	}
	cmdArgs = append(cmdArgs, args...)
	return c.st.Run("", "cmake", cmdArgs...)
}

func (c *CMake) Install(args ...string) error {
	buildDir := c.buildDir
	if buildDir == "" {
		buildDir = "build"
	}
	cmdArgs := []string{"--install", buildDir}
	if c.installDir != "" {
		cmdArgs = append(cmdArgs, "--prefix", c.installDir)
	}
	cmdArgs = append(cmdArgs, args...)
	return c.st.Run("", "cmake", cmdArgs...)
}

// OutputDir returns the install dir if set, otherwise the build dir.
func (c *CMake) OutputDir() string {
	if c.installDir != "" {
		return c.installDir
	}
	return c.buildDir
}

func (c *CMake) definesArgs() []string {
	if len(c.Defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Defines))
	for k := range c.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		def := c.Defines[k]
		if def.typeName != "" {
			args = append(args, "-D"+k+":"+def.typeName+"="+def.value)
			continue
		}
		args = append(args, "-D"+k+"="+def.value)
	}
	return args
}
