package recipe

import (
	"runtime"
	"sort"
	"strings"
)

// Environment holds per-build environment variable overrides. The host merges
// them over the process environment when it executes a command.
type Environment map[string]string

func (e Environment) Set(key, value string) {
	e[key] = value
}

func (e Environment) Get(key string) string {
	return e[key]
}

// AppendFlag appends a flag to a variable, space-separated (CFLAGS style).
func (e Environment) AppendFlag(key, flag string) {
	current := e[key]
	if current == "" {
		e[key] = flag
	} else {
		e[key] = strings.TrimSpace(current + " " + flag)
	}
}

// PrependPath prepends a directory to a variable using the platform's path
// list separator (PKG_CONFIG_PATH style).
func (e Environment) PrependPath(key, dir string) {
	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}
	current := e[key]
	if current == "" {
		e[key] = dir
	} else {
		e[key] = dir + sep + current
	}
}

// Sorted renders the environment as sorted KEY=value pairs.
func (e Environment) Sorted() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

// Clone returns a copy of the environment.
func (e Environment) Clone() Environment {
	clone := make(Environment, len(e))
	for k, v := range e {
		clone[k] = v
	}
	return clone
}
