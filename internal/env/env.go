// Package env resolves the workspace directory layout used when composing
// build plans.
package env

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/mod/module"
)

// WorkDir returns the root of the forge workspace, under the user cache
// directory.
func WorkDir() string {
	return filepath.Join(xdg.CacheHome, "forge")
}

// SourceDir returns where the host extracts a target's source tree.
func SourceDir(name string) string {
	return filepath.Join(WorkDir(), "source", escape(name))
}

// BuildDir returns a target's working tree for in-tree builds, or its
// out-of-tree build directory.
func BuildDir(name string) string {
	return filepath.Join(WorkDir(), "build", escape(name))
}

// InstallDir returns a target's install prefix. The version keeps prefixes
// of different upstream releases apart.
func InstallDir(name, version string) string {
	dir := escape(name)
	if version != "" {
		dir += "@" + version
	}
	return filepath.Join(WorkDir(), "install", dir)
}

// escape makes a target name safe as a directory name. Target names are
// plain lowercase today; the escaping guards imported recipe sets that use
// versioned or mixed-case names.
func escape(name string) string {
	if escaped, err := module.EscapeVersion(name); err == nil {
		return escaped
	}
	return name
}
