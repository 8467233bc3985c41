// Package pcfile rewrites pkg-config descriptors and other small text
// artifacts produced by native builds.
package pcfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LineFunc transforms one line of a text file. The line is passed without its
// trailing newline. Returning the empty string for a non-empty input drops
// the line; the returned text may contain newlines to expand a line into
// several.
type LineFunc func(line string) string

// ProcessLines applies fn to every line of src and returns the rewritten
// content. A trailing newline in src is preserved.
func ProcessLines(src []byte, fn LineFunc) []byte {
	text := string(src)
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		replaced := fn(line)
		if replaced == "" && line != "" {
			continue
		}
		out = append(out, replaced)
	}

	result := strings.Join(out, "\n")
	if trailing && result != "" {
		result += "\n"
	}
	return []byte(result)
}

// UpdateFile rewrites the file at path line by line. The file is left
// untouched when fn changes nothing.
func UpdateFile(path string, fn LineFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	updated := ProcessLines(data, fn)
	if string(updated) == string(data) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, updated, info.Mode().Perm())
}

// PathLineFunc transforms one line of the named file.
type PathLineFunc func(path, line string) string

// ProcessDir applies fn to every .pc file below dir. A missing dir is not an
// error: targets without pkg-config descriptors simply have nothing to fix.
func ProcessDir(dir string, fn PathLineFunc) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pc" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		err := UpdateFile(path, func(line string) string {
			return fn(path, line)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// Variable is one var=value assignment at the top of a .pc file.
type Variable struct {
	Name  string
	Value string
}

// File models a pkg-config descriptor for generation. Zero-valued fields are
// omitted from the output.
type File struct {
	Variables []Variable

	Name            string
	Description     string
	URL             string
	Version         string
	Requires        string
	RequiresPrivate string
	Conflicts       string
	Cflags          string
	Libs            string
	LibsPrivate     string
}

// Write emits the descriptor in the layout pkg-config expects: variables,
// a blank line, then the keyword fields.
func Write(w io.Writer, f File) error {
	for _, v := range f.Variables {
		if _, err := fmt.Fprintf(w, "%s=%s\n", v.Name, v.Value); err != nil {
			return err
		}
	}
	if len(f.Variables) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	fields := []struct {
		keyword string
		value   string
	}{
		{"Name", f.Name},
		{"Description", f.Description},
		{"URL", f.URL},
		{"Version", f.Version},
		{"Requires", f.Requires},
		{"Requires.private", f.RequiresPrivate},
		{"Conflicts", f.Conflicts},
		{"Cflags", f.Cflags},
		{"Libs", f.Libs},
		{"Libs.private", f.LibsPrivate},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", field.keyword, field.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the descriptor to dir/<name>.pc, creating dir as needed.
func WriteFile(dir string, f File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var sb strings.Builder
	if err := Write(&sb, f); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, f.Name+".pc"), []byte(sb.String()), 0o644)
}
