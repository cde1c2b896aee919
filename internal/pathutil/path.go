// Package pathutil validates slash-separated archive entry names before
// they are used as paths under an output directory.
package pathutil

import (
	"fmt"
	"path"
	"strings"

	"github.com/meigma/sarc/internal/sarctype"
)

// Validate reports whether name can be joined under a destination root
// without escaping it. Rejected names wrap sarctype.ErrUnsafePath.
//
// A name is rejected when it is empty, contains a NUL or backslash,
// is absolute, or has a ".." element. "." elements and doubled slashes
// are tolerated because Clean removes them.
func Validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", sarctype.ErrUnsafePath)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains NUL", sarctype.ErrUnsafePath, name)
	case strings.ContainsRune(name, '\\'):
		return fmt.Errorf("%w: %q contains backslash", sarctype.ErrUnsafePath, name)
	case strings.HasPrefix(name, "/"):
		return fmt.Errorf("%w: %q is absolute", sarctype.ErrUnsafePath, name)
	case len(name) >= 2 && name[1] == ':':
		return fmt.Errorf("%w: %q has a drive letter", sarctype.ErrUnsafePath, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q escapes the output root", sarctype.ErrUnsafePath, name)
		}
	}
	if Clean(name) == "." {
		return fmt.Errorf("%w: %q names the output root", sarctype.ErrUnsafePath, name)
	}
	return nil
}

// Clean collapses repeated slashes and "." elements.
// It assumes Validate already accepted name.
func Clean(name string) string {
	return path.Clean(name)
}

// Base returns the last element of a slash-separated path.
// If path is empty or ".", it returns ".".
func Base(name string) string {
	if name == "" || name == "." {
		return "."
	}
	// Remove trailing slash if present
	name = strings.TrimSuffix(name, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
