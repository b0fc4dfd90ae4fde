package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFolderNotAllowed is returned by Check for folders outside every root
var ErrFolderNotAllowed = errors.New("folder is outside the allowed locations")

// AllowList restricts which folders the application may load images from.
// A folder is permitted when it is one of the roots or lies beneath one.
type AllowList struct {
	roots []string
}

// NewAllowList creates an allow-list from the given roots. Empty roots are ignored.
func NewAllowList(roots ...string) *AllowList {
	a := &AllowList{}
	for _, root := range roots {
		a.Add(root)
	}
	return a
}

// DefaultAllowedRoots returns the user's Downloads and Desktop folders
func DefaultAllowedRoots() ([]string, error) {
	downloads, err := GetHomeDownloadsDir()
	if err != nil {
		return nil, err
	}
	desktop, err := GetHomeDesktopDir()
	if err != nil {
		return nil, err
	}
	return []string{downloads, desktop}, nil
}

// Add appends a root to the allow-list
func (a *AllowList) Add(root string) {
	if strings.TrimSpace(root) == "" {
		return
	}
	resolved := resolvePath(root)
	for _, existing := range a.roots {
		if existing == resolved {
			return
		}
	}
	a.roots = append(a.roots, resolved)
}

// Roots returns the resolved roots in insertion order
func (a *AllowList) Roots() []string {
	roots := make([]string, len(a.roots))
	copy(roots, a.roots)
	return roots
}

// Permits reports whether path is inside one of the allowed roots
func (a *AllowList) Permits(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	target := resolvePath(path)
	for _, root := range a.roots {
		if isWithin(root, target) {
			return true
		}
	}
	return false
}

// Check returns ErrFolderNotAllowed, wrapped with the path, unless Permits(path)
func (a *AllowList) Check(path string) error {
	if !a.Permits(path) {
		return fmt.Errorf("%w: %s", ErrFolderNotAllowed, path)
	}
	return nil
}

func isWithin(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

// resolvePath returns an absolute, cleaned path with symlinks evaluated on
// the longest prefix that exists.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	current, rest := abs, ""
	for {
		if resolved, err := filepath.EvalSymlinks(current); err == nil {
			return filepath.Join(resolved, rest)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs
		}
		rest = filepath.Join(filepath.Base(current), rest)
		current = parent
	}
}
