package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDescend resolves subpath relative to current and verifies it is
// an existing directory. The returned path is absolute and cleaned. Any
// failure means the descend must be a no-op.
func ResolveDescend(current, subpath string) (string, error) {
	subpath = strings.TrimRight(subpath, "/\\")
	if subpath == "" {
		return "", fmt.Errorf("empty subpath")
	}

	target := subpath
	if !filepath.IsAbs(target) {
		target = filepath.Join(current, subpath)
	}
	target, err := filepath.Abs(filepath.Clean(target))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", subpath, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", target, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", target)
	}

	return target, nil
}

// ResolveAscend returns the parent of current, or ok=false when current
// is already the filesystem root.
func ResolveAscend(current string) (string, bool) {
	parent := filepath.Dir(current)
	if parent == current {
		return "", false
	}
	return parent, true
}

// Navigator handles cursor movement and viewport scrolling over the
// visible row list
type Navigator struct{}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Move shifts cursor by delta, clamped to [0, total)
func (n *Navigator) Move(cursor, delta, total int) int {
	cursor += delta
	return n.Clamp(cursor, total)
}

// Clamp keeps cursor inside the row list; an empty list pins it to zero
func (n *Navigator) Clamp(cursor, total int) int {
	if total == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ScrollTo returns a viewport offset that keeps cursor visible within
// height rows
func (n *Navigator) ScrollTo(cursor, offset, height int) int {
	if height <= 0 {
		return 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+height {
		return cursor - height + 1
	}
	return offset
}
