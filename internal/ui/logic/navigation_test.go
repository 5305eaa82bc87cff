package logic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDescendExistingDir(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0755))

	resolved, err := ResolveDescend(root, "src")
	require.NoError(t, err)
	assert.Equal(t, sub, resolved)
}

func TestResolveDescendTrailingSeparator(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0755))

	resolved, err := ResolveDescend(root, "pkg/")
	require.NoError(t, err)
	assert.Equal(t, sub, resolved)
}

func TestResolveDescendNested(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	resolved, err := ResolveDescend(root, filepath.Join("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, nested, resolved)
}

func TestResolveDescendMissingIsError(t *testing.T) {
	root := t.TempDir()
	_, err := ResolveDescend(root, "no-such-dir")
	assert.Error(t, err)
}

func TestResolveDescendFileIsError(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ResolveDescend(root, "plain.txt")
	assert.Error(t, err)
}

func TestResolveDescendEmptyIsError(t *testing.T) {
	_, err := ResolveDescend(t.TempDir(), "")
	assert.Error(t, err)
}

func TestDescendThenAscendRoundTrip(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "down"), 0755))

	descended, err := ResolveDescend(root, "down")
	require.NoError(t, err)

	back, ok := ResolveAscend(descended)
	require.True(t, ok)
	assert.Equal(t, root, back)
}

func TestAscendAtFilesystemRoot(t *testing.T) {
	root := string(filepath.Separator)
	_, ok := ResolveAscend(root)
	assert.False(t, ok, "filesystem root has no parent")
}

func TestNavigatorClamp(t *testing.T) {
	n := NewNavigator()

	assert.Equal(t, 0, n.Clamp(5, 0), "empty list pins to zero")
	assert.Equal(t, 0, n.Clamp(-3, 10))
	assert.Equal(t, 9, n.Clamp(12, 10))
	assert.Equal(t, 4, n.Clamp(4, 10))
}

func TestNavigatorMove(t *testing.T) {
	n := NewNavigator()

	assert.Equal(t, 1, n.Move(0, 1, 5))
	assert.Equal(t, 0, n.Move(0, -1, 5))
	assert.Equal(t, 4, n.Move(3, 10, 5))
}

func TestNavigatorScrollTo(t *testing.T) {
	n := NewNavigator()

	// Cursor above the window scrolls up to it.
	assert.Equal(t, 2, n.ScrollTo(2, 5, 10))
	// Cursor below the window scrolls down just enough.
	assert.Equal(t, 6, n.ScrollTo(15, 0, 10))
	// Cursor inside the window leaves the offset alone.
	assert.Equal(t, 3, n.ScrollTo(7, 3, 10))
}
