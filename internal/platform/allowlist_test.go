package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowList_Permits(t *testing.T) {
	base := t.TempDir()
	desktop := filepath.Join(base, "Desktop")
	downloads := filepath.Join(base, "Downloads")
	require.NoError(t, os.MkdirAll(filepath.Join(desktop, "shots", "day1"), 0o755))
	require.NoError(t, os.MkdirAll(downloads, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Desktop2"), 0o755))

	allow := NewAllowList(desktop, downloads)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root itself", desktop, true},
		{"nested folder", filepath.Join(desktop, "shots", "day1"), true},
		{"other root", downloads, true},
		{"not yet created child", filepath.Join(downloads, "later"), true},
		{"sibling with shared prefix", filepath.Join(base, "Desktop2"), false},
		{"parent", base, false},
		{"escape via dot-dot", filepath.Join(desktop, "..", "Desktop2"), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allow.Permits(tt.path))
		})
	}
}

func TestAllowList_SymlinkOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "Desktop")
	outside := filepath.Join(base, "secret")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(outside, 0o755))

	link := filepath.Join(root, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	allow := NewAllowList(root)
	assert.False(t, allow.Permits(link), "symlink leaving the root must not be permitted")
}

func TestAllowList_EmptyPermitsNothing(t *testing.T) {
	allow := NewAllowList()
	assert.False(t, allow.Permits(t.TempDir()))
	assert.Empty(t, allow.Roots())
}

func TestAllowList_AddDeduplicates(t *testing.T) {
	dir := t.TempDir()
	allow := NewAllowList(dir, dir, "  ")
	allow.Add(filepath.Join(dir, "."))

	assert.Len(t, allow.Roots(), 1)
}

func TestDefaultAllowedRoots(t *testing.T) {
	roots, err := DefaultAllowedRoots()
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "Downloads", filepath.Base(roots[0]))
	assert.Equal(t, "Desktop", filepath.Base(roots[1]))
}

func TestAllowList_Check(t *testing.T) {
	root := t.TempDir()
	allow := NewAllowList(root)

	require.NoError(t, allow.Check(filepath.Join(root, "inside")))

	err := allow.Check(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFolderNotAllowed)
}
