package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for argument expansion:
// - literal paths pass through untouched, in argument order
// - glob arguments expand against the root, sorted
// - expansion keeps the position of the originating argument
// - a pattern matching nothing is an error naming the pattern
// - a malformed pattern is an error

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))
	}
}

func TestExpandArgs_LiteralPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, err := expandArgs([]string{"b.rb", "a.rb"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.rb", "a.rb"}, out)
}

func TestExpandArgs_Glob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	populate(t, dir, "lib/b.rb", "lib/a.rb", "lib/sub/c.rb", "lib/readme.md")

	out, err := expandArgs([]string{"lib/**.rb"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "lib/a.rb"),
		filepath.Join(dir, "lib/b.rb"),
		filepath.Join(dir, "lib/sub/c.rb"),
	}, out)
}

func TestExpandArgs_KeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	populate(t, dir, "lib/a.rb")

	out, err := expandArgs([]string{"z.rb", "lib/*.rb"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"z.rb", filepath.Join(dir, "lib/a.rb")}, out)
}

func TestExpandArgs_NoMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := expandArgs([]string{"missing/*.rb"}, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing/*.rb")
}

func TestExpandArgs_BadPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := expandArgs([]string{"lib/[.rb"}, dir)
	require.Error(t, err)
}
