// Test Type: Unit Test
// Description: Tests for the wheel package - staging tree behavior

package wheel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/testutil"
	"github.com/wheelhouse-build/wheelhouse/pkg/wheel"
)

func TestStageCopiesFile(t *testing.T) {
	srcDir := t.TempDir()
	src := testutil.WriteFile(t, srcDir, "version.py", "__version__ = '1.0'\n")

	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	defer tree.Cleanup()

	require.NoError(t, tree.Stage(src, "mypkg/sub"))

	staged := filepath.Join(tree.Root(), "mypkg", "sub", "version.py")
	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "__version__ = '1.0'\n", string(content))
}

func TestStageAtArchiveRoot(t *testing.T) {
	srcDir := t.TempDir()
	src := testutil.WriteFile(t, srcDir, "setup.py", "# empty\n")

	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	defer tree.Cleanup()

	require.NoError(t, tree.Stage(src, ""))

	_, err = os.Stat(filepath.Join(tree.Root(), "setup.py"))
	assert.NoError(t, err)
}

func TestStageMissingSource(t *testing.T) {
	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	defer tree.Cleanup()

	err = tree.Stage(filepath.Join(t.TempDir(), "missing.py"), "pkg")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound),
		"expected FILE_NOT_FOUND, got %v", err)
}

func TestStageOverwriteLastWriteWins(t *testing.T) {
	firstDir := t.TempDir()
	secondDir := t.TempDir()
	first := testutil.WriteFile(t, firstDir, "mod.py", "first = True\n")
	second := testutil.WriteFile(t, secondDir, "mod.py", "second = True\n")

	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	defer tree.Cleanup()

	require.NoError(t, tree.Stage(first, "pkg"))
	require.NoError(t, tree.Stage(second, "pkg"))

	content, err := os.ReadFile(filepath.Join(tree.Root(), "pkg", "mod.py"))
	require.NoError(t, err)
	assert.Equal(t, "second = True\n", string(content))
}

func TestStageUnderStagedFileFails(t *testing.T) {
	srcDir := t.TempDir()
	blocker := testutil.WriteFile(t, srcDir, "pkg.py", "# a file, not a directory\n")
	nested := testutil.WriteFile(t, srcDir, "mod.py", "x = 1\n")

	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	defer tree.Cleanup()

	require.NoError(t, tree.Stage(blocker, ""))

	// pkg.py now occupies a path segment; staging beneath it must fail
	err = tree.Stage(nested, "pkg.py")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate),
		"expected DIR_CREATE, got %v", err)
}

func TestStagingTreeOverrideDirSurvivesCleanup(t *testing.T) {
	override := filepath.Join(t.TempDir(), "staging")

	tree, err := wheel.NewStagingTree(override)
	require.NoError(t, err)
	assert.Equal(t, override, tree.Root())

	srcDir := t.TempDir()
	src := testutil.WriteFile(t, srcDir, "keep.py", "kept = True\n")
	require.NoError(t, tree.Stage(src, ""))

	tree.Cleanup()

	_, err = os.Stat(filepath.Join(override, "keep.py"))
	assert.NoError(t, err, "override staging dir must survive cleanup")
}

func TestStagingTreeScratchCleanup(t *testing.T) {
	tree, err := wheel.NewStagingTree("")
	require.NoError(t, err)
	root := tree.Root()

	tree.Cleanup()

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err), "scratch staging dir must be removed")
}
