// Test Type: Unit Test
// Description: Tests for the wheel package - archive writing and dist-info layout

package wheel_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/metadata"
	"github.com/wheelhouse-build/wheelhouse/pkg/testutil"
	"github.com/wheelhouse-build/wheelhouse/pkg/wheel"
)

// readArchive returns the content of every member of a wheel file keyed by
// its archive path
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	members := make(map[string]string)
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		members[file.Name] = string(data)
	}
	return members
}

func TestWriteEmptyProject(t *testing.T) {
	record := &metadata.Record{Name: "MyDist", Version: "1.2.3"}
	root := t.TempDir()
	destDir := t.TempDir()

	path, err := wheel.NewWriter(record).Write(root, destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "MyDist-1.2.3-py3-none-any.whl"), path)

	members := readArchive(t, path)
	require.Len(t, members, 3, "empty project archives only the dist-info members")

	// METADATA is exactly the 3-line header
	assert.Equal(t, "Metadata-Version: 2.2\nName: MyDist\nVersion: 1.2.3",
		members["MyDist-1.2.3.dist-info/METADATA"])

	// WHEEL carries the build descriptor
	wheelText := members["MyDist-1.2.3.dist-info/WHEEL"]
	lines := strings.Split(wheelText, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Wheel-Version: 1.0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Generator: wheelhouse ("), "got %q", lines[1])
	assert.Equal(t, "Root-Is-Purelib: true", lines[2])
	assert.Equal(t, "Tag: py3-none-any", lines[3])

	// RECORD has one data line for WHEEL, one for METADATA, and the
	// self-referential empty-field line
	recordText := members["MyDist-1.2.3.dist-info/RECORD"]
	recordLines := strings.Split(strings.TrimSuffix(recordText, "\n"), "\n")
	require.Len(t, recordLines, 3)
	assert.True(t, strings.HasPrefix(recordLines[0], "MyDist-1.2.3.dist-info/METADATA,sha256="))
	assert.True(t, strings.HasPrefix(recordLines[1], "MyDist-1.2.3.dist-info/WHEEL,sha256="))
	assert.Equal(t, "MyDist-1.2.3.dist-info/RECORD,,", recordLines[2])
}

func TestWriteRefusesToOverwrite(t *testing.T) {
	record := &metadata.Record{Name: "MyDist", Version: "1.2.3"}
	destDir := t.TempDir()

	first, err := wheel.NewWriter(record).Write(t.TempDir(), destDir)
	require.NoError(t, err)

	original := readArchive(t, first)

	_, err = wheel.NewWriter(record).Write(t.TempDir(), destDir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists),
		"expected ALREADY_EXISTS, got %v", err)

	// The existing archive is untouched
	assert.Equal(t, original, readArchive(t, first))
}

func TestWriteIncludesStagedFiles(t *testing.T) {
	record := &metadata.Record{Name: "sample", Version: "0.1.0"}
	root := t.TempDir()
	testutil.WriteFile(t, root, "version.py", "__version__ = '0.1.0'\n")
	testutil.WriteFile(t, root, "sample/__init__.py", "")

	path, err := wheel.NewWriter(record).Write(root, t.TempDir())
	require.NoError(t, err)

	members := readArchive(t, path)
	assert.Contains(t, members, "version.py")
	assert.Contains(t, members, "sample/__init__.py")
	assert.Equal(t, "__version__ = '0.1.0'\n", members["version.py"])

	// RECORD covers the staged files too
	recordText := members["sample-0.1.0.dist-info/RECORD"]
	assert.Contains(t, recordText, "version.py,sha256=")
	assert.Contains(t, recordText, "sample/__init__.py,sha256=")
}

func TestWriteUsesDeflateForEveryEntry(t *testing.T) {
	record := &metadata.Record{Name: "sample", Version: "0.1.0"}
	root := t.TempDir()
	testutil.WriteFile(t, root, "mod.py", strings.Repeat("data = 'compressible'\n", 100))

	path, err := wheel.NewWriter(record).Write(root, t.TempDir())
	require.NoError(t, err)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		assert.Equal(t, zip.Deflate, file.Method, "member %s", file.Name)
	}
}

func TestWriteIsReproducible(t *testing.T) {
	record := &metadata.Record{Name: "sample", Version: "0.1.0"}

	// Two staged trees with identical content but different mtimes
	buildOnce := func(mtime time.Time) []byte {
		root := t.TempDir()
		staged := testutil.WriteFile(t, root, "version.py", "__version__ = '0.1.0'\n")
		require.NoError(t, os.Chtimes(staged, mtime, mtime))

		path, err := wheel.NewWriter(record).Write(root, t.TempDir())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	first := buildOnce(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
	second := buildOnce(time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, first, second, "identical input must produce byte-identical archives")
}

func TestWriteZeroesMemberTimestamps(t *testing.T) {
	record := &metadata.Record{Name: "sample", Version: "0.1.0"}
	root := t.TempDir()
	testutil.WriteFile(t, root, "version.py", "__version__ = '0.1.0'\n")

	path, err := wheel.NewWriter(record).Write(root, t.TempDir())
	require.NoError(t, err)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	epoch := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, file := range reader.File {
		assert.True(t, file.Modified.UTC().Equal(epoch),
			"member %s carries mtime %v", file.Name, file.Modified)
	}
}

func TestBuildDescriptor(t *testing.T) {
	id := wheel.NewIdentity("pkg", "1.0")
	text := wheel.BuildDescriptor(id)

	assert.NotContains(t, text, "\n\n", "blank lines are stripped")
	assert.False(t, strings.HasSuffix(text, "\n"))
	assert.Contains(t, text, "Tag: py3-none-any")
}
