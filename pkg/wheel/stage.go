package wheel

import (
	"io"
	"os"
	"path/filepath"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
)

// StagingTree accumulates files destined for the archive in a private
// on-disk working copy. The tree is scoped to a single build: the facade
// creates it, stages into it and cleans it up on every exit path.
type StagingTree struct {
	root    string
	scratch bool // true when the tree owns a temp dir it must remove
}

// NewStagingTree creates a staging tree backed by a fresh temporary
// directory. When dir is non-empty the tree is rooted there instead and
// survives Cleanup, which is the debugging escape hatch for inspecting
// staged content after a build.
func NewStagingTree(dir string) (*StagingTree, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create staging directory").
				WithDetail("path", dir)
		}
		return &StagingTree{root: dir}, nil
	}

	root, err := os.MkdirTemp("", "wheelhouse-*")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create staging directory")
	}
	return &StagingTree{root: root, scratch: true}, nil
}

// Root returns the absolute path of the staging tree
func (s *StagingTree) Root() string {
	return s.root
}

// Stage copies the source file's bytes into the tree under targetDir,
// creating intermediate directories as needed. The staged file keeps the
// source file's base name.
//
// Re-staging the same target path silently overwrites (last write wins).
// Staging under a path segment already occupied by a staged file fails.
func (s *StagingTree) Stage(srcPath, targetDir string) error {
	logger := logging.GetLogger("wheel.stage")

	src, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrFileNotFound, "source file does not exist").
				WithDetail("path", srcPath)
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read source file").
			WithDetail("path", srcPath)
	}
	defer func() { _ = src.Close() }()

	destDir := filepath.Join(s.root, targetDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create target directory").
			WithDetail("path", destDir)
	}

	destPath := filepath.Join(destDir, filepath.Base(srcPath))
	dest, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot create staged file").
			WithDetail("path", destPath)
	}
	defer func() { _ = dest.Close() }()

	if _, err := io.Copy(dest, src); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot copy file into staging tree").
			WithDetail("source", srcPath).
			WithDetail("target", destPath)
	}

	logger.Trace().Str("source", srcPath).Str("target", destPath).Msg("Staged file")
	return nil
}

// WriteFile writes generated content (metadata directory members) directly
// into the tree at the given relative path
func (s *StagingTree) WriteFile(relPath, content string) error {
	destPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create metadata directory").
			WithDetail("path", filepath.Dir(destPath))
	}
	if err := os.WriteFile(destPath, []byte(content), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write metadata member").
			WithDetail("path", destPath)
	}
	return nil
}

// Cleanup removes the staging tree. Trees rooted in a caller-supplied
// directory are left in place.
func (s *StagingTree) Cleanup() {
	if !s.scratch {
		return
	}
	logger := logging.GetLogger("wheel.stage")
	if err := os.RemoveAll(s.root); err != nil {
		logger.Warn().
			Err(err).
			Str("path", s.root).
			Msg("Failed to remove staging tree")
	}
}
