package wheel

import (
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
	"github.com/wheelhouse-build/wheelhouse/pkg/metadata"
)

// StagedFile pairs a source file on disk with the archive-relative
// directory it should be deployed under
type StagedFile struct {
	Source    string
	TargetDir string
}

// BuildOptions tunes a single build
type BuildOptions struct {
	// StagingDir redirects staging to a persistent directory instead of a
	// scratch temp dir. Meant for debugging; the tree is then left in
	// place after the build.
	StagingDir string
}

// Build stages every file, writes the metadata directory and packs the
// wheel archive into destDir, returning the archive path. It fails fast,
// before any staging happens, when the record is missing its identity.
func Build(record *metadata.Record, files []StagedFile, destDir string, opts BuildOptions) (string, error) {
	logger := logging.GetLogger("wheel.builder")

	if record.Name == "" {
		return "", errors.New(errors.ErrConfigInvalid, "distribution name is required")
	}
	if record.Version == "" {
		return "", errors.New(errors.ErrConfigInvalid, "distribution version is required")
	}

	tree, err := NewStagingTree(opts.StagingDir)
	if err != nil {
		return "", err
	}
	defer tree.Cleanup()

	for _, file := range files {
		if err := tree.Stage(file.Source, file.TargetDir); err != nil {
			return "", err
		}
	}

	logger.Debug().
		Int("files", len(files)).
		Str("name", record.Name).
		Str("version", record.Version).
		Msg("Staged files for wheel build")

	return NewWriter(record).Write(tree.Root(), destDir)
}
