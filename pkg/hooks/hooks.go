// Package hooks exposes the build entry points a generic build
// orchestrator calls to request a wheel, following the PEP 517 hook
// shape.
//
// https://www.python.org/dev/peps/pep-0517/
package hooks

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
	"github.com/wheelhouse-build/wheelhouse/pkg/pyproject"
	"github.com/wheelhouse-build/wheelhouse/pkg/wheel"
)

// BuildWheelOptions parameterizes a build request. ProjectDir is threaded
// through explicitly rather than relying on the process working
// directory.
type BuildWheelOptions struct {
	// ProjectDir is the project root containing pyproject.toml
	ProjectDir string
	// WheelDir is where the generated wheel file is placed
	WheelDir string
	// ConfigSettings are optional caller-provided settings; unspecified
	// keys are accepted and ignored
	ConfigSettings map[string]string
	// MetadataDir is the PEP 517 prepared-metadata hint; accepted for
	// interface compatibility, unused
	MetadataDir string
	// StagingDir optionally redirects staging to a persistent directory
	// for debugging
	StagingDir string
}

// BuildWheel builds a wheel for the project at ProjectDir and returns the
// generated archive's path. It parses pyproject.toml into a metadata
// record, stages every .py file under the project at its relative
// directory, and hands off to the wheel build facade.
func BuildWheel(opts BuildWheelOptions) (string, error) {
	logger := logging.GetLogger("hooks")

	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	doc, err := pyproject.Load(filepath.Join(projectDir, "pyproject.toml"))
	if err != nil {
		return "", err
	}

	record, err := doc.Project.ToRecord(projectDir)
	if err != nil {
		return "", err
	}

	files, err := collectSources(projectDir)
	if err != nil {
		return "", err
	}
	for _, file := range files {
		logger.Debug().Str("source", file.Source).Str("target", file.TargetDir).Msg("Adding file to wheel")
	}

	path, err := wheel.Build(record, files, opts.WheelDir, wheel.BuildOptions{StagingDir: opts.StagingDir})
	if err != nil {
		return "", err
	}

	logger.Debug().Str("path", path).Msg("Generated wheel file")
	return path, nil
}

// collectSources gathers every .py file under projectDir, each targeted
// at its directory relative to the project root
func collectSources(projectDir string) ([]wheel.StagedFile, error) {
	var files []wheel.StagedFile
	err := filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}

		relDir, err := filepath.Rel(projectDir, filepath.Dir(path))
		if err != nil {
			return err
		}
		if relDir == "." {
			relDir = ""
		}
		files = append(files, wheel.StagedFile{Source: path, TargetDir: relDir})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot scan project sources").
			WithDetail("path", projectDir)
	}
	return files, nil
}
