// Package pyproject parses pyproject.toml configuration documents and
// converts their project table into the normalized metadata record
// consumed by the wheel engine.
//
// Each table within the document is defined by its own standard: the
// build-system table by PEP 517/518, the project table by PEP 621.
package pyproject

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
)

// Document is a parsed pyproject.toml file
type Document struct {
	BuildSystem BuildSystem `toml:"build-system"`
	Project     Project     `toml:"project"`
}

// BuildSystem is the build-system table: the backend module responsible
// for building the project and the packages required to run it
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Project is the PEP 621 project table
type Project struct {
	Name            string              `toml:"name"`
	Version         string              `toml:"version"`
	Description     string              `toml:"description"`
	Readme          interface{}         `toml:"readme"`
	License         interface{}         `toml:"license"`
	Authors         []Contact           `toml:"authors"`
	Maintainers     []Contact           `toml:"maintainers"`
	Keywords        []string            `toml:"keywords"`
	Classifiers     []string            `toml:"classifiers"`
	RequiresPython  string              `toml:"requires-python"`
	URLs            map[string]string   `toml:"urls"`
	Dependencies    []string            `toml:"dependencies"`
	OptionalDeps    map[string][]string `toml:"optional-dependencies"`
}

// Contact is an author or maintainer entry
type Contact struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Parse parses raw TOML text into a Document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse pyproject.toml")
	}
	return &doc, nil
}

// Load reads and parses a pyproject.toml file from disk
func Load(path string) (*Document, error) {
	logger := logging.GetLogger("pyproject")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "pyproject.toml configuration file not found").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot read pyproject.toml").
			WithDetail("path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Str("project", doc.Project.Name).Msg("Loaded pyproject.toml")
	return doc, nil
}
