package pyproject

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/metadata"
)

// ToRecord converts the project table into a normalized metadata record.
// File references (readme, license file) are resolved relative to
// projectDir; a reference to a file that does not exist on disk fails
// with NOT_FOUND.
//
// TOML tables carry no ordering for urls and optional-dependencies, so
// both are emitted in sorted label order to keep the encoded metadata
// deterministic.
func (p *Project) ToRecord(projectDir string) (*metadata.Record, error) {
	record := &metadata.Record{
		Name:        p.Name,
		Version:     p.Version,
		Summary:     p.Description,
		Keywords:    dedupe(p.Keywords),
		Classifiers: p.Classifiers,
	}

	if p.RequiresPython != "" {
		record.PythonRequirements = []string{p.RequiresPython}
	}

	for _, contact := range p.Authors {
		record.Authors = append(record.Authors, metadata.Person{Name: contact.Name, Email: contact.Email})
	}
	for _, contact := range p.Maintainers {
		record.Maintainers = append(record.Maintainers, metadata.Person{Name: contact.Name, Email: contact.Email})
	}

	license, err := p.resolveLicense(projectDir)
	if err != nil {
		return nil, err
	}
	record.License = license

	if _, err := p.ResolveReadme(projectDir); err != nil {
		return nil, err
	}

	for _, label := range sortedKeys(p.URLs) {
		url := p.URLs[label]
		switch strings.ToLower(label) {
		case "homepage":
			record.Homepage = url
		case "download":
			record.DownloadURL = url
		default:
			record.ProjectURLs = append(record.ProjectURLs, metadata.ProjectURL{Label: label, URL: url})
		}
	}

	record.Requirements = p.Dependencies
	for _, group := range sortedKeys(p.OptionalDeps) {
		for _, req := range p.OptionalDeps[group] {
			record.ExtraRequirements = append(record.ExtraRequirements,
				metadata.ExtraRequirement{Label: group, Req: req})
		}
	}

	return record, nil
}

// ResolveReadme returns the absolute path of the project readme, or an
// empty string when the project declares none. The readme may be a bare
// path string or a {file = ...} table; a {text = ...} table has no path.
// A declared path that does not exist on disk fails with NOT_FOUND.
func (p *Project) ResolveReadme(projectDir string) (string, error) {
	var file string
	switch readme := p.Readme.(type) {
	case nil:
		return "", nil
	case string:
		file = readme
	case map[string]interface{}:
		if text, ok := readme["text"].(string); ok && text != "" {
			return "", nil
		}
		file, _ = readme["file"].(string)
	}
	if file == "" {
		return "", nil
	}

	path := filepath.Join(projectDir, file)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "readme file does not exist").
			WithDetail("path", path)
	}
	return path, nil
}

// resolveLicense produces the license text for the metadata record. The
// license may be an SPDX expression string, a {text = ...} table, or a
// {file = ...} table whose content is read from disk.
func (p *Project) resolveLicense(projectDir string) (string, error) {
	switch license := p.License.(type) {
	case nil:
		return "", nil
	case string:
		return license, nil
	case map[string]interface{}:
		if text, ok := license["text"].(string); ok && text != "" {
			return text, nil
		}
		file, _ := license["file"].(string)
		if file == "" {
			return "", nil
		}
		path := filepath.Join(projectDir, file)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(err, errors.ErrNotFound, "license file does not exist").
					WithDetail("path", path)
			}
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot read license file").
				WithDetail("path", path)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", nil
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
