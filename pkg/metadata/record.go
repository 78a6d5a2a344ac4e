// Package metadata holds the normalized project metadata record and its
// encoder for the core-metadata file format embedded in wheel archives.
//
// References:
//   - https://packaging.python.org/specifications/core-metadata/
//   - https://www.python.org/dev/peps/pep-0566/
package metadata

// FileVersion is the core-metadata schema version written to METADATA files
const FileVersion = "2.2"

// Person identifies an author or maintainer. At least one of Name or Email
// is expected to be set.
type Person struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// ProjectURL is a labeled support URL associated with the distribution
type ProjectURL struct {
	Label string `yaml:"label,omitempty"`
	URL   string `yaml:"url"`
}

// ExtraRequirement is a dependency that only applies when the named optional
// feature group is selected at install time
type ExtraRequirement struct {
	Label string `yaml:"label"`
	Req   string `yaml:"req"`
}

// Record is the normalized in-memory representation of project metadata.
// Name and Version are required; every other field is optional and
// contributes nothing to the encoded output when empty.
//
// A Record is a plain mutable struct. Callers populate it field by field and
// hand it to Encode with exclusive ownership; no mutation may happen during
// encoding.
type Record struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Summary     string `yaml:"summary,omitempty"`
	Homepage    string `yaml:"homepage,omitempty"`
	License     string `yaml:"license,omitempty"`
	DownloadURL string `yaml:"download-url,omitempty"`

	Authors     []Person `yaml:"authors,omitempty"`
	Maintainers []Person `yaml:"maintainers,omitempty"`

	Keywords    []string `yaml:"keywords,omitempty"`
	Classifiers []string `yaml:"classifiers,omitempty"`

	// PythonRequirements holds free-text version specifiers for the
	// supported Python runtimes, one Requires-Python line each
	PythonRequirements []string `yaml:"python-requirements,omitempty"`

	ProjectURLs []ProjectURL `yaml:"project-urls,omitempty"`

	// Requirements are plain dependency specifiers; ExtraRequirements are
	// grouped behind optional feature labels
	Requirements      []string           `yaml:"requirements,omitempty"`
	ExtraRequirements []ExtraRequirement `yaml:"extra-requirements,omitempty"`
}

// ExtraLabels returns the distinct extra-requirement group labels in
// first-seen order. Every label listed here must be advertised exactly once
// as a Provides-Extra declaration.
func (r *Record) ExtraLabels() []string {
	seen := make(map[string]bool, len(r.ExtraRequirements))
	var labels []string
	for _, extra := range r.ExtraRequirements {
		if seen[extra.Label] {
			continue
		}
		seen[extra.Label] = true
		labels = append(labels, extra.Label)
	}
	return labels
}
