package metadata

import (
	"fmt"
	"strings"
)

// Encode serializes the record into the line-oriented core-metadata text
// format. The output is a pure function of the record's current field
// values: three mandatory header lines followed by one line per populated
// optional field, newline-joined with no trailing blank line.
func (r *Record) Encode() string {
	var lines []string

	// Required fields
	lines = append(lines, fmt.Sprintf("Metadata-Version: %s", FileVersion))
	lines = append(lines, fmt.Sprintf("Name: %s", r.Name))
	lines = append(lines, fmt.Sprintf("Version: %s", r.Version))

	// Optional fields
	lines = append(lines, encodePersons(r.Authors, "Author", "Author-email")...)
	lines = append(lines, encodePersons(r.Maintainers, "Maintainer", "Maintainer-email")...)
	lines = append(lines, encodeScalar("Summary", r.Summary)...)
	lines = append(lines, encodeScalar("Home-page", r.Homepage)...)
	lines = append(lines, encodeScalar("License", r.License)...)
	lines = append(lines, encodeScalar("Keywords", strings.Join(r.Keywords, ","))...)
	lines = append(lines, encodeScalar("Download-url", r.DownloadURL)...)

	for _, projURL := range r.ProjectURLs {
		if projURL.Label != "" {
			lines = append(lines, fmt.Sprintf("Project-URL: %s, %s", projURL.Label, projURL.URL))
		} else {
			lines = append(lines, fmt.Sprintf("Project-URL: %s", projURL.URL))
		}
	}
	for _, classifier := range r.Classifiers {
		lines = append(lines, fmt.Sprintf("Classifier: %s", classifier))
	}
	for _, req := range r.PythonRequirements {
		lines = append(lines, fmt.Sprintf("Requires-Python: %s", req))
	}
	for _, label := range r.ExtraLabels() {
		lines = append(lines, fmt.Sprintf("Provides-Extra: %s", label))
	}
	for _, extra := range r.ExtraRequirements {
		lines = append(lines, fmt.Sprintf("Requires-Dist: %s; extra == '%s'", extra.Req, extra.Label))
	}
	for _, req := range r.Requirements {
		lines = append(lines, fmt.Sprintf("Requires-Dist: %s", req))
	}

	return strings.Join(lines, "\n")
}

// encodePersons emits the single-value name field and the comma-joined email
// field for a list of authors or maintainers. The two fields are independent:
// the name field takes the first person with a name, the email field joins
// every person with an email, quoting the name when one is present.
func encodePersons(persons []Person, nameKey, emailKey string) []string {
	var lines []string

	// The metadata format intends the Author/Maintainer field to hold
	// contact information for a single person, so the first person with a
	// name defined wins
	for _, person := range persons {
		if person.Name != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", nameKey, person.Name))
			break
		}
	}

	var emails []string
	for _, person := range persons {
		if person.Email == "" {
			continue
		}
		if person.Name != "" {
			// Raw double quotes around the name, no escaping of the name itself
			emails = append(emails, fmt.Sprintf("\"%s\" <%s>", person.Name, person.Email))
		} else {
			emails = append(emails, person.Email)
		}
	}
	if len(emails) > 0 {
		lines = append(lines, fmt.Sprintf("%s: %s", emailKey, strings.Join(emails, ",")))
	}

	return lines
}

// encodeScalar emits a single "Key: value" line, or nothing when the value
// is empty
func encodeScalar(key, value string) []string {
	if value == "" {
		return nil
	}
	return []string{fmt.Sprintf("%s: %s", key, value)}
}
