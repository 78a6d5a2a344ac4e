package wheel

import "fmt"

// Default compatibility tags for pure-Python wheels with no
// platform-specific build requested
const (
	DefaultPythonTag   = "py3"
	DefaultABITag      = "none"
	DefaultPlatformTag = "any"
)

// Identity names the final artifact. Name and Version are required;
// BuildTag is optional and the remaining tags default to the pure-Python
// triple when left empty.
type Identity struct {
	Name        string
	Version     string
	BuildTag    string
	PythonTag   string
	ABITag      string
	PlatformTag string
}

// NewIdentity returns an identity for a pure-Python wheel
func NewIdentity(name, version string) Identity {
	return Identity{
		Name:        name,
		Version:     version,
		PythonTag:   DefaultPythonTag,
		ABITag:      DefaultABITag,
		PlatformTag: DefaultPlatformTag,
	}
}

// Tag returns the compatibility tag triple, e.g. "py3-none-any"
func (id Identity) Tag() string {
	return fmt.Sprintf("%s-%s-%s", id.pythonTag(), id.abiTag(), id.platformTag())
}

// Filename returns the canonical wheel file name:
// {name}-{version}[-{build_tag}]-{python_tag}-{abi_tag}-{platform_tag}.whl
func (id Identity) Filename() string {
	if id.BuildTag != "" {
		return fmt.Sprintf("%s-%s-%s-%s.whl", id.Name, id.Version, id.BuildTag, id.Tag())
	}
	return fmt.Sprintf("%s-%s-%s.whl", id.Name, id.Version, id.Tag())
}

// DistInfoDir returns the name of the metadata directory inside the archive
func (id Identity) DistInfoDir() string {
	return fmt.Sprintf("%s-%s.dist-info", id.Name, id.Version)
}

func (id Identity) pythonTag() string {
	if id.PythonTag == "" {
		return DefaultPythonTag
	}
	return id.PythonTag
}

func (id Identity) abiTag() string {
	if id.ABITag == "" {
		return DefaultABITag
	}
	return id.ABITag
}

func (id Identity) platformTag() string {
	if id.PlatformTag == "" {
		return DefaultPlatformTag
	}
	return id.PlatformTag
}
