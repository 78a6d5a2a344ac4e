package wheel

import (
	"fmt"
	"strings"

	"github.com/wheelhouse-build/wheelhouse/internal/version"
)

// WheelVersion is the archive format version written to WHEEL files
const WheelVersion = "1.0"

// BuildDescriptor renders the WHEEL member: format version, generator
// identity, purity flag and the compatibility tag triple
func BuildDescriptor(id Identity) string {
	lines := []string{
		fmt.Sprintf("Wheel-Version: %s", WheelVersion),
		fmt.Sprintf("Generator: wheelhouse (%s)", version.Version),
		"Root-Is-Purelib: true",
		fmt.Sprintf("Tag: %s", id.Tag()),
	}
	return strings.Join(lines, "\n")
}
