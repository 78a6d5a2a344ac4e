// Package wheel implements the binary distribution archive engine: the
// staging tree, the RECORD manifest builder, the WHEEL build descriptor and
// the zip archive writer, plus the build facade that wires them together.
//
// The produced archive layout is bit-compatible with the wheel binary
// distribution format:
//
//   - packaged files at their staged relative paths
//   - exactly one {name}-{version}.dist-info/ directory holding WHEEL,
//     METADATA and RECORD
//
// References:
//   - https://packaging.python.org/specifications/binary-distribution-format/
//   - https://www.python.org/dev/peps/pep-0427/
package wheel
