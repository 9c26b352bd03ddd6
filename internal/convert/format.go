package convert

import "github.com/cockroachdb/errors"

// Sentinel errors for conversion failures.
var (
	// ErrUnsupportedFormat indicates a source or target format outside the
	// three known tags.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidInput indicates structured input that fails its format's
	// grammar or does not carry the expected hosts shape.
	ErrInvalidInput = errors.New("invalid input")
)

// Format identifies one of the configuration formats the engine converts
// between.
type Format string

const (
	// FormatAuto requests source-format detection. It is never a valid
	// target.
	FormatAuto Format = ""

	// FormatSSH is the OpenSSH ssh_config line format.
	FormatSSH Format = "ssh"

	// FormatYAML is block-style YAML with a top-level "hosts" sequence.
	FormatYAML Format = "yaml"

	// FormatJSON is JSON with a top-level "hosts" array.
	FormatJSON Format = "json"
)

// Valid reports whether f is one of the three concrete formats.
func (f Format) Valid() bool {
	switch f {
	case FormatSSH, FormatYAML, FormatJSON:
		return true
	}
	return false
}

// Formats returns the identifiers of all supported formats.
func Formats() []string {
	return []string{
		string(FormatSSH),
		string(FormatYAML),
		string(FormatJSON),
	}
}
