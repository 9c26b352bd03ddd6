// Package convert is the format conversion engine for sshconv.
//
// It translates SSH client configuration between three textual
// representations: the OpenSSH ssh_config line format, YAML, and JSON.
// Text goes in, text comes out; the engine performs no I/O and keeps no
// state between calls, so concurrent use needs no locking.
//
// # Detection
//
// [Detect] classifies raw text using ordered heuristics: a strict JSON
// parse wins outright, a YAML parse counts only when it yields real
// structure and the text does not read like ssh_config, and everything
// else is ssh_config. The ssh tie-break exists because almost any
// directive text is also syntactically valid YAML. It is a documented
// policy with known ambiguous cases (a lone "key: value" line classifies
// as ssh); callers that know their source format should say so instead
// of relying on detection.
//
// # Conversion
//
// [Convert] is the single entry point for text-to-text translation:
//
//	out, err := convert.Convert(text, convert.FormatAuto, convert.FormatYAML)
//
// Identical source and target return the input unchanged. [Render]
// serializes an already-built document, which is how aggregated directory
// scans are emitted.
//
// # Errors
//
// [ErrUnsupportedFormat] covers unknown format tags and
// [ErrInvalidInput] covers structured text that fails its grammar. The
// ssh parser and all serializers are total; they never contribute
// errors.
package convert
