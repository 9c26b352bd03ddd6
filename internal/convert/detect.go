package convert

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// sshHeuristicLines is how many significant lines Detect inspects when
// deciding whether YAML-parseable text reads like ssh_config.
const sshHeuristicLines = 10

// Detect classifies text as one of the three supported formats. It is a
// pure function of its input and never fails; empty or whitespace-only
// input reports FormatSSH by policy.
//
// The checks run in priority order. A strict JSON parse is authoritative.
// YAML is permissive enough to accept most directive text, so a YAML
// parse only counts when it yields a mapping or sequence and the text
// does not read like ssh_config; see looksLikeSSH for the tie-break.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FormatSSH
	}

	if json.Valid([]byte(trimmed)) {
		return FormatJSON
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(text), &parsed); err == nil {
		switch parsed.(type) {
		case map[string]any, map[any]any, []any:
			if looksLikeSSH(text) {
				return FormatSSH
			}
			return FormatYAML
		}
	}

	return FormatSSH
}

// looksLikeSSH scans up to the first ten non-blank, non-comment lines for
// ssh_config shape: a case-insensitive "host " or "match " keyword, or a
// line with an interior space that does not open with a YAML or JSON
// structural marker. The tie-break is deliberate policy inherited from
// the format's ambiguity: a lone "key: value" line is simultaneously
// valid YAML and a plausible directive, and classifies as ssh.
func looksLikeSSH(text string) bool {
	seen := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen++; seen > sshHeuristicLines {
			break
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "host ") || strings.HasPrefix(lower, "match ") {
			return true
		}
		if strings.Contains(line, " ") && !isStructural(line[0]) {
			return true
		}
	}
	return false
}

// isStructural reports whether b opens a YAML or JSON collection form.
func isStructural(b byte) bool {
	return b == '{' || b == '[' || b == '-'
}
