package sshconfig

import "strings"

// Parse reads ssh_config text into a Document. It is total: comments,
// blank lines, and lines with no whitespace to split on are skipped, and
// whatever remains is collected. Directives appearing before the first
// Host line go into a synthetic "Host *" entry so they keep their
// apply-to-everything meaning.
func Parse(text string) *Document {
	doc := &Document{}
	var current *Entry

	flush := func() {
		if current != nil {
			doc.Hosts = append(doc.Hosts, current)
			current = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rest, ok := splitDirective(line)
		if !ok {
			continue
		}

		if strings.EqualFold(name, hostKey) {
			flush()
			current = &Entry{Patterns: patternsValue(strings.Fields(rest))}
			continue
		}

		if current == nil {
			current = &Entry{Patterns: Scalar("*")}
		}
		current.Add(name, rest)
	}
	flush()

	return doc
}

// splitDirective splits a trimmed line at its first whitespace run into a
// directive name and the remainder. Lines without interior whitespace
// cannot carry a value and report ok=false.
func splitDirective(line string) (name, rest string, ok bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimLeft(line[i:], " \t"), true
}

// patternsValue shapes Host line tokens: one token stays a Scalar, more
// become a List.
func patternsValue(fields []string) Value {
	if len(fields) == 1 {
		return Scalar(fields[0])
	}
	return List(fields)
}
