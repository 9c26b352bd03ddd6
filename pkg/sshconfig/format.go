package sshconfig

import "strings"

// Format renders a Document as ssh_config text: a Host line per entry,
// directives indented four spaces beneath it, one line per list element,
// and a blank line between entries. The result carries exactly one
// trailing newline; an empty document renders as a single newline.
func Format(doc *Document) string {
	var b strings.Builder
	for _, e := range doc.Hosts {
		b.WriteString(hostKey)
		b.WriteByte(' ')
		b.WriteString(patternsText(e.Patterns))
		b.WriteByte('\n')

		for _, d := range e.Directives {
			switch v := d.Value.(type) {
			case Scalar:
				writeDirective(&b, d.Name, string(v))
			case List:
				for _, item := range v {
					writeDirective(&b, d.Name, item)
				}
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), " \t\n") + "\n"
}

func writeDirective(b *strings.Builder, name, value string) {
	b.WriteString("    ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}

// patternsText joins host patterns back into Host line form.
func patternsText(v Value) string {
	switch v := v.(type) {
	case Scalar:
		return string(v)
	case List:
		return strings.Join(v, " ")
	}
	return ""
}
