package sshconfig

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// hostKey is the reserved mapping key carrying an entry's patterns in the
// structured formats. The match is exact, unlike directive names.
const hostKey = "Host"

// multiValued lists the directive names (lowercased) that hold a List
// even when only one value has been seen. OpenSSH accepts these keywords
// multiple times per host.
var multiValued = map[string]bool{
	"identityfile":  true,
	"localforward":  true,
	"remoteforward": true,
}

// Directive is a single named setting within a host entry.
type Directive struct {
	Name  string
	Value Value
}

// Entry is one Host block: the patterns from its Host line plus the
// directives that apply to them, in first-appearance order.
type Entry struct {
	Patterns   Value
	Directives []Directive
}

// Add records one occurrence of a directive. The name is matched
// case-insensitively against directives already present; on a match the
// new value is appended to the existing one (promoting a Scalar to a
// List) and the stored casing stays as first written. New names are
// appended at the end, as a List when the directive is multi-valued.
func (e *Entry) Add(name, value string) {
	for i := range e.Directives {
		if !strings.EqualFold(e.Directives[i].Name, name) {
			continue
		}
		switch v := e.Directives[i].Value.(type) {
		case Scalar:
			e.Directives[i].Value = List{string(v), value}
		case List:
			e.Directives[i].Value = append(v, value)
		default:
			e.Directives[i].Value = Scalar(value)
		}
		return
	}

	if multiValued[strings.ToLower(name)] {
		e.Directives = append(e.Directives, Directive{Name: name, Value: List{value}})
		return
	}
	e.Directives = append(e.Directives, Directive{Name: name, Value: Scalar(value)})
}

// Get returns the value for a directive name, matched case-insensitively.
func (e *Entry) Get(name string) (Value, bool) {
	for _, d := range e.Directives {
		if strings.EqualFold(d.Name, name) {
			return d.Value, true
		}
	}
	return nil, false
}

// yamlNode builds the mapping node for one entry: the Host key first,
// then every directive in order.
func (e *Entry) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, strNode(hostKey), valueNode(e.Patterns))
	for _, d := range e.Directives {
		n.Content = append(n.Content, strNode(d.Name), valueNode(d.Value))
	}
	return n
}

// MarshalYAML implements yaml.Marshaler.
func (e *Entry) MarshalYAML() (any, error) {
	return e.yamlNode(), nil
}

// MarshalJSON implements json.Marshaler, writing members in entry order
// rather than the sorted order encoding/json would impose on a map.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := appendMember(&buf, hostKey, e.Patterns); err != nil {
		return nil, err
	}
	for _, d := range e.Directives {
		buf.WriteByte(',')
		if err := appendMember(&buf, d.Name, d.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func appendMember(buf *bytes.Buffer, key string, v Value) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return appendValueJSON(buf, v)
}

// entryFromNode rebuilds an Entry from a mapping node, preserving key
// order. Items that are not mappings, lack a usable Host key, or carry an
// empty Host value yield nil and are dropped by the caller. Directive
// values outside the data model (mappings, nulls) are skipped.
func entryFromNode(node *yaml.Node) *Entry {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	e := &Entry{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			continue
		}
		value, ok := valueFromNode(node.Content[i+1])
		if !ok {
			continue
		}
		if key.Value == hostKey {
			e.Patterns = value
			continue
		}
		e.Directives = append(e.Directives, Directive{Name: key.Value, Value: value})
	}
	if !hasPatterns(e.Patterns) {
		return nil
	}
	return e
}

// hasPatterns reports whether v names at least one host pattern.
func hasPatterns(v Value) bool {
	switch v := v.(type) {
	case Scalar:
		return v != ""
	case List:
		return len(v) > 0
	}
	return false
}
