package sshconfig

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sshconv/internal/errors"
)

// hostsKey is the single top-level key of the structured wire shape.
const hostsKey = "hosts"

// Document is an ordered sequence of host entries.
type Document struct {
	Hosts []*Entry
}

// MarshalYAML implements yaml.Marshaler, emitting the {hosts: [...]}
// shape with entries and their keys in document order.
func (d *Document) MarshalYAML() (any, error) {
	hosts := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range d.Hosts {
		hosts.Content = append(hosts.Content, e.yamlNode())
	}
	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{strNode(hostsKey), hosts},
	}
	return root, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The input must be a mapping
// with a "hosts" sequence; list items that do not describe a host entry
// are dropped rather than failing the whole document.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		kind := yaml.Kind(0)
		if node != nil {
			kind = node.Kind
		}
		return errors.Newf("top level must be a mapping, got %s", kindName(kind))
	}

	var hosts *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key != nil && key.Kind == yaml.ScalarNode && key.Value == hostsKey {
			hosts = resolve(node.Content[i+1])
		}
	}
	if hosts == nil {
		return errors.Newf("missing %q key", hostsKey)
	}
	if hosts.Kind != yaml.SequenceNode {
		return errors.Newf("%q must be a sequence, got %s", hostsKey, kindName(hosts.Kind))
	}

	entries := make([]*Entry, 0, len(hosts.Content))
	for _, item := range hosts.Content {
		if e := entryFromNode(resolve(item)); e != nil {
			entries = append(entries, e)
		}
	}
	d.Hosts = entries
	return nil
}

// MarshalJSON implements json.Marshaler with the same member ordering as
// the YAML form.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"hosts":[`)
	for i, e := range d.Hosts {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON is a YAML subset, so
// decoding runs through the order-preserving YAML path.
func (d *Document) UnmarshalJSON(data []byte) error {
	return yaml.Unmarshal(data, d)
}
