package sshconfig

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Value is the payload of a directive or a Host line: either a single
// [Scalar] string or an ordered [List] of strings. The two implementations
// are the only ones; code switching on a Value covers both and is done.
type Value interface {
	isValue()
}

// Scalar is a single-string value.
type Scalar string

// List is an ordered multi-string value.
type List []string

func (Scalar) isValue() {}
func (List) isValue()   {}

// strNode builds a string scalar node, tagged so the encoder quotes
// values like "2222" or "yes" that YAML would otherwise retype.
func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// valueNode converts a Value into a yaml node: scalars become string
// nodes, lists become block sequences of string nodes.
func valueNode(v Value) *yaml.Node {
	switch v := v.(type) {
	case Scalar:
		return strNode(string(v))
	case List:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			seq.Content = append(seq.Content, strNode(item))
		}
		return seq
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// valueFromNode converts a yaml node back into a Value. Mappings, nulls,
// and sequences with non-scalar elements have no Value representation and
// report ok=false.
func valueFromNode(node *yaml.Node) (Value, bool) {
	node = resolve(node)
	if node == nil {
		return nil, false
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, false
		}
		return Scalar(node.Value), true
	case yaml.SequenceNode:
		list := make(List, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolve(item)
			if item == nil || item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return nil, false
			}
			list = append(list, item.Value)
		}
		return list, true
	}
	return nil, false
}

// appendValueJSON writes a Value to buf as a JSON string or array of
// strings.
func appendValueJSON(buf *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case Scalar:
		data, err := json.Marshal(string(v))
		if err != nil {
			return err
		}
		buf.Write(data)
	case List:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(item)
			if err != nil {
				return err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
	default:
		buf.WriteString("null")
	}
	return nil
}

// resolve follows alias nodes to their anchors.
func resolve(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode {
		return node.Alias
	}
	return node
}

// kindName names a yaml node kind for error messages.
func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
