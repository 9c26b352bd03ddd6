// Package sshconfig models OpenSSH client configuration as an ordered
// document and converts it to and from ssh_config text.
//
// # Data Model
//
// A [Document] is an ordered list of host entries. Each [Entry] holds the
// patterns from its Host line and the directives that follow, in the order
// they first appeared. A directive's [Value] is either a single [Scalar]
// string or an ordered [List] of strings; nothing is ever coerced to a
// number or boolean.
//
// # Parsing
//
// [Parse] is total: it never returns an error. Comments, blank lines, and
// lines that cannot be split into a name and a value are skipped.
// Directives seen before the first Host line are collected under a
// synthetic "Host *" entry:
//
//	doc := sshconfig.Parse(text)
//	for _, e := range doc.Hosts {
//	    ...
//	}
//
// Directive names match case-insensitively within an entry; the casing of
// the first occurrence is kept. A repeated name accumulates its values
// into a [List], and the multi-valued directives IdentityFile,
// LocalForward, and RemoteForward hold a [List] even with one value.
//
// # Serialization
//
// [Format] renders the document back to ssh_config text with four-space
// indentation and blank lines between entries. [Document] also implements
// the yaml and json marshaler interfaces, producing a single "hosts"
// sequence whose mappings carry the reserved "Host" key first and
// directives after it in document order.
package sshconfig
