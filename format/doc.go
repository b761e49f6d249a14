// Package format names the document formats the pw tool reads and writes and
// converts between them and [ir.Node] trees.
//
// Wire text is handled by the parse and encode packages. JSON and YAML go
// through github.com/goccy/go-yaml, keeping the order of object members.
package format
