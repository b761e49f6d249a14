// Package eval evaluates github.com/expr-lang/expr expressions against
// documents.
//
// The document is available to an expression as the variable doc, converted
// to plain values: objects are map[string]any, arrays []any and numbers
// float64. The functions getpath and listpath select parts of the document by
// path, and text returns the wire text of a value.
//
//	doc.spec.replicas > 2
//	len(listpath("$.items[*].name"))
//	getpath("$.'a.b'") ?? "default"
package eval
